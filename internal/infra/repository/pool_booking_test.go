//go:build unit

package repository

import (
	"context"
	"testing"

	"club-booking/internal/domain/booking"
	"club-booking/internal/infra"
	sqlc "club-booking/internal/infra/sqlc/generated"
	"club-booking/internal/pkg/pgconv"
	"club-booking/internal/usecase/shared"
	"club-booking/tests/common/builder"
	repositorymock "club-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPoolBookingRepository_Usage(t *testing.T) {
	date := builder.DefaultToday.AddDays(3)

	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockPoolBookingWriteQueries(ctrl)
	q.EXPECT().GetPoolUsage(gomock.Any(), gomock.Any(), pgconv.DateToPgtype(date)).
		Return(sqlc.GetPoolUsageRow{Beds: 55, Umbrellas: 7}, nil)

	usage, err := NewPoolBookingRepository(q).Usage(context.Background(), &mockDBTX{}, date)
	require.NoError(t, err)
	assert.Equal(t, booking.PoolUsage{Beds: 55, Umbrellas: 7}, usage)
}

func TestPoolBookingRepository_LockAndExists(t *testing.T) {
	code := builder.NewMemberBuilder().BuildCode()
	date := builder.DefaultToday.AddDays(1)

	ctrl := gomock.NewController(t)
	q := repositorymock.NewMockPoolBookingWriteQueries(ctrl)
	q.EXPECT().LockPoolDate(gomock.Any(), gomock.Any(), pgconv.DateToPgtype(date)).Return(nil)
	q.EXPECT().PoolBookingExists(gomock.Any(), gomock.Any(), sqlc.PoolBookingExistsParams{
		BookingDate: pgconv.DateToPgtype(date),
		MemberID:    code.String(),
	}).Return(true, nil)

	repo := NewPoolBookingRepository(q)
	require.NoError(t, repo.LockDate(context.Background(), &mockDBTX{}, date))

	ok, err := repo.ExistsForMember(context.Background(), &mockDBTX{}, code, date)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPoolBookingRepository_Create(t *testing.T) {
	b := builder.NewPoolBookingBuilder().WithUnits(4, 2)
	pb, err := b.BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "member already booked the date", mockErr: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "capacity check constraint", mockErr: &pgconn.PgError{Code: "23514"}, wantKind: infra.KindCheckViolated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockPoolBookingWriteQueries(ctrl)
			q.EXPECT().CreatePoolBooking(gomock.Any(), gomock.Any(), sqlc.CreatePoolBookingParams{
				MemberID:    b.MemberID,
				BookingDate: pgconv.DateToPgtype(b.Date),
				Beds:        4,
				Umbrellas:   2,
			}).Return(int64(7), tt.mockErr)

			id, err := NewPoolBookingRepository(q).Create(context.Background(), &mockDBTX{}, pb)
			if tt.wantKind == "" {
				require.NoError(t, err)
				assert.Equal(t, int64(7), id)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
		})
	}
}

func TestPoolBookingRepository_Delete(t *testing.T) {
	code := builder.NewMemberBuilder().BuildCode()
	date := builder.DefaultToday.AddDays(1)
	beds := 2

	tests := []struct {
		name       string
		match      shared.PoolMatch
		wantBeds   pgtype.Int4
		wantUmbrel pgtype.Int4
		rows       int64
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "member and date only",
			match:      shared.PoolMatch{},
			wantBeds:   pgtype.Int4{},
			wantUmbrel: pgtype.Int4{},
			rows:       1,
		},
		{
			name:       "beds must match",
			match:      shared.PoolMatch{Beds: &beds},
			wantBeds:   pgtype.Int4{Int32: 2, Valid: true},
			wantUmbrel: pgtype.Int4{},
			rows:       1,
		},
		{
			name:     "no matching booking",
			match:    shared.PoolMatch{},
			rows:     0,
			wantKind: infra.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockPoolBookingWriteQueries(ctrl)
			q.EXPECT().DeletePoolBooking(gomock.Any(), gomock.Any(), sqlc.DeletePoolBookingParams{
				MemberID:    code.String(),
				BookingDate: pgconv.DateToPgtype(date),
				Beds:        tt.wantBeds,
				Umbrellas:   tt.wantUmbrel,
			}).Return(tt.rows, nil)

			err := NewPoolBookingRepository(q).Delete(context.Background(), &mockDBTX{}, code, date, tt.match)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind))
		})
	}
}
