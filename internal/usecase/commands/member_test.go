//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"club-booking/internal/domain/member"
	"club-booking/internal/infra"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/commands"
	"club-booking/tests/common/builder"
	commandsmock "club-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testPolicy = commands.CascadePolicy{
	MaxRetries:     2,
	InitialBackoff: time.Millisecond,
	Budget:         time.Second,
}

func TestRegisterMember(t *testing.T) {
	tests := []struct {
		name      string
		req       commands.RegisterMemberRequest
		repoCalls int
		repoErr   error
		wantErr   error
	}{
		{
			name:      "success",
			req:       builder.NewMemberBuilder().BuildCommand(),
			repoCalls: 1,
		},
		{
			name:    "malformed code",
			req:     builder.NewMemberBuilder().WithID("SHORT").BuildCommand(),
			wantErr: errs.ErrInvalidInput,
		},
		{
			name:    "blank name",
			req:     builder.NewMemberBuilder().WithName("   ").BuildCommand(),
			wantErr: errs.ErrInvalidInput,
		},
		{
			name:      "already registered",
			req:       builder.NewMemberBuilder().BuildCommand(),
			repoCalls: 1,
			repoErr:   infra.WrapRepoErr("member already exists", nil, infra.KindDuplicateKey),
			wantErr:   errs.ErrAlreadyExists,
		},
		{
			name:      "database failure",
			req:       builder.NewMemberBuilder().BuildCommand(),
			repoCalls: 1,
			repoErr:   infra.WrapRepoErr("boom", assert.AnError),
			wantErr:   errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := newTxHarness(ctrl)
			h.members.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.repoErr).Times(tt.repoCalls)

			uc := commands.NewMemberCommands(h.uow, newCalendar(), commandsmock.NewMockBookingPurger(ctrl), testPolicy, discardLogger())
			m, err := uc.RegisterMember(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.Nil(t, m)
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.req.ID, m.Code().String())
			assert.Equal(t, builder.DefaultToday, m.RegistrationDate())
		})
	}
}

func TestRemoveMember(t *testing.T) {
	code := builder.NewMemberBuilder().BuildCode()
	unreachable := errs.Mark(errs.New("ledger down"), errs.ErrDependencyUnreachable)

	tests := []struct {
		name        string
		purgeErrs   []error
		wantWarning string
	}{
		{
			name:      "member and bookings removed",
			purgeErrs: []error{nil},
		},
		{
			name:      "purge succeeds after a retry",
			purgeErrs: []error{unreachable, nil},
		},
		{
			name:        "purge keeps failing",
			purgeErrs:   []error{unreachable, unreachable, unreachable},
			wantWarning: commands.CascadeWarning,
		},
		{
			name:        "purge rejected is not retried",
			purgeErrs:   []error{errs.New("booking ledger rejected purge with status 400")},
			wantWarning: commands.CascadeWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := newTxHarness(ctrl)
			h.members.EXPECT().Delete(gomock.Any(), gomock.Any(), code).Return(nil)

			purger := commandsmock.NewMockBookingPurger(ctrl)
			calls := make([]any, 0, len(tt.purgeErrs))
			for _, perr := range tt.purgeErrs {
				calls = append(calls, purger.EXPECT().PurgeFutureBookings(gomock.Any(), code).Return(perr))
			}
			gomock.InOrder(calls...)

			uc := commands.NewMemberCommands(h.uow, newCalendar(), purger, testPolicy, discardLogger())
			res, err := uc.RemoveMember(context.Background(), code.String())

			require.NoError(t, err)
			assert.Equal(t, code, res.ID)
			assert.Equal(t, tt.wantWarning, res.Warning)
		})
	}
}

func TestRemoveMember_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newTxHarness(ctrl)
	h.members.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("member not found", nil, infra.KindNotFound))

	// No purge expected: the cascade only follows a successful delete.
	purger := commandsmock.NewMockBookingPurger(ctrl)

	uc := commands.NewMemberCommands(h.uow, newCalendar(), purger, testPolicy, discardLogger())
	res, err := uc.RemoveMember(context.Background(), builder.DefaultMemberCode)

	assert.Nil(t, res)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestRemoveMember_CascadeOutlivesCallerCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newTxHarness(ctrl)
	h.members.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())

	purger := commandsmock.NewMockBookingPurger(ctrl)
	purger.EXPECT().PurgeFutureBookings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(pctx context.Context, _ member.Code) error {
			cancel()
			return pctx.Err()
		})

	uc := commands.NewMemberCommands(h.uow, newCalendar(), purger, testPolicy, discardLogger())
	res, err := uc.RemoveMember(ctx, builder.DefaultMemberCode)

	require.NoError(t, err)
	assert.Empty(t, res.Warning)
}

func TestRemoveMember_MalformedCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := commands.NewMemberCommands(newTxHarness(ctrl).uow, newCalendar(), commandsmock.NewMockBookingPurger(ctrl), testPolicy, discardLogger())

	_, err := uc.RemoveMember(context.Background(), "not-a-code")
	assert.True(t, errs.Is(err, errs.ErrInvalidInput))
}
