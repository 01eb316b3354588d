//go:build unit

package readstore

import (
	"context"
	"testing"

	"club-booking/internal/infra"
	sqlc "club-booking/internal/infra/sqlc/generated"
	"club-booking/internal/usecase/queries"
	"club-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMemberReadQueries struct {
	mock.Mock
}

func (m *MockMemberReadQueries) GetMember(ctx context.Context, db sqlc.DBTX, id string) (sqlc.Members, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Members), args.Error(1)
}

func (m *MockMemberReadQueries) MemberExists(ctx context.Context, db sqlc.DBTX, id string) (bool, error) {
	args := m.Called(ctx, db, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberReadQueries) ListMembers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Members, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Members), args.Error(1)
}

func TestMemberReadStore_FindByID(t *testing.T) {
	b := builder.NewMemberBuilder()

	tests := []struct {
		name       string
		mockReturn sqlc.Members
		mockError  error
		want       *queries.MemberView
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success",
			mockReturn: b.BuildInfra(),
			want:       b.BuildView(),
		},
		{
			name:       "member not found",
			mockReturn: sqlc.Members{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			mockReturn: sqlc.Members{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockMemberReadQueries)
			mockQueries.On("GetMember", mock.Anything, mock.Anything, b.ID).Return(tt.mockReturn, tt.mockError)

			got, err := NewMemberReadStore(mockQueries, nil).FindByID(context.Background(), b.BuildCode())

			if tt.wantKind != "" {
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			} else {
				require.NoError(t, err)
				if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(calendarDate)); diff != "" {
					t.Errorf("FindByID() mismatch (-want +got):\n%s", diff)
				}
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestMemberReadStore_Exists(t *testing.T) {
	code := builder.NewMemberBuilder().BuildCode()

	mockQueries := new(MockMemberReadQueries)
	mockQueries.On("MemberExists", mock.Anything, mock.Anything, code.String()).Return(true, nil).Once()
	mockQueries.On("MemberExists", mock.Anything, mock.Anything, code.String()).Return(false, assert.AnError).Once()

	store := NewMemberReadStore(mockQueries, nil)

	ok, err := store.Exists(context.Background(), code)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(context.Background(), code)
	assert.False(t, ok)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))

	mockQueries.AssertExpectations(t)
}

func TestMemberReadStore_List(t *testing.T) {
	first := builder.NewMemberBuilder()
	second := builder.NewMemberBuilder().WithID("CF0000000000002B").WithName("Luigi")

	mockQueries := new(MockMemberReadQueries)
	mockQueries.On("ListMembers", mock.Anything, mock.Anything).
		Return([]sqlc.Members{first.BuildInfra(), second.BuildInfra()}, nil)

	got, err := NewMemberReadStore(mockQueries, nil).List(context.Background())
	require.NoError(t, err)

	want := []*queries.MemberView{first.BuildView(), second.BuildView()}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(calendarDate)); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestMemberReadStore_List_Empty(t *testing.T) {
	mockQueries := new(MockMemberReadQueries)
	mockQueries.On("ListMembers", mock.Anything, mock.Anything).Return([]sqlc.Members{}, nil)

	got, err := NewMemberReadStore(mockQueries, nil).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
