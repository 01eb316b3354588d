//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/clock"
	"club-booking/internal/usecase/shared"
	"club-booking/tests/common/builder"
	sharedmock "club-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

type txHarness struct {
	uow     *sharedmock.MockUnitOfWork
	tx      *sharedmock.MockTx
	members *sharedmock.MockMemberRepository
	fields  *sharedmock.MockFieldBookingRepository
	pool    *sharedmock.MockPoolBookingRepository
}

// newTxHarness runs every Within callback against one mocked Tx.
func newTxHarness(ctrl *gomock.Controller) *txHarness {
	h := &txHarness{
		uow:     sharedmock.NewMockUnitOfWork(ctrl),
		tx:      sharedmock.NewMockTx(ctrl),
		members: sharedmock.NewMockMemberRepository(ctrl),
		fields:  sharedmock.NewMockFieldBookingRepository(ctrl),
		pool:    sharedmock.NewMockPoolBookingRepository(ctrl),
	}
	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	h.tx.EXPECT().Members().Return(h.members).AnyTimes()
	h.tx.EXPECT().FieldBookings().Return(h.fields).AnyTimes()
	h.tx.EXPECT().PoolBookings().Return(h.pool).AnyTimes()
	return h
}

// newCalendar pins "today" to builder.DefaultToday.
func newCalendar() *calendar.Calendar {
	now := builder.DefaultToday.Time().Add(9 * time.Hour)
	return calendar.New(clock.NewMockClock(now), time.UTC)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
