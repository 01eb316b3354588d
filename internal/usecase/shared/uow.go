package shared

import (
	"context"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/member"
	sqlc "club-booking/internal/infra/sqlc/generated"
	"club-booking/internal/pkg/calendar"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Members() MemberRepository
	FieldBookings() FieldBookingRepository
	PoolBookings() PoolBookingRepository
	DB() sqlc.DBTX
}

type MemberRepository interface {
	// Create fails with infra.KindDuplicateKey when the code is already registered.
	Create(ctx context.Context, tx sqlc.DBTX, m *member.Member) error
	// Delete fails with infra.KindNotFound when no row matched.
	Delete(ctx context.Context, tx sqlc.DBTX, code member.Code) error
}

type FieldBookingRepository interface {
	// Create fails with infra.KindDuplicateKey when the slot is already held.
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.FieldBooking) (int64, error)
	Delete(ctx context.Context, tx sqlc.DBTX, memberID member.Code, slot booking.FieldSlot) error
	DeleteFrom(ctx context.Context, tx sqlc.DBTX, memberID member.Code, from calendar.Date) (int64, error)
}

// PoolMatch narrows a pool cancellation; nil fields match any stored value.
type PoolMatch struct {
	Beds      *int
	Umbrellas *int
}

type PoolBookingRepository interface {
	// LockDate serializes pool writers of one date until the transaction ends.
	LockDate(ctx context.Context, tx sqlc.DBTX, date calendar.Date) error
	ExistsForMember(ctx context.Context, tx sqlc.DBTX, memberID member.Code, date calendar.Date) (bool, error)
	Usage(ctx context.Context, tx sqlc.DBTX, date calendar.Date) (booking.PoolUsage, error)
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.PoolBooking) (int64, error)
	Delete(ctx context.Context, tx sqlc.DBTX, memberID member.Code, date calendar.Date, match PoolMatch) error
	DeleteFrom(ctx context.Context, tx sqlc.DBTX, memberID member.Code, from calendar.Date) (int64, error)
}
