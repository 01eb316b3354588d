package graph

import (
	"context"
	"strconv"

	"club-booking/internal/usecase"
	"club-booking/internal/usecase/commands"
	"club-booking/internal/usecase/queries"

	graphql "github.com/graph-gophers/graphql-go"
)

type LedgerResolver struct {
	ledger usecase.BookingLedger
}

func NewLedgerResolver(ledger usecase.BookingLedger) *LedgerResolver {
	return &LedgerResolver{ledger: ledger}
}

// #nosec G115 -- hours, unit counts and row counts stay far below int32 limits
func toInt32(v int) int32 { return int32(v) }

func toID(id int64) graphql.ID { return graphql.ID(strconv.FormatInt(id, 10)) }

type freeSlotsResolver struct{ v *queries.FreeSlotsView }

func (r *freeSlotsResolver) Date() string     { return r.v.Date.String() }
func (r *freeSlotsResolver) Category() string { return r.v.Category.String() }
func (r *freeSlotsResolver) Hours() []int32 {
	out := make([]int32, 0, len(r.v.Hours))
	for _, h := range r.v.Hours {
		out = append(out, toInt32(h))
	}
	return out
}

type poolAvailabilityResolver struct{ v *queries.PoolAvailabilityView }

func (r *poolAvailabilityResolver) Date() string             { return r.v.Date.String() }
func (r *poolAvailabilityResolver) BedUnitsFree() int32      { return toInt32(r.v.BedUnitsFree) }
func (r *poolAvailabilityResolver) UmbrellaUnitsFree() int32 { return toInt32(r.v.UmbrellaUnitsFree) }
func (r *poolAvailabilityResolver) InSeason() bool           { return r.v.InSeason }

type bookingCreatedResolver struct {
	detail string
	id     int64
}

func (r *bookingCreatedResolver) Detail() string        { return r.detail }
func (r *bookingCreatedResolver) BookingID() graphql.ID { return toID(r.id) }

type ledgerDetailResolver struct{ detail string }

func (r *ledgerDetailResolver) Detail() string { return r.detail }

type purgeResultResolver struct{ v *commands.PurgeResult }

func (r *purgeResultResolver) FieldBookings() int32 { return int32(r.v.FieldBookings) } // #nosec G115
func (r *purgeResultResolver) PoolBookings() int32  { return int32(r.v.PoolBookings) }  // #nosec G115

type fieldBookingResolver struct{ v *queries.FieldBookingView }

func (r *fieldBookingResolver) ID() graphql.ID   { return toID(r.v.ID) }
func (r *fieldBookingResolver) Date() string     { return r.v.Date.String() }
func (r *fieldBookingResolver) Hour() int32      { return toInt32(r.v.Hour) }
func (r *fieldBookingResolver) Category() string { return r.v.Category.String() }

type poolBookingResolver struct{ v *queries.PoolBookingView }

func (r *poolBookingResolver) ID() graphql.ID   { return toID(r.v.ID) }
func (r *poolBookingResolver) Date() string     { return r.v.Date.String() }
func (r *poolBookingResolver) Beds() int32      { return toInt32(r.v.Beds) }
func (r *poolBookingResolver) Umbrellas() int32 { return toInt32(r.v.Umbrellas) }

type memberBookingsResolver struct{ v *queries.MemberBookingsView }

func (r *memberBookingsResolver) MemberID() string { return r.v.MemberID }
func (r *memberBookingsResolver) Fields() []*fieldBookingResolver {
	out := make([]*fieldBookingResolver, 0, len(r.v.Fields))
	for _, f := range r.v.Fields {
		out = append(out, &fieldBookingResolver{v: f})
	}
	return out
}
func (r *memberBookingsResolver) Pool() []*poolBookingResolver {
	out := make([]*poolBookingResolver, 0, len(r.v.Pool))
	for _, p := range r.v.Pool {
		out = append(out, &poolBookingResolver{v: p})
	}
	return out
}

type fieldBookingInput struct {
	ID       string
	Date     string
	Hour     int32
	Category string
}

func (in fieldBookingInput) toCommand() commands.FieldBookingRequest {
	return commands.FieldBookingRequest{MemberID: in.ID, Date: in.Date, Hour: int(in.Hour), Category: in.Category}
}

type poolBookingInput struct {
	ID        string
	Date      string
	Beds      int32
	Umbrellas int32
}

type poolCancelInput struct {
	ID        string
	Date      string
	Beds      *int32
	Umbrellas *int32
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func (r *LedgerResolver) FreeFieldSlots(ctx context.Context, args struct {
	Date     string
	Category string
}) (*freeSlotsResolver, error) {
	view, err := r.ledger.FreeFieldSlots(ctx, args.Date, args.Category)
	if err != nil {
		return nil, newError(err)
	}
	return &freeSlotsResolver{v: view}, nil
}

func (r *LedgerResolver) FreePool(ctx context.Context, args struct{ Date string }) (*poolAvailabilityResolver, error) {
	view, err := r.ledger.FreePoolCapacity(ctx, args.Date)
	if err != nil {
		return nil, newError(err)
	}
	return &poolAvailabilityResolver{v: view}, nil
}

func (r *LedgerResolver) UpcomingBookings(ctx context.Context, args struct{ ID string }) (*memberBookingsResolver, error) {
	view, err := r.ledger.UpcomingBookings(ctx, args.ID)
	if err != nil {
		return nil, newError(err)
	}
	return &memberBookingsResolver{v: view}, nil
}

func (r *LedgerResolver) BookField(ctx context.Context, args struct{ Booking fieldBookingInput }) (*bookingCreatedResolver, error) {
	result, err := r.ledger.BookField(ctx, args.Booking.toCommand())
	if err != nil {
		return nil, newError(err)
	}
	return &bookingCreatedResolver{detail: "field booked", id: result.ID}, nil
}

func (r *LedgerResolver) CancelField(ctx context.Context, args struct{ Booking fieldBookingInput }) (*ledgerDetailResolver, error) {
	if err := r.ledger.CancelField(ctx, args.Booking.toCommand()); err != nil {
		return nil, newError(err)
	}
	return &ledgerDetailResolver{detail: "field booking cancelled"}, nil
}

func (r *LedgerResolver) BookPool(ctx context.Context, args struct{ Booking poolBookingInput }) (*bookingCreatedResolver, error) {
	result, err := r.ledger.BookPool(ctx, commands.PoolBookingRequest{
		MemberID:  args.Booking.ID,
		Date:      args.Booking.Date,
		Beds:      int(args.Booking.Beds),
		Umbrellas: int(args.Booking.Umbrellas),
	})
	if err != nil {
		return nil, newError(err)
	}
	return &bookingCreatedResolver{detail: "pool booked", id: result.ID}, nil
}

func (r *LedgerResolver) CancelPool(ctx context.Context, args struct{ Booking poolCancelInput }) (*ledgerDetailResolver, error) {
	err := r.ledger.CancelPool(ctx, commands.PoolCancelRequest{
		MemberID:  args.Booking.ID,
		Date:      args.Booking.Date,
		Beds:      intPtr(args.Booking.Beds),
		Umbrellas: intPtr(args.Booking.Umbrellas),
	})
	if err != nil {
		return nil, newError(err)
	}
	return &ledgerDetailResolver{detail: "pool booking cancelled"}, nil
}

func (r *LedgerResolver) PurgeBookings(ctx context.Context, args struct{ ID string }) (*purgeResultResolver, error) {
	result, err := r.ledger.PurgeFutureBookings(ctx, args.ID)
	if err != nil {
		return nil, newError(err)
	}
	return &purgeResultResolver{v: result}, nil
}
