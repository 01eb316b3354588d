//go:build unit

package graph_test

import (
	"testing"
	"time"

	"club-booking/internal/domain/booking"
	"club-booking/internal/handler/graph"
	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/commands"
	"club-booking/internal/usecase/queries"
	"club-booking/tests/common/builder"
	usecasemock "club-booking/tests/mock/usecase"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLedgerSchema(t *testing.T) (*graphql.Schema, *usecasemock.MockBookingLedger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ledger := usecasemock.NewMockBookingLedger(ctrl)
	return graph.NewLedgerSchema(graph.NewLedgerResolver(ledger)), ledger
}

func TestLedgerSchema_FreeQueries(t *testing.T) {
	schema, ledger := newLedgerSchema(t)
	date := calendar.NewDate(2026, time.July, 3)

	ledger.EXPECT().FreeFieldSlots(gomock.Any(), "2026-07-03", "beach").
		Return(&queries.FreeSlotsView{Date: date, Category: booking.CategoryBeach, Hours: []int{20, 21}}, nil)
	ledger.EXPECT().FreePoolCapacity(gomock.Any(), "2026-07-03").
		Return(&queries.PoolAvailabilityView{Date: date, BedUnitsFree: 80, UmbrellaUnitsFree: 20, InSeason: true}, nil)

	resp := exec(t, schema, `{
		freeFieldSlots(date: "2026-07-03", category: "beach") { date category hours }
		freePool(date: "2026-07-03") { bedUnitsFree umbrellaUnitsFree inSeason }
	}`, nil)

	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{
		"freeFieldSlots":{"date":"2026-07-03","category":"beach","hours":[20,21]},
		"freePool":{"bedUnitsFree":80,"umbrellaUnitsFree":20,"inSeason":true}
	}`, string(resp.Data))
}

func TestLedgerSchema_BookField(t *testing.T) {
	schema, ledger := newLedgerSchema(t)
	b := builder.NewFieldBookingBuilder()

	ledger.EXPECT().BookField(gomock.Any(), b.BuildCommand()).Return(&commands.BookingResult{ID: 77}, nil)
	ledger.EXPECT().BookField(gomock.Any(), gomock.Any()).Return(nil, errs.Mark(errs.New("dup"), errs.ErrSlotTaken))

	query := `mutation($b: FieldBookingInput!) { bookField(booking: $b) { detail bookingId } }`
	vars := map[string]any{"b": map[string]any{"id": b.MemberID, "date": b.Date.String(), "hour": b.Hour, "category": b.Category}}

	resp := exec(t, schema, query, vars)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"bookField":{"detail":"field booked","bookingId":"77"}}`, string(resp.Data))

	resp = exec(t, schema, query, vars)
	assert.Equal(t, "SLOT_TAKEN", errorCode(t, resp))
}

func TestLedgerSchema_BookPool_CapacityExtensions(t *testing.T) {
	schema, ledger := newLedgerSchema(t)
	b := builder.NewPoolBookingBuilder()
	capErr := &booking.CapacityError{Resource: booking.ResourceUmbrellas, Available: 0, Date: b.Date}

	ledger.EXPECT().BookPool(gomock.Any(), b.BuildCommand()).Return(nil, errs.Mark(capErr, errs.ErrCapacityExceeded))

	resp := exec(t, schema, `mutation($b: PoolBookingInput!) { bookPool(booking: $b) { bookingId } }`,
		map[string]any{"b": map[string]any{"id": b.MemberID, "date": b.Date.String(), "beds": b.Beds, "umbrellas": b.Umbrellas}})

	assert.Equal(t, "CAPACITY_EXCEEDED", errorCode(t, resp))
	assert.Contains(t, resp.Errors[0].Extensions, "detail")
}

func TestLedgerSchema_CancelPool_OptionalUnits(t *testing.T) {
	schema, ledger := newLedgerSchema(t)
	date := builder.DefaultToday.AddDays(1).String()
	umbrellas := 1

	ledger.EXPECT().CancelPool(gomock.Any(), commands.PoolCancelRequest{
		MemberID: builder.DefaultMemberCode, Date: date, Umbrellas: &umbrellas,
	}).Return(nil)

	resp := exec(t, schema, `mutation($b: PoolCancelInput!) { cancelPool(booking: $b) { detail } }`,
		map[string]any{"b": map[string]any{"id": builder.DefaultMemberCode, "date": date, "umbrellas": 1}})

	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"cancelPool":{"detail":"pool booking cancelled"}}`, string(resp.Data))
}

func TestLedgerSchema_UpcomingAndPurge(t *testing.T) {
	schema, ledger := newLedgerSchema(t)
	code := builder.DefaultMemberCode
	date := builder.DefaultToday.AddDays(1)

	ledger.EXPECT().UpcomingBookings(gomock.Any(), code).Return(&queries.MemberBookingsView{
		MemberID: code,
		Fields:   []*queries.FieldBookingView{},
		Pool:     []*queries.PoolBookingView{{ID: 5, Date: date, Beds: 2, Umbrellas: 1}},
	}, nil)
	ledger.EXPECT().PurgeFutureBookings(gomock.Any(), code).Return(&commands.PurgeResult{FieldBookings: 0, PoolBookings: 1}, nil)

	resp := exec(t, schema, `{ upcomingBookings(id: "`+code+`") { memberId fields { id } pool { id date beds umbrellas } } }`, nil)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"upcomingBookings":{"memberId":"`+code+`","fields":[],"pool":[{"id":"5","date":"`+date.String()+`","beds":2,"umbrellas":1}]}}`, string(resp.Data))

	resp = exec(t, schema, `mutation { purgeBookings(id: "`+code+`") { fieldBookings poolBookings } }`, nil)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"purgeBookings":{"fieldBookings":0,"poolBookings":1}}`, string(resp.Data))
}
