//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"club-booking/internal/domain/booking"
	"club-booking/internal/handler/api"
	"club-booking/internal/handler/middleware"
	resdto "club-booking/internal/handler/dto/response"
	"club-booking/internal/pkg/calendar"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/commands"
	"club-booking/internal/usecase/queries"
	"club-booking/tests/common/builder"
	"club-booking/tests/common/httptest"
	"club-booking/tests/common/testutil"
	usecasemock "club-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockLedger *usecasemock.MockBookingLedger
}

func (s *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidators()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedger = usecasemock.NewMockBookingLedger(s.mockCtrl)

	field := api.NewFieldHandler(s.mockLedger)
	pool := api.NewPoolHandler(s.mockLedger)
	bookings := api.NewBookingsHandler(s.mockLedger)

	s.router.GET("/api/fields/free/:date/:category", field.FreeSlots)
	s.router.POST("/api/fields/bookings", field.Book)
	s.router.DELETE("/api/fields/bookings", field.Cancel)
	s.router.GET("/api/pool/free/:date", pool.Free)
	s.router.POST("/api/pool/bookings", pool.Book)
	s.router.DELETE("/api/pool/bookings", pool.Cancel)
	s.router.GET("/api/bookings/members/:id", bookings.Upcoming)
	s.router.DELETE("/api/bookings/members/:id", bookings.Purge)
}

func (s *LedgerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerHandlerSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}

type testCaseLedger struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// Field
// ================================================================================

func (s *LedgerHandlerTestSuite) TestFreeSlots() {
	date := calendar.NewDate(2026, time.July, 3)

	s.Run("success: returns the free hours", func() {
		s.mockLedger.EXPECT().FreeFieldSlots(gomock.Any(), "2026-07-03", "tennis").
			Return(&queries.FreeSlotsView{Date: date, Category: booking.CategoryTennis, Hours: []int{11, 12}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/fields/free/2026-07-03/tennis", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"date":"2026-07-03","category":"tennis","hours":[11,12]}`, rec.Body.String())
	})

	s.Run("success: fully booked is an empty list", func() {
		s.mockLedger.EXPECT().FreeFieldSlots(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&queries.FreeSlotsView{Date: date, Category: booking.CategorySoccer, Hours: []int{}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/fields/free/2026-07-03/soccer", nil)

		var body resdto.FreeSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotNil(body.Hours)
		s.Empty(body.Hours)
	})

	s.Run("error: 400 for unknown category", func() {
		s.mockLedger.EXPECT().FreeFieldSlots(gomock.Any(), gomock.Any(), "golf").
			Return(nil, errs.Mark(booking.ErrInvalidCategory, errs.ErrInvalidInput))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/fields/free/2026-07-03/golf", nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func (s *LedgerHandlerTestSuite) TestBookField() {
	url := "/api/fields/bookings"
	b := builder.NewFieldBookingBuilder()
	reqBody := b.BuildRequestDTO()

	validation := []testCaseLedger{
		{name: "missing field: id", mutate: testutil.Field("id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: hour", mutate: testutil.Field("hour", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: category", mutate: testutil.Field("category", nil), expectCode: http.StatusBadRequest},
		{name: "date not ISO", mutate: testutil.Field("date", "03/07/2026"), expectCode: http.StatusBadRequest},
		{name: "hour as string", mutate: testutil.Field("hour", "ten"), expectCode: http.StatusBadRequest},
		{name: "malformed member code", mutate: testutil.Field("id", "X"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 with the booking id", func() {
		s.mockLedger.EXPECT().BookField(gomock.Any(), b.BuildCommand()).Return(&commands.BookingResult{ID: 42}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(resdto.BookingCreatedResponse{Detail: "field booked", BookingID: 42}, body)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate))
				httptest.AssertErrorCode(s.T(), rec, tc.expectCode, "INVALID_INPUT")
			})
		}
	})

	domainErrors := []struct {
		name       string
		err        error
		expectCode int
		code       string
	}{
		{name: "date not after today", err: errs.Mark(booking.ErrDateNotAfterToday, errs.ErrInvalidDate), expectCode: http.StatusBadRequest, code: "INVALID_DATE"},
		{name: "hour out of range", err: errs.Mark(booking.ErrHourOutOfRange, errs.ErrInvalidSlot), expectCode: http.StatusBadRequest, code: "INVALID_SLOT"},
		{name: "member unknown", err: errs.Mark(errs.New("member X is not registered"), errs.ErrMemberNotFound), expectCode: http.StatusNotFound, code: "MEMBER_NOT_FOUND"},
		{name: "slot taken", err: errs.Mark(errs.New("dup"), errs.ErrSlotTaken), expectCode: http.StatusConflict, code: "SLOT_TAKEN"},
		{name: "registry down", err: errs.Mark(errs.New("timeout"), errs.ErrDependencyUnreachable), expectCode: http.StatusServiceUnavailable, code: "DEPENDENCY_UNREACHABLE"},
	}

	for _, tc := range domainErrors {
		s.Run("error: "+tc.name, func() {
			s.mockLedger.EXPECT().BookField(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
			httptest.AssertErrorCode(s.T(), rec, tc.expectCode, tc.code)
		})
	}
}

func (s *LedgerHandlerTestSuite) TestCancelField() {
	url := "/api/fields/bookings"
	b := builder.NewFieldBookingBuilder()

	s.Run("success", func() {
		s.mockLedger.EXPECT().CancelField(gomock.Any(), b.BuildCommand()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, b.BuildRequestDTO())
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"detail":"field booking cancelled"}`, rec.Body.String())
	})

	s.Run("error: 404 when nothing matches", func() {
		s.mockLedger.EXPECT().CancelField(gomock.Any(), gomock.Any()).Return(errs.Mark(errs.New("gone"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, b.BuildRequestDTO())
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}

// ================================================================================
// Pool
// ================================================================================

func (s *LedgerHandlerTestSuite) TestFreePool() {
	s.Run("success: in season", func() {
		s.mockLedger.EXPECT().FreePoolCapacity(gomock.Any(), "2026-07-01").Return(&queries.PoolAvailabilityView{
			Date: calendar.NewDate(2026, time.July, 1), BedUnitsFree: 78, UmbrellaUnitsFree: 19, InSeason: true,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/pool/free/2026-07-01", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"date":"2026-07-01","bed_units_free":78,"umbrella_units_free":19,"in_season":true}`, rec.Body.String())
	})

	s.Run("error: 400 for malformed date", func() {
		s.mockLedger.EXPECT().FreePoolCapacity(gomock.Any(), "tomorrow").
			Return(nil, errs.Mark(calendar.ErrInvalidDateFormat, errs.ErrInvalidInput))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/pool/free/tomorrow", nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func (s *LedgerHandlerTestSuite) TestBookPool() {
	url := "/api/pool/bookings"
	b := builder.NewPoolBookingBuilder()
	reqBody := b.BuildRequestDTO()

	s.Run("success: returns 201 with the booking id", func() {
		s.mockLedger.EXPECT().BookPool(gomock.Any(), b.BuildCommand()).Return(&commands.BookingResult{ID: 9}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(resdto.BookingCreatedResponse{Detail: "pool booked", BookingID: 9}, body)
	})

	s.Run("error: 400 on negative units", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, testutil.Field("beds", -1)))
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	s.Run("error: 409 with headroom when capacity is exceeded", func() {
		date := b.Date
		capErr := &booking.CapacityError{Resource: booking.ResourceBeds, Available: 1, Date: date}
		s.mockLedger.EXPECT().BookPool(gomock.Any(), gomock.Any()).Return(nil, errs.Mark(capErr, errs.ErrCapacityExceeded))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		body := httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "CAPACITY_EXCEEDED")
		s.Equal("beds", body.Detail["resource"])
		s.EqualValues(1, body.Detail["available"])
		s.Equal(date.String(), body.Detail["date"])
	})

	s.Run("error: 409 for a second booking on the date", func() {
		s.mockLedger.EXPECT().BookPool(gomock.Any(), gomock.Any()).Return(nil, errs.Mark(errs.New("dup"), errs.ErrDuplicateBooking))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "DUPLICATE_BOOKING")
	})

	s.Run("error: 400 out of season", func() {
		s.mockLedger.EXPECT().BookPool(gomock.Any(), gomock.Any()).Return(nil, errs.Mark(booking.ErrNotInSeason, errs.ErrOutOfSeason))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "OUT_OF_SEASON")
	})
}

func (s *LedgerHandlerTestSuite) TestCancelPool() {
	url := "/api/pool/bookings"
	code := builder.DefaultMemberCode
	date := builder.DefaultToday.AddDays(1).String()

	s.Run("success: member and date only", func() {
		s.mockLedger.EXPECT().CancelPool(gomock.Any(), commands.PoolCancelRequest{MemberID: code, Date: date}).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, map[string]any{"id": code, "date": date})
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"detail":"pool booking cancelled"}`, rec.Body.String())
	})

	s.Run("success: with units to match", func() {
		beds, umbrellas := 2, 0
		s.mockLedger.EXPECT().CancelPool(gomock.Any(), commands.PoolCancelRequest{
			MemberID: code, Date: date, Beds: &beds, Umbrellas: &umbrellas,
		}).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url,
			map[string]any{"id": code, "date": date, "beds": 2, "umbrellas": 0})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 when nothing matches", func() {
		s.mockLedger.EXPECT().CancelPool(gomock.Any(), gomock.Any()).Return(errs.Mark(errs.New("gone"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, map[string]any{"id": code, "date": date})
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})

	s.Run("error: units beyond capacity never reach the ledger", func() {
		for _, body := range []map[string]any{
			{"id": code, "date": date, "beds": 81},
			{"id": code, "date": date, "beds": int64(1)<<32 + 2},
			{"id": code, "date": date, "umbrellas": 21},
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, body)
			httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_INPUT")
		}
	})
}

// ================================================================================
// Bookings
// ================================================================================

func (s *LedgerHandlerTestSuite) TestUpcoming() {
	code := builder.DefaultMemberCode
	date := builder.DefaultToday.AddDays(2)

	s.mockLedger.EXPECT().UpcomingBookings(gomock.Any(), code).Return(&queries.MemberBookingsView{
		MemberID: code,
		Fields:   []*queries.FieldBookingView{{ID: 3, Date: date, Hour: 18, Category: booking.CategoryBeach}},
		Pool:     nil,
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/members/"+code, nil)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{
		"member_id":"`+code+`",
		"fields":[{"id":3,"date":"`+date.String()+`","hour":18,"category":"beach"}],
		"pool":[]
	}`, rec.Body.String())
}

func (s *LedgerHandlerTestSuite) TestPurge() {
	code := builder.DefaultMemberCode

	s.Run("success: 204 even when nothing was deleted", func() {
		s.mockLedger.EXPECT().PurgeFutureBookings(gomock.Any(), code).Return(&commands.PurgeResult{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/members/"+code, nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 500 on database failure", func() {
		s.mockLedger.EXPECT().PurgeFutureBookings(gomock.Any(), code).
			Return(nil, errs.Mark(errs.New("boom"), errs.ErrDatabaseOperationFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/members/"+code, nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusInternalServerError, "INTERNAL")
	})
}
