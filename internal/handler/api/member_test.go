//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"club-booking/internal/domain/member"
	"club-booking/internal/handler/api"
	"club-booking/internal/handler/middleware"
	resdto "club-booking/internal/handler/dto/response"
	"club-booking/internal/infra"
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

type MemberHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockSvc  *usecasemock.MockMembershipService
	handler  *api.MemberHandler
}

func (s *MemberHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidators()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSvc = usecasemock.NewMockMembershipService(s.mockCtrl)
	s.handler = api.NewMemberHandler(s.mockSvc)

	s.router.GET("/api/members", s.handler.List)
	s.router.POST("/api/members", s.handler.Add)
	s.router.GET("/api/members/:id", s.handler.Check)
	s.router.GET("/api/members/:id/exists", s.handler.Exists)
	s.router.DELETE("/api/members/:id", s.handler.Delete)
}

func (s *MemberHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMemberHandlerSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}

type testCaseMember struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestAdd
// ================================================================================

func (s *MemberHandlerTestSuite) TestAdd() {
	url := "/api/members"
	b := builder.NewMemberBuilder()
	reqBody := b.BuildRequestDTO()
	created, err := b.BuildDomain()
	s.Require().NoError(err)

	bound := []testCaseMember{
		{name: "name length OK (50 chars)", mutate: testutil.Field("name", strings.Repeat("a", 50)), expectCode: http.StatusCreated},
		{name: "name too long (51 chars)", mutate: testutil.Field("name", strings.Repeat("a", 51)), expectCode: http.StatusBadRequest},
		{name: "surname too long (51 chars)", mutate: testutil.Field("surname", strings.Repeat("a", 51)), expectCode: http.StatusBadRequest},
		{name: "code too short", mutate: testutil.Field("id", "CF000000000001A"), expectCode: http.StatusBadRequest},
		{name: "code with symbols", mutate: testutil.Field("id", "CF00000000000-1A"), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseMember{
		{name: "missing field: id", mutate: testutil.Field("id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: surname", mutate: testutil.Field("surname", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 with detail", func() {
		s.mockSvc.EXPECT().RegisterMember(gomock.Any(), commands.RegisterMemberRequest{
			ID: b.ID, Name: b.Name, Surname: b.Surname,
		}).Return(created, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.DetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("member "+b.ID+" added", body.Detail)
		s.Empty(body.Warning)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCaseMember{bound, missing} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusCreated {
						s.mockSvc.EXPECT().RegisterMember(gomock.Any(), gomock.Any()).Return(created, nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorCode(s.T(), rec, tc.expectCode, "INVALID_INPUT")
					}
				})
			}
		}
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRaw(s.T(), s.router, http.MethodPost, url, `{"id":`)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	s.Run("error: 409 when already registered", func() {
		s.mockSvc.EXPECT().RegisterMember(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(infra.WrapRepoErr("member already exists", nil, infra.KindDuplicateKey), errs.ErrAlreadyExists))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		body := httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "ALREADY_EXISTS")
		s.Equal("Member already registered", body.Error.Message)
	})

	s.Run("error: 500 hides database details", func() {
		s.mockSvc.EXPECT().RegisterMember(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(infra.WrapRepoErr("failed to create member", errs.New("pq: connection reset")), errs.ErrDatabaseOperationFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		body := httptest.AssertErrorCode(s.T(), rec, http.StatusInternalServerError, "INTERNAL")
		s.NotContains(rec.Body.String(), "connection reset")
		s.Equal("Internal server error", body.Error.Message)
	})
}

// ================================================================================
// TestCheck
// ================================================================================

func (s *MemberHandlerTestSuite) TestCheck() {
	b := builder.NewMemberBuilder()

	s.Run("success: returns the member", func() {
		s.mockSvc.EXPECT().CheckMember(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/members/"+b.ID, nil)

		var body resdto.MemberResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.MemberResponse{
			ID:               b.ID,
			Name:             b.Name,
			Surname:          b.Surname,
			RegistrationDate: b.RegisteredOn.String(),
		}, body)
	})

	s.Run("error: 404 for unknown member", func() {
		s.mockSvc.EXPECT().CheckMember(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("member not found"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/members/"+b.ID, nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})

	s.Run("error: 400 for malformed code", func() {
		s.mockSvc.EXPECT().CheckMember(gomock.Any(), "abc").
			Return(nil, errs.Mark(member.ErrInvalidCode, errs.ErrInvalidInput))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/members/abc", nil)
		body := httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_INPUT")
		s.Contains(body.Error.Message, "16 letters or digits")
	})
}

// ================================================================================
// TestExists
// ================================================================================

func (s *MemberHandlerTestSuite) TestExists() {
	b := builder.NewMemberBuilder()

	s.Run("success: registered member", func() {
		s.mockSvc.EXPECT().MemberExists(gomock.Any(), b.ID).Return(true, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/members/"+b.ID+"/exists", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"id":"`+b.ID+`","exists":true}`, rec.Body.String())
	})

	s.Run("success: unknown member is still 200", func() {
		s.mockSvc.EXPECT().MemberExists(gomock.Any(), "abc").Return(false, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/members/abc/exists", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"id":"abc","exists":false}`, rec.Body.String())
	})

	s.Run("error: 500 when the registry cannot answer", func() {
		s.mockSvc.EXPECT().MemberExists(gomock.Any(), gomock.Any()).
			Return(false, errs.Mark(errs.New("boom"), errs.ErrDatabaseOperationFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/members/"+b.ID+"/exists", nil)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *MemberHandlerTestSuite) TestList() {
	s.Run("success: returns every member", func() {
		views := []*queries.MemberView{
			builder.NewMemberBuilder().BuildView(),
			builder.NewMemberBuilder().WithID("ZZ0000000000009Z").WithName("Anna").BuildView(),
		}
		s.mockSvc.EXPECT().ListMembers(gomock.Any()).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/members", nil)

		var body []resdto.MemberResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("Anna", body[1].Name)
	})

	s.Run("success: empty registry is an empty array", func() {
		s.mockSvc.EXPECT().ListMembers(gomock.Any()).Return([]*queries.MemberView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/members", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *MemberHandlerTestSuite) TestDelete() {
	code := builder.NewMemberBuilder().BuildCode()
	url := "/api/members/" + code.String()

	s.Run("success: cascade completed", func() {
		s.mockSvc.EXPECT().RemoveMember(gomock.Any(), code.String()).
			Return(&commands.RemoveMemberResult{ID: code}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"detail":"member `+code.String()+` deleted"}`, rec.Body.String())
	})

	s.Run("success: cascade failed is a warning", func() {
		s.mockSvc.EXPECT().RemoveMember(gomock.Any(), code.String()).
			Return(&commands.RemoveMemberResult{ID: code, Warning: commands.CascadeWarning}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)

		var body resdto.DetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(commands.CascadeWarning, body.Warning)
	})

	s.Run("error: 404 for unknown member", func() {
		s.mockSvc.EXPECT().RemoveMember(gomock.Any(), code.String()).
			Return(nil, errs.Mark(errs.New("member not found"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}
