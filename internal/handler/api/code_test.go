//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"employee-discount/internal/domain/discountcode"
	"employee-discount/internal/handler/api"
	resdto "employee-discount/internal/handler/dto/response"
	"employee-discount/internal/pkg/errs"
	"employee-discount/internal/usecase/commands"
	"employee-discount/internal/usecase/queries"
	"employee-discount/tests/common/httptest"
	"employee-discount/tests/common/testutil"
	commandsmock "employee-discount/tests/mock/commands"
	queriesmock "employee-discount/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errDBDown = errors.New("connection refused")

// withUser stands in for RequireAuth.
func withUser(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id != uuid.Nil {
			c.Set("user_id", id)
		}
		c.Next()
	}
}

type CodeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCodeCommands
	mockQueries  *queriesmock.MockCodeQueries
	employeeID   uuid.UUID
}

func (s *CodeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.employeeID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCodeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCodeQueries(s.mockCtrl)
	h := api.NewCodeHandler(s.mockCommands, s.mockQueries)

	authed := s.router.Group("", withUser(s.employeeID))
	authed.POST("/codes", h.Issue)
	authed.GET("/codes/active", h.Active)
	s.router.GET("/anonymous/codes/active", h.Active)
}

func (s *CodeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCodeHandlerSuite(t *testing.T) {
	suite.Run(t, new(CodeHandlerTestSuite))
}

func (s *CodeHandlerTestSuite) TestIssue() {
	divisionID := uuid.New()
	created := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	issued := &commands.IssuedCode{
		ID:              uuid.New(),
		EmployeeID:      s.employeeID,
		DivisionID:      divisionID,
		ManualCode:      "ABC123",
		DisplayCode:     "EDC-ABC123",
		QRPayload:       "EDC1.ABC123.x.y",
		Percentage:      decimal.NewFromInt(10),
		Status:          discountcode.StatusActive,
		CreatedAt:       created,
		ExpiresAt:       created.Add(5 * time.Minute),
		SupersededCount: 1,
	}
	body := map[string]any{"division_id": divisionID.String()}

	s.Run("success: 201 with fixed-point percentage and lifetime", func() {
		s.mockCommands.EXPECT().Issue(gomock.Any(), s.employeeID, divisionID).Return(issued, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/codes", body, "")

		var res resdto.IssuedCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(issued.ID, res.ID)
		s.Equal("10.00", res.Percentage)
		s.Equal("active", res.Status)
		s.Equal("EDC-ABC123", res.DisplayCode)
		s.Equal(int64(300), res.ExpiresInSeconds)
		s.Equal(int64(1), res.SupersededCount)
	})

	s.Run("error: 400 on invalid body", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing division_id", mutate: testutil.Field("division_id", nil)},
			{name: "division_id not a uuid", mutate: testutil.Field("division_id", "electronics")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				req := testutil.DtoMap(s.T(), body, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/codes", req, "")
				httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "invalid_request")
			})
		}
	})

	s.Run("error: precondition failures map to status and kind", func() {
		cases := []struct {
			name   string
			err    error
			status int
			kind   string
		}{
			{name: "unknown employee", err: commands.ErrEmployeeNotFound, status: http.StatusNotFound, kind: "employee_not_found"},
			{name: "inactive employee", err: commands.ErrEmployeeInactive, status: http.StatusForbidden, kind: "employee_inactive"},
			{name: "unknown division", err: commands.ErrDivisionNotFound, status: http.StatusNotFound, kind: "division_not_found"},
			{name: "inactive division", err: commands.ErrDivisionInactive, status: http.StatusUnprocessableEntity, kind: "division_inactive"},
			{name: "no rule", err: commands.ErrNoDiscountRule, status: http.StatusUnprocessableEntity, kind: "no_discount_rule"},
			{name: "limit reached", err: commands.ErrLimitReached, status: http.StatusConflict, kind: "limit_reached"},
			{name: "generation exhausted", err: commands.ErrCodeGenerationExhausted, status: http.StatusServiceUnavailable, kind: "code_generation_failed"},
			{name: "marked wrapper", err: errs.Mark(errDBDown, commands.ErrLimitReached), status: http.StatusConflict, kind: "limit_reached"},
			{name: "infrastructure", err: errDBDown, status: http.StatusInternalServerError, kind: "server_error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Issue(gomock.Any(), s.employeeID, divisionID).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/codes", body, "")
				httptest.AssertErrorKind(s.T(), rec, tc.status, tc.kind)
			})
		}
	})
}

func (s *CodeHandlerTestSuite) TestActive() {
	s.Run("success: 200 with remaining seconds", func() {
		view := &queries.ActiveCodeView{
			ID:               uuid.New(),
			EmployeeID:       s.employeeID,
			DivisionID:       uuid.New(),
			ManualCode:       "ABC123",
			DisplayCode:      "EDC-ABC123",
			QRPayload:        "EDC1.ABC123.x.y",
			Percentage:       decimal.RequireFromString("12.5"),
			ExpiresAt:        time.Date(2025, 6, 15, 12, 5, 0, 0, time.UTC),
			RemainingSeconds: 180,
		}
		s.mockQueries.EXPECT().ActiveCode(gomock.Any(), s.employeeID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/codes/active", nil, "")

		var res resdto.ActiveCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(view.ID, res.ID)
		s.Equal("12.50", res.Percentage)
		s.Equal(int64(180), res.RemainingSeconds)
	})

	s.Run("error: 404 when there is no active code", func() {
		s.mockQueries.EXPECT().ActiveCode(gomock.Any(), s.employeeID).
			Return(nil, errs.Mark(errDBDown, queries.ErrNoActiveCode)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/codes/active", nil, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, "no_active_code")
	})

	s.Run("error: 500 on infrastructure failure", func() {
		s.mockQueries.EXPECT().ActiveCode(gomock.Any(), s.employeeID).Return(nil, errDBDown).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/codes/active", nil, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusInternalServerError, "server_error")
	})

	s.Run("error: 401 without an authenticated user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/anonymous/codes/active", nil, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusUnauthorized, "unauthorized")
	})
}
