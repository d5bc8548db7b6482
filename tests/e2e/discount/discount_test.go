//go:build e2e

package discount

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"employee-discount/internal/domain/staff"
	"employee-discount/internal/handler/dto/response"
	"employee-discount/internal/handler/middleware"
	"employee-discount/tests/common/authtest"
	"employee-discount/tests/common/dbtest"
	"employee-discount/tests/common/httptest"
	"employee-discount/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type DiscountE2ETestSuite struct {
	e2e.SharedSuite
	jwt       *authtest.JWTHelper
	cashierID uuid.UUID
}

func TestDiscountE2ETestSuite(t *testing.T) {
	suite.Run(t, new(DiscountE2ETestSuite))
}

func (s *DiscountE2ETestSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
	s.cashierID = uuid.New()
}

type fixture struct {
	employeeID    uuid.UUID
	divisionID    uuid.UUID
	employeeToken string
	cashierToken  string
}

func (s *DiscountE2ETestSuite) newFixture(limit *decimal.Decimal) fixture {
	t := s.T()
	pct := decimal.NewFromInt(10)
	divisionID := dbtest.CreateDivision(t, s.DB, "Fashion", &pct)
	employeeID := dbtest.CreateEmployee(t, s.DB, uuid.NewString()+"@example.com", limit)
	return fixture{
		employeeID:    employeeID,
		divisionID:    divisionID,
		employeeToken: s.jwt.GenerateToken(t, employeeID, staff.RoleEmployee),
		cashierToken:  s.jwt.GenerateToken(t, s.cashierID, staff.RoleCashier),
	}
}

func (s *DiscountE2ETestSuite) issue(f fixture) response.IssuedCodeResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/codes",
		map[string]any{"division_id": f.divisionID}, f.employeeToken)

	var issued response.IssuedCodeResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &issued)
	return issued
}

func (s *DiscountE2ETestSuite) validate(f fixture, code string, amount string) response.ValidationResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/validations",
		map[string]any{"code": code, "purchase_amount": amount}, f.cashierToken)

	var result response.ValidationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
	return result
}

func (s *DiscountE2ETestSuite) codeStatus(id uuid.UUID) string {
	var status string
	err := s.DB.QueryRow(context.Background(), "SELECT status FROM discount_codes WHERE id = $1", id).Scan(&status)
	require.NoError(s.T(), err)
	return status
}

func (s *DiscountE2ETestSuite) TestIssueAndRedeem() {
	s.Run("redeem by manual code records the transaction", func() {
		f := s.newFixture(nil)
		issued := s.issue(f)

		assert.Equal(s.T(), "active", issued.Status)
		assert.Equal(s.T(), "10.00", issued.Percentage)
		assert.Len(s.T(), issued.ManualCode, 6)
		assert.EqualValues(s.T(), 300, issued.ExpiresInSeconds)

		result := s.validate(f, issued.ManualCode, "100.00")

		require.True(s.T(), result.Success, result.Message)
		require.NotNil(s.T(), result.Receipt)
		assert.Equal(s.T(), "100.00", result.Receipt.OriginalAmount)
		assert.Equal(s.T(), "10.00", result.Receipt.DiscountAmount)
		assert.Equal(s.T(), "90.00", result.Receipt.FinalAmount)
		assert.Equal(s.T(), "410.00", result.Receipt.RemainingLimit)
		assert.Equal(s.T(), "Fashion", result.Receipt.DivisionName)
		assert.Equal(s.T(), 1, dbtest.CountTransactions(s.T(), s.DB, f.employeeID))
		assert.Equal(s.T(), "used", s.codeStatus(issued.ID))
	})

	s.Run("redeem by qr payload", func() {
		f := s.newFixture(nil)
		issued := s.issue(f)

		result := s.validate(f, issued.QRPayload, "20")

		require.True(s.T(), result.Success, result.Message)
		assert.Equal(s.T(), "18.00", result.Receipt.FinalAmount)
	})

	s.Run("display code with separator and lower case is accepted", func() {
		f := s.newFixture(nil)
		issued := s.issue(f)

		result := s.validate(f, strings.ToLower(issued.DisplayCode), "5.00")

		require.True(s.T(), result.Success, result.Message)
	})

	s.Run("reissue supersedes the previous code", func() {
		f := s.newFixture(nil)
		first := s.issue(f)
		second := s.issue(f)

		assert.EqualValues(s.T(), 1, second.SupersededCount)
		assert.Equal(s.T(), "expired", s.codeStatus(first.ID))
		assert.Equal(s.T(), 1, dbtest.CountActiveCodes(s.T(), s.DB, f.employeeID))

		result := s.validate(f, first.ManualCode, "10.00")
		assert.False(s.T(), result.Success)
		assert.Equal(s.T(), "expired", result.Error)
	})
}

func (s *DiscountE2ETestSuite) TestRedeemTwice() {
	f := s.newFixture(nil)
	issued := s.issue(f)
	require.True(s.T(), s.validate(f, issued.ManualCode, "100.00").Success)

	result := s.validate(f, issued.ManualCode, "1.00")

	assert.False(s.T(), result.Success)
	assert.Equal(s.T(), "already_used", result.Error)
	assert.Equal(s.T(), 1, dbtest.CountTransactions(s.T(), s.DB, f.employeeID))
}

func (s *DiscountE2ETestSuite) TestOverLimit() {
	f := s.newFixture(nil)
	dbtest.CreateLedgerEntry(s.T(), s.DB, f.employeeID, f.divisionID,
		decimal.NewFromInt(500), decimal.NewFromInt(10), time.Now())
	issued := s.issue(f)

	result := s.validate(f, issued.ManualCode, "60.00")

	assert.False(s.T(), result.Success)
	assert.Equal(s.T(), "over_limit", result.Error)
	require.NotNil(s.T(), result.Details)
	assert.Equal(s.T(), response.LimitDetailsResponse{
		Limit:     "500.00",
		Spent:     "450.00",
		Remaining: "50.00",
		Requested: "60.00",
	}, *result.Details)
	assert.Equal(s.T(), "active", s.codeStatus(issued.ID))
	assert.Equal(s.T(), 1, dbtest.CountTransactions(s.T(), s.DB, f.employeeID))
}

func (s *DiscountE2ETestSuite) TestExpired() {
	f := s.newFixture(nil)
	issued := s.issue(f)
	_, err := s.DB.Exec(context.Background(),
		"UPDATE discount_codes SET expires_at = now() - interval '1 second' WHERE id = $1", issued.ID)
	require.NoError(s.T(), err)

	result := s.validate(f, issued.ManualCode, "10.00")

	assert.False(s.T(), result.Success)
	assert.Equal(s.T(), "expired", result.Error)
	assert.Equal(s.T(), "expired", s.codeStatus(issued.ID))
}

func (s *DiscountE2ETestSuite) TestConcurrentRedeem() {
	f := s.newFixture(nil)
	issued := s.issue(f)

	amounts := []string{"10.00", "20.00"}
	results := make([]response.ValidationResponse, len(amounts))
	var wg sync.WaitGroup
	for i, amount := range amounts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.validate(f, issued.ManualCode, amount)
		}()
	}
	wg.Wait()

	successes, alreadyUsed := 0, 0
	for _, r := range results {
		switch {
		case r.Success:
			successes++
		case r.Error == "already_used":
			alreadyUsed++
		}
	}
	assert.Equal(s.T(), 1, successes)
	assert.Equal(s.T(), 1, alreadyUsed)
	assert.Equal(s.T(), 1, dbtest.CountTransactions(s.T(), s.DB, f.employeeID))
}

func (s *DiscountE2ETestSuite) TestIdempotentReplay() {
	f := s.newFixture(nil)
	issued := s.issue(f)
	headers := map[string]string{middleware.HeaderIdempotencyKey: uuid.NewString()}
	body := map[string]any{"code": issued.ManualCode, "purchase_amount": "40.00"}

	first := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/validations", body, f.cashierToken, headers)
	second := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/validations", body, f.cashierToken, headers)

	require.Equal(s.T(), http.StatusOK, first.Code, first.Body.String())
	require.Equal(s.T(), http.StatusOK, second.Code, second.Body.String())
	assert.JSONEq(s.T(), first.Body.String(), second.Body.String())
	httptest.AssertHeaders(s.T(), second, map[string]string{middleware.HeaderIdempotentReplayed: "true"})
	assert.Equal(s.T(), 1, dbtest.CountTransactions(s.T(), s.DB, f.employeeID))

	body["purchase_amount"] = "41.00"
	reused := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/validations", body, f.cashierToken, headers)
	httptest.AssertErrorKind(s.T(), reused, http.StatusUnprocessableEntity, "idempotency_key_reused")
}

func (s *DiscountE2ETestSuite) TestIssueErrors() {
	s.Run("inactive employee", func() {
		f := s.newFixture(nil)
		dbtest.DeactivateEmployee(s.T(), s.DB, f.employeeID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/codes",
			map[string]any{"division_id": f.divisionID}, f.employeeToken)
		httptest.AssertErrorKind(s.T(), w, http.StatusForbidden, "employee_inactive")
	})

	s.Run("division without rule", func() {
		f := s.newFixture(nil)
		divisionID := dbtest.CreateDivision(s.T(), s.DB, "No Rule", nil)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/codes",
			map[string]any{"division_id": divisionID}, f.employeeToken)
		httptest.AssertErrorKind(s.T(), w, http.StatusUnprocessableEntity, "no_discount_rule")
	})

	s.Run("limit already reached", func() {
		limit := decimal.NewFromInt(90)
		f := s.newFixture(&limit)
		dbtest.CreateLedgerEntry(s.T(), s.DB, f.employeeID, f.divisionID,
			decimal.NewFromInt(100), decimal.NewFromInt(10), time.Now())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/codes",
			map[string]any{"division_id": f.divisionID}, f.employeeToken)
		httptest.AssertErrorKind(s.T(), w, http.StatusConflict, "limit_reached")
	})

	s.Run("cashier role cannot issue", func() {
		f := s.newFixture(nil)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/codes",
			map[string]any{"division_id": f.divisionID}, f.cashierToken)
		assert.Equal(s.T(), http.StatusForbidden, w.Code)
	})
}

func (s *DiscountE2ETestSuite) TestSpendingSummaryAndTransactions() {
	f := s.newFixture(nil)
	issued := s.issue(f)
	require.True(s.T(), s.validate(f, issued.ManualCode, "100.00").Success)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/employees/me/spending-summary", nil, f.employeeToken)
	var summary response.SpendingSummaryResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &summary)
	assert.Equal(s.T(), "500.00", summary.MonthlyLimit)
	assert.Equal(s.T(), "90.00", summary.CurrentSpent)
	assert.Equal(s.T(), "410.00", summary.Remaining)
	assert.Equal(s.T(), "18.00", summary.PercentageUsed)
	assert.EqualValues(s.T(), 1, summary.TransactionCount)

	active := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/codes/active", nil, f.employeeToken)
	httptest.AssertErrorKind(s.T(), active, http.StatusNotFound, "no_active_code")

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/employees/me/transactions", nil, f.employeeToken)
	var list response.TransactionListResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
	require.Len(s.T(), list.Transactions, 1)
	assert.Equal(s.T(), issued.ID, list.Transactions[0].DiscountCodeID)
	assert.Equal(s.T(), "90.00", list.Transactions[0].FinalAmount)

	adminToken := s.jwt.GenerateToken(s.T(), uuid.New(), staff.RoleAdmin)
	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/employees/"+f.employeeID.String()+"/spending-summary", nil, adminToken)
	var byAdmin response.SpendingSummaryResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &byAdmin)
	assert.Equal(s.T(), summary.CurrentSpent, byAdmin.CurrentSpent)
}

func (s *DiscountE2ETestSuite) TestHealth() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil, "")
	assert.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
}
