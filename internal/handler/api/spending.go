package api

import (
	"net/http"

	resdto "employee-discount/internal/handler/dto/response"
	"employee-discount/internal/handler/httperr"
	"employee-discount/internal/handler/middleware"
	"employee-discount/internal/pkg/errs"
	"employee-discount/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const kindInvalidMonth = "invalid_month"

type SpendingHandler struct {
	q queries.SpendingQueries
}

func NewSpendingHandler(q queries.SpendingQueries) *SpendingHandler {
	return &SpendingHandler{q: q}
}

// @Summary My spending summary
// @Description Limit, spent, remaining and percentage used for the current month
// @Tags spending
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SpendingSummaryResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/employees/me/spending-summary [get]
func (h *SpendingHandler) Me(c *gin.Context) {
	employeeID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithKind(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", kindUnauthorized)
		return
	}
	h.renderSummary(c, employeeID)
}

// @Summary Employee spending summary
// @Description Spending summary for any employee (admin only)
// @Tags spending
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} resdto.SpendingSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/employees/{id}/spending-summary [get]
func (h *SpendingHandler) ByID(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithKind(c, http.StatusBadRequest, err, "Invalid id", kindInvalidRequest)
		return
	}
	h.renderSummary(c, employeeID)
}

func (h *SpendingHandler) renderSummary(c *gin.Context, employeeID uuid.UUID) {
	view, err := h.q.Summary(c.Request.Context(), employeeID)
	if err != nil {
		abortSpendingError(c, err)
		return
	}
	res, err := resdto.FromSpendingSummaryView(view)
	if err != nil {
		httperr.AbortWithKind(c, http.StatusInternalServerError, err, "Internal server error", httperr.KindServerError)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary My transactions
// @Description Ledger rows for a calendar month, newest first
// @Tags spending
// @Produce json
// @Security BearerAuth
// @Param month query string false "Month as YYYY-MM, defaults to the current month"
// @Success 200 {object} resdto.TransactionListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/employees/me/transactions [get]
func (h *SpendingHandler) Transactions(c *gin.Context) {
	employeeID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithKind(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", kindUnauthorized)
		return
	}

	view, err := h.q.Transactions(c.Request.Context(), employeeID, c.Query("month"))
	if err != nil {
		abortSpendingError(c, err)
		return
	}
	res, err := resdto.FromTransactionListView(view)
	if err != nil {
		httperr.AbortWithKind(c, http.StatusInternalServerError, err, "Internal server error", httperr.KindServerError)
		return
	}
	c.JSON(http.StatusOK, res)
}

func abortSpendingError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrEmployeeNotFound):
		httperr.AbortWithKind(c, http.StatusNotFound, err, "Employee not found", kindEmployeeNotFound)
	case errs.Is(err, queries.ErrInvalidMonth):
		httperr.AbortWithKind(c, http.StatusBadRequest, err, "month must be formatted as YYYY-MM", kindInvalidMonth)
	default:
		httperr.AbortWithKind(c, http.StatusInternalServerError, err, "Internal server error", httperr.KindServerError)
	}
}
