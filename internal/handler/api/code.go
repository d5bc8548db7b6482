package api

import (
	"errors"
	"net/http"

	reqdto "employee-discount/internal/handler/dto/request"
	resdto "employee-discount/internal/handler/dto/response"
	"employee-discount/internal/handler/httperr"
	"employee-discount/internal/handler/middleware"
	"employee-discount/internal/pkg/errs"
	"employee-discount/internal/usecase/commands"
	"employee-discount/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingUser = errors.New("authenticated user missing from context")

const (
	kindInvalidRequest   = "invalid_request"
	kindUnauthorized     = "unauthorized"
	kindEmployeeNotFound = "employee_not_found"
	kindEmployeeInactive = "employee_inactive"
	kindDivisionNotFound = "division_not_found"
	kindDivisionInactive = "division_inactive"
	kindNoDiscountRule   = "no_discount_rule"
	kindLimitReached     = "limit_reached"
	kindGenerationFailed = "code_generation_failed"
	kindNoActiveCode     = "no_active_code"
)

type CodeHandler struct {
	cmds commands.CodeCommands
	q    queries.CodeQueries
}

func NewCodeHandler(cmds commands.CodeCommands, q queries.CodeQueries) *CodeHandler {
	return &CodeHandler{cmds: cmds, q: q}
}

// @Summary Issue discount code
// @Description Issue a single-use discount code for the caller; any active code is expired first
// @Tags codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueCodeRequest true "Issue code request"
// @Success 201 {object} resdto.IssuedCodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/codes [post]
func (h *CodeHandler) Issue(c *gin.Context) {
	employeeID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithKind(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", kindUnauthorized)
		return
	}
	var req reqdto.IssueCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithKind(c, http.StatusBadRequest, err, "Invalid request", kindInvalidRequest)
		return
	}

	issued, err := h.cmds.Issue(c.Request.Context(), employeeID, req.DivisionID)
	if err != nil {
		abortIssueError(c, err)
		return
	}
	res, err := resdto.FromIssuedCode(issued)
	if err != nil {
		httperr.AbortWithKind(c, http.StatusInternalServerError, err, "Internal server error", httperr.KindServerError)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func abortIssueError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrEmployeeNotFound):
		httperr.AbortWithKind(c, http.StatusNotFound, err, "Employee not found", kindEmployeeNotFound)
	case errs.Is(err, commands.ErrEmployeeInactive):
		httperr.AbortWithKind(c, http.StatusForbidden, err, "Employee is inactive", kindEmployeeInactive)
	case errs.Is(err, commands.ErrDivisionNotFound):
		httperr.AbortWithKind(c, http.StatusNotFound, err, "Division not found", kindDivisionNotFound)
	case errs.Is(err, commands.ErrDivisionInactive):
		httperr.AbortWithKind(c, http.StatusUnprocessableEntity, err, "Division is inactive", kindDivisionInactive)
	case errs.Is(err, commands.ErrNoDiscountRule):
		httperr.AbortWithKind(c, http.StatusUnprocessableEntity, err, "Division has no active discount rule", kindNoDiscountRule)
	case errs.Is(err, commands.ErrLimitReached):
		httperr.AbortWithKind(c, http.StatusConflict, err, "Monthly spending limit reached", kindLimitReached)
	case errs.Is(err, commands.ErrCodeGenerationExhausted):
		httperr.AbortWithKind(c, http.StatusServiceUnavailable, err, "Could not generate a code, try again", kindGenerationFailed)
	default:
		httperr.AbortWithKind(c, http.StatusInternalServerError, err, "Internal server error", httperr.KindServerError)
	}
}

// @Summary Active discount code
// @Description Show the caller's current active code with its remaining lifetime
// @Tags codes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ActiveCodeResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/codes/active [get]
func (h *CodeHandler) Active(c *gin.Context) {
	employeeID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithKind(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", kindUnauthorized)
		return
	}

	view, err := h.q.ActiveCode(c.Request.Context(), employeeID)
	if err != nil {
		if errs.Is(err, queries.ErrNoActiveCode) {
			httperr.AbortWithKind(c, http.StatusNotFound, err, "No active discount code", kindNoActiveCode)
			return
		}
		httperr.AbortWithKind(c, http.StatusInternalServerError, err, "Internal server error", httperr.KindServerError)
		return
	}
	res, err := resdto.FromActiveCodeView(view)
	if err != nil {
		httperr.AbortWithKind(c, http.StatusInternalServerError, err, "Internal server error", httperr.KindServerError)
		return
	}
	c.JSON(http.StatusOK, res)
}
