package api

import (
	"net/http"

	reqdto "employee-discount/internal/handler/dto/request"
	resdto "employee-discount/internal/handler/dto/response"
	"employee-discount/internal/handler/httperr"
	"employee-discount/internal/handler/middleware"
	"employee-discount/internal/pkg/errs"
	"employee-discount/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	kindInvalidIdempotencyKey = "invalid_idempotency_key"
	kindIdempotencyKeyReused  = "idempotency_key_reused"
	kindIdempotencyInProgress = "idempotency_in_progress"
)

type ValidationHandler struct {
	cmds commands.ValidationCommands
}

func NewValidationHandler(cmds commands.ValidationCommands) *ValidationHandler {
	return &ValidationHandler{cmds: cmds}
}

// @Summary Validate discount code
// @Description Redeem a scanned or typed code against a purchase. Every business outcome is a 200 with success=false and an error kind.
// @Tags validations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID scoping a retry-safe submission"
// @Param request body reqdto.ValidateCodeRequest true "Validate code request"
// @Success 200 {object} resdto.ValidationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/validations [post]
func (h *ValidationHandler) Validate(c *gin.Context) {
	cashierID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithKind(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", kindUnauthorized)
		return
	}

	var key *uuid.UUID
	if raw := c.GetHeader(middleware.HeaderIdempotencyKey); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithKind(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", kindInvalidIdempotencyKey)
			return
		}
		key = &parsed
	}

	var req reqdto.ValidateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithKind(c, http.StatusBadRequest, err, "Invalid request", kindInvalidRequest)
		return
	}

	result, err := h.cmds.Validate(c.Request.Context(), req.ToCommand(cashierID, key))
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrIdempotencyKeyReused):
			httperr.AbortWithKind(c, http.StatusUnprocessableEntity, err, "Idempotency-Key was used for a different request", kindIdempotencyKeyReused)
		case errs.Is(err, commands.ErrIdempotencyInProgress):
			httperr.AbortWithKind(c, http.StatusConflict, err, "A request with this Idempotency-Key is still processing", kindIdempotencyInProgress)
		default:
			httperr.AbortWithKind(c, http.StatusInternalServerError, err, "Internal server error", httperr.KindServerError)
		}
		return
	}

	res, err := resdto.FromValidationResult(result)
	if err != nil {
		httperr.AbortWithKind(c, http.StatusInternalServerError, err, "Internal server error", httperr.KindServerError)
		return
	}
	if result.Replayed {
		c.Header(middleware.HeaderIdempotentReplayed, "true")
	}
	c.JSON(http.StatusOK, res)
}
