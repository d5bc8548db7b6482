package request

import "github.com/google/uuid"

type IssueCodeRequest struct {
	DivisionID uuid.UUID `json:"division_id" binding:"required"`
}
