package response

import (
	"time"

	"employee-discount/internal/usecase/commands"
	"employee-discount/internal/usecase/queries"

	"github.com/google/uuid"
)

type IssuedCodeResponse struct {
	ID               uuid.UUID `json:"id"`
	EmployeeID       uuid.UUID `json:"employee_id"`
	DivisionID       uuid.UUID `json:"division_id"`
	ManualCode       string    `json:"manual_code"`
	DisplayCode      string    `json:"display_code"`
	QRPayload        string    `json:"qr_payload"`
	Percentage       string    `json:"discount_percentage"`
	Status           string    `json:"status"`
	ExpiresAt        time.Time `json:"expires_at"`
	CreatedAt        time.Time `json:"created_at"`
	ExpiresInSeconds int64     `json:"expires_in_seconds"`
	SupersededCount  int64     `json:"superseded_count"`
}

func FromIssuedCode(c *commands.IssuedCode) (*IssuedCodeResponse, error) {
	res := &IssuedCodeResponse{}
	if err := copyInto(res, c); err != nil {
		return nil, err
	}
	res.ExpiresInSeconds = int64(c.ExpiresAt.Sub(c.CreatedAt) / time.Second)
	return res, nil
}

type ActiveCodeResponse struct {
	ID               uuid.UUID `json:"id"`
	DivisionID       uuid.UUID `json:"division_id"`
	ManualCode       string    `json:"manual_code"`
	DisplayCode      string    `json:"display_code"`
	QRPayload        string    `json:"qr_payload"`
	Percentage       string    `json:"discount_percentage"`
	ExpiresAt        time.Time `json:"expires_at"`
	RemainingSeconds int64     `json:"remaining_seconds"`
}

func FromActiveCodeView(v *queries.ActiveCodeView) (*ActiveCodeResponse, error) {
	res := &ActiveCodeResponse{}
	if err := copyInto(res, v); err != nil {
		return nil, err
	}
	return res, nil
}
