package request

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrInvalidPaymentAmount = errors.New("invalid payment amount")

type PaymentRequest struct {
	Amount float64    `json:"amount"`
	Date   *time.Time `json:"date"`
	Method string     `json:"method"`
	Notes  string     `json:"notes"`
}

// ResolveAmount validates the amount before it reaches the usecase, mirroring
// the ledger's own check so malformed requests fail at the edge.
func (r PaymentRequest) ResolveAmount() (float64, error) {
	if r.Amount <= 0 {
		return 0, ErrInvalidPaymentAmount
	}
	return r.Amount, nil
}

func (r PaymentRequest) ResolveDate() time.Time {
	if r.Date != nil {
		return r.Date.UTC()
	}
	return time.Time{}
}

// GatewayPaymentRequest wraps the raw provider payload; the charged amount is
// always taken from the job record, never from this payload.
type GatewayPaymentRequest struct {
	Payload json.RawMessage `json:"payload"`
}
