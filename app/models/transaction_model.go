package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a transaction. Pending is the only
// initial state; confirmed and rejected are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

// ParseStatus maps a wire token to a Status. Unknown tokens are rejected
// so no transaction can ever carry a status outside the defined set.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusRejected:
		return Status(s), true
	}
	return "", false
}

// Terminal reports whether no further status transition is permitted.
func (s Status) Terminal() bool {
	return s == StatusConfirmed || s == StatusRejected
}

type Transaction struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	PayerName string          `json:"payer_name" db:"payer_name"`
	BankID    string          `json:"bank_id" db:"bank_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Status    Status          `json:"status" db:"status"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

type CreateTransactionRequest struct {
	PayerName string          `json:"payer_name" validate:"required"`
	BankID    string          `json:"bank_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
