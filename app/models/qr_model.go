package models

import (
	"time"

	"github.com/google/uuid"
)

// QrPayload is the encoded payment string produced for one transaction.
// It is derived data: regenerating it from the owning transaction's
// bank id and amount yields a byte-identical string, so it is never
// persisted.
type QrPayload struct {
	RawPayload       string    `json:"raw_payload"`
	ForTransactionID uuid.UUID `json:"for_transaction_id"`
	GeneratedAt      time.Time `json:"generated_at"`
}
