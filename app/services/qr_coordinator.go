package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/onepayment/onepay-backend/app/models"
	"github.com/onepayment/onepay-backend/app/store"
	"github.com/onepayment/onepay-backend/pkg/promptpay"
)

// QrCoordinator serializes payload generation per transaction id:
// concurrent requests for the same id join a single in-flight encode
// and receive the identical payload string.
type QrCoordinator struct {
	store  *store.TransactionStore
	flight singleflight.Group
	encode func(bankID string, amount decimal.Decimal) (string, error)
	now    func() time.Time
}

func NewQrCoordinator(s *store.TransactionStore) *QrCoordinator {
	return &QrCoordinator{
		store:  s,
		encode: promptpay.Encode,
		now:    time.Now,
	}
}

// WithEncoder overrides the payload encoder. Used by tests.
func (c *QrCoordinator) WithEncoder(encode func(string, decimal.Decimal) (string, error)) {
	c.encode = encode
}

// RequestQr generates the payload for the transaction's bank id and
// amount as they were when the request began. After the encode it
// re-checks that the transaction still exists: a payload is never
// attributed to a record deleted mid-flight.
func (c *QrCoordinator) RequestQr(id uuid.UUID) (models.QrPayload, error) {
	tx, err := c.store.Get(id)
	if err != nil {
		return models.QrPayload{}, err
	}

	v, err, _ := c.flight.Do(id.String(), func() (interface{}, error) {
		return c.encode(tx.BankID, tx.Amount)
	})
	if err != nil {
		return models.QrPayload{}, err
	}

	if _, err := c.store.Get(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.QrPayload{}, ErrTransactionGone
		}
		return models.QrPayload{}, err
	}

	return models.QrPayload{
		RawPayload:       v.(string),
		ForTransactionID: id,
		GeneratedAt:      c.now().UTC(),
	}, nil
}
