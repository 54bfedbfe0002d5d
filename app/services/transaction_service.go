package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/onepayment/onepay-backend/app/models"
	"github.com/onepayment/onepay-backend/app/store"
)

// TransactionService holds the business rules over the transaction
// store: which status transitions are legal and when a record may be
// removed.
type TransactionService struct {
	store *store.TransactionStore
}

func NewTransactionService(s *store.TransactionStore) *TransactionService {
	return &TransactionService{store: s}
}

func (s *TransactionService) Create(payerName, bankID string, amount decimal.Decimal) (models.Transaction, error) {
	return s.store.Create(payerName, bankID, amount)
}

func (s *TransactionService) List() ([]models.Transaction, error) {
	return s.store.List()
}

// UpdateStatus applies the state machine: pending may move to confirmed
// or rejected, terminal states admit no further change, and re-applying
// the current status is a no-op that succeeds. The check and the write
// happen atomically, so concurrent updates of one record resolve to one
// winner and the loser is evaluated against the post-update state.
func (s *TransactionService) UpdateStatus(id uuid.UUID, next models.Status) (models.Transaction, error) {
	return s.store.Mutate(id, func(tx *models.Transaction) (bool, error) {
		if tx.Status == next {
			return false, nil
		}
		if tx.Status.Terminal() {
			return false, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, tx.Status, next)
		}
		tx.Status = next
		return true, nil
	})
}

func (s *TransactionService) Delete(id uuid.UUID) error {
	return s.store.Delete(id)
}
