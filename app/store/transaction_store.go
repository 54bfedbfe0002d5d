package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/onepayment/onepay-backend/app/models"
)

var (
	ErrNotFound      = errors.New("transaction not found")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidBankID = errors.New("invalid bank id")
)

// maxBankIDLen is the widest bank id the payload encoder can carry: the
// merchant account field holds at most 99 bytes, of which the application
// id sub-field takes 20 and the bank id sub-field's tag and length take 4.
const maxBankIDLen = 75

// RecordStore is the durable storage collaborator behind the
// TransactionStore. Find reports absence through its bool, not an error.
type RecordStore interface {
	Save(tx models.Transaction) error
	Find(id uuid.UUID) (models.Transaction, bool, error)
	FindAll() ([]models.Transaction, error)
	Remove(id uuid.UUID) error
}

// TransactionStore owns the canonical transaction set. All mutations go
// through one lock so a read-modify-write is never interleaved with
// another mutation of the same record, and reads always observe a
// consistent snapshot.
type TransactionStore struct {
	mu      sync.RWMutex
	records RecordStore
	now     func() time.Time
}

func New(records RecordStore) *TransactionStore {
	return &TransactionStore{records: records, now: time.Now}
}

// WithClock overrides the creation timestamp source. Used by tests.
func (s *TransactionStore) WithClock(now func() time.Time) {
	s.now = now
}

// Create validates the record invariants and persists a new pending
// transaction. Amounts carrying more than two fractional digits are
// rejected rather than rounded.
func (s *TransactionStore) Create(payerName, bankID string, amount decimal.Decimal) (models.Transaction, error) {
	if bankID == "" || len(bankID) > maxBankIDLen {
		return models.Transaction{}, ErrInvalidBankID
	}
	if amount.IsNegative() || !amount.Equal(amount.Truncate(2)) {
		return models.Transaction{}, ErrInvalidAmount
	}

	tx := models.Transaction{
		ID:        uuid.New(),
		PayerName: payerName,
		BankID:    bankID,
		Amount:    amount,
		Status:    models.StatusPending,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.records.Save(tx); err != nil {
		return models.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}
	return tx, nil
}

func (s *TransactionStore) Get(id uuid.UUID) (models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok, err := s.records.Find(id)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("find transaction: %w", err)
	}
	if !ok {
		return models.Transaction{}, ErrNotFound
	}
	return tx, nil
}

// List returns all transactions ordered most recent first. Callers rely
// on the ordering being stable between calls.
func (s *TransactionStore) List() ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txs, err := s.records.FindAll()
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})
	return txs, nil
}

// Mutate applies fn to the current state of the record under the write
// lock and persists the result when fn reports a change. fn returning an
// error vetoes the mutation and leaves the record untouched.
func (s *TransactionStore) Mutate(id uuid.UUID, fn func(tx *models.Transaction) (changed bool, err error)) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok, err := s.records.Find(id)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("find transaction: %w", err)
	}
	if !ok {
		return models.Transaction{}, ErrNotFound
	}

	changed, err := fn(&tx)
	if err != nil {
		return models.Transaction{}, err
	}
	if changed {
		if err := s.records.Save(tx); err != nil {
			return models.Transaction{}, fmt.Errorf("save transaction: %w", err)
		}
	}
	return tx, nil
}

func (s *TransactionStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok, err := s.records.Find(id)
	if err != nil {
		return fmt.Errorf("find transaction: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	if err := s.records.Remove(id); err != nil {
		return fmt.Errorf("remove transaction: %w", err)
	}
	return nil
}
