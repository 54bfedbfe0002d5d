package queries

import (
	"sync"

	"github.com/google/uuid"

	"github.com/onepayment/onepay-backend/app/models"
)

// MemoryStore keeps transactions in process memory. It backs tests and
// local runs without a database, behind the same record-store contract
// as TransactionQueries.
type MemoryStore struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]models.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[uuid.UUID]models.Transaction)}
}

func (m *MemoryStore) Save(t models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[t.ID] = t
	return nil
}

func (m *MemoryStore) Find(id uuid.UUID) (models.Transaction, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.rows[id]
	return t, ok, nil
}

func (m *MemoryStore) FindAll() ([]models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	txs := make([]models.Transaction, 0, len(m.rows))
	for _, t := range m.rows {
		txs = append(txs, t)
	}
	return txs, nil
}

func (m *MemoryStore) Remove(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}
