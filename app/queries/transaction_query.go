package queries

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/onepayment/onepay-backend/app/models"
)

// TransactionQueries is the Postgres-backed record store.
type TransactionQueries struct {
	DB *sql.DB
}

func (q *TransactionQueries) Save(t models.Transaction) error {
	query := `INSERT INTO transactions (id, payer_name, bank_id, amount, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status`
	_, err := q.DB.Exec(query, t.ID, t.PayerName, t.BankID, t.Amount, string(t.Status), t.CreatedAt)
	if err != nil {
		return fmt.Errorf("unable to save transaction: %w", err)
	}
	return nil
}

func (q *TransactionQueries) Find(id uuid.UUID) (models.Transaction, bool, error) {
	t := models.Transaction{}
	query := `SELECT id, payer_name, bank_id, amount, status, created_at FROM transactions WHERE id = $1`
	err := q.DB.QueryRow(query, id).Scan(&t.ID, &t.PayerName, &t.BankID, &t.Amount, &t.Status, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Transaction{}, false, nil
	}
	if err != nil {
		return models.Transaction{}, false, fmt.Errorf("unable to get transaction: %w", err)
	}
	return t, true, nil
}

func (q *TransactionQueries) FindAll() ([]models.Transaction, error) {
	query := `SELECT id, payer_name, bank_id, amount, status, created_at FROM transactions ORDER BY created_at DESC`
	rows, err := q.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("unable to list transactions: %w", err)
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		t := models.Transaction{}
		if err := rows.Scan(&t.ID, &t.PayerName, &t.BankID, &t.Amount, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("unable to scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unable to list transactions: %w", err)
	}
	return txs, nil
}

func (q *TransactionQueries) Remove(id uuid.UUID) error {
	_, err := q.DB.Exec(`DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unable to delete transaction: %w", err)
	}
	return nil
}
