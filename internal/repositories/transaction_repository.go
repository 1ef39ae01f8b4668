package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tailor-backend/internal/apperrors"
	"tailor-backend/internal/models"
)

type TransactionRepository struct {
	DB DB
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *TransactionRepository) WithTx(tx pgx.Tx) TransactionStore {
	return &TransactionRepository{DB: tx}
}

const transactionColumns = `id, description, amount, date, type, category, notes, COALESCE(source_type, ''), source_id, created_at, updated_at`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(&t.ID, &t.Description, &t.Amount, &t.Date, &t.Type,
		&t.Category, &t.Notes, &t.SourceType, &t.SourceID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Transaction")
		}
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepository) Create(ctx context.Context, t *models.Transaction) error {
	var sourceType *string
	if t.SourceType != "" {
		sourceType = &t.SourceType
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO transactions(description, amount, date, type, category, notes, source_type, source_id)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at, updated_at`,
		t.Description, t.Amount, t.Date, t.Type, t.Category, t.Notes, sourceType, t.SourceID,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TransactionRepository) Get(ctx context.Context, id int) (*models.Transaction, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id=$1`, id)
	return scanTransaction(row)
}

// GetBySource returns the transaction derived from the given source
// record, or nil when none exists.
func (r *TransactionRepository) GetBySource(ctx context.Context, sourceType string, sourceID int) (*models.Transaction, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE source_type=$1 AND source_id=$2`,
		sourceType, sourceID)
	t, err := scanTransaction(row)
	if apperrors.IsNotFound(err) {
		return nil, nil
	}
	return t, err
}

// List returns all transactions sorted by date, newest first.
func (r *TransactionRepository) List(ctx context.Context) ([]*models.Transaction, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txns := []*models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (r *TransactionRepository) Update(ctx context.Context, t *models.Transaction) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE transactions
         SET description=$1, amount=$2, date=$3, type=$4, category=$5, notes=$6, updated_at=CURRENT_TIMESTAMP
         WHERE id=$7`,
		t.Description, t.Amount, t.Date, t.Type, t.Category, t.Notes, t.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("Transaction")
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM transactions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("Transaction")
	}
	return nil
}

// DeleteBySource removes the transaction derived from the given source
// record. Deleting an absent transaction is a no-op.
func (r *TransactionRepository) DeleteBySource(ctx context.Context, sourceType string, sourceID int) error {
	_, err := r.DB.Exec(ctx,
		`DELETE FROM transactions WHERE source_type=$1 AND source_id=$2`,
		sourceType, sourceID)
	return err
}
