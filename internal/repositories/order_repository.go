package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tailor-backend/internal/apperrors"
	"tailor-backend/internal/models"
)

type OrderRepository struct {
	DB DB
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *OrderRepository) WithTx(tx pgx.Tx) OrderStore {
	return &OrderRepository{DB: tx}
}

const orderColumns = `id, customer_name, phone_number, comment, price, status, customer_id, created_at, updated_at`

func scanOrder(row pgx.Row) (*models.Order, error) {
	var o models.Order
	err := row.Scan(&o.ID, &o.CustomerName, &o.PhoneNumber, &o.Comment, &o.Price,
		&o.Status, &o.CustomerID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Order")
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO orders(customer_name, phone_number, comment, price, status, customer_id)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at, updated_at`,
		o.CustomerName, o.PhoneNumber, o.Comment, o.Price, o.Status, o.CustomerID,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *OrderRepository) Get(ctx context.Context, id int) (*models.Order, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1`, id)
	return scanOrder(row)
}

func (r *OrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
}

// ListRecent returns the n most recently created orders.
func (r *OrderRepository) ListRecent(ctx context.Context, n int) ([]*models.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC LIMIT $1`, n)
}

// ListByCustomer returns orders matching the stored customer reference
// or the denormalized phone number, newest first.
func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID int, phone string) ([]*models.Order, error) {
	return r.list(ctx,
		`SELECT `+orderColumns+` FROM orders
         WHERE customer_id=$1 OR phone_number=$2
         ORDER BY created_at DESC`, customerID, phone)
}

func (r *OrderRepository) list(ctx context.Context, query string, args ...any) ([]*models.Order, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []*models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// CountByCustomerOrPhone counts orders linked to the customer either by
// the stored reference or by phone number. An order matching both
// conditions is counted once.
func (r *OrderRepository) CountByCustomerOrPhone(ctx context.Context, customerID int, phone string) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE customer_id=$1 OR phone_number=$2`,
		customerID, phone).Scan(&count)
	return count, err
}

// CountByCustomerID counts only orders that store the customer reference.
// This is the check used to block customer deletion.
func (r *OrderRepository) CountByCustomerID(ctx context.Context, customerID int) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE customer_id=$1`, customerID).Scan(&count)
	return count, err
}

func (r *OrderRepository) Update(ctx context.Context, o *models.Order) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE orders
         SET customer_name=$1, phone_number=$2, comment=$3, price=$4, status=$5, updated_at=CURRENT_TIMESTAMP
         WHERE id=$6`,
		o.CustomerName, o.PhoneNumber, o.Comment, o.Price, o.Status, o.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("Order")
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("Order")
	}
	return nil
}
