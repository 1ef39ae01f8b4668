package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tailor-backend/internal/apperrors"
	"tailor-backend/internal/models"
)

type CustomerRepository struct {
	DB DB
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

const customerColumns = `id, name, phone_number, email, address, measurements, detailed_measurements, notes, created_at, updated_at`

func scanCustomer(row pgx.Row) (*models.Customer, error) {
	var c models.Customer
	var measurements, detailed []byte
	err := row.Scan(&c.ID, &c.Name, &c.PhoneNumber, &c.Email, &c.Address,
		&measurements, &detailed, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Customer")
		}
		return nil, err
	}
	if len(measurements) > 0 {
		if err := json.Unmarshal(measurements, &c.Measurements); err != nil {
			return nil, fmt.Errorf("decode measurements: %w", err)
		}
	}
	c.DetailedMeasurements = []models.DetailedMeasurement{}
	if len(detailed) > 0 {
		if err := json.Unmarshal(detailed, &c.DetailedMeasurements); err != nil {
			return nil, fmt.Errorf("decode detailed measurements: %w", err)
		}
	}
	return &c, nil
}

func encodeMeasurements(c *models.Customer) (measurements, detailed []byte, err error) {
	if c.Measurements != nil {
		measurements, err = json.Marshal(c.Measurements)
		if err != nil {
			return nil, nil, err
		}
	}
	if c.DetailedMeasurements == nil {
		c.DetailedMeasurements = []models.DetailedMeasurement{}
	}
	detailed, err = json.Marshal(c.DetailedMeasurements)
	if err != nil {
		return nil, nil, err
	}
	return measurements, detailed, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	measurements, detailed, err := encodeMeasurements(c)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO customers(name, phone_number, email, address, measurements, detailed_measurements, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at, updated_at`,
		c.Name, c.PhoneNumber, c.Email, c.Address, measurements, detailed, c.Notes,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CustomerRepository) Get(ctx context.Context, id int) (*models.Customer, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id=$1`, id)
	return scanCustomer(row)
}

// GetByPhone returns the customer with the given phone number, or nil
// when none exists.
func (r *CustomerRepository) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE phone_number=$1 LIMIT 1`, phone)
	c, err := scanCustomer(row)
	if apperrors.IsNotFound(err) {
		return nil, nil
	}
	return c, err
}

func (r *CustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Update(ctx context.Context, c *models.Customer) error {
	measurements, detailed, err := encodeMeasurements(c)
	if err != nil {
		return err
	}
	tag, err := r.DB.Exec(ctx,
		`UPDATE customers
         SET name=$1, phone_number=$2, email=$3, address=$4, measurements=$5,
             detailed_measurements=$6, notes=$7, updated_at=CURRENT_TIMESTAMP
         WHERE id=$8`,
		c.Name, c.PhoneNumber, c.Email, c.Address, measurements, detailed, c.Notes, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("Customer")
	}
	return nil
}

// UpdateDetailedMeasurements replaces only the detailed measurement array.
func (r *CustomerRepository) UpdateDetailedMeasurements(ctx context.Context, id int, detailed []models.DetailedMeasurement) error {
	data, err := json.Marshal(detailed)
	if err != nil {
		return err
	}
	tag, err := r.DB.Exec(ctx,
		`UPDATE customers SET detailed_measurements=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		data, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("Customer")
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("Customer")
	}
	return nil
}
