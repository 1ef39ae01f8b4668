package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tailor-backend/internal/apperrors"
	"tailor-backend/internal/models"
)

type StaffPaymentRepository struct {
	DB DB
}

func NewStaffPaymentRepository(db *pgxpool.Pool) *StaffPaymentRepository {
	return &StaffPaymentRepository{DB: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *StaffPaymentRepository) WithTx(tx pgx.Tx) StaffPaymentStore {
	return &StaffPaymentRepository{DB: tx}
}

const staffPaymentColumns = `id, staff_id, amount, date, hours_worked, notes, created_at, updated_at`

func scanStaffPayment(row pgx.Row) (*models.StaffPayment, error) {
	var p models.StaffPayment
	err := row.Scan(&p.ID, &p.StaffID, &p.Amount, &p.Date, &p.HoursWorked,
		&p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Payment")
		}
		return nil, err
	}
	return &p, nil
}

func (r *StaffPaymentRepository) Create(ctx context.Context, p *models.StaffPayment) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO staff_payments(staff_id, amount, date, hours_worked, notes)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		p.StaffID, p.Amount, p.Date, p.HoursWorked, p.Notes,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *StaffPaymentRepository) Get(ctx context.Context, id int) (*models.StaffPayment, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+staffPaymentColumns+` FROM staff_payments WHERE id=$1`, id)
	return scanStaffPayment(row)
}

// ListByStaff returns all payments for one staff member, newest first by
// payment date.
func (r *StaffPaymentRepository) ListByStaff(ctx context.Context, staffID int) ([]*models.StaffPayment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+staffPaymentColumns+` FROM staff_payments WHERE staff_id=$1 ORDER BY date DESC`,
		staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []*models.StaffPayment{}
	for rows.Next() {
		p, err := scanStaffPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *StaffPaymentRepository) Update(ctx context.Context, p *models.StaffPayment) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE staff_payments
         SET amount=$1, date=$2, hours_worked=$3, notes=$4, updated_at=CURRENT_TIMESTAMP
         WHERE id=$5`,
		p.Amount, p.Date, p.HoursWorked, p.Notes, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("Payment")
	}
	return nil
}

func (r *StaffPaymentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM staff_payments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("Payment")
	}
	return nil
}
