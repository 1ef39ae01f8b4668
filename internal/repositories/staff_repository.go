package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tailor-backend/internal/apperrors"
	"tailor-backend/internal/models"
)

type StaffRepository struct {
	DB DB
}

func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{DB: db}
}

const staffColumns = `id, name, phone_number, email, address, position, salary, joining_date, notes, created_at, updated_at`

func scanStaff(row pgx.Row) (*models.Staff, error) {
	var s models.Staff
	err := row.Scan(&s.ID, &s.Name, &s.PhoneNumber, &s.Email, &s.Address,
		&s.Position, &s.Salary, &s.JoiningDate, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Staff")
		}
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepository) Create(ctx context.Context, s *models.Staff) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO staff(name, phone_number, email, address, position, salary, joining_date, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at, updated_at`,
		s.Name, s.PhoneNumber, s.Email, s.Address, s.Position, s.Salary, s.JoiningDate, s.Notes,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *StaffRepository) Get(ctx context.Context, id int) (*models.Staff, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+staffColumns+` FROM staff WHERE id=$1`, id)
	return scanStaff(row)
}

func (r *StaffRepository) List(ctx context.Context) ([]*models.Staff, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+staffColumns+` FROM staff ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff := []*models.Staff{}
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

func (r *StaffRepository) Update(ctx context.Context, s *models.Staff) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE staff
         SET name=$1, phone_number=$2, email=$3, address=$4, position=$5,
             salary=$6, joining_date=$7, notes=$8, updated_at=CURRENT_TIMESTAMP
         WHERE id=$9`,
		s.Name, s.PhoneNumber, s.Email, s.Address, s.Position, s.Salary, s.JoiningDate, s.Notes, s.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("Staff")
	}
	return nil
}

func (r *StaffRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM staff WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("Staff")
	}
	return nil
}
