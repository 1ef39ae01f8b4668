package services

import (
	"context"
	"time"

	"tailor-backend/internal/apperrors"
	"tailor-backend/internal/cache"
	"tailor-backend/internal/models"
	"tailor-backend/internal/repositories"
)

// StaffPaymentService owns staff payment CRUD and the derived expense
// side of the ledger.
type StaffPaymentService struct {
	Pool     repositories.TxBeginner
	Payments repositories.StaffPaymentStore
	Staff    repositories.StaffStore
	Txns     repositories.TransactionStore
}

func NewStaffPaymentService(
	pool repositories.TxBeginner,
	payments repositories.StaffPaymentStore,
	staff repositories.StaffStore,
	txns repositories.TransactionStore,
) *StaffPaymentService {
	return &StaffPaymentService{
		Pool:     pool,
		Payments: payments,
		Staff:    staff,
		Txns:     txns,
	}
}

// ListByStaff returns a staff member's payments, newest first. The
// staff member must exist.
func (s *StaffPaymentService) ListByStaff(ctx context.Context, staffID int) ([]*models.StaffPayment, error) {
	if _, err := s.Staff.Get(ctx, staffID); err != nil {
		return nil, err
	}
	return s.Payments.ListByStaff(ctx, staffID)
}

func (s *StaffPaymentService) CreatePayment(ctx context.Context, req *models.CreateStaffPaymentRequest) (*models.StaffPayment, error) {
	if req.Amount < 0 {
		return nil, apperrors.Conflict("Amount must be non-negative")
	}
	if req.HoursWorked != nil && *req.HoursWorked < 0 {
		return nil, apperrors.Conflict("Hours worked must be non-negative")
	}

	staff, err := s.Staff.Get(ctx, req.StaffID)
	if err != nil {
		return nil, err
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}
	payment := &models.StaffPayment{
		StaffID:     req.StaffID,
		Amount:      req.Amount,
		Date:        date,
		HoursWorked: req.HoursWorked,
		Notes:       req.Notes,
	}

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := s.Payments.WithTx(tx).Create(ctx, payment); err != nil {
		return nil, err
	}
	if err := s.Txns.WithTx(tx).Create(ctx, StaffPaymentTransaction(payment, staff.Name)); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	cache.InvalidateSummary(ctx)
	return payment, nil
}

func (s *StaffPaymentService) UpdatePayment(ctx context.Context, id int, req *models.UpdateStaffPaymentRequest) (*models.StaffPayment, error) {
	if req.Amount < 0 {
		return nil, apperrors.Conflict("Amount must be non-negative")
	}
	if req.HoursWorked != nil && *req.HoursWorked < 0 {
		return nil, apperrors.Conflict("Hours worked must be non-negative")
	}

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	payments := s.Payments.WithTx(tx)
	payment, err := payments.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	staff, err := s.Staff.Get(ctx, payment.StaffID)
	if err != nil {
		return nil, err
	}

	payment.Amount = req.Amount
	if req.Date != nil {
		payment.Date = *req.Date
	}
	payment.HoursWorked = req.HoursWorked
	payment.Notes = req.Notes
	if err := payments.Update(ctx, payment); err != nil {
		return nil, err
	}

	// Sync the derived transaction's amount, date and notes
	txns := s.Txns.WithTx(tx)
	txn, err := txns.GetBySource(ctx, models.TransactionSourceStaffPayment, id)
	if err != nil {
		return nil, err
	}
	if txn != nil {
		txn.Amount = payment.Amount
		txn.Date = payment.Date
		txn.Notes = staffPaymentNotes(staff.Name, payment.HoursWorked)
		if err := txns.Update(ctx, txn); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	cache.InvalidateSummary(ctx)
	return payment, nil
}

func (s *StaffPaymentService) DeletePayment(ctx context.Context, id int) error {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := s.Payments.WithTx(tx).Delete(ctx, id); err != nil {
		return err
	}
	if err := s.Txns.WithTx(tx).DeleteBySource(ctx, models.TransactionSourceStaffPayment, id); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	cache.InvalidateSummary(ctx)
	return nil
}
