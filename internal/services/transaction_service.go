package services

import (
	"context"

	"tailor-backend/internal/apperrors"
	"tailor-backend/internal/cache"
	"tailor-backend/internal/models"
	"tailor-backend/internal/repositories"
)

// TransactionService handles directly-created ledger transactions.
// Derived transactions are managed by the order and staff payment
// services and never carry user edits to their source reference.
type TransactionService struct {
	Repo repositories.TransactionStore
}

func NewTransactionService(repo repositories.TransactionStore) *TransactionService {
	return &TransactionService{Repo: repo}
}

func validateTransaction(description string, amount float64, hasDate bool, txType models.TransactionType, category string) error {
	if description == "" {
		return apperrors.Conflict("Description is required")
	}
	if amount < 0 {
		return apperrors.Conflict("Amount must be non-negative")
	}
	if !hasDate {
		return apperrors.Conflict("Date is required")
	}
	if !models.ValidTransactionType(txType) {
		return apperrors.Conflict("Type must be income or expense")
	}
	if category == "" {
		return apperrors.Conflict("Category is required")
	}
	return nil
}

func (s *TransactionService) CreateTransaction(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	if err := validateTransaction(req.Description, req.Amount, req.Date != nil, req.Type, req.Category); err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        *req.Date,
		Type:        req.Type,
		Category:    req.Category,
		Notes:       req.Notes,
	}

	if err := s.Repo.Create(ctx, txn); err != nil {
		return nil, err
	}

	cache.InvalidateSummary(ctx)
	return txn, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, id int) (*models.Transaction, error) {
	return s.Repo.Get(ctx, id)
}

func (s *TransactionService) ListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	return s.Repo.List(ctx)
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, id int, req *models.UpdateTransactionRequest) (*models.Transaction, error) {
	if err := validateTransaction(req.Description, req.Amount, req.Date != nil, req.Type, req.Category); err != nil {
		return nil, err
	}

	txn, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	txn.Description = req.Description
	txn.Amount = req.Amount
	txn.Date = *req.Date
	txn.Type = req.Type
	txn.Category = req.Category
	txn.Notes = req.Notes
	if err := s.Repo.Update(ctx, txn); err != nil {
		return nil, err
	}

	cache.InvalidateSummary(ctx)
	return txn, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateSummary(ctx)
	return nil
}
