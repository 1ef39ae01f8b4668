package services

import (
	"context"

	"tailor-backend/internal/apperrors"
	"tailor-backend/internal/models"
	"tailor-backend/internal/repositories"
)

type StaffService struct {
	Repo repositories.StaffStore
}

func NewStaffService(repo repositories.StaffStore) *StaffService {
	return &StaffService{Repo: repo}
}

func validateStaff(name, phone, position string, salary float64, joiningDate bool) error {
	if name == "" || phone == "" {
		return apperrors.Conflict("Name and phone number are required")
	}
	if position == "" {
		return apperrors.Conflict("Position is required")
	}
	if salary < 0 {
		return apperrors.Conflict("Salary must be non-negative")
	}
	if !joiningDate {
		return apperrors.Conflict("Joining date is required")
	}
	return nil
}

func (s *StaffService) CreateStaff(ctx context.Context, req *models.CreateStaffRequest) (*models.Staff, error) {
	if err := validateStaff(req.Name, req.PhoneNumber, req.Position, req.Salary, req.JoiningDate != nil); err != nil {
		return nil, err
	}

	staff := &models.Staff{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		Position:    req.Position,
		Salary:      req.Salary,
		JoiningDate: *req.JoiningDate,
		Notes:       req.Notes,
	}

	if err := s.Repo.Create(ctx, staff); err != nil {
		return nil, err
	}

	return staff, nil
}

func (s *StaffService) GetStaff(ctx context.Context, id int) (*models.Staff, error) {
	return s.Repo.Get(ctx, id)
}

func (s *StaffService) ListStaff(ctx context.Context) ([]*models.Staff, error) {
	return s.Repo.List(ctx)
}

func (s *StaffService) UpdateStaff(ctx context.Context, id int, req *models.UpdateStaffRequest) (*models.Staff, error) {
	if err := validateStaff(req.Name, req.PhoneNumber, req.Position, req.Salary, req.JoiningDate != nil); err != nil {
		return nil, err
	}

	staff := &models.Staff{
		ID:          id,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		Position:    req.Position,
		Salary:      req.Salary,
		JoiningDate: *req.JoiningDate,
		Notes:       req.Notes,
	}

	if err := s.Repo.Update(ctx, staff); err != nil {
		return nil, err
	}

	return s.Repo.Get(ctx, id)
}

func (s *StaffService) DeleteStaff(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
