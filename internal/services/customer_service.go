package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tailor-backend/internal/apperrors"
	"tailor-backend/internal/models"
	"tailor-backend/internal/repositories"
)

type CustomerService struct {
	Repo   repositories.CustomerStore
	Orders repositories.OrderStore
}

func NewCustomerService(repo repositories.CustomerStore, orders repositories.OrderStore) *CustomerService {
	return &CustomerService{Repo: repo, Orders: orders}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	if req.Name == "" || req.PhoneNumber == "" {
		return nil, apperrors.Conflict("Name and phone number are required")
	}

	// Phone number is the business key; reject duplicates
	existing, err := s.Repo.GetByPhone(ctx, req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("Customer with this phone number already exists")
	}

	customer := &models.Customer{
		Name:                 req.Name,
		PhoneNumber:          req.PhoneNumber,
		Email:                req.Email,
		Address:              req.Address,
		Measurements:         req.Measurements,
		DetailedMeasurements: stampMeasurements(req.DetailedMeasurements),
		Notes:                req.Notes,
	}

	if err := s.Repo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer returns a customer with its orders inlined, matched by
// stored reference or phone number, newest first.
func (s *CustomerService) GetCustomer(ctx context.Context, id int) (*models.CustomerWithOrders, error) {
	customer, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	orders, err := s.Orders.ListByCustomer(ctx, customer.ID, customer.PhoneNumber)
	if err != nil {
		return nil, err
	}

	return &models.CustomerWithOrders{Customer: *customer, Orders: orders}, nil
}

// ListCustomers returns all customers newest first, each decorated with
// its order count.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]*models.CustomerWithOrderCount, error) {
	customers, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := []*models.CustomerWithOrderCount{}
	for _, customer := range customers {
		count, err := s.Orders.CountByCustomerOrPhone(ctx, customer.ID, customer.PhoneNumber)
		if err != nil {
			return nil, err
		}
		result = append(result, &models.CustomerWithOrderCount{Customer: *customer, OrderCount: count})
	}
	return result, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	if req.Name == "" || req.PhoneNumber == "" {
		return nil, apperrors.Conflict("Name and phone number are required")
	}

	customer := &models.Customer{
		ID:                   id,
		Name:                 req.Name,
		PhoneNumber:          req.PhoneNumber,
		Email:                req.Email,
		Address:              req.Address,
		Measurements:         req.Measurements,
		DetailedMeasurements: stampMeasurements(req.DetailedMeasurements),
		Notes:                req.Notes,
	}

	if err := s.Repo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return s.Repo.Get(ctx, id)
}

// AddMeasurement appends a detailed measurement entry to a customer and
// returns the updated record. Entries are never removed.
func (s *CustomerService) AddMeasurement(ctx context.Context, id int, req *models.AddMeasurementRequest) (*models.Customer, error) {
	customer, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	entry := models.DetailedMeasurement{
		ID:                uuid.NewString(),
		MeasurementNumber: req.MeasurementNumber,
		Length:            req.Length,
		Arm:               req.Arm,
		Teera:             req.Teera,
		Chest:             req.Chest,
		Neck:              req.Neck,
		Waist:             req.Waist,
		Pant:              req.Pant,
		Pancha:            req.Pancha,
		FrontPocket:       defaultString(req.FrontPocket, "no"),
		SidePocket:        defaultString(req.SidePocket, "single"),
		Patti:             defaultString(req.Patti, "no"),
		Collar:            defaultString(req.Collar, "no"),
		Bain:              defaultString(req.Bain, "no"),
		Kuff:              defaultString(req.Kuff, "no"),
		Ghera:             defaultString(req.Ghera, "no"),
		Zip:               defaultString(req.Zip, "no"),
		Notes:             req.Notes,
		Date:              time.Now(),
	}

	detailed := append(customer.DetailedMeasurements, entry)
	if err := s.Repo.UpdateDetailedMeasurements(ctx, id, detailed); err != nil {
		return nil, err
	}

	return s.Repo.Get(ctx, id)
}

// DeleteCustomer removes a customer unless any order stores a reference
// to it.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	if _, err := s.Repo.Get(ctx, id); err != nil {
		return err
	}

	count, err := s.Orders.CountByCustomerID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.Conflict("Cannot delete customer with existing orders. Update the orders first.")
	}

	return s.Repo.Delete(ctx, id)
}

// stampMeasurements fills in identifiers and capture dates on entries
// supplied inline with a create/update request.
func stampMeasurements(entries []models.DetailedMeasurement) []models.DetailedMeasurement {
	stamped := make([]models.DetailedMeasurement, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if e.Date.IsZero() {
			e.Date = time.Now()
		}
		if e.FrontPocket == "" {
			e.FrontPocket = "no"
		}
		if e.SidePocket == "" {
			e.SidePocket = "single"
		}
		e.Patti = defaultString(e.Patti, "no")
		e.Collar = defaultString(e.Collar, "no")
		e.Bain = defaultString(e.Bain, "no")
		e.Kuff = defaultString(e.Kuff, "no")
		e.Ghera = defaultString(e.Ghera, "no")
		e.Zip = defaultString(e.Zip, "no")
		stamped = append(stamped, e)
	}
	return stamped
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
