package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"tailor-backend/internal/models"
)

// TxBeginner starts database transactions. Satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// CustomerStore is the persistence surface the customer service uses.
type CustomerStore interface {
	Create(ctx context.Context, c *models.Customer) error
	Get(ctx context.Context, id int) (*models.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*models.Customer, error)
	List(ctx context.Context) ([]*models.Customer, error)
	Update(ctx context.Context, c *models.Customer) error
	UpdateDetailedMeasurements(ctx context.Context, id int, detailed []models.DetailedMeasurement) error
	Delete(ctx context.Context, id int) error
}

// OrderStore is the persistence surface the order and customer services
// use. WithTx returns a store bound to the given transaction.
type OrderStore interface {
	WithTx(tx pgx.Tx) OrderStore
	Create(ctx context.Context, o *models.Order) error
	Get(ctx context.Context, id int) (*models.Order, error)
	List(ctx context.Context) ([]*models.Order, error)
	ListRecent(ctx context.Context, n int) ([]*models.Order, error)
	ListByCustomer(ctx context.Context, customerID int, phone string) ([]*models.Order, error)
	CountByCustomerOrPhone(ctx context.Context, customerID int, phone string) (int, error)
	CountByCustomerID(ctx context.Context, customerID int) (int, error)
	Update(ctx context.Context, o *models.Order) error
	Delete(ctx context.Context, id int) error
}

// StaffStore is the persistence surface the staff services use.
type StaffStore interface {
	Create(ctx context.Context, s *models.Staff) error
	Get(ctx context.Context, id int) (*models.Staff, error)
	List(ctx context.Context) ([]*models.Staff, error)
	Update(ctx context.Context, s *models.Staff) error
	Delete(ctx context.Context, id int) error
}

// StaffPaymentStore is the persistence surface the staff payment
// service uses.
type StaffPaymentStore interface {
	WithTx(tx pgx.Tx) StaffPaymentStore
	Create(ctx context.Context, p *models.StaffPayment) error
	Get(ctx context.Context, id int) (*models.StaffPayment, error)
	ListByStaff(ctx context.Context, staffID int) ([]*models.StaffPayment, error)
	Update(ctx context.Context, p *models.StaffPayment) error
	Delete(ctx context.Context, id int) error
}

// TransactionStore is the persistence surface the transaction, order,
// staff payment and report services use.
type TransactionStore interface {
	WithTx(tx pgx.Tx) TransactionStore
	Create(ctx context.Context, t *models.Transaction) error
	Get(ctx context.Context, id int) (*models.Transaction, error)
	GetBySource(ctx context.Context, sourceType string, sourceID int) (*models.Transaction, error)
	List(ctx context.Context) ([]*models.Transaction, error)
	Update(ctx context.Context, t *models.Transaction) error
	Delete(ctx context.Context, id int) error
	DeleteBySource(ctx context.Context, sourceType string, sourceID int) error
}

// UserStore is the persistence surface the auth service uses.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	Get(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
