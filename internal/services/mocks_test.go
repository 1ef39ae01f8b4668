package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"tailor-backend/internal/apperrors"
	"tailor-backend/internal/models"
	"tailor-backend/internal/repositories"
)

// In-memory stores backing the service tests. They mirror the SQL
// repositories' contracts: typed not-found errors, nil-on-absent
// phone and source lookups, single OR-match order counting.

type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(ctx context.Context) error   { return nil }
func (fakeTx) Rollback(ctx context.Context) error { return nil }

type fakeTxBeginner struct{}

func (fakeTxBeginner) Begin(ctx context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

type mockCustomerStore struct {
	customers []*models.Customer
	nextID    int
}

func (m *mockCustomerStore) Create(ctx context.Context, c *models.Customer) error {
	m.nextID++
	c.ID = m.nextID
	copied := *c
	m.customers = append(m.customers, &copied)
	return nil
}

func (m *mockCustomerStore) Get(ctx context.Context, id int) (*models.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("Customer")
}

func (m *mockCustomerStore) GetByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	for _, c := range m.customers {
		if c.PhoneNumber == phone {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockCustomerStore) List(ctx context.Context) ([]*models.Customer, error) {
	return m.customers, nil
}

func (m *mockCustomerStore) Update(ctx context.Context, c *models.Customer) error {
	for i, existing := range m.customers {
		if existing.ID == c.ID {
			copied := *c
			m.customers[i] = &copied
			return nil
		}
	}
	return apperrors.NotFound("Customer")
}

func (m *mockCustomerStore) UpdateDetailedMeasurements(ctx context.Context, id int, detailed []models.DetailedMeasurement) error {
	for _, c := range m.customers {
		if c.ID == id {
			c.DetailedMeasurements = detailed
			return nil
		}
	}
	return apperrors.NotFound("Customer")
}

func (m *mockCustomerStore) Delete(ctx context.Context, id int) error {
	for i, c := range m.customers {
		if c.ID == id {
			m.customers = append(m.customers[:i], m.customers[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("Customer")
}

type mockOrderStore struct {
	orders []*models.Order
	nextID int
}

func (m *mockOrderStore) WithTx(tx pgx.Tx) repositories.OrderStore { return m }

func (m *mockOrderStore) Create(ctx context.Context, o *models.Order) error {
	m.nextID++
	o.ID = m.nextID
	copied := *o
	m.orders = append(m.orders, &copied)
	return nil
}

func (m *mockOrderStore) Get(ctx context.Context, id int) (*models.Order, error) {
	for _, o := range m.orders {
		if o.ID == id {
			copied := *o
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("Order")
}

func (m *mockOrderStore) List(ctx context.Context) ([]*models.Order, error) {
	return m.orders, nil
}

func (m *mockOrderStore) ListRecent(ctx context.Context, n int) ([]*models.Order, error) {
	if len(m.orders) <= n {
		return m.orders, nil
	}
	return m.orders[:n], nil
}

func (m *mockOrderStore) ListByCustomer(ctx context.Context, customerID int, phone string) ([]*models.Order, error) {
	matched := []*models.Order{}
	for _, o := range m.orders {
		if m.matches(o, customerID, phone) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (m *mockOrderStore) matches(o *models.Order, customerID int, phone string) bool {
	if o.CustomerID != nil && *o.CustomerID == customerID {
		return true
	}
	return o.PhoneNumber == phone
}

// CountByCustomerOrPhone counts each order once even when it matches
// both the stored reference and the phone number, like the SQL COUNT
// over an OR condition.
func (m *mockOrderStore) CountByCustomerOrPhone(ctx context.Context, customerID int, phone string) (int, error) {
	count := 0
	for _, o := range m.orders {
		if m.matches(o, customerID, phone) {
			count++
		}
	}
	return count, nil
}

func (m *mockOrderStore) CountByCustomerID(ctx context.Context, customerID int) (int, error) {
	count := 0
	for _, o := range m.orders {
		if o.CustomerID != nil && *o.CustomerID == customerID {
			count++
		}
	}
	return count, nil
}

func (m *mockOrderStore) Update(ctx context.Context, o *models.Order) error {
	for i, existing := range m.orders {
		if existing.ID == o.ID {
			copied := *o
			m.orders[i] = &copied
			return nil
		}
	}
	return apperrors.NotFound("Order")
}

func (m *mockOrderStore) Delete(ctx context.Context, id int) error {
	for i, o := range m.orders {
		if o.ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("Order")
}

type mockStaffStore struct {
	staff  []*models.Staff
	nextID int
}

func (m *mockStaffStore) Create(ctx context.Context, s *models.Staff) error {
	m.nextID++
	s.ID = m.nextID
	copied := *s
	m.staff = append(m.staff, &copied)
	return nil
}

func (m *mockStaffStore) Get(ctx context.Context, id int) (*models.Staff, error) {
	for _, s := range m.staff {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("Staff")
}

func (m *mockStaffStore) List(ctx context.Context) ([]*models.Staff, error) {
	return m.staff, nil
}

func (m *mockStaffStore) Update(ctx context.Context, s *models.Staff) error {
	for i, existing := range m.staff {
		if existing.ID == s.ID {
			copied := *s
			m.staff[i] = &copied
			return nil
		}
	}
	return apperrors.NotFound("Staff")
}

func (m *mockStaffStore) Delete(ctx context.Context, id int) error {
	for i, s := range m.staff {
		if s.ID == id {
			m.staff = append(m.staff[:i], m.staff[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("Staff")
}

type mockStaffPaymentStore struct {
	payments []*models.StaffPayment
	nextID   int
}

func (m *mockStaffPaymentStore) WithTx(tx pgx.Tx) repositories.StaffPaymentStore { return m }

func (m *mockStaffPaymentStore) Create(ctx context.Context, p *models.StaffPayment) error {
	m.nextID++
	p.ID = m.nextID
	copied := *p
	m.payments = append(m.payments, &copied)
	return nil
}

func (m *mockStaffPaymentStore) Get(ctx context.Context, id int) (*models.StaffPayment, error) {
	for _, p := range m.payments {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("Payment")
}

func (m *mockStaffPaymentStore) ListByStaff(ctx context.Context, staffID int) ([]*models.StaffPayment, error) {
	matched := []*models.StaffPayment{}
	for _, p := range m.payments {
		if p.StaffID == staffID {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (m *mockStaffPaymentStore) Update(ctx context.Context, p *models.StaffPayment) error {
	for i, existing := range m.payments {
		if existing.ID == p.ID {
			copied := *p
			m.payments[i] = &copied
			return nil
		}
	}
	return apperrors.NotFound("Payment")
}

func (m *mockStaffPaymentStore) Delete(ctx context.Context, id int) error {
	for i, p := range m.payments {
		if p.ID == id {
			m.payments = append(m.payments[:i], m.payments[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("Payment")
}

type mockTransactionStore struct {
	txns   []*models.Transaction
	nextID int
}

func (m *mockTransactionStore) WithTx(tx pgx.Tx) repositories.TransactionStore { return m }

func (m *mockTransactionStore) Create(ctx context.Context, t *models.Transaction) error {
	m.nextID++
	t.ID = m.nextID
	copied := *t
	m.txns = append(m.txns, &copied)
	return nil
}

func (m *mockTransactionStore) Get(ctx context.Context, id int) (*models.Transaction, error) {
	for _, t := range m.txns {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, apperrors.NotFound("Transaction")
}

func (m *mockTransactionStore) GetBySource(ctx context.Context, sourceType string, sourceID int) (*models.Transaction, error) {
	for _, t := range m.txns {
		if t.SourceType == sourceType && t.SourceID != nil && *t.SourceID == sourceID {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockTransactionStore) List(ctx context.Context) ([]*models.Transaction, error) {
	return m.txns, nil
}

func (m *mockTransactionStore) Update(ctx context.Context, t *models.Transaction) error {
	for i, existing := range m.txns {
		if existing.ID == t.ID {
			copied := *t
			m.txns[i] = &copied
			return nil
		}
	}
	return apperrors.NotFound("Transaction")
}

func (m *mockTransactionStore) Delete(ctx context.Context, id int) error {
	for i, t := range m.txns {
		if t.ID == id {
			m.txns = append(m.txns[:i], m.txns[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("Transaction")
}

func (m *mockTransactionStore) DeleteBySource(ctx context.Context, sourceType string, sourceID int) error {
	for i, t := range m.txns {
		if t.SourceType == sourceType && t.SourceID != nil && *t.SourceID == sourceID {
			m.txns = append(m.txns[:i], m.txns[i+1:]...)
			return nil
		}
	}
	return nil
}
