package services

import (
	"context"
	"time"

	"tailor-backend/internal/apperrors"
	"tailor-backend/internal/cache"
	"tailor-backend/internal/models"
	"tailor-backend/internal/repositories"
)

// OrderService owns order CRUD and keeps the derived income side of the
// ledger in sync. The order and its transaction are always written
// inside one database transaction so the ledger cannot drift.
type OrderService struct {
	Pool      repositories.TxBeginner
	Orders    repositories.OrderStore
	Customers repositories.CustomerStore
	Txns      repositories.TransactionStore
}

func NewOrderService(
	pool repositories.TxBeginner,
	orders repositories.OrderStore,
	customers repositories.CustomerStore,
	txns repositories.TransactionStore,
) *OrderService {
	return &OrderService{
		Pool:      pool,
		Orders:    orders,
		Customers: customers,
		Txns:      txns,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	if req.CustomerName == "" || req.PhoneNumber == "" {
		return nil, apperrors.Conflict("Customer name and phone number are required")
	}
	if req.Price < 0 {
		return nil, apperrors.Conflict("Price must be non-negative")
	}

	order := &models.Order{
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Comment:      req.Comment,
		Price:        req.Price,
		Status:       models.OrderStatusPending,
	}

	// Bind the order to an existing customer when the phone number matches
	customer, err := s.Customers.GetByPhone(ctx, req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		order.CustomerID = &customer.ID
	}

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := s.Orders.WithTx(tx).Create(ctx, order); err != nil {
		return nil, err
	}
	if err := s.Txns.WithTx(tx).Create(ctx, OrderTransaction(order, time.Now())); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	cache.InvalidateSummary(ctx)
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	return s.Orders.Get(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]*models.Order, error) {
	return s.Orders.List(ctx)
}

// RecentOrders returns the five most recently created orders.
func (s *OrderService) RecentOrders(ctx context.Context) ([]*models.Order, error) {
	return s.Orders.ListRecent(ctx, 5)
}

func (s *OrderService) UpdateOrder(ctx context.Context, id int, req *models.UpdateOrderRequest) (*models.Order, error) {
	if req.CustomerName == "" || req.PhoneNumber == "" {
		return nil, apperrors.Conflict("Customer name and phone number are required")
	}
	if req.Price < 0 {
		return nil, apperrors.Conflict("Price must be non-negative")
	}
	status := req.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	if !models.ValidOrderStatus(status) {
		return nil, apperrors.Conflict("Invalid order status")
	}

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	orders := s.Orders.WithTx(tx)
	order, err := orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	order.CustomerName = req.CustomerName
	order.PhoneNumber = req.PhoneNumber
	order.Comment = req.Comment
	order.Price = req.Price
	order.Status = status
	if err := orders.Update(ctx, order); err != nil {
		return nil, err
	}

	// Sync the derived transaction when the price changed. An order with
	// no derived transaction is left as-is.
	txns := s.Txns.WithTx(tx)
	txn, err := txns.GetBySource(ctx, models.TransactionSourceOrder, id)
	if err != nil {
		return nil, err
	}
	if txn != nil && txn.Amount != req.Price {
		txn.Amount = req.Price
		txn.Notes = orderNotes(req.CustomerName)
		if err := txns.Update(ctx, txn); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	cache.InvalidateSummary(ctx)
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int) error {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := s.Orders.WithTx(tx).Delete(ctx, id); err != nil {
		return err
	}
	if err := s.Txns.WithTx(tx).DeleteBySource(ctx, models.TransactionSourceOrder, id); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	cache.InvalidateSummary(ctx)
	return nil
}
