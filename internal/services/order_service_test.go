package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor-backend/internal/models"
)

func newOrderServiceFixture() (*OrderService, *mockOrderStore, *mockCustomerStore, *mockTransactionStore) {
	orders := &mockOrderStore{}
	customers := &mockCustomerStore{}
	txns := &mockTransactionStore{}
	svc := NewOrderService(fakeTxBeginner{}, orders, customers, txns)
	return svc, orders, customers, txns
}

func TestCreateOrderDerivesIncomeTransaction(t *testing.T) {
	svc, _, customers, txns := newOrderServiceFixture()
	ctx := context.Background()
	customer := seedCustomer(t, customers, "John Doe", "555-123-4567")

	order, err := svc.CreateOrder(ctx, &models.CreateOrderRequest{
		CustomerName: "John Doe",
		PhoneNumber:  "555-123-4567",
		Comment:      "Blue suit",
		Price:        450,
	})
	require.NoError(t, err)

	// Bound to the existing customer by phone
	require.NotNil(t, order.CustomerID)
	assert.Equal(t, customer.ID, *order.CustomerID)

	require.Len(t, txns.txns, 1)
	txn := txns.txns[0]
	assert.Equal(t, "Order #1", txn.Description)
	assert.Equal(t, 450.0, txn.Amount)
	assert.Equal(t, models.TransactionTypeIncome, txn.Type)
	assert.Equal(t, "orders", txn.Category)
	assert.Equal(t, "Order from John Doe", txn.Notes)
	assert.Equal(t, models.TransactionSourceOrder, txn.SourceType)
	require.NotNil(t, txn.SourceID)
	assert.Equal(t, order.ID, *txn.SourceID)
}

func TestUpdateOrderPriceChangeSyncsTransaction(t *testing.T) {
	svc, _, _, txns := newOrderServiceFixture()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, &models.CreateOrderRequest{
		CustomerName: "John Doe",
		PhoneNumber:  "555-123-4567",
		Price:        450,
	})
	require.NoError(t, err)

	_, err = svc.UpdateOrder(ctx, order.ID, &models.UpdateOrderRequest{
		CustomerName: "Johnny Doe",
		PhoneNumber:  "555-123-4567",
		Price:        500,
		Status:       models.OrderStatusCompleted,
	})
	require.NoError(t, err)

	txn, err := txns.GetBySource(ctx, models.TransactionSourceOrder, order.ID)
	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, 500.0, txn.Amount)
	assert.Equal(t, "Order from Johnny Doe", txn.Notes)
}

func TestUpdateOrderSamePriceLeavesTransactionAlone(t *testing.T) {
	svc, _, _, txns := newOrderServiceFixture()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, &models.CreateOrderRequest{
		CustomerName: "John Doe",
		PhoneNumber:  "555-123-4567",
		Price:        450,
	})
	require.NoError(t, err)

	_, err = svc.UpdateOrder(ctx, order.ID, &models.UpdateOrderRequest{
		CustomerName: "Johnny Doe",
		PhoneNumber:  "555-123-4567",
		Price:        450,
		Status:       models.OrderStatusDelivered,
	})
	require.NoError(t, err)

	txn, err := txns.GetBySource(ctx, models.TransactionSourceOrder, order.ID)
	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, 450.0, txn.Amount)
	assert.Equal(t, "Order from John Doe", txn.Notes)
}

func TestDeleteOrderRemovesDerivedTransaction(t *testing.T) {
	svc, orders, _, txns := newOrderServiceFixture()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, &models.CreateOrderRequest{
		CustomerName: "John Doe",
		PhoneNumber:  "555-123-4567",
		Price:        450,
	})
	require.NoError(t, err)
	require.Len(t, txns.txns, 1)

	require.NoError(t, svc.DeleteOrder(ctx, order.ID))

	assert.Empty(t, orders.orders)
	assert.Empty(t, txns.txns)
}
