package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor-backend/internal/models"
)

func TestOrderTransaction(t *testing.T) {
	now := time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC)
	order := &models.Order{
		ID:           42,
		CustomerName: "John Doe",
		PhoneNumber:  "555-123-4567",
		Price:        450,
	}

	txn := OrderTransaction(order, now)

	assert.Equal(t, "Order #42", txn.Description)
	assert.Equal(t, 450.0, txn.Amount)
	assert.Equal(t, now, txn.Date)
	assert.Equal(t, models.TransactionTypeIncome, txn.Type)
	assert.Equal(t, "orders", txn.Category)
	assert.Equal(t, "Order from John Doe", txn.Notes)
	assert.Equal(t, models.TransactionSourceOrder, txn.SourceType)
	require.NotNil(t, txn.SourceID)
	assert.Equal(t, 42, *txn.SourceID)
}

func TestStaffPaymentTransaction(t *testing.T) {
	date := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	hours := 12.5
	payment := &models.StaffPayment{
		ID:          7,
		StaffID:     3,
		Amount:      300,
		Date:        date,
		HoursWorked: &hours,
	}

	txn := StaffPaymentTransaction(payment, "Michael Brown")

	assert.Equal(t, "Payment to Michael Brown", txn.Description)
	assert.Equal(t, 300.0, txn.Amount)
	assert.Equal(t, date, txn.Date)
	assert.Equal(t, models.TransactionTypeExpense, txn.Type)
	assert.Equal(t, "salary", txn.Category)
	assert.Equal(t, "Payment to Michael Brown for 12.5 hours worked", txn.Notes)
	assert.Equal(t, models.TransactionSourceStaffPayment, txn.SourceType)
	require.NotNil(t, txn.SourceID)
	assert.Equal(t, 7, *txn.SourceID)
}

func TestStaffPaymentTransactionNoHours(t *testing.T) {
	payment := &models.StaffPayment{
		ID:     8,
		Amount: 150,
		Date:   time.Now(),
	}

	txn := StaffPaymentTransaction(payment, "Sarah Wilson")

	assert.Equal(t, "Payment to Sarah Wilson for 0 hours worked", txn.Notes)
}

func TestStaffPaymentTransactionLargeHoursPlainNotation(t *testing.T) {
	hours := 1000000.0
	payment := &models.StaffPayment{
		ID:          9,
		Amount:      10,
		Date:        time.Now(),
		HoursWorked: &hours,
	}

	txn := StaffPaymentTransaction(payment, "Sarah Wilson")

	assert.Equal(t, "Payment to Sarah Wilson for 1000000 hours worked", txn.Notes)
}
