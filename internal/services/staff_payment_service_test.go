package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor-backend/internal/apperrors"
	"tailor-backend/internal/models"
)

func newStaffPaymentFixture(t *testing.T) (*StaffPaymentService, *mockStaffPaymentStore, *mockTransactionStore, *models.Staff) {
	t.Helper()
	payments := &mockStaffPaymentStore{}
	staff := &mockStaffStore{}
	txns := &mockTransactionStore{}
	svc := NewStaffPaymentService(fakeTxBeginner{}, payments, staff, txns)

	member := &models.Staff{Name: "Michael Brown", PhoneNumber: "555-111-2222", Position: "Senior Tailor", Salary: 3500}
	require.NoError(t, staff.Create(context.Background(), member))
	return svc, payments, txns, member
}

func TestCreatePaymentDerivesExpenseTransaction(t *testing.T) {
	svc, _, txns, member := newStaffPaymentFixture(t)
	ctx := context.Background()
	hours := 8.0
	date := time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC)

	payment, err := svc.CreatePayment(ctx, &models.CreateStaffPaymentRequest{
		StaffID:     member.ID,
		Amount:      200,
		Date:        &date,
		HoursWorked: &hours,
	})
	require.NoError(t, err)

	require.Len(t, txns.txns, 1)
	txn := txns.txns[0]
	assert.Equal(t, "Payment to Michael Brown", txn.Description)
	assert.Equal(t, 200.0, txn.Amount)
	assert.Equal(t, date, txn.Date)
	assert.Equal(t, models.TransactionTypeExpense, txn.Type)
	assert.Equal(t, "salary", txn.Category)
	assert.Equal(t, "Payment to Michael Brown for 8 hours worked", txn.Notes)
	assert.Equal(t, models.TransactionSourceStaffPayment, txn.SourceType)
	require.NotNil(t, txn.SourceID)
	assert.Equal(t, payment.ID, *txn.SourceID)
}

func TestCreatePaymentUnknownStaff(t *testing.T) {
	svc, payments, txns, _ := newStaffPaymentFixture(t)

	_, err := svc.CreatePayment(context.Background(), &models.CreateStaffPaymentRequest{
		StaffID: 99,
		Amount:  200,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Empty(t, payments.payments)
	assert.Empty(t, txns.txns)
}

func TestUpdatePaymentSyncsDerivedTransaction(t *testing.T) {
	svc, _, txns, member := newStaffPaymentFixture(t)
	ctx := context.Background()
	hours := 8.0
	date := time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC)

	payment, err := svc.CreatePayment(ctx, &models.CreateStaffPaymentRequest{
		StaffID:     member.ID,
		Amount:      200,
		Date:        &date,
		HoursWorked: &hours,
	})
	require.NoError(t, err)

	newHours := 10.0
	newDate := time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC)
	_, err = svc.UpdatePayment(ctx, payment.ID, &models.UpdateStaffPaymentRequest{
		Amount:      250,
		Date:        &newDate,
		HoursWorked: &newHours,
	})
	require.NoError(t, err)

	txn, err := txns.GetBySource(ctx, models.TransactionSourceStaffPayment, payment.ID)
	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, 250.0, txn.Amount)
	assert.Equal(t, newDate, txn.Date)
	assert.Equal(t, "Payment to Michael Brown for 10 hours worked", txn.Notes)
}

func TestDeletePaymentRemovesDerivedTransaction(t *testing.T) {
	svc, payments, txns, member := newStaffPaymentFixture(t)
	ctx := context.Background()

	payment, err := svc.CreatePayment(ctx, &models.CreateStaffPaymentRequest{
		StaffID: member.ID,
		Amount:  200,
	})
	require.NoError(t, err)
	require.Len(t, txns.txns, 1)

	require.NoError(t, svc.DeletePayment(ctx, payment.ID))

	assert.Empty(t, payments.payments)
	assert.Empty(t, txns.txns)
}
