package services

import (
	"fmt"
	"strconv"
	"time"

	"tailor-backend/internal/models"
)

// Ledger categories for derived transactions.
const (
	CategoryOrders = "orders"
	CategorySalary = "salary"
)

// OrderDescription is the ledger description for an order's income
// transaction.
func OrderDescription(orderID int) string {
	return fmt.Sprintf("Order #%d", orderID)
}

// StaffPaymentDescription is the ledger description for a staff
// payment's expense transaction.
func StaffPaymentDescription(staffName string) string {
	return fmt.Sprintf("Payment to %s", staffName)
}

func orderNotes(customerName string) string {
	return fmt.Sprintf("Order from %s", customerName)
}

func staffPaymentNotes(staffName string, hoursWorked *float64) string {
	hours := 0.0
	if hoursWorked != nil {
		hours = *hoursWorked
	}
	// Plain decimal notation for any magnitude, no exponent form.
	return fmt.Sprintf("Payment to %s for %s hours worked",
		staffName, strconv.FormatFloat(hours, 'f', -1, 64))
}

// OrderTransaction derives the income transaction recorded when an
// order is created. The transaction keeps a source reference back to
// the order so later edits and deletes find it unambiguously.
func OrderTransaction(o *models.Order, now time.Time) *models.Transaction {
	id := o.ID
	return &models.Transaction{
		Description: OrderDescription(o.ID),
		Amount:      o.Price,
		Date:        now,
		Type:        models.TransactionTypeIncome,
		Category:    CategoryOrders,
		Notes:       orderNotes(o.CustomerName),
		SourceType:  models.TransactionSourceOrder,
		SourceID:    &id,
	}
}

// StaffPaymentTransaction derives the expense transaction recorded when
// a staff member is paid.
func StaffPaymentTransaction(p *models.StaffPayment, staffName string) *models.Transaction {
	id := p.ID
	return &models.Transaction{
		Description: StaffPaymentDescription(staffName),
		Amount:      p.Amount,
		Date:        p.Date,
		Type:        models.TransactionTypeExpense,
		Category:    CategorySalary,
		Notes:       staffPaymentNotes(staffName, p.HoursWorked),
		SourceType:  models.TransactionSourceStaffPayment,
		SourceID:    &id,
	}
}
