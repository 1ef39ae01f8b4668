package models

import "time"

// TransactionType classifies a ledger transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// ValidTransactionType reports whether t is income or expense.
func ValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Source types for transactions derived from other records.
const (
	TransactionSourceOrder        = "order"
	TransactionSourceStaffPayment = "staff_payment"
)

// Transaction is one entry in the financial ledger. Transactions derived
// from an order or staff payment carry a source reference back to the
// record they were derived from; directly-created transactions have none.
type Transaction struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Notes       string          `json:"notes,omitempty"`
	SourceType  string          `json:"sourceType,omitempty"`
	SourceID    *int            `json:"sourceId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// CreateTransactionRequest represents the request body for creating a transaction
type CreateTransactionRequest struct {
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Date        *time.Time      `json:"date"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Notes       string          `json:"notes"`
}

// UpdateTransactionRequest represents the request body for updating a transaction
type UpdateTransactionRequest struct {
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Date        *time.Time      `json:"date"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Notes       string          `json:"notes"`
}

// MonthlyFigure is one month of the current-year breakdown.
type MonthlyFigure struct {
	Month   int     `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// FinancialSummary is the aggregate report over the whole ledger.
type FinancialSummary struct {
	TotalIncome  float64         `json:"totalIncome"`
	TotalExpense float64         `json:"totalExpense"`
	NetIncome    float64         `json:"netIncome"`
	MonthlyData  []MonthlyFigure `json:"monthlyData"`
}
