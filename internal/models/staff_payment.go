package models

import "time"

type StaffPayment struct {
	ID          int       `json:"id"`
	StaffID     int       `json:"staff"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	HoursWorked *float64  `json:"hoursWorked,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateStaffPaymentRequest represents the request body for creating a payment.
// Date defaults to the current time when omitted.
type CreateStaffPaymentRequest struct {
	StaffID     int        `json:"staffId"`
	Amount      float64    `json:"amount"`
	Date        *time.Time `json:"date"`
	HoursWorked *float64   `json:"hoursWorked"`
	Notes       string     `json:"notes"`
}

// UpdateStaffPaymentRequest represents the request body for updating a payment
type UpdateStaffPaymentRequest struct {
	Amount      float64    `json:"amount"`
	Date        *time.Time `json:"date"`
	HoursWorked *float64   `json:"hoursWorked"`
	Notes       string     `json:"notes"`
}
