package models

import "time"

type Staff struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	Position    string    `json:"position"`
	Salary      float64   `json:"salary"`
	JoiningDate time.Time `json:"joiningDate"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateStaffRequest represents the request body for creating a staff member
type CreateStaffRequest struct {
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phoneNumber"`
	Email       string     `json:"email"`
	Address     string     `json:"address"`
	Position    string     `json:"position"`
	Salary      float64    `json:"salary"`
	JoiningDate *time.Time `json:"joiningDate"`
	Notes       string     `json:"notes"`
}

// UpdateStaffRequest represents the request body for updating a staff member
type UpdateStaffRequest struct {
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phoneNumber"`
	Email       string     `json:"email"`
	Address     string     `json:"address"`
	Position    string     `json:"position"`
	Salary      float64    `json:"salary"`
	JoiningDate *time.Time `json:"joiningDate"`
	Notes       string     `json:"notes"`
}
