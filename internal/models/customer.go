package models

import "time"

// Measurements is the legacy flat measurement record kept for
// backward compatibility with older customer data.
type Measurements struct {
	Chest    string `json:"chest,omitempty"`
	Waist    string `json:"waist,omitempty"`
	Hips     string `json:"hips,omitempty"`
	Inseam   string `json:"inseam,omitempty"`
	Shoulder string `json:"shoulder,omitempty"`
	Sleeve   string `json:"sleeve,omitempty"`
	Neck     string `json:"neck,omitempty"`
}

// DetailedMeasurement is one captured garment measurement entry.
// Entries accumulate on a customer and are never removed by the API.
type DetailedMeasurement struct {
	ID                string    `json:"id"`
	MeasurementNumber string    `json:"measurementNumber,omitempty"`
	Length            string    `json:"length,omitempty"`
	Arm               string    `json:"arm,omitempty"`
	Teera             string    `json:"teera,omitempty"`
	Chest             string    `json:"chest,omitempty"`
	Neck              string    `json:"neck,omitempty"`
	Waist             string    `json:"waist,omitempty"`
	Pant              string    `json:"pant,omitempty"`
	Pancha            string    `json:"pancha,omitempty"`
	FrontPocket       string    `json:"frontPocket"`
	SidePocket        string    `json:"sidePocket"`
	Patti             string    `json:"patti"`
	Collar            string    `json:"collar"`
	Bain              string    `json:"bain"`
	Kuff              string    `json:"kuff"`
	Ghera             string    `json:"ghera"`
	Zip               string    `json:"zip"`
	Notes             string    `json:"notes,omitempty"`
	Date              time.Time `json:"date"`
}

type Customer struct {
	ID                   int                   `json:"id"`
	Name                 string                `json:"name"`
	PhoneNumber          string                `json:"phoneNumber"`
	Email                string                `json:"email,omitempty"`
	Address              string                `json:"address,omitempty"`
	Measurements         *Measurements         `json:"measurements,omitempty"`
	DetailedMeasurements []DetailedMeasurement `json:"detailedMeasurements"`
	Notes                string                `json:"notes,omitempty"`
	CreatedAt            time.Time             `json:"createdAt"`
	UpdatedAt            time.Time             `json:"updatedAt"`
}

// CustomerWithOrderCount decorates a customer with the number of orders
// matching either its stored reference or its phone number.
type CustomerWithOrderCount struct {
	Customer
	OrderCount int `json:"orderCount"`
}

// CustomerWithOrders is the get-by-id response with the customer's
// orders inlined.
type CustomerWithOrders struct {
	Customer
	Orders []*Order `json:"orders"`
}

// CreateCustomerRequest represents the request body for creating a customer
type CreateCustomerRequest struct {
	Name                 string                `json:"name"`
	PhoneNumber          string                `json:"phoneNumber"`
	Email                string                `json:"email"`
	Address              string                `json:"address"`
	Measurements         *Measurements         `json:"measurements"`
	DetailedMeasurements []DetailedMeasurement `json:"detailedMeasurements"`
	Notes                string                `json:"notes"`
}

// UpdateCustomerRequest represents the request body for updating a customer.
// Full-field replace semantics, not a partial patch.
type UpdateCustomerRequest struct {
	Name                 string                `json:"name"`
	PhoneNumber          string                `json:"phoneNumber"`
	Email                string                `json:"email"`
	Address              string                `json:"address"`
	Measurements         *Measurements         `json:"measurements"`
	DetailedMeasurements []DetailedMeasurement `json:"detailedMeasurements"`
	Notes                string                `json:"notes"`
}

// AddMeasurementRequest appends one detailed measurement to a customer.
type AddMeasurementRequest struct {
	MeasurementNumber string `json:"measurementNumber"`
	Length            string `json:"length"`
	Arm               string `json:"arm"`
	Teera             string `json:"teera"`
	Chest             string `json:"chest"`
	Neck              string `json:"neck"`
	Waist             string `json:"waist"`
	Pant              string `json:"pant"`
	Pancha            string `json:"pancha"`
	FrontPocket       string `json:"frontPocket"`
	SidePocket        string `json:"sidePocket"`
	Patti             string `json:"patti"`
	Collar            string `json:"collar"`
	Bain              string `json:"bain"`
	Kuff              string `json:"kuff"`
	Ghera             string `json:"ghera"`
	Zip               string `json:"zip"`
	Notes             string `json:"notes"`
}
