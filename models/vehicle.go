package models

import "time"

// FuelType is the closed set of vehicle fuel types.
type FuelType string

const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelCNG      FuelType = "CNG"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

// Valid reports whether f is one of the enumerated fuel types.
func (f FuelType) Valid() bool {
	switch f {
	case FuelPetrol, FuelDiesel, FuelCNG, FuelElectric, FuelHybrid:
		return true
	}
	return false
}

// Vehicle is a customer-owned vehicle. The registration number is unique
// across the whole platform, not per owner.
type Vehicle struct {
	ID                 string    `bson:"id" json:"id"`
	UserID             string    `bson:"userId" json:"userId"`
	Make               string    `bson:"make" json:"make"`
	Model              string    `bson:"model" json:"model"`
	Year               int       `bson:"year" json:"year"`
	FuelType           FuelType  `bson:"fueltype" json:"fueltype"`
	RegistrationNumber string    `bson:"registrationNumber" json:"registrationNumber"`
	VehicleColor       string    `bson:"vehicleColor" json:"vehicleColor"`
	CustomNotes        string    `bson:"customNotes,omitempty" json:"customNotes,omitempty"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// VehicleInput carries the client-supplied vehicle attributes; the owner is
// always taken from the authenticated identity.
type VehicleInput struct {
	Make               string   `json:"make"`
	Model              string   `json:"model"`
	Year               int      `json:"year"`
	FuelType           FuelType `json:"fueltype"`
	RegistrationNumber string   `json:"registrationNumber"`
	VehicleColor       string   `json:"vehicleColor"`
	CustomNotes        string   `json:"customNotes"`
}
