package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Booking struct {
	ID           uuid.UUID       `json:"bookingId"`
	ContractID   uuid.UUID       `json:"contractId"`
	CustomerID   *uuid.UUID      `json:"customerId"` // nil for walk-in bookings
	AgentID      uuid.UUID       `json:"agentId"`
	CustomerName string          `json:"customerName"`
	Requirements string          `json:"requirements"`
	PickupDate   time.Time       `json:"pickupDate"`
	RentalDays   int             `json:"rentalDays"`
	VehicleCount int             `json:"vehicleCount"`
	FinalPrice   decimal.Decimal `json:"finalPrice"`
	BookingDate  time.Time       `json:"bookingDate"` // set once on insert, never updated
}

// BookingDocument carries everything the receipt generator needs.
type BookingDocument struct {
	Booking  Booking
	Contract VehicleContract
}
