package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VehicleContract struct {
	ID                 uuid.UUID       `json:"contractId"`
	VehicleType        string          `json:"vehicleType"`
	BaseRatePerDay     decimal.Decimal `json:"baseRatePerDay"`
	AllowedMileage     int             `json:"allowedMileage"`
	AvailabilityStatus bool            `json:"availabilityStatus"`
	ProviderID         *uuid.UUID      `json:"providerId"`
	AgentID            *uuid.UUID      `json:"agentId"`
	ProviderName       string          `json:"providerName" gorm:"-"`
}

// VehicleOffer is a search hit decorated with the quoted price for the
// requested rental length and vehicle count.
type VehicleOffer struct {
	ContractID   uuid.UUID       `json:"contractId"`
	VehicleType  string          `json:"vehicleType"`
	ProviderName string          `json:"providerName"`
	BaseRate     decimal.Decimal `json:"baseRate"`
	FinalPrice   decimal.Decimal `json:"finalPrice"`
	Availability string          `json:"availability"`
	ImageURL     string          `json:"imageUrl"`
}
