package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RequestStatus string

// A request starts PENDING and only ever moves to APPROVED. There is no
// rejected or cancelled state in this model.
const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
)

type BookingRequest struct {
	ID          uuid.UUID       `json:"requestId"`
	CustomerID  uuid.UUID       `json:"customerId"`
	AgentID     uuid.UUID       `json:"agentId"`
	ContractID  uuid.UUID       `json:"contractId"`
	VehicleType string          `json:"vehicleType"`
	FinalPrice  decimal.Decimal `json:"finalPrice"`
	Status      RequestStatus   `json:"status"`
	RequestDate time.Time       `json:"requestDate"`
}
