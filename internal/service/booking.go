package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/driveease/rental-service/internal/model"
)

// BookingService drives the request lifecycle (PENDING → APPROVED), direct
// walk-in bookings and vehicle search.
type BookingService struct {
	contracts ContractStore
	bookings  BookingStore
	requests  RequestStore
	users     UserStore
	mailer    Mailer
	receipts  ReceiptGenerator
	log       zerolog.Logger
}

func NewBookingService(
	contracts ContractStore,
	bookings BookingStore,
	requests RequestStore,
	users UserStore,
	mailer Mailer,
	receipts ReceiptGenerator,
	log zerolog.Logger,
) *BookingService {
	return &BookingService{
		contracts: contracts,
		bookings:  bookings,
		requests:  requests,
		users:     users,
		mailer:    mailer,
		receipts:  receipts,
		log:       log,
	}
}

type SubmitRequestInput struct {
	CustomerID  uuid.UUID
	AgentID     uuid.UUID
	ContractID  uuid.UUID
	VehicleType string
	FinalPrice  decimal.Decimal
}

// SubmitRequest persists a new PENDING booking request. Every reference
// must resolve or the whole operation fails.
func (s *BookingService) SubmitRequest(ctx context.Context, input SubmitRequestInput) (*model.BookingRequest, error) {
	customer, err := s.lookupUser(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	agent, err := s.lookupUser(ctx, input.AgentID)
	if err != nil {
		return nil, err
	}
	contract, err := s.lookupContract(ctx, input.ContractID)
	if err != nil {
		return nil, err
	}

	return s.requests.CreateRequest(ctx, model.BookingRequest{
		CustomerID:  customer.ID,
		AgentID:     agent.ID,
		ContractID:  contract.ID,
		VehicleType: input.VehicleType,
		FinalPrice:  input.FinalPrice,
		Status:      model.RequestStatusPending,
	})
}

type ApproveRequestInput struct {
	RequestID    uuid.UUID
	CustomerID   uuid.UUID
	AgentID      uuid.UUID
	ContractID   uuid.UUID
	RentalDays   int
	VehicleCount int
	FinalPrice   decimal.Decimal
}

// ApproveRequest creates the booking and flips the request to APPROVED in
// one transaction, then sends the confirmation mail. A mail failure is
// logged and swallowed; the approval stands.
func (s *BookingService) ApproveRequest(ctx context.Context, input ApproveRequestInput) (*model.Booking, error) {
	request, err := s.lookupRequest(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}
	customer, err := s.lookupUser(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	agent, err := s.lookupUser(ctx, input.AgentID)
	if err != nil {
		return nil, err
	}
	contract, err := s.lookupContract(ctx, input.ContractID)
	if err != nil {
		return nil, err
	}

	pickupDate := dateOnly(time.Now())
	customerID := customer.ID
	booking := model.Booking{
		ContractID:   contract.ID,
		CustomerID:   &customerID,
		AgentID:      agent.ID,
		CustomerName: customer.Username,
		PickupDate:   pickupDate,
		RentalDays:   input.RentalDays,
		VehicleCount: input.VehicleCount,
		FinalPrice:   input.FinalPrice,
	}

	saved, err := s.bookings.ApproveRequest(ctx, booking, request.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if customer.Email != "" {
		// The vehicle label and price come from the request, not the
		// contract, matching what the customer originally asked for.
		if err := s.mailer.SendBookingConfirmation(
			customer.Email,
			customer.Username,
			request.VehicleType,
			pickupDate.Format("2006-01-02"),
			request.FinalPrice.String(),
		); err != nil {
			s.log.Warn().Err(err).
				Str("booking_id", saved.ID.String()).
				Str("to", customer.Email).
				Msg("booking confirmation mail failed")
		}
	}

	return saved, nil
}

type CreateBookingInput struct {
	AgentID      uuid.UUID
	ContractID   uuid.UUID
	CustomerName string
	Requirements string
	PickupDate   time.Time
	RentalDays   int
	VehicleCount int
	FinalPrice   decimal.Decimal
}

// CreateBooking is the direct walk-in path: an agent books straight from a
// contract, no customer account and no request involved.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*model.Booking, error) {
	if input.RentalDays < 1 {
		return nil, fmt.Errorf("%w: rental days must be at least 1", ErrInvalidInput)
	}
	if input.VehicleCount < 1 {
		return nil, fmt.Errorf("%w: vehicle count must be at least 1", ErrInvalidInput)
	}

	agent, err := s.lookupUser(ctx, input.AgentID)
	if err != nil {
		return nil, err
	}
	contract, err := s.lookupContract(ctx, input.ContractID)
	if err != nil {
		return nil, err
	}

	return s.bookings.CreateBooking(ctx, model.Booking{
		ContractID:   contract.ID,
		AgentID:      agent.ID,
		CustomerName: input.CustomerName,
		Requirements: input.Requirements,
		PickupDate:   dateOnly(input.PickupDate),
		RentalDays:   input.RentalDays,
		VehicleCount: input.VehicleCount,
		FinalPrice:   input.FinalPrice,
	})
}

func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	booking, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]model.Booking, error) {
	return s.bookings.ListBookings(ctx)
}

func (s *BookingService) ListBookingsByAgent(ctx context.Context, agentID uuid.UUID) ([]model.Booking, error) {
	return s.bookings.ListBookingsByAgent(ctx, agentID)
}

func (s *BookingService) ListRequestsByAgent(ctx context.Context, agentID uuid.UUID) ([]model.BookingRequest, error) {
	return s.requests.ListRequestsByAgent(ctx, agentID)
}

func (s *BookingService) ListRequestsByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.BookingRequest, error) {
	return s.requests.ListRequestsByCustomer(ctx, customerID)
}

// UpdateBooking applies a partial update; only customer name and pickup
// date are editable after creation.
func (s *BookingService) UpdateBooking(ctx context.Context, id uuid.UUID, customerName *string, pickupDate *time.Time) error {
	if err := s.bookings.UpdateBooking(ctx, id, customerName, pickupDate); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if err := s.bookings.DeleteBooking(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

type ReceiptResult struct {
	FileName string
	Content  []byte
}

// Receipt renders a PDF receipt for an existing booking.
func (s *BookingService) Receipt(ctx context.Context, bookingID uuid.UUID) (*ReceiptResult, error) {
	booking, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	contract, err := s.lookupContract(ctx, booking.ContractID)
	if err != nil {
		return nil, err
	}

	content, err := s.receipts.Generate(model.BookingDocument{
		Booking:  *booking,
		Contract: *contract,
	})
	if err != nil {
		return nil, err
	}

	return &ReceiptResult{
		FileName: fmt.Sprintf("booking-%s.pdf", booking.ID),
		Content:  content,
	}, nil
}

func (s *BookingService) lookupUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
		}
		return nil, err
	}
	return user, nil
}

func (s *BookingService) lookupContract(ctx context.Context, id uuid.UUID) (*model.VehicleContract, error) {
	contract, err := s.contracts.GetContract(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contract %s", ErrNotFound, id)
		}
		return nil, err
	}
	return contract, nil
}

func (s *BookingService) lookupRequest(ctx context.Context, id uuid.UUID) (*model.BookingRequest, error) {
	request, err := s.requests.GetRequest(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: request %s", ErrNotFound, id)
		}
		return nil, err
	}
	return request, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
