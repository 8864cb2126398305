package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/driveease/rental-service/internal/model"
)

// Store interfaces are implemented by the repository package and passed into
// each service explicitly; tests substitute hand-written mocks.

type UserStore interface {
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	ListUsersByRole(ctx context.Context, role model.Role) ([]model.User, error)
	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	UpdateUser(ctx context.Context, user model.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type ProviderStore interface {
	GetProvider(ctx context.Context, id uuid.UUID) (*model.Provider, error)
	ListProviders(ctx context.Context) ([]model.Provider, error)
	CreateProvider(ctx context.Context, provider model.Provider) (*model.Provider, error)
	UpdateProvider(ctx context.Context, provider model.Provider) error
	DeleteProvider(ctx context.Context, id uuid.UUID) error
}

type ContractStore interface {
	GetContract(ctx context.Context, id uuid.UUID) (*model.VehicleContract, error)
	ListContracts(ctx context.Context) ([]model.VehicleContract, error)
	ListContractsByAgent(ctx context.Context, agentID uuid.UUID) ([]model.VehicleContract, error)
	ListAvailable(ctx context.Context, available bool) ([]model.VehicleContract, error)
	ListAvailableByType(ctx context.Context, vehicleType string, available bool) ([]model.VehicleContract, error)
	CreateContract(ctx context.Context, contract model.VehicleContract) (*model.VehicleContract, error)
	UpdateContract(ctx context.Context, contract model.VehicleContract) error
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	DeleteContract(ctx context.Context, id uuid.UUID) error
	VehicleTypeCounts(ctx context.Context) ([]model.VehicleTypeCount, error)
}

type BookingStore interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	ListBookings(ctx context.Context) ([]model.Booking, error)
	ListBookingsByAgent(ctx context.Context, agentID uuid.UUID) ([]model.Booking, error)
	CreateBooking(ctx context.Context, booking model.Booking) (*model.Booking, error)
	ApproveRequest(ctx context.Context, booking model.Booking, requestID uuid.UUID) (*model.Booking, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, customerName *string, pickupDate *time.Time) error
	DeleteBooking(ctx context.Context, id uuid.UUID) error
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	TotalBookingCount(ctx context.Context) (int64, error)
}

type RequestStore interface {
	GetRequest(ctx context.Context, id uuid.UUID) (*model.BookingRequest, error)
	ListRequestsByAgent(ctx context.Context, agentID uuid.UUID) ([]model.BookingRequest, error)
	ListRequestsByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.BookingRequest, error)
	CreateRequest(ctx context.Context, request model.BookingRequest) (*model.BookingRequest, error)
}

type ContactStore interface {
	CreateMessage(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error)
	ListMessages(ctx context.Context) ([]model.ContactMessage, error)
}

// Mailer delivers the booking confirmation. Failures are logged by the
// caller and never surfaced to the client.
type Mailer interface {
	SendBookingConfirmation(toEmail, customerName, vehicle, pickupDate, price string) error
}

// ReceiptGenerator renders a booking receipt document.
type ReceiptGenerator interface {
	Generate(doc model.BookingDocument) ([]byte, error)
}

// ExcelGenerator renders the admin summary workbook.
type ExcelGenerator interface {
	Generate(report model.SummaryReport) ([]byte, error)
}
