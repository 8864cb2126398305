package service_test

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/driveease/rental-service/internal/model"
)

type mockUserStore struct {
	users   map[uuid.UUID]model.User
	created []model.User
	updated []model.User
	deleted []uuid.UUID
}

func newMockUserStore(users ...model.User) *mockUserStore {
	store := &mockUserStore{users: make(map[uuid.UUID]model.User)}
	for _, user := range users {
		store.users[user.ID] = user
	}
	return store
}

func (m *mockUserStore) GetUser(_ context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (m *mockUserStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserStore) ListUsers(_ context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	return users, nil
}

func (m *mockUserStore) ListUsersByRole(_ context.Context, role model.Role) ([]model.User, error) {
	var users []model.User
	for _, user := range m.users {
		if user.Role == role {
			users = append(users, user)
		}
	}
	return users, nil
}

func (m *mockUserStore) CreateUser(_ context.Context, user model.User) (*model.User, error) {
	user.ID = uuid.New()
	m.users[user.ID] = user
	m.created = append(m.created, user)
	return &user, nil
}

func (m *mockUserStore) UpdateUser(_ context.Context, user model.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.users[user.ID] = user
	m.updated = append(m.updated, user)
	return nil
}

func (m *mockUserStore) DeleteUser(_ context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockContractStore struct {
	contracts []model.VehicleContract
}

func (m *mockContractStore) GetContract(_ context.Context, id uuid.UUID) (*model.VehicleContract, error) {
	for _, contract := range m.contracts {
		if contract.ID == id {
			return &contract, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContractStore) ListContracts(_ context.Context) ([]model.VehicleContract, error) {
	return m.contracts, nil
}

func (m *mockContractStore) ListContractsByAgent(_ context.Context, agentID uuid.UUID) ([]model.VehicleContract, error) {
	var contracts []model.VehicleContract
	for _, contract := range m.contracts {
		if contract.AgentID != nil && *contract.AgentID == agentID {
			contracts = append(contracts, contract)
		}
	}
	return contracts, nil
}

func (m *mockContractStore) ListAvailable(_ context.Context, available bool) ([]model.VehicleContract, error) {
	var contracts []model.VehicleContract
	for _, contract := range m.contracts {
		if contract.AvailabilityStatus == available {
			contracts = append(contracts, contract)
		}
	}
	return contracts, nil
}

func (m *mockContractStore) ListAvailableByType(_ context.Context, vehicleType string, available bool) ([]model.VehicleContract, error) {
	var contracts []model.VehicleContract
	for _, contract := range m.contracts {
		if contract.VehicleType == vehicleType && contract.AvailabilityStatus == available {
			contracts = append(contracts, contract)
		}
	}
	return contracts, nil
}

func (m *mockContractStore) CreateContract(_ context.Context, contract model.VehicleContract) (*model.VehicleContract, error) {
	contract.ID = uuid.New()
	m.contracts = append(m.contracts, contract)
	return &contract, nil
}

func (m *mockContractStore) UpdateContract(_ context.Context, contract model.VehicleContract) error {
	for i := range m.contracts {
		if m.contracts[i].ID == contract.ID {
			m.contracts[i] = contract
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockContractStore) SetAvailability(_ context.Context, id uuid.UUID, available bool) error {
	for i := range m.contracts {
		if m.contracts[i].ID == id {
			m.contracts[i].AvailabilityStatus = available
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockContractStore) DeleteContract(_ context.Context, id uuid.UUID) error {
	for i := range m.contracts {
		if m.contracts[i].ID == id {
			m.contracts = append(m.contracts[:i], m.contracts[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockContractStore) VehicleTypeCounts(_ context.Context) ([]model.VehicleTypeCount, error) {
	counts := make(map[string]int64)
	for _, contract := range m.contracts {
		counts[contract.VehicleType]++
	}
	var stats []model.VehicleTypeCount
	for vehicleType, count := range counts {
		stats = append(stats, model.VehicleTypeCount{VehicleType: vehicleType, Count: count})
	}
	return stats, nil
}

type approveCall struct {
	booking   model.Booking
	requestID uuid.UUID
}

type mockBookingStore struct {
	bookings     []model.Booking
	approveCalls []approveCall
	approveErr   error
	revenue      decimal.Decimal
}

func (m *mockBookingStore) GetBooking(_ context.Context, id uuid.UUID) (*model.Booking, error) {
	for _, booking := range m.bookings {
		if booking.ID == id {
			return &booking, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingStore) ListBookings(_ context.Context) ([]model.Booking, error) {
	return m.bookings, nil
}

func (m *mockBookingStore) ListBookingsByAgent(_ context.Context, agentID uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	for _, booking := range m.bookings {
		if booking.AgentID == agentID {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (m *mockBookingStore) CreateBooking(_ context.Context, booking model.Booking) (*model.Booking, error) {
	booking.ID = uuid.New()
	booking.BookingDate = time.Now()
	m.bookings = append(m.bookings, booking)
	return &booking, nil
}

func (m *mockBookingStore) ApproveRequest(_ context.Context, booking model.Booking, requestID uuid.UUID) (*model.Booking, error) {
	if m.approveErr != nil {
		return nil, m.approveErr
	}
	booking.ID = uuid.New()
	booking.BookingDate = time.Now()
	m.bookings = append(m.bookings, booking)
	m.approveCalls = append(m.approveCalls, approveCall{booking: booking, requestID: requestID})
	return &booking, nil
}

func (m *mockBookingStore) UpdateBooking(_ context.Context, id uuid.UUID, customerName *string, pickupDate *time.Time) error {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			if customerName != nil {
				m.bookings[i].CustomerName = *customerName
			}
			if pickupDate != nil {
				m.bookings[i].PickupDate = *pickupDate
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockBookingStore) DeleteBooking(_ context.Context, id uuid.UUID) error {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockBookingStore) TotalRevenue(_ context.Context) (decimal.Decimal, error) {
	return m.revenue, nil
}

func (m *mockBookingStore) TotalBookingCount(_ context.Context) (int64, error) {
	return int64(len(m.bookings)), nil
}

type mockRequestStore struct {
	requests map[uuid.UUID]model.BookingRequest
	created  []model.BookingRequest
}

func newMockRequestStore(requests ...model.BookingRequest) *mockRequestStore {
	store := &mockRequestStore{requests: make(map[uuid.UUID]model.BookingRequest)}
	for _, request := range requests {
		store.requests[request.ID] = request
	}
	return store
}

func (m *mockRequestStore) GetRequest(_ context.Context, id uuid.UUID) (*model.BookingRequest, error) {
	request, ok := m.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &request, nil
}

func (m *mockRequestStore) ListRequestsByAgent(_ context.Context, agentID uuid.UUID) ([]model.BookingRequest, error) {
	var requests []model.BookingRequest
	for _, request := range m.requests {
		if request.AgentID == agentID {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (m *mockRequestStore) ListRequestsByCustomer(_ context.Context, customerID uuid.UUID) ([]model.BookingRequest, error) {
	var requests []model.BookingRequest
	for _, request := range m.requests {
		if request.CustomerID == customerID {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (m *mockRequestStore) CreateRequest(_ context.Context, request model.BookingRequest) (*model.BookingRequest, error) {
	request.ID = uuid.New()
	request.RequestDate = time.Now()
	m.requests[request.ID] = request
	m.created = append(m.created, request)
	return &request, nil
}

type mailCall struct {
	toEmail      string
	customerName string
	vehicle      string
	pickupDate   string
	price        string
}

type mockMailer struct {
	calls []mailCall
	err   error
}

func (m *mockMailer) SendBookingConfirmation(toEmail, customerName, vehicle, pickupDate, price string) error {
	m.calls = append(m.calls, mailCall{
		toEmail:      toEmail,
		customerName: customerName,
		vehicle:      vehicle,
		pickupDate:   pickupDate,
		price:        price,
	})
	return m.err
}

type mockReceiptGenerator struct {
	content []byte
	err     error
}

func (m *mockReceiptGenerator) Generate(_ model.BookingDocument) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.content == nil {
		return []byte("%PDF-1.4"), nil
	}
	return m.content, nil
}

var errBoom = errors.New("boom")
