package http_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/driveease/rental-service/internal/model"
)

// In-memory stores backing the full router in tests. They mirror the
// repository contracts closely enough for end-to-end request assertions.

type stubUserStore struct {
	users map[uuid.UUID]model.User
}

func newStubUserStore(users ...model.User) *stubUserStore {
	store := &stubUserStore{users: make(map[uuid.UUID]model.User)}
	for _, user := range users {
		store.users[user.ID] = user
	}
	return store
}

func (s *stubUserStore) GetUser(_ context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (s *stubUserStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserStore) ListUsers(_ context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

func (s *stubUserStore) ListUsersByRole(_ context.Context, role model.Role) ([]model.User, error) {
	var users []model.User
	for _, user := range s.users {
		if user.Role == role {
			users = append(users, user)
		}
	}
	return users, nil
}

func (s *stubUserStore) CreateUser(_ context.Context, user model.User) (*model.User, error) {
	user.ID = uuid.New()
	s.users[user.ID] = user
	return &user, nil
}

func (s *stubUserStore) UpdateUser(_ context.Context, user model.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.users[user.ID] = user
	return nil
}

func (s *stubUserStore) DeleteUser(_ context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.users, id)
	return nil
}

type stubProviderStore struct {
	providers []model.Provider
}

func (s *stubProviderStore) GetProvider(_ context.Context, id uuid.UUID) (*model.Provider, error) {
	for _, provider := range s.providers {
		if provider.ID == id {
			return &provider, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubProviderStore) ListProviders(_ context.Context) ([]model.Provider, error) {
	return s.providers, nil
}

func (s *stubProviderStore) CreateProvider(_ context.Context, provider model.Provider) (*model.Provider, error) {
	provider.ID = uuid.New()
	s.providers = append(s.providers, provider)
	return &provider, nil
}

func (s *stubProviderStore) UpdateProvider(_ context.Context, provider model.Provider) error {
	for i := range s.providers {
		if s.providers[i].ID == provider.ID {
			s.providers[i] = provider
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *stubProviderStore) DeleteProvider(_ context.Context, id uuid.UUID) error {
	for i := range s.providers {
		if s.providers[i].ID == id {
			s.providers = append(s.providers[:i], s.providers[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type stubContractStore struct {
	contracts []model.VehicleContract
}

func (s *stubContractStore) GetContract(_ context.Context, id uuid.UUID) (*model.VehicleContract, error) {
	for _, contract := range s.contracts {
		if contract.ID == id {
			return &contract, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubContractStore) ListContracts(_ context.Context) ([]model.VehicleContract, error) {
	return s.contracts, nil
}

func (s *stubContractStore) ListContractsByAgent(_ context.Context, agentID uuid.UUID) ([]model.VehicleContract, error) {
	var contracts []model.VehicleContract
	for _, contract := range s.contracts {
		if contract.AgentID != nil && *contract.AgentID == agentID {
			contracts = append(contracts, contract)
		}
	}
	return contracts, nil
}

func (s *stubContractStore) ListAvailable(_ context.Context, available bool) ([]model.VehicleContract, error) {
	var contracts []model.VehicleContract
	for _, contract := range s.contracts {
		if contract.AvailabilityStatus == available {
			contracts = append(contracts, contract)
		}
	}
	return contracts, nil
}

func (s *stubContractStore) ListAvailableByType(_ context.Context, vehicleType string, available bool) ([]model.VehicleContract, error) {
	var contracts []model.VehicleContract
	for _, contract := range s.contracts {
		if contract.VehicleType == vehicleType && contract.AvailabilityStatus == available {
			contracts = append(contracts, contract)
		}
	}
	return contracts, nil
}

func (s *stubContractStore) CreateContract(_ context.Context, contract model.VehicleContract) (*model.VehicleContract, error) {
	contract.ID = uuid.New()
	s.contracts = append(s.contracts, contract)
	return &contract, nil
}

func (s *stubContractStore) UpdateContract(_ context.Context, contract model.VehicleContract) error {
	for i := range s.contracts {
		if s.contracts[i].ID == contract.ID {
			s.contracts[i] = contract
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *stubContractStore) SetAvailability(_ context.Context, id uuid.UUID, available bool) error {
	for i := range s.contracts {
		if s.contracts[i].ID == id {
			s.contracts[i].AvailabilityStatus = available
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *stubContractStore) DeleteContract(_ context.Context, id uuid.UUID) error {
	for i := range s.contracts {
		if s.contracts[i].ID == id {
			s.contracts = append(s.contracts[:i], s.contracts[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *stubContractStore) VehicleTypeCounts(_ context.Context) ([]model.VehicleTypeCount, error) {
	counts := make(map[string]int64)
	for _, contract := range s.contracts {
		counts[contract.VehicleType]++
	}
	var stats []model.VehicleTypeCount
	for vehicleType, count := range counts {
		stats = append(stats, model.VehicleTypeCount{VehicleType: vehicleType, Count: count})
	}
	return stats, nil
}

type stubBookingStore struct {
	bookings []model.Booking
	requests *stubRequestStore
}

func (s *stubBookingStore) GetBooking(_ context.Context, id uuid.UUID) (*model.Booking, error) {
	for _, booking := range s.bookings {
		if booking.ID == id {
			return &booking, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubBookingStore) ListBookings(_ context.Context) ([]model.Booking, error) {
	return s.bookings, nil
}

func (s *stubBookingStore) ListBookingsByAgent(_ context.Context, agentID uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	for _, booking := range s.bookings {
		if booking.AgentID == agentID {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (s *stubBookingStore) CreateBooking(_ context.Context, booking model.Booking) (*model.Booking, error) {
	booking.ID = uuid.New()
	booking.BookingDate = time.Now()
	s.bookings = append(s.bookings, booking)
	return &booking, nil
}

func (s *stubBookingStore) ApproveRequest(_ context.Context, booking model.Booking, requestID uuid.UUID) (*model.Booking, error) {
	request, ok := s.requests.requests[requestID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	request.Status = model.RequestStatusApproved
	s.requests.requests[requestID] = request

	booking.ID = uuid.New()
	booking.BookingDate = time.Now()
	s.bookings = append(s.bookings, booking)
	return &booking, nil
}

func (s *stubBookingStore) UpdateBooking(_ context.Context, id uuid.UUID, customerName *string, pickupDate *time.Time) error {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			if customerName != nil {
				s.bookings[i].CustomerName = *customerName
			}
			if pickupDate != nil {
				s.bookings[i].PickupDate = *pickupDate
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *stubBookingStore) DeleteBooking(_ context.Context, id uuid.UUID) error {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *stubBookingStore) TotalRevenue(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, booking := range s.bookings {
		total = total.Add(booking.FinalPrice)
	}
	return total, nil
}

func (s *stubBookingStore) TotalBookingCount(_ context.Context) (int64, error) {
	return int64(len(s.bookings)), nil
}

type stubRequestStore struct {
	requests map[uuid.UUID]model.BookingRequest
}

func newStubRequestStore(requests ...model.BookingRequest) *stubRequestStore {
	store := &stubRequestStore{requests: make(map[uuid.UUID]model.BookingRequest)}
	for _, request := range requests {
		store.requests[request.ID] = request
	}
	return store
}

func (s *stubRequestStore) GetRequest(_ context.Context, id uuid.UUID) (*model.BookingRequest, error) {
	request, ok := s.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &request, nil
}

func (s *stubRequestStore) ListRequestsByAgent(_ context.Context, agentID uuid.UUID) ([]model.BookingRequest, error) {
	var requests []model.BookingRequest
	for _, request := range s.requests {
		if request.AgentID == agentID {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (s *stubRequestStore) ListRequestsByCustomer(_ context.Context, customerID uuid.UUID) ([]model.BookingRequest, error) {
	var requests []model.BookingRequest
	for _, request := range s.requests {
		if request.CustomerID == customerID {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (s *stubRequestStore) CreateRequest(_ context.Context, request model.BookingRequest) (*model.BookingRequest, error) {
	request.ID = uuid.New()
	request.RequestDate = time.Now()
	s.requests[request.ID] = request
	return &request, nil
}

type stubContactStore struct {
	messages []model.ContactMessage
}

func (s *stubContactStore) CreateMessage(_ context.Context, msg model.ContactMessage) (*model.ContactMessage, error) {
	msg.ID = uuid.New()
	msg.SubmittedAt = time.Now()
	s.messages = append(s.messages, msg)
	return &msg, nil
}

func (s *stubContactStore) ListMessages(_ context.Context) ([]model.ContactMessage, error) {
	return s.messages, nil
}

type stubMailer struct {
	sent int
	err  error
}

func (s *stubMailer) SendBookingConfirmation(_, _, _, _, _ string) error {
	if s.err != nil {
		return s.err
	}
	s.sent++
	return nil
}

type stubReceiptGenerator struct{}

func (stubReceiptGenerator) Generate(_ model.BookingDocument) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

type stubExcelGenerator struct{}

func (stubExcelGenerator) Generate(_ model.SummaryReport) ([]byte, error) {
	return []byte("PK"), nil
}
