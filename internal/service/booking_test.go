package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/driveease/rental-service/internal/model"
	"github.com/driveease/rental-service/internal/service"
)

type bookingFixture struct {
	svc       *service.BookingService
	users     *mockUserStore
	contracts *mockContractStore
	bookings  *mockBookingStore
	requests  *mockRequestStore
	mailer    *mockMailer

	customer model.User
	agent    model.User
	contract model.VehicleContract
	request  model.BookingRequest
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	customer := model.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Role:     model.RoleCustomer,
	}
	agent := model.User{
		ID:       uuid.New(),
		Username: "bob",
		Role:     model.RoleAgent,
	}
	contract := model.VehicleContract{
		ID:                 uuid.New(),
		VehicleType:        "SUV",
		BaseRatePerDay:     decimal.RequireFromString("100.00"),
		AvailabilityStatus: true,
	}
	request := model.BookingRequest{
		ID:          uuid.New(),
		CustomerID:  customer.ID,
		AgentID:     agent.ID,
		ContractID:  contract.ID,
		VehicleType: "SUV",
		FinalPrice:  decimal.RequireFromString("660.00"),
		Status:      model.RequestStatusPending,
		RequestDate: time.Now(),
	}

	users := newMockUserStore(customer, agent)
	contracts := &mockContractStore{contracts: []model.VehicleContract{contract}}
	bookings := &mockBookingStore{}
	requests := newMockRequestStore(request)
	mailer := &mockMailer{}

	svc := service.NewBookingService(
		contracts, bookings, requests, users, mailer, &mockReceiptGenerator{}, zerolog.Nop(),
	)

	return &bookingFixture{
		svc:       svc,
		users:     users,
		contracts: contracts,
		bookings:  bookings,
		requests:  requests,
		mailer:    mailer,
		customer:  customer,
		agent:     agent,
		contract:  contract,
		request:   request,
	}
}

func (f *bookingFixture) approveInput() service.ApproveRequestInput {
	return service.ApproveRequestInput{
		RequestID:    f.request.ID,
		CustomerID:   f.customer.ID,
		AgentID:      f.agent.ID,
		ContractID:   f.contract.ID,
		RentalDays:   3,
		VehicleCount: 2,
		FinalPrice:   decimal.RequireFromString("660.00"),
	}
}

func TestSubmitRequest(t *testing.T) {
	f := newBookingFixture(t)

	request, err := f.svc.SubmitRequest(context.Background(), service.SubmitRequestInput{
		CustomerID:  f.customer.ID,
		AgentID:     f.agent.ID,
		ContractID:  f.contract.ID,
		VehicleType: "SUV",
		FinalPrice:  decimal.RequireFromString("330.00"),
	})
	require.NoError(t, err)
	require.Equal(t, model.RequestStatusPending, request.Status)
	require.False(t, request.RequestDate.IsZero())
	require.Len(t, f.requests.created, 1)
}

func TestSubmitRequestUnknownContract(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.SubmitRequest(context.Background(), service.SubmitRequestInput{
		CustomerID:  f.customer.ID,
		AgentID:     f.agent.ID,
		ContractID:  uuid.New(),
		VehicleType: "SUV",
		FinalPrice:  decimal.RequireFromString("330.00"),
	})
	require.ErrorIs(t, err, service.ErrNotFound)
	require.Empty(t, f.requests.created)
}

func TestApproveRequest(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.svc.ApproveRequest(context.Background(), f.approveInput())
	require.NoError(t, err)

	require.Len(t, f.bookings.approveCalls, 1)
	call := f.bookings.approveCalls[0]
	require.Equal(t, f.request.ID, call.requestID)
	require.Equal(t, f.contract.ID, booking.ContractID)
	require.NotNil(t, booking.CustomerID)
	require.Equal(t, f.customer.ID, *booking.CustomerID)
	require.Equal(t, 3, booking.RentalDays)
	require.Equal(t, 2, booking.VehicleCount)

	// Confirmation carries the request's vehicle type and price, not the
	// contract's.
	require.Len(t, f.mailer.calls, 1)
	mail := f.mailer.calls[0]
	require.Equal(t, "alice@example.com", mail.toEmail)
	require.Equal(t, "alice", mail.customerName)
	require.Equal(t, "SUV", mail.vehicle)
	require.Equal(t, "660.00", mail.price)
}

func TestApproveRequestMailFailureSwallowed(t *testing.T) {
	f := newBookingFixture(t)
	f.mailer.err = errBoom

	booking, err := f.svc.ApproveRequest(context.Background(), f.approveInput())
	require.NoError(t, err, "mail failure must not fail the approval")
	require.NotNil(t, booking)
	require.Len(t, f.bookings.approveCalls, 1)
}

func TestApproveRequestSkipsMailWithoutEmail(t *testing.T) {
	f := newBookingFixture(t)
	customer := f.customer
	customer.Email = ""
	f.users.users[customer.ID] = customer

	_, err := f.svc.ApproveRequest(context.Background(), f.approveInput())
	require.NoError(t, err)
	require.Empty(t, f.mailer.calls)
}

func TestApproveRequestUnknownContract(t *testing.T) {
	f := newBookingFixture(t)
	input := f.approveInput()
	input.ContractID = uuid.New()

	_, err := f.svc.ApproveRequest(context.Background(), input)
	require.ErrorIs(t, err, service.ErrNotFound)
	require.Empty(t, f.bookings.approveCalls, "nothing may be persisted")
	require.Empty(t, f.mailer.calls)
}

func TestApproveRequestUnknownRequest(t *testing.T) {
	f := newBookingFixture(t)
	input := f.approveInput()
	input.RequestID = uuid.New()

	_, err := f.svc.ApproveRequest(context.Background(), input)
	require.ErrorIs(t, err, service.ErrNotFound)
	require.Empty(t, f.bookings.approveCalls)
}

func TestCreateBookingDirect(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.svc.CreateBooking(context.Background(), service.CreateBookingInput{
		AgentID:      f.agent.ID,
		ContractID:   f.contract.ID,
		CustomerName: "Walk-in Guest",
		Requirements: "child seat",
		PickupDate:   time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
		RentalDays:   2,
		VehicleCount: 1,
		FinalPrice:   decimal.RequireFromString("220.00"),
	})
	require.NoError(t, err)
	require.Nil(t, booking.CustomerID, "walk-in bookings have no customer account")
	require.Equal(t, "Walk-in Guest", booking.CustomerName)
	require.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), booking.PickupDate)
	require.Empty(t, f.mailer.calls, "direct bookings send no confirmation")
}

func TestCreateBookingRejectsBadCounts(t *testing.T) {
	f := newBookingFixture(t)

	input := service.CreateBookingInput{
		AgentID:      f.agent.ID,
		ContractID:   f.contract.ID,
		PickupDate:   time.Now(),
		RentalDays:   0,
		VehicleCount: 1,
		FinalPrice:   decimal.RequireFromString("100.00"),
	}
	_, err := f.svc.CreateBooking(context.Background(), input)
	require.ErrorIs(t, err, service.ErrInvalidInput)

	input.RentalDays = 1
	input.VehicleCount = -2
	_, err = f.svc.CreateBooking(context.Background(), input)
	require.ErrorIs(t, err, service.ErrInvalidInput)

	require.Empty(t, f.bookings.bookings)
}

func TestBookingReceipt(t *testing.T) {
	f := newBookingFixture(t)

	booking, err := f.svc.CreateBooking(context.Background(), service.CreateBookingInput{
		AgentID:      f.agent.ID,
		ContractID:   f.contract.ID,
		CustomerName: "Walk-in Guest",
		PickupDate:   time.Now(),
		RentalDays:   1,
		VehicleCount: 1,
		FinalPrice:   decimal.RequireFromString("110.00"),
	})
	require.NoError(t, err)

	result, err := f.svc.Receipt(context.Background(), booking.ID)
	require.NoError(t, err)
	require.Equal(t, "booking-"+booking.ID.String()+".pdf", result.FileName)
	require.NotEmpty(t, result.Content)
}

func TestBookingReceiptUnknownBooking(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.Receipt(context.Background(), uuid.New())
	require.ErrorIs(t, err, service.ErrNotFound)
}
