package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driveease/rental-service/internal/model"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

const requestColumns = `
	id,
	customer_id,
	agent_id,
	contract_id,
	vehicle_type,
	final_price,
	status,
	request_date
`

func (r *RequestRepository) GetRequest(ctx context.Context, id uuid.UUID) (*model.BookingRequest, error) {
	var request model.BookingRequest
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+requestColumns+`
		FROM booking_requests
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&request).Error; err != nil {
		return nil, err
	}
	if request.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &request, nil
}

func (r *RequestRepository) ListRequestsByAgent(ctx context.Context, agentID uuid.UUID) ([]model.BookingRequest, error) {
	var requests []model.BookingRequest
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+requestColumns+`
		FROM booking_requests
		WHERE agent_id = ?
		ORDER BY request_date DESC
	`, agentID).Scan(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepository) ListRequestsByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.BookingRequest, error) {
	var requests []model.BookingRequest
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+requestColumns+`
		FROM booking_requests
		WHERE customer_id = ?
		ORDER BY request_date DESC
	`, customerID).Scan(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepository) CreateRequest(ctx context.Context, request model.BookingRequest) (*model.BookingRequest, error) {
	var saved model.BookingRequest
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO booking_requests (
			customer_id,
			agent_id,
			contract_id,
			vehicle_type,
			final_price,
			status
		) VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+requestColumns+`
	`,
		request.CustomerID,
		request.AgentID,
		request.ContractID,
		request.VehicleType,
		request.FinalPrice,
		request.Status,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
