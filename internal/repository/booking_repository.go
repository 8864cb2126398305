package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/driveease/rental-service/internal/model"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `
	id,
	contract_id,
	customer_id,
	agent_id,
	COALESCE(customer_name, '') AS customer_name,
	COALESCE(requirements, '') AS requirements,
	pickup_date,
	rental_days,
	vehicle_count,
	final_price,
	booking_date
`

func (r *BookingRepository) GetBooking(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&booking).Error; err != nil {
		return nil, err
	}
	if booking.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &booking, nil
}

func (r *BookingRepository) ListBookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).Raw(`
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY booking_date DESC
	`).Scan(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) ListBookingsByAgent(ctx context.Context, agentID uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE agent_id = ?
		ORDER BY booking_date DESC
	`, agentID).Scan(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) CreateBooking(ctx context.Context, booking model.Booking) (*model.Booking, error) {
	var saved model.Booking
	err := r.db.WithContext(ctx).Raw(insertBookingQuery,
		booking.ContractID,
		booking.CustomerID,
		booking.AgentID,
		booking.CustomerName,
		booking.Requirements,
		booking.PickupDate,
		booking.RentalDays,
		booking.VehicleCount,
		booking.FinalPrice,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// ApproveRequest inserts the booking and flips the originating request to
// APPROVED inside one transaction so a failure leaves neither write behind.
func (r *BookingRepository) ApproveRequest(ctx context.Context, booking model.Booking, requestID uuid.UUID) (*model.Booking, error) {
	var saved model.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Raw(insertBookingQuery,
			booking.ContractID,
			booking.CustomerID,
			booking.AgentID,
			booking.CustomerName,
			booking.Requirements,
			booking.PickupDate,
			booking.RentalDays,
			booking.VehicleCount,
			booking.FinalPrice,
		).Scan(&saved).Error; err != nil {
			return err
		}

		result := tx.Exec(`
			UPDATE booking_requests
			SET status = ?
			WHERE id = ?
		`, model.RequestStatusApproved, requestID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

const insertBookingQuery = `
	INSERT INTO bookings (
		contract_id,
		customer_id,
		agent_id,
		customer_name,
		requirements,
		pickup_date,
		rental_days,
		vehicle_count,
		final_price
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING
		id,
		contract_id,
		customer_id,
		agent_id,
		COALESCE(customer_name, '') AS customer_name,
		COALESCE(requirements, '') AS requirements,
		pickup_date,
		rental_days,
		vehicle_count,
		final_price,
		booking_date
`

func (r *BookingRepository) UpdateBooking(ctx context.Context, id uuid.UUID, customerName *string, pickupDate *time.Time) error {
	query := `UPDATE bookings SET `
	args := make([]interface{}, 0, 3)
	if customerName != nil {
		query += `customer_name = ?`
		args = append(args, *customerName)
	}
	if pickupDate != nil {
		if len(args) > 0 {
			query += `, `
		}
		query += `pickup_date = ?`
		args = append(args, *pickupDate)
	}
	if len(args) == 0 {
		return nil
	}
	query += ` WHERE id = ?`
	args = append(args, id)

	result := r.db.WithContext(ctx).Exec(query, args...)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM bookings WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(final_price), 0) AS total FROM bookings
	`).Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

func (r *BookingRepository) TotalBookingCount(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM bookings
	`).Scan(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
