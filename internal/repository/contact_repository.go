package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/driveease/rental-service/internal/model"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) CreateMessage(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error) {
	var saved model.ContactMessage
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO contact_messages (first_name, last_name, email, subject, message)
		VALUES (?, ?, ?, ?, ?)
		RETURNING
			id,
			COALESCE(first_name, '') AS first_name,
			COALESCE(last_name, '') AS last_name,
			COALESCE(email, '') AS email,
			COALESCE(subject, '') AS subject,
			COALESCE(message, '') AS message,
			submitted_at
	`, msg.FirstName, msg.LastName, msg.Email, msg.Subject, msg.Message).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *ContactRepository) ListMessages(ctx context.Context) ([]model.ContactMessage, error) {
	var messages []model.ContactMessage
	if err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			COALESCE(first_name, '') AS first_name,
			COALESCE(last_name, '') AS last_name,
			COALESCE(email, '') AS email,
			COALESCE(subject, '') AS subject,
			COALESCE(message, '') AS message,
			submitted_at
		FROM contact_messages
		ORDER BY submitted_at DESC
	`).Scan(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
