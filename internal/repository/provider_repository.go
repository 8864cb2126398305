package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driveease/rental-service/internal/model"
)

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

func (r *ProviderRepository) GetProvider(ctx context.Context, id uuid.UUID) (*model.Provider, error) {
	var provider model.Provider
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, provider_name, COALESCE(contact_details, '') AS contact_details
		FROM providers
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&provider).Error; err != nil {
		return nil, err
	}
	if provider.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &provider, nil
}

func (r *ProviderRepository) ListProviders(ctx context.Context) ([]model.Provider, error) {
	var providers []model.Provider
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, provider_name, COALESCE(contact_details, '') AS contact_details
		FROM providers
		ORDER BY provider_name ASC
	`).Scan(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *ProviderRepository) CreateProvider(ctx context.Context, provider model.Provider) (*model.Provider, error) {
	var saved model.Provider
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO providers (provider_name, contact_details)
		VALUES (?, ?)
		RETURNING id, provider_name, COALESCE(contact_details, '') AS contact_details
	`, provider.ProviderName, provider.ContactDetails).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *ProviderRepository) UpdateProvider(ctx context.Context, provider model.Provider) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE providers
		SET provider_name = ?, contact_details = ?
		WHERE id = ?
	`, provider.ProviderName, provider.ContactDetails, provider.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProviderRepository) DeleteProvider(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM providers WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
