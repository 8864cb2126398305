package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driveease/rental-service/internal/model"
)

// AdminService covers provider and vehicle-contract administration.
type AdminService struct {
	providers ProviderStore
	contracts ContractStore
}

func NewAdminService(providers ProviderStore, contracts ContractStore) *AdminService {
	return &AdminService{providers: providers, contracts: contracts}
}

func (s *AdminService) ListProviders(ctx context.Context) ([]model.Provider, error) {
	return s.providers.ListProviders(ctx)
}

func (s *AdminService) CreateProvider(ctx context.Context, provider model.Provider) (*model.Provider, error) {
	if provider.ProviderName == "" {
		return nil, fmt.Errorf("%w: provider name is required", ErrInvalidInput)
	}
	return s.providers.CreateProvider(ctx, provider)
}

func (s *AdminService) UpdateProvider(ctx context.Context, id uuid.UUID, name, contactDetails string) (*model.Provider, error) {
	provider, err := s.providers.GetProvider(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	provider.ProviderName = name
	provider.ContactDetails = contactDetails
	if err := s.providers.UpdateProvider(ctx, *provider); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return provider, nil
}

func (s *AdminService) DeleteProvider(ctx context.Context, id uuid.UUID) error {
	if err := s.providers.DeleteProvider(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *AdminService) ListContracts(ctx context.Context) ([]model.VehicleContract, error) {
	return s.contracts.ListContracts(ctx)
}

func (s *AdminService) ListContractsByAgent(ctx context.Context, agentID uuid.UUID) ([]model.VehicleContract, error) {
	return s.contracts.ListContractsByAgent(ctx, agentID)
}

func (s *AdminService) CreateContract(ctx context.Context, contract model.VehicleContract) (*model.VehicleContract, error) {
	if err := validateContract(contract); err != nil {
		return nil, err
	}
	return s.contracts.CreateContract(ctx, contract)
}

func (s *AdminService) UpdateContract(ctx context.Context, contract model.VehicleContract) (*model.VehicleContract, error) {
	if err := validateContract(contract); err != nil {
		return nil, err
	}

	existing, err := s.contracts.GetContract(ctx, contract.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing.VehicleType = contract.VehicleType
	existing.BaseRatePerDay = contract.BaseRatePerDay
	existing.AllowedMileage = contract.AllowedMileage
	existing.AvailabilityStatus = contract.AvailabilityStatus
	if err := s.contracts.UpdateContract(ctx, *existing); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *AdminService) SetContractAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	if err := s.contracts.SetAvailability(ctx, id, available); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *AdminService) DeleteContract(ctx context.Context, id uuid.UUID) error {
	if err := s.contracts.DeleteContract(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validateContract(contract model.VehicleContract) error {
	if contract.VehicleType == "" {
		return fmt.Errorf("%w: vehicle type is required", ErrInvalidInput)
	}
	if contract.BaseRatePerDay.IsNegative() {
		return fmt.Errorf("%w: base rate per day must not be negative", ErrInvalidInput)
	}
	return nil
}
