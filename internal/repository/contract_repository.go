package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driveease/rental-service/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

const contractColumns = `
	vc.id,
	vc.vehicle_type,
	vc.base_rate_per_day,
	vc.allowed_mileage,
	vc.availability_status,
	vc.provider_id,
	vc.agent_id,
	COALESCE(p.provider_name, '') AS provider_name
`

func (r *ContractRepository) GetContract(ctx context.Context, id uuid.UUID) (*model.VehicleContract, error) {
	var contract model.VehicleContract
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+contractColumns+`
		FROM vehicle_contracts vc
		LEFT JOIN providers p ON p.id = vc.provider_id
		WHERE vc.id = ?
		LIMIT 1
	`, id).Scan(&contract).Error; err != nil {
		return nil, err
	}
	if contract.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &contract, nil
}

func (r *ContractRepository) ListContracts(ctx context.Context) ([]model.VehicleContract, error) {
	var contracts []model.VehicleContract
	if err := r.db.WithContext(ctx).Raw(`
		SELECT ` + contractColumns + `
		FROM vehicle_contracts vc
		LEFT JOIN providers p ON p.id = vc.provider_id
		ORDER BY vc.vehicle_type ASC
	`).Scan(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *ContractRepository) ListContractsByAgent(ctx context.Context, agentID uuid.UUID) ([]model.VehicleContract, error) {
	var contracts []model.VehicleContract
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+contractColumns+`
		FROM vehicle_contracts vc
		LEFT JOIN providers p ON p.id = vc.provider_id
		WHERE vc.agent_id = ?
		ORDER BY vc.vehicle_type ASC
	`, agentID).Scan(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *ContractRepository) ListAvailable(ctx context.Context, available bool) ([]model.VehicleContract, error) {
	var contracts []model.VehicleContract
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+contractColumns+`
		FROM vehicle_contracts vc
		LEFT JOIN providers p ON p.id = vc.provider_id
		WHERE vc.availability_status = ?
		ORDER BY vc.vehicle_type ASC
	`, available).Scan(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *ContractRepository) ListAvailableByType(ctx context.Context, vehicleType string, available bool) ([]model.VehicleContract, error) {
	var contracts []model.VehicleContract
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+contractColumns+`
		FROM vehicle_contracts vc
		LEFT JOIN providers p ON p.id = vc.provider_id
		WHERE vc.vehicle_type = ? AND vc.availability_status = ?
		ORDER BY vc.vehicle_type ASC
	`, vehicleType, available).Scan(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *ContractRepository) CreateContract(ctx context.Context, contract model.VehicleContract) (*model.VehicleContract, error) {
	var saved model.VehicleContract
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO vehicle_contracts (
			vehicle_type,
			base_rate_per_day,
			allowed_mileage,
			availability_status,
			provider_id,
			agent_id
		) VALUES (?, ?, ?, ?, ?, ?)
		RETURNING
			id,
			vehicle_type,
			base_rate_per_day,
			allowed_mileage,
			availability_status,
			provider_id,
			agent_id
	`,
		contract.VehicleType,
		contract.BaseRatePerDay,
		contract.AllowedMileage,
		contract.AvailabilityStatus,
		contract.ProviderID,
		contract.AgentID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *ContractRepository) UpdateContract(ctx context.Context, contract model.VehicleContract) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE vehicle_contracts
		SET
			vehicle_type = ?,
			base_rate_per_day = ?,
			allowed_mileage = ?,
			availability_status = ?
		WHERE id = ?
	`,
		contract.VehicleType,
		contract.BaseRatePerDay,
		contract.AllowedMileage,
		contract.AvailabilityStatus,
		contract.ID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContractRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE vehicle_contracts
		SET availability_status = ?
		WHERE id = ?
	`, available, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContractRepository) DeleteContract(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM vehicle_contracts WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContractRepository) VehicleTypeCounts(ctx context.Context) ([]model.VehicleTypeCount, error) {
	var counts []model.VehicleTypeCount
	if err := r.db.WithContext(ctx).Raw(`
		SELECT vehicle_type, COUNT(*) AS count
		FROM vehicle_contracts
		GROUP BY vehicle_type
		ORDER BY vehicle_type ASC
	`).Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
