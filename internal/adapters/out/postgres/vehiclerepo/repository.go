package vehiclerepo

import (
	"context"
	"errors"

	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/core/domain/model/vehicle"
	"avpayments/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(address kernel.Address, aggregate any)
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle record. A duplicate derived address or fleet
// identifier fails with AddressAlreadyInUse.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAddressAlreadyInUseErrorWithCause("vehicle", dto.Address, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.Address(), aggregate)
	return nil
}

// Update saves an existing vehicle record. The stored version must match
// the aggregate's; a stale aggregate fails with InvalidState so a vehicle
// cannot be claimed by two deliveries at once.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&VehicleDTO{}).
		Where("address = ? AND version = ?", dto.Address, aggregate.Version()).
		Select("*").Omit("address").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewInvalidStateError("concurrent modification of vehicle " + dto.Address)
	}

	r.tracker.TrackAggregate(aggregate.Address(), aggregate)
	return nil
}

// Get retrieves a vehicle record by its derived address.
func (r *GormVehicleRepository) Get(ctx context.Context, address kernel.Address) (*vehicle.Vehicle, error) {
	if err := address.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "address = ?", address.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewAccountNotFoundError("vehicle", address.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
