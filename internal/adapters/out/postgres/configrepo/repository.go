package configrepo

import (
	"context"
	"errors"

	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/core/domain/model/platform"
	"avpayments/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormConfigRepository implements ConfigRepository using GORM.
type GormConfigRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(address kernel.Address, aggregate any)
}

// NewGormConfigRepository creates a new GORM configuration repository.
func NewGormConfigRepository(db *gorm.DB, tracker aggregateTracker) *GormConfigRepository {
	return &GormConfigRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new configuration record. A duplicate derived address means
// the platform was already initialized and fails with AddressAlreadyInUse.
func (r *GormConfigRepository) Add(ctx context.Context, aggregate *platform.Config) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAddressAlreadyInUseErrorWithCause("config", dto.Address, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.Address(), aggregate)
	return nil
}

// Update saves an existing configuration record. The stored version must
// match the aggregate's; a stale aggregate fails with InvalidState.
func (r *GormConfigRepository) Update(ctx context.Context, aggregate *platform.Config) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&ConfigDTO{}).
		Where("address = ? AND version = ?", dto.Address, aggregate.Version()).
		Select("*").Omit("address").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewInvalidStateError("concurrent modification of config " + dto.Address)
	}

	r.tracker.TrackAggregate(aggregate.Address(), aggregate)
	return nil
}

// Get retrieves the configuration record by its derived address.
func (r *GormConfigRepository) Get(ctx context.Context, address kernel.Address) (*platform.Config, error) {
	if err := address.Validate(); err != nil {
		return nil, err
	}

	var dto ConfigDTO
	if err := r.db.WithContext(ctx).First(&dto, "address = ?", address.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewAccountNotFoundError("config", address.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
