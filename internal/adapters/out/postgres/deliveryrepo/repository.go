package deliveryrepo

import (
	"context"
	"errors"

	"avpayments/internal/core/domain/model/delivery"
	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(address kernel.Address, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery order. A duplicate derived address means the
// customer reused a delivery identifier and fails with AddressAlreadyInUse.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAddressAlreadyInUseErrorWithCause("delivery", dto.Address, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.Address(), aggregate)
	return nil
}

// Update saves an existing delivery order. The stored version must match
// the aggregate's. Two racing accepts both read the Pending row at the same
// version; the version guard lets exactly one update commit and fails the
// other with InvalidState.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("address = ? AND version = ?", dto.Address, aggregate.Version()).
		Select("*").Omit("address").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewInvalidStateError("concurrent modification of delivery " + dto.Address)
	}

	r.tracker.TrackAggregate(aggregate.Address(), aggregate)
	return nil
}

// Get retrieves a delivery order by its derived address.
func (r *GormDeliveryRepository) Get(ctx context.Context, address kernel.Address) (*delivery.Delivery, error) {
	if err := address.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "address = ?", address.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewAccountNotFoundError("delivery", address.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves all delivery orders in Pending status, oldest first.
func (r *GormDeliveryRepository) GetAllPending(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Order("created_at, address").
		Find(&dtos, "status = ?", delivery.Pending).Error; err != nil {
		return nil, err
	}

	pending := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pending = append(pending, d)
	}

	return pending, nil
}
