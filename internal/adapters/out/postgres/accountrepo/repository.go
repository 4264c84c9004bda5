package accountrepo

import (
	"context"
	"errors"

	"avpayments/internal/core/domain/model/account"
	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(address kernel.Address, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account record. A duplicate derived address fails with
// AddressAlreadyInUse.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAddressAlreadyInUseErrorWithCause(aggregate.Kind().String(), dto.Address, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.Address(), aggregate)
	return nil
}

// Update saves a balance change to an existing account. The stored version
// must match the aggregate's; a stale balance fails with InvalidState
// instead of silently overwriting a concurrent transfer.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&AccountDTO{}).
		Where("address = ? AND version = ?", dto.Address, aggregate.Version()).
		Select("*").Omit("address").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewInvalidStateError("concurrent modification of account " + dto.Address)
	}

	r.tracker.TrackAggregate(aggregate.Address(), aggregate)
	return nil
}

// Get retrieves an account record by its derived address.
func (r *GormAccountRepository) Get(ctx context.Context, address kernel.Address) (*account.Account, error) {
	if err := address.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "address = ?", address.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewAccountNotFoundError("account", address.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
