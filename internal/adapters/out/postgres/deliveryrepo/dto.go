// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery order persistence. This package implements the repository
// pattern for the delivery aggregate, handling the conversion between the
// domain entity and its database representation.
package deliveryrepo

import (
	"math"
	"time"

	"avpayments/internal/core/domain/model/delivery"
	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/errs"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// order aggregates. The derived address is the primary key, so a customer
// reusing a delivery identifier collides on insert.
type DeliveryDTO struct {
	Address          string     `gorm:"type:varchar(64);primaryKey"`
	DeliveryID       uint64     `gorm:"type:bigint;not null"`
	Customer         uuid.UUID  `gorm:"type:uuid;not null;index"`
	PaymentAmount    uint64     `gorm:"type:bigint;not null"`
	PickupLocation   string     `gorm:"type:varchar(64);not null"`
	DeliveryLocation string     `gorm:"type:varchar(64);not null"`
	Status           int        `gorm:"not null;index"`
	AssignedVehicle  *string    `gorm:"type:varchar(64);index"`
	CreatedAt        time.Time  `gorm:"not null"`
	AcceptedAt       *time.Time ``
	CompletedAt      *time.Time ``
	Version          int64      `gorm:"not null"`
}

// TableName specifies the database table name for delivery records.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
// The id and amount columns are signed bigints, so values above MaxInt64 are
// rejected here rather than surfacing as an opaque driver error.
func fromDomain(aggregate *delivery.Delivery) (DeliveryDTO, error) {
	if aggregate.DeliveryID() > math.MaxInt64 {
		return DeliveryDTO{}, errs.NewValueIsOutOfRangeError(
			"deliveryId", aggregate.DeliveryID(), 0, uint64(math.MaxInt64))
	}
	if aggregate.PaymentAmount() > math.MaxInt64 {
		return DeliveryDTO{}, errs.NewValueIsOutOfRangeError(
			"paymentAmount", aggregate.PaymentAmount(), 0, uint64(math.MaxInt64))
	}

	var assignedVehicle *string
	if addr := aggregate.AssignedVehicle(); addr != nil {
		raw := addr.String()
		assignedVehicle = &raw
	}

	return DeliveryDTO{
		Address:          aggregate.Address().String(),
		DeliveryID:       aggregate.DeliveryID(),
		Customer:         aggregate.Customer().Bytes(),
		PaymentAmount:    aggregate.PaymentAmount(),
		PickupLocation:   aggregate.PickupLocation().String(),
		DeliveryLocation: aggregate.DeliveryLocation().String(),
		Status:           int(aggregate.Status()),
		AssignedVehicle:  assignedVehicle,
		CreatedAt:        aggregate.CreatedAt(),
		AcceptedAt:       aggregate.AcceptedAt(),
		CompletedAt:      aggregate.CompletedAt(),
		Version:          aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO back to the delivery aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	customer, err := kernel.IdentityFromBytes(dto.Customer[:])
	if err != nil {
		return nil, err
	}
	pickup, err := kernel.NewGeoPoint(dto.PickupLocation)
	if err != nil {
		return nil, err
	}
	dropoff, err := kernel.NewGeoPoint(dto.DeliveryLocation)
	if err != nil {
		return nil, err
	}

	var assignedVehicle *kernel.Address
	if dto.AssignedVehicle != nil {
		vehicleAddress, addrErr := kernel.AddressFromString(*dto.AssignedVehicle)
		if addrErr != nil {
			return nil, addrErr
		}
		assignedVehicle = &vehicleAddress
	}

	acceptedAt := utcOrNil(dto.AcceptedAt)
	completedAt := utcOrNil(dto.CompletedAt)

	return delivery.RestoreDelivery(
		dto.DeliveryID,
		customer,
		dto.PaymentAmount,
		pickup,
		dropoff,
		delivery.Status(dto.Status),
		assignedVehicle,
		dto.CreatedAt.UTC(),
		acceptedAt,
		completedAt,
		dto.Version,
	)
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
