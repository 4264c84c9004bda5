// Package vehiclerepo provides data transfer objects and mapping functions
// for vehicle persistence. This package implements the repository pattern
// for the vehicle aggregate, handling the conversion between the domain
// entity and its database representation.
package vehiclerepo

import (
	"time"

	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates. The derived address is the primary key, which makes fleet
// identifier reuse a duplicate key violation.
type VehicleDTO struct {
	Address         string    `gorm:"type:varchar(64);primaryKey"`
	VehicleID       string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Operator        uuid.UUID `gorm:"type:uuid;not null;index"`
	Location        string    `gorm:"type:varchar(64);not null"`
	IsActive        bool      `gorm:"not null"`
	IsBusy          bool      `gorm:"not null"`
	TotalDeliveries uint64    `gorm:"type:bigint;not null"`
	RegisteredAt    time.Time `gorm:"not null"`
	Version         int64     `gorm:"not null"`
}

// TableName specifies the database table name for vehicle records.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		Address:         aggregate.Address().String(),
		VehicleID:       aggregate.VehicleID(),
		Operator:        aggregate.Operator().Bytes(),
		Location:        aggregate.Location().String(),
		IsActive:        aggregate.IsActive(),
		IsBusy:          aggregate.IsBusy(),
		TotalDeliveries: aggregate.TotalDeliveries(),
		RegisteredAt:    aggregate.RegisteredAt(),
		Version:         aggregate.Version(),
	}
}

// toDomain converts a database DTO back to the vehicle aggregate.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	operator, err := kernel.IdentityFromBytes(dto.Operator[:])
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewGeoPoint(dto.Location)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(
		dto.VehicleID,
		operator,
		location,
		dto.IsActive,
		dto.IsBusy,
		dto.TotalDeliveries,
		dto.RegisteredAt.UTC(),
		dto.Version,
	)
}
