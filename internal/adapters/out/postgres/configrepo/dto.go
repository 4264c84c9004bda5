// Package configrepo provides data transfer objects and mapping functions
// for platform configuration persistence. This package implements the
// repository pattern for the configuration record, handling the conversion
// between the domain aggregate and its database representation.
package configrepo

import (
	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/core/domain/model/platform"

	"github.com/google/uuid"
)

// ConfigDTO represents the database structure for persisting the platform
// configuration. The derived address is the primary key; the version column
// carries the optimistic concurrency token.
type ConfigDTO struct {
	Address   string    `gorm:"type:varchar(64);primaryKey"`
	Authority uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Treasury  uuid.UUID `gorm:"type:uuid;not null"`
	FeeBps    uint16    `gorm:"type:smallint;not null"`
	IsActive  bool      `gorm:"not null"`
	IsPaused  bool      `gorm:"not null"`
	Version   int64     `gorm:"not null"`
}

// TableName specifies the database table name for configuration records.
func (ConfigDTO) TableName() string {
	return "platform_configs"
}

// fromDomain converts the configuration aggregate to its database representation.
func fromDomain(config *platform.Config) ConfigDTO {
	return ConfigDTO{
		Address:   config.Address().String(),
		Authority: config.Authority().Bytes(),
		Treasury:  config.Treasury().Bytes(),
		FeeBps:    config.FeeBps(),
		IsActive:  config.IsActive(),
		IsPaused:  config.IsPaused(),
		Version:   config.Version(),
	}
}

// toDomain converts a database DTO back to the configuration aggregate.
func toDomain(dto ConfigDTO) (*platform.Config, error) {
	authority, err := kernel.IdentityFromBytes(dto.Authority[:])
	if err != nil {
		return nil, err
	}
	treasury, err := kernel.IdentityFromBytes(dto.Treasury[:])
	if err != nil {
		return nil, err
	}

	return platform.RestoreConfig(authority, treasury, dto.FeeBps, dto.IsActive, dto.IsPaused, dto.Version)
}
