// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"avpayments/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across record boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ConfigRepoFactory provides access to the config repository within a transaction.
	ConfigRepoFactory interface {
		ConfigRepository() ports.ConfigRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// ConfigUoW manages transactions for configuration-only operations.
	ConfigUoW interface {
		TxManager
		ConfigRepoFactory
	}

	// ConfigUoWFactory creates new configuration unit of work instances.
	ConfigUoWFactory interface {
		Create() ConfigUoW
	}

	// VehicleUoW manages transactions for fleet registration operations.
	// Registration reads the configuration gate and writes the vehicle record.
	VehicleUoW interface {
		TxManager
		ConfigRepoFactory
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new fleet registration unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// WalletUoW manages transactions for wallet funding operations.
	WalletUoW interface {
		TxManager
		ConfigRepoFactory
		AccountRepoFactory
	}

	// WalletUoWFactory creates new wallet unit of work instances.
	WalletUoWFactory interface {
		Create() WalletUoW
	}

	// OrderUoW manages transactions for delivery order creation. Creation
	// writes the order and the escrow, and debits the customer wallet.
	OrderUoW interface {
		TxManager
		ConfigRepoFactory
		DeliveryRepoFactory
		AccountRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across every record type. Used by the
	// lifecycle commands that coordinate deliveries, vehicles, and
	// settlement accounts in one atomic step.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   deliveryRepo := uow.DeliveryRepository()
	//   vehicleRepo := uow.VehicleRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ConfigRepoFactory
		VehicleRepoFactory
		DeliveryRepoFactory
		AccountRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-record operations.
	UoWFactory interface {
		Create() UoW
	}
)
