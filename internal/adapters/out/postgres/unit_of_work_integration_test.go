package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "avpayments/internal/adapters/out/postgres"
	"avpayments/internal/adapters/out/postgres/accountrepo"
	"avpayments/internal/adapters/out/postgres/configrepo"
	"avpayments/internal/adapters/out/postgres/deliveryrepo"
	"avpayments/internal/adapters/out/postgres/vehiclerepo"
	"avpayments/internal/core/application/usecases/commands"
	"avpayments/internal/core/domain/model/account"
	"avpayments/internal/core/domain/model/delivery"
	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/core/domain/model/vehicle"
	"avpayments/internal/core/ports"
	"avpayments/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&configrepo.ConfigDTO{},
		&vehiclerepo.VehicleDTO{},
		&deliveryrepo.DeliveryDTO{},
		&accountrepo.AccountDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE platform_configs, vehicles, deliveries, accounts").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ConfigRepository(), "First instance should provide config repository")
	suite.NotNil(uow1.VehicleRepository(), "First instance should provide vehicle repository")
	suite.NotNil(uow1.DeliveryRepository(), "First instance should provide delivery repository")
	suite.NotNil(uow1.AccountRepository(), "First instance should provide account repository")
	suite.NotNil(uow2.ConfigRepository(), "Second instance should provide config repository")
	suite.NotNil(uow2.AccountRepository(), "Second instance should provide account repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_MultiRepositoryTransaction verifies multiple repository operations
// within a single transaction work atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	customer := kernel.NewIdentity()
	wallet, err := account.NewWallet(customer)
	suite.Require().NoError(err)
	suite.Require().NoError(wallet.Deposit(1000))

	order := createTestDelivery(suite.T(), customer, 1, 600)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Fund the escrow from the wallet and store the order atomically
	suite.Require().NoError(wallet.Withdraw(600))
	escrow, err := account.NewEscrow(customer, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(escrow.Deposit(600))

	err = uow.AccountRepository().Add(ctx, wallet)
	suite.Require().NoError(err)
	err = uow.AccountRepository().Add(ctx, escrow)
	suite.Require().NoError(err)
	err = uow.DeliveryRepository().Add(ctx, order)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify all records persisted using a new unit of work
	newUow := suite.factory.Create()

	retrievedWallet, err := newUow.AccountRepository().Get(ctx, wallet.Address())
	suite.Require().NoError(err)
	suite.Equal(uint64(400), retrievedWallet.Balance())

	retrievedEscrow, err := newUow.AccountRepository().Get(ctx, escrow.Address())
	suite.Require().NoError(err)
	suite.Equal(uint64(600), retrievedEscrow.Balance())

	retrievedOrder, err := newUow.DeliveryRepository().Get(ctx, order.Address())
	suite.Require().NoError(err)
	suite.Equal(delivery.Pending, retrievedOrder.Status())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	customer := kernel.NewIdentity()
	wallet, err := account.NewWallet(customer)
	suite.Require().NoError(err)
	order := createTestDelivery(suite.T(), customer, 1, 600)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.AccountRepository().Add(ctx, wallet)
	suite.Require().NoError(err)
	err = uow.DeliveryRepository().Add(ctx, order)
	suite.Require().NoError(err)

	// Both records are visible inside the transaction
	_, err = uow.AccountRepository().Get(ctx, wallet.Address())
	suite.Require().NoError(err)
	_, err = uow.DeliveryRepository().Get(ctx, order.Address())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Neither record survives the rollback
	newUow := suite.factory.Create()

	_, err = newUow.AccountRepository().Get(ctx, wallet.Address())
	suite.Require().ErrorIs(err, errs.ErrAccountNotFound)

	_, err = newUow.DeliveryRepository().Get(ctx, order.Address())
	suite.Require().ErrorIs(err, errs.ErrAccountNotFound)
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	wallet1, err := account.NewWallet(kernel.NewIdentity())
	suite.Require().NoError(err)
	wallet2, err := account.NewWallet(kernel.NewIdentity())
	suite.Require().NoError(err)

	err = uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.AccountRepository().Add(ctx, wallet1)
	suite.Require().NoError(err)
	err = uow2.AccountRepository().Add(ctx, wallet2)
	suite.Require().NoError(err)

	// Each transaction only sees its own changes
	_, err = uow1.AccountRepository().Get(ctx, wallet1.Address())
	suite.Require().NoError(err, "UOW1 should see wallet1")
	_, err = uow1.AccountRepository().Get(ctx, wallet2.Address())
	suite.Require().Error(err, "UOW1 should not see wallet2")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Only wallet1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.AccountRepository().Get(ctx, wallet1.Address())
	suite.Require().NoError(err, "Wallet1 should persist after commit")
	_, err = newUow.AccountRepository().Get(ctx, wallet2.Address())
	suite.Require().Error(err, "Wallet2 should not persist after rollback")
}

// TestSettlement_EndToEnd drives the full delivery lifecycle through the
// command handlers: platform setup, wallet funding, order creation, vehicle
// acceptance and completion with the fee split settlement.
func (suite *UnitOfWorkIntegrationTestSuite) TestSettlement_EndToEnd() {
	ctx := context.Background()

	authority := kernel.NewIdentity()
	treasury := kernel.NewIdentity()
	customer := kernel.NewIdentity()
	operator := kernel.NewIdentity()

	// Initialize the platform at a 2.5% fee
	initCmd, err := commands.NewInitializeConfigCommand(authority, treasury, 250)
	suite.Require().NoError(err)
	initHandler := commands.NewInitializeConfigCommandHandler(suite.configUoWFactory())
	suite.Require().NoError(initHandler.Handle(ctx, initCmd))

	// Register the vehicle
	registerCmd, err := commands.NewRegisterVehicleCommand(
		authority, authority, "AV-001", operator, "37.7749,-122.4194")
	suite.Require().NoError(err)
	registerHandler := commands.NewRegisterVehicleCommandHandler(suite.vehicleUoWFactory())
	suite.Require().NoError(registerHandler.Handle(ctx, registerCmd))

	// Fund the customer wallet
	creditCmd, err := commands.NewCreditWalletCommand(authority, authority, customer, 1_000_000_000)
	suite.Require().NoError(err)
	creditHandler := commands.NewCreditWalletCommandHandler(suite.walletUoWFactory())
	suite.Require().NoError(creditHandler.Handle(ctx, creditCmd))

	// Customer creates the order, moving the full payment into escrow
	createCmd, err := commands.NewCreateDeliveryOrderCommand(
		authority, customer, 1, 1_000_000_000, "37.7749,-122.4194", "37.8044,-122.2712")
	suite.Require().NoError(err)
	createHandler := commands.NewCreateDeliveryOrderCommandHandler(suite.orderUoWFactory())
	suite.Require().NoError(createHandler.Handle(ctx, createCmd))

	// Operator accepts the order
	acceptCmd, err := commands.NewAcceptDeliveryCommand(authority, operator, customer, 1, "AV-001")
	suite.Require().NoError(err)
	acceptHandler := commands.NewAcceptDeliveryCommandHandler(suite.uowFactory())
	suite.Require().NoError(acceptHandler.Handle(ctx, acceptCmd))

	// Operator completes the order, triggering settlement
	completeCmd, err := commands.NewCompleteDeliveryCommand(authority, operator, customer, 1)
	suite.Require().NoError(err)
	completeHandler := commands.NewCompleteDeliveryCommandHandler(suite.uowFactory())
	suite.Require().NoError(completeHandler.Handle(ctx, completeCmd))

	// Verify final state: 2.5% of 1_000_000_000 goes to the treasury,
	// the rest to the operator, and the escrow is fully drained.
	uow := suite.factory.Create()

	customerWallet, err := uow.AccountRepository().Get(ctx, account.WalletAddress(customer))
	suite.Require().NoError(err)
	suite.Equal(uint64(0), customerWallet.Balance())

	operatorWallet, err := uow.AccountRepository().Get(ctx, account.WalletAddress(operator))
	suite.Require().NoError(err)
	suite.Equal(uint64(975_000_000), operatorWallet.Balance())

	treasuryWallet, err := uow.AccountRepository().Get(ctx, account.WalletAddress(treasury))
	suite.Require().NoError(err)
	suite.Equal(uint64(25_000_000), treasuryWallet.Balance())

	escrow, err := uow.AccountRepository().Get(ctx, account.EscrowAddress(customer, 1))
	suite.Require().NoError(err)
	suite.Equal(uint64(0), escrow.Balance())

	order, err := uow.DeliveryRepository().Get(ctx, delivery.Address(customer, 1))
	suite.Require().NoError(err)
	suite.Equal(delivery.Completed, order.Status())
	suite.NotNil(order.CompletedAt())

	settledVehicle, err := uow.VehicleRepository().Get(ctx, vehicle.Address("AV-001"))
	suite.Require().NoError(err)
	suite.False(settledVehicle.IsBusy())
	suite.Equal(uint64(1), settledVehicle.TotalDeliveries())

	// A second completion attempt must fail on the already settled order
	err = completeHandler.Handle(ctx, completeCmd)
	suite.Require().ErrorIs(err, errs.ErrInvalidState)
}

// TestConcurrentAccept_OneWinner runs two acceptances of the same pending
// order in overlapping transactions and verifies the version guard lets
// exactly one through: the loser's delivery update matches zero rows and
// fails with InvalidState, and after its rollback the losing vehicle is
// still idle.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentAccept_OneWinner() {
	ctx := context.Background()
	customer := kernel.NewIdentity()

	location, err := kernel.NewGeoPoint("37.7749,-122.4194")
	suite.Require().NoError(err)
	firstVehicle, err := vehicle.NewVehicle("AV-001", kernel.NewIdentity(), location)
	suite.Require().NoError(err)
	secondVehicle, err := vehicle.NewVehicle("AV-002", kernel.NewIdentity(), location)
	suite.Require().NoError(err)

	seed := suite.factory.Create()
	suite.Require().NoError(seed.DeliveryRepository().Add(ctx, createTestDelivery(suite.T(), customer, 1, 1_000)))
	suite.Require().NoError(seed.VehicleRepository().Add(ctx, firstVehicle))
	suite.Require().NoError(seed.VehicleRepository().Add(ctx, secondVehicle))

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	// Both transactions observe the same pending order
	order1, err := uow1.DeliveryRepository().Get(ctx, delivery.Address(customer, 1))
	suite.Require().NoError(err)
	order2, err := uow2.DeliveryRepository().Get(ctx, delivery.Address(customer, 1))
	suite.Require().NoError(err)
	vehicle1, err := uow1.VehicleRepository().Get(ctx, vehicle.Address("AV-001"))
	suite.Require().NoError(err)
	vehicle2, err := uow2.VehicleRepository().Get(ctx, vehicle.Address("AV-002"))
	suite.Require().NoError(err)

	suite.Require().NoError(order1.Accept(vehicle1.Address()))
	suite.Require().NoError(vehicle1.MarkBusy())
	suite.Require().NoError(order2.Accept(vehicle2.Address()))
	suite.Require().NoError(vehicle2.MarkBusy())

	// First acceptance lands
	suite.Require().NoError(uow1.DeliveryRepository().Update(ctx, order1))
	suite.Require().NoError(uow1.VehicleRepository().Update(ctx, vehicle1))
	suite.Require().NoError(uow1.Commit(ctx))

	// The second update waits on the row lock until the first commit, then
	// matches zero rows against the bumped version
	err = uow2.DeliveryRepository().Update(ctx, order2)
	suite.Require().ErrorIs(err, errs.ErrInvalidState)
	suite.Require().NoError(uow2.Rollback(ctx))

	final := suite.factory.Create()

	settledOrder, err := final.DeliveryRepository().Get(ctx, delivery.Address(customer, 1))
	suite.Require().NoError(err)
	suite.Equal(delivery.InProgress, settledOrder.Status())
	suite.Require().NotNil(settledOrder.AssignedVehicle())
	suite.Equal(vehicle.Address("AV-001"), *settledOrder.AssignedVehicle())

	winner, err := final.VehicleRepository().Get(ctx, vehicle.Address("AV-001"))
	suite.Require().NoError(err)
	suite.True(winner.IsBusy())

	loser, err := final.VehicleRepository().Get(ctx, vehicle.Address("AV-002"))
	suite.Require().NoError(err)
	suite.False(loser.IsBusy())
}

func (suite *UnitOfWorkIntegrationTestSuite) configUoWFactory() commands.ConfigUoWFactory {
	return funcConfigUoWFactory(func() commands.ConfigUoW { return suite.factory.Create() })
}

func (suite *UnitOfWorkIntegrationTestSuite) vehicleUoWFactory() commands.VehicleUoWFactory {
	return funcVehicleUoWFactory(func() commands.VehicleUoW { return suite.factory.Create() })
}

func (suite *UnitOfWorkIntegrationTestSuite) walletUoWFactory() commands.WalletUoWFactory {
	return funcWalletUoWFactory(func() commands.WalletUoW { return suite.factory.Create() })
}

func (suite *UnitOfWorkIntegrationTestSuite) orderUoWFactory() commands.OrderUoWFactory {
	return funcOrderUoWFactory(func() commands.OrderUoW { return suite.factory.Create() })
}

func (suite *UnitOfWorkIntegrationTestSuite) uowFactory() commands.UoWFactory {
	return funcUoWFactory(func() commands.UoW { return suite.factory.Create() })
}

type funcConfigUoWFactory func() commands.ConfigUoW

func (f funcConfigUoWFactory) Create() commands.ConfigUoW { return f() }

type funcVehicleUoWFactory func() commands.VehicleUoW

func (f funcVehicleUoWFactory) Create() commands.VehicleUoW { return f() }

type funcWalletUoWFactory func() commands.WalletUoW

func (f funcWalletUoWFactory) Create() commands.WalletUoW { return f() }

type funcOrderUoWFactory func() commands.OrderUoW

func (f funcOrderUoWFactory) Create() commands.OrderUoW { return f() }

type funcUoWFactory func() commands.UoW

func (f funcUoWFactory) Create() commands.UoW { return f() }

// createTestDelivery creates a pending delivery order for testing purposes.
func createTestDelivery(t *testing.T, customer kernel.Identity, deliveryID uint64, amount uint64) *delivery.Delivery {
	t.Helper()

	pickup, err := kernel.NewGeoPoint("37.7749,-122.4194")
	if err != nil {
		t.Fatal(err)
	}
	dropoff, err := kernel.NewGeoPoint("37.8044,-122.2712")
	if err != nil {
		t.Fatal(err)
	}

	order, err := delivery.NewDelivery(deliveryID, customer, amount, pickup, dropoff)
	if err != nil {
		t.Fatal(err)
	}
	return order
}
