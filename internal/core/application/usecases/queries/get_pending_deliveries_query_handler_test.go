package queries_test

import (
	"context"
	"testing"
	"time"

	"avpayments/internal/adapters/out/postgres/deliveryrepo"
	"avpayments/internal/core/application/usecases/queries"
	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPendingDeliveriesQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetPendingDeliveriesQueryHandler
	deliveryRepo *deliveryrepo.GormDeliveryRepository
}

func (suite *GetPendingDeliveriesQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&deliveryrepo.DeliveryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPendingDeliveriesQueryHandler(db)
	suite.deliveryRepo = deliveryrepo.NewGormDeliveryRepository(db, &mockAggregateTracker{})
}

func (suite *GetPendingDeliveriesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPendingDeliveriesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries").Error
	suite.Require().NoError(err)
}

func (suite *GetPendingDeliveriesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetPendingDeliveriesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetPendingDeliveriesQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyPending() {
	ctx := context.Background()

	customer := kernel.NewIdentity()
	pending := createPendingDelivery(suite.T(), customer, 1)
	err := suite.deliveryRepo.Add(ctx, pending)
	suite.Require().NoError(err)

	accepted := createPendingDelivery(suite.T(), customer, 2)
	suite.Require().NoError(accepted.Accept(vehicle.Address("AV-001")))
	err = suite.deliveryRepo.Add(ctx, accepted)
	suite.Require().NoError(err)

	completed := createPendingDelivery(suite.T(), customer, 3)
	suite.Require().NoError(completed.Accept(vehicle.Address("AV-002")))
	suite.Require().NoError(completed.Complete())
	err = suite.deliveryRepo.Add(ctx, completed)
	suite.Require().NoError(err)

	query := queries.NewGetPendingDeliveriesQuery()

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal(pending.Address(), result[0].Address)
	suite.Equal(uint64(1), result[0].DeliveryID)
	suite.Equal(customer, result[0].Customer)
	suite.Equal(pending.PaymentAmount(), result[0].PaymentAmount)
	suite.Equal(pending.PickupLocation().String(), result[0].PickupLocation)
	suite.Equal(pending.DeliveryLocation().String(), result[0].DeliveryLocation)
}

func (suite *GetPendingDeliveriesQueryHandlerTestSuite) TestHandle_MultiplePending_OrderedByCreation() {
	ctx := context.Background()

	first := createPendingDelivery(suite.T(), kernel.NewIdentity(), 1)
	err := suite.deliveryRepo.Add(ctx, first)
	suite.Require().NoError(err)

	second := createPendingDelivery(suite.T(), kernel.NewIdentity(), 2)
	err = suite.deliveryRepo.Add(ctx, second)
	suite.Require().NoError(err)

	third := createPendingDelivery(suite.T(), kernel.NewIdentity(), 3)
	err = suite.deliveryRepo.Add(ctx, third)
	suite.Require().NoError(err)

	query := queries.NewGetPendingDeliveriesQuery()

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 3)
	suite.Equal(first.Address(), result[0].Address)
	suite.Equal(second.Address(), result[1].Address)
	suite.Equal(third.Address(), result[2].Address)
}

func TestGetPendingDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPendingDeliveriesQueryHandlerTestSuite))
}
