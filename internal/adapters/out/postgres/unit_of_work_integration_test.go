package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/restaurantrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/core/ports"

	"github.com/shopspring/decimal"
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&customerrepo.CustomerDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.ProductDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_customers, order_restaurants, order_restaurant_products",
	).Error
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
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.CustomerRepository(), "First instance should provide customer repository")
	suite.NotNil(uow1.RestaurantRepository(), "First instance should provide restaurant repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test order
	testOrder := suite.createTestOrder(order.Pending)

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add order within transaction
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify order persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))
}

// TestUnitOfWork_MultiRepositoryTransaction verifies read-side lookups and
// the aggregate write share one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	productID := kernel.NewUUID()
	suite.seedCustomer(customerID)
	suite.seedRestaurant(restaurantID, productID, decimal.NewFromInt(50), true)

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Read both projections within the transaction
	retrievedCustomer, err := uow.CustomerRepository().Get(ctx, customerID)
	suite.Require().NoError(err)
	suite.True(customerID.IsEqual(retrievedCustomer.ID()))

	retrievedRestaurant, err := uow.RestaurantRepository().GetInformation(
		ctx, restaurantID, []kernel.UUID{productID})
	suite.Require().NoError(err)
	suite.True(retrievedRestaurant.IsActive())
	suite.Require().Len(retrievedRestaurant.Products(), 1)

	// Persist an order in the same transaction
	testOrder := suite.createTestOrder(order.Pending)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify the order persisted
	newUow := suite.factory.Create()
	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder(order.Pending)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify order does not exist after rollback using new unit of work
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	// Create two unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Create test orders
	order1 := suite.createTestOrder(order.Pending)
	order2 := suite.createTestOrder(order.Pending)

	// Begin transactions on both
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	// Add different orders in each transaction
	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	// Commit first transaction
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Rollback second transaction
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only order1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test order
	testOrder := suite.createTestOrder(order.Pending)

	// Add order without beginning transaction (should auto-commit)
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order persists immediately
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(testOrder.ID().IsEqual(retrievedOrder.ID()))
}

// TestUnitOfWork_OrderSagaWorkflow walks the order through the full saga
// lifecycle across several transactions.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderSagaWorkflow() {
	ctx := context.Background()

	// Step 1: persist a freshly created pending order
	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testOrder := suite.createTestOrder(order.Pending)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Step 2: payment completed
	uow = suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	loadedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loadedOrder.Pay())
	err = uow.OrderRepository().Update(ctx, loadedOrder)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Step 3: restaurant approved
	uow = suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	loadedOrder, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loadedOrder.Approve())
	err = uow.OrderRepository().Update(ctx, loadedOrder)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state
	finalUow := suite.factory.Create()
	finalOrder, err := finalUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Approved, finalOrder.Status())
	suite.Empty(finalOrder.FailureMessages())
}

// TestUnitOfWork_PartialFailureScenario tests behavior when some operations succeed and others fail.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PartialFailureScenario() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create initial order outside transaction
	existingOrder := suite.createTestOrder(order.Pending)
	err := uow.OrderRepository().Add(ctx, existingOrder)
	suite.Require().NoError(err)

	// Begin new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add a valid order
	newOrder := suite.createTestOrder(order.Pending)
	err = uow.OrderRepository().Add(ctx, newOrder)
	suite.Require().NoError(err)

	// Try to add an order reusing the existing primary key (should fail)
	duplicateOrder, err := order.RestoreOrder(
		existingOrder.ID(), // Same ID as existing order
		existingOrder.CustomerID(),
		existingOrder.RestaurantID(),
		existingOrder.DeliveryAddress(),
		existingOrder.Price(),
		existingOrder.Items(),
		kernel.NewUUID(),
		order.Pending,
		nil,
	)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, duplicateOrder)
	suite.Require().Error(err, "Adding duplicate order should fail")

	// Even though some operations succeeded, rollback should undo everything
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify rollback undid the successful operations
	newUow := suite.factory.Create()

	// Existing order should still exist (was added before transaction)
	_, err = newUow.OrderRepository().Get(ctx, existingOrder.ID())
	suite.Require().NoError(err, "Existing order should still exist")

	// New order should not exist (transaction was rolled back)
	_, err = newUow.OrderRepository().Get(ctx, newOrder.ID())
	suite.Require().Error(err, "New order should not exist after rollback")
}

// createTestOrder builds a fully initialized single-line order in the given status.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(status order.Status) *order.Order {
	price := kernel.NewMoney(decimal.NewFromInt(50))
	product, err := restaurant.NewProductWithInformation(kernel.NewUUID(), "Margherita", price)
	suite.Require().NoError(err)

	item, err := order.NewItem(product, 2, price, kernel.NewMoney(decimal.NewFromInt(100)))
	suite.Require().NoError(err)

	address, err := kernel.NewAddress("Baker Street 221b", "NW1 6XE", "London")
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		address,
		kernel.NewMoney(decimal.NewFromInt(100)),
		[]*order.Item{item},
		kernel.NewUUID(),
		status,
		nil,
	)
	suite.Require().NoError(err)
	return testOrder
}

// seedCustomer inserts a customer replica row directly.
func (suite *UnitOfWorkIntegrationTestSuite) seedCustomer(id kernel.UUID) {
	err := suite.db.Create(&customerrepo.CustomerDTO{
		ID:        id.Bytes(),
		Username:  "user_" + id.String()[:8],
		FirstName: "Test",
		LastName:  "Customer",
	}).Error
	suite.Require().NoError(err)
}

// seedRestaurant inserts a restaurant replica row with a single product.
func (suite *UnitOfWorkIntegrationTestSuite) seedRestaurant(
	id, productID kernel.UUID, price decimal.Decimal, active bool,
) {
	err := suite.db.Create(&restaurantrepo.RestaurantDTO{
		ID:     id.Bytes(),
		Name:   "Test Restaurant",
		Active: active,
	}).Error
	suite.Require().NoError(err)

	err = suite.db.Create(&restaurantrepo.ProductDTO{
		ID:           productID.Bytes(),
		RestaurantID: id.Bytes(),
		Name:         "Margherita",
		Price:        price,
	}).Error
	suite.Require().NoError(err)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
