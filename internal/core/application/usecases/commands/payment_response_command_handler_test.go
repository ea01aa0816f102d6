package commands_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// restoredOrder rebuilds a persisted-looking aggregate in the given status:
// one confirmed line, price 50.00, quantity 2, total 100.00.
func restoredOrder(t *testing.T, status order.Status, failureMessages []string) *order.Order {
	t.Helper()

	price := kernel.NewMoney(decimal.RequireFromString("50.00"))
	product, err := restaurant.NewProductWithInformation(kernel.NewUUID(), "Margherita", price)
	require.NoError(t, err)

	item, err := order.NewItem(product, 2, price, kernel.NewMoney(decimal.RequireFromString("100.00")))
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), newTestAddress(t),
		kernel.NewMoney(decimal.RequireFromString("100.00")), []*order.Item{item},
		kernel.NewUUID(), status, failureMessages,
	)
	require.NoError(t, err)
	return o
}

// singleOrderUoW wires a factory/uow/repo chain returning the given order
// for the read-modify-write tests.
func singleOrderUoW(ctx context.Context, o *order.Order) (*MockOrderUoWFactory, *MockOrderUoW, *MockOrderRepository) {
	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	return factory, uow, repo
}

func paymentResponseCommand(t *testing.T, o *order.Order, status commands.PaymentStatus, failureMessages []string) commands.PaymentResponseCommand {
	t.Helper()
	cmd, err := commands.NewPaymentResponseCommand(
		"message-1", "saga-1", "payment-1",
		o.CustomerID(), o.ID(), o.Price(), time.Now().UTC(),
		status, failureMessages,
	)
	require.NoError(t, err)
	return cmd
}

func TestPaymentResponseCommandHandler_Handle_Completed(t *testing.T) {
	ctx := context.Background()
	o := restoredOrder(t, order.Pending, nil)
	cmd := paymentResponseCommand(t, o, commands.PaymentCompleted, nil)

	factory, uow, repo := singleOrderUoW(ctx, o)
	repo.On("Update", mock.Anything, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	publisher := new(MockRestaurantApprovalRequestPublisher)
	publisher.On("PublishPaid", mock.Anything, mock.AnythingOfType("order.PaidEvent")).Return(nil).Once()

	h := commands.NewPaymentResponseCommandHandler(factory, services.NewOrderLifecycle(), publisher, discardLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Paid, o.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestPaymentResponseCommandHandler_Handle_RedeliveredCompleted(t *testing.T) {
	ctx := context.Background()
	o := restoredOrder(t, order.Paid, nil)
	cmd := paymentResponseCommand(t, o, commands.PaymentCompleted, nil)

	factory, uow, repo := singleOrderUoW(ctx, o)

	publisher := new(MockRestaurantApprovalRequestPublisher)

	h := commands.NewPaymentResponseCommandHandler(factory, services.NewOrderLifecycle(), publisher, discardLogger())
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDomainRuleViolated)
	assert.Equal(t, order.Paid, o.Status())
	repo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
	publisher.AssertNotCalled(t, "PublishPaid")
}

func TestPaymentResponseCommandHandler_Handle_Failed(t *testing.T) {
	ctx := context.Background()
	o := restoredOrder(t, order.Pending, nil)
	cmd := paymentResponseCommand(t, o, commands.PaymentFailed, []string{"Insufficient funds"})

	factory, uow, repo := singleOrderUoW(ctx, o)
	repo.On("Update", mock.Anything, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	publisher := new(MockRestaurantApprovalRequestPublisher)

	h := commands.NewPaymentResponseCommandHandler(factory, services.NewOrderLifecycle(), publisher, discardLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Canceled, o.Status())
	assert.Equal(t, []string{"Insufficient funds"}, o.FailureMessages())
	publisher.AssertNotCalled(t, "PublishPaid")
}

func TestPaymentResponseCommandHandler_Handle_CompensationCompleted(t *testing.T) {
	ctx := context.Background()
	o := restoredOrder(t, order.Canceling, []string{"Restaurant rejected the order"})
	cmd := paymentResponseCommand(t, o, commands.PaymentCancelled, []string{"Payment refunded"})

	factory, uow, repo := singleOrderUoW(ctx, o)
	repo.On("Update", mock.Anything, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	publisher := new(MockRestaurantApprovalRequestPublisher)

	h := commands.NewPaymentResponseCommandHandler(factory, services.NewOrderLifecycle(), publisher, discardLogger())
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Canceled, o.Status())
	assert.Equal(t, []string{"Restaurant rejected the order", "Payment refunded"}, o.FailureMessages())
}

func TestPaymentResponseCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	o := restoredOrder(t, order.Pending, nil)
	cmd := paymentResponseCommand(t, o, commands.PaymentCompleted, nil)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, o.ID()).
		Return(nil, errs.NewObjectNotFoundError("order", o.ID().String())).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockRestaurantApprovalRequestPublisher)

	h := commands.NewPaymentResponseCommandHandler(factory, services.NewOrderLifecycle(), publisher, discardLogger())
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	var notFoundErr *errs.ObjectNotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestPaymentResponseCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.PaymentResponseCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	publisher := new(MockRestaurantApprovalRequestPublisher)

	h := commands.NewPaymentResponseCommandHandler(factory, services.NewOrderLifecycle(), publisher, discardLogger())
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPaymentResponseCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
