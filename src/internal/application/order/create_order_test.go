package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackyeh168/gas_shop/src/internal/domain/cart"
	"github.com/jackyeh168/gas_shop/src/internal/domain/order"
	"github.com/jackyeh168/gas_shop/src/internal/domain/points"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type createOrderFixture struct {
	userID    user.UserID
	stove     *cart.Stove
	cart      *cart.Cart
	checkouts *MockCheckoutRepository
	orders    *MockOrderRepository
	ledger    *MockLedger
	txManager *MockTransactionManager
	publisher *MockEventPublisher
	lock      *MockCheckoutLock
	useCase   *CreateOrderUseCase
}

func newCreateOrderFixture(items ...cart.CartItem) *createOrderFixture {
	userID := user.NewUserID()
	stove := &cart.Stove{ID: cart.NewStoveID(), UserID: userID, Name: "Bếp nhà"}
	c := &cart.Cart{ID: cart.NewCartID(), StoveID: stove.ID, Type: cart.CartTypeNormal, Items: items}

	f := &createOrderFixture{
		userID:    userID,
		stove:     stove,
		cart:      c,
		checkouts: &MockCheckoutRepository{checkout: &cart.Checkout{Stove: stove, Cart: c}},
		orders:    NewMockOrderRepository(),
		ledger:    NewMockLedger(),
		txManager: NewMockTransactionManager(),
		publisher: &MockEventPublisher{},
		lock:      NewMockCheckoutLock(),
	}
	f.useCase = NewCreateOrderUseCase(f.checkouts, f.orders, f.ledger, f.txManager, f.publisher, f.lock, zap.NewNop())
	f.useCase.now = func() time.Time { return testNow }
	return f
}

func (f *createOrderFixture) command() CreateOrderCommand {
	return CreateOrderCommand{UserID: f.userID.String(), StoveID: f.stove.ID.String()}
}

func bindableGas(price int64) cart.CartItem {
	return cart.CartItem{
		ID:       cart.NewCartItemID(),
		Product:  cart.Product{ID: cart.NewProductID(), Name: "Gas 12kg", Price: shared.NewMoney(price), Tags: []string{cart.BindableTag}},
		Quantity: 1,
		Type:     cart.ItemTypeGas,
	}
}

func pointExchange(pointValue int) cart.CartItem {
	pv, _ := points.NewPointsAmount(pointValue)
	return cart.CartItem{
		ID:          cart.NewCartItemID(),
		Product:     cart.Product{ID: cart.NewProductID(), Name: "Chảo", Price: shared.NewMoney(180000), PointValue: pv},
		Quantity:    1,
		PayByPoints: true,
		Type:        cart.ItemTypePointExchange,
	}
}

func TestCreateOrderUseCase_Success(t *testing.T) {
	// Arrange
	f := newCreateOrderFixture(bindableGas(450000))

	// Act
	result, err := f.useCase.Execute(context.Background(), f.command())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "PENDING", result.Status)
	assert.Equal(t, int64(450000), result.Subtotal)
	assert.Equal(t, int64(450000), result.TotalPrice)
	assert.Equal(t, 0, result.PointsUsed)
	assert.Equal(t, 2000, result.PointsEarned)
	assert.Equal(t, testNow, result.CreatedAt)

	assert.Equal(t, 1, f.txManager.InTransactionCallCount)
	assert.Equal(t, 0, f.ledger.TryReserveCallCount, "no points to reserve")
	assert.Equal(t, 1, f.orders.SaveCallCount)
	assert.Equal(t, 1, f.checkouts.ConsumeCallCount)
	assert.Equal(t, 1, f.lock.ReleaseCount)
	assert.Equal(t, []string{"order.placed"}, f.publisher.EventTypes())
}

func TestCreateOrderUseCase_ReservesPoints(t *testing.T) {
	f := newCreateOrderFixture(pointExchange(800))
	f.ledger.balances[f.userID.String()] = 1000

	result, err := f.useCase.Execute(context.Background(), f.command())

	require.NoError(t, err)
	assert.Equal(t, 800, result.PointsUsed)
	assert.Equal(t, 1, f.ledger.TryReserveCallCount)
	assert.Equal(t, 200, f.ledger.balances[f.userID.String()])
}

func TestCreateOrderUseCase_InsufficientPoints_NothingPersisted(t *testing.T) {
	// Arrange
	f := newCreateOrderFixture(pointExchange(800))
	f.ledger.balances[f.userID.String()] = 500

	// Act
	result, err := f.useCase.Execute(context.Background(), f.command())

	// Assert
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, points.ErrInsufficientPoints), "error should wrap ErrInsufficientPoints")
	assert.Equal(t, 0, f.orders.SaveCallCount)
	assert.Equal(t, 0, f.checkouts.ConsumeCallCount)
	assert.Empty(t, f.publisher.EventTypes())
	assert.Equal(t, 1, f.lock.ReleaseCount)
}

func TestCreateOrderUseCase_EmptyCart(t *testing.T) {
	f := newCreateOrderFixture()

	_, err := f.useCase.Execute(context.Background(), f.command())

	assert.True(t, errors.Is(err, cart.ErrEmptyCart), "error should wrap ErrEmptyCart")
	assert.Equal(t, 0, f.orders.SaveCallCount)
}

func TestCreateOrderUseCase_StoveOfAnotherUser(t *testing.T) {
	f := newCreateOrderFixture(bindableGas(450000))
	cmd := CreateOrderCommand{UserID: user.NewUserID().String(), StoveID: f.stove.ID.String()}

	_, err := f.useCase.Execute(context.Background(), cmd)

	assert.True(t, errors.Is(err, cart.ErrStoveNotFound), "error should wrap ErrStoveNotFound")
}

func TestCreateOrderUseCase_MalformedStoveID_IsStoveNotFound(t *testing.T) {
	f := newCreateOrderFixture(bindableGas(450000))
	cmd := CreateOrderCommand{UserID: f.userID.String(), StoveID: "not-a-uuid"}

	_, err := f.useCase.Execute(context.Background(), cmd)

	assert.True(t, errors.Is(err, cart.ErrStoveNotFound))
	assert.Equal(t, 0, f.txManager.InTransactionCallCount)
}

func TestCreateOrderUseCase_InvalidUserID(t *testing.T) {
	f := newCreateOrderFixture(bindableGas(450000))
	cmd := CreateOrderCommand{UserID: "", StoveID: f.stove.ID.String()}

	_, err := f.useCase.Execute(context.Background(), cmd)

	assert.True(t, errors.Is(err, user.ErrInvalidUserID))
	assert.Equal(t, 0, f.txManager.InTransactionCallCount)
}

func TestCreateOrderUseCase_CheckoutInProgress(t *testing.T) {
	f := newCreateOrderFixture(bindableGas(450000))
	f.lock.held[checkoutLockKey(f.userID.String(), f.stove.ID.String())] = true

	_, err := f.useCase.Execute(context.Background(), f.command())

	assert.True(t, errors.Is(err, order.ErrCheckoutInProgress))
	assert.Equal(t, 0, f.txManager.InTransactionCallCount)
}

func TestCreateOrderUseCase_CartChanged(t *testing.T) {
	f := newCreateOrderFixture(bindableGas(450000))
	f.checkouts.consumeErr = cart.ErrCartChanged

	_, err := f.useCase.Execute(context.Background(), f.command())

	assert.True(t, errors.Is(err, cart.ErrCartChanged))
	assert.Empty(t, f.publisher.EventTypes())
}

func TestCreateOrderUseCase_WithoutLock(t *testing.T) {
	f := newCreateOrderFixture(bindableGas(450000))
	f.useCase.lock = nil

	_, err := f.useCase.Execute(context.Background(), f.command())

	require.NoError(t, err)
}
