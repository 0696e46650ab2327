package order

import (
	"context"
	"sync"

	"github.com/jackyeh168/gas_shop/src/internal/domain/cart"
	"github.com/jackyeh168/gas_shop/src/internal/domain/order"
	"github.com/jackyeh168/gas_shop/src/internal/domain/points"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
)

// ===========================
// Mock TransactionManager
// ===========================

type MockTransactionManager struct {
	InTransactionCallCount int
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) InTransaction(_ context.Context, fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	return fn(nil)
}

// ===========================
// Mock CheckoutRepository
// ===========================

type MockCheckoutRepository struct {
	checkout         *cart.Checkout
	loadErr          error
	consumeErr       error
	ConsumeCallCount int
}

func (m *MockCheckoutRepository) LoadCheckout(_ shared.TransactionContext, userID user.UserID, stoveID cart.StoveID) (*cart.Checkout, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.checkout == nil || !m.checkout.Stove.ID.Equals(stoveID) || !m.checkout.Stove.OwnedBy(userID) {
		return nil, cart.ErrStoveNotFound
	}
	return m.checkout, nil
}

func (m *MockCheckoutRepository) Consume(shared.TransactionContext, *cart.Cart) error {
	m.ConsumeCallCount++
	return m.consumeErr
}

// ===========================
// Mock OrderRepository
// ===========================

type MockOrderRepository struct {
	orders          map[string]*order.Order
	settled         map[string]bool
	updateErr       error
	SaveCallCount   int
	UpdateCallCount int
}

func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders:  make(map[string]*order.Order),
		settled: make(map[string]bool),
	}
}

func (m *MockOrderRepository) Save(_ shared.TransactionContext, o *order.Order) error {
	m.SaveCallCount++
	m.orders[o.OrderID().String()] = o
	return nil
}

func (m *MockOrderRepository) FindByID(_ shared.TransactionContext, id order.OrderID) (*order.Order, error) {
	o, ok := m.orders[id.String()]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return o, nil
}

func (m *MockOrderRepository) UpdateStatus(shared.TransactionContext, *order.Order, order.OrderStatus) error {
	m.UpdateCallCount++
	return m.updateErr
}

func (m *MockOrderRepository) MarkPointsSettled(_ shared.TransactionContext, id order.OrderID) (bool, error) {
	if m.settled[id.String()] {
		return false, nil
	}
	m.settled[id.String()] = true
	return true, nil
}

// ===========================
// Mock Ledger
// ===========================

type MockLedger struct {
	balances            map[string]int
	TryReserveCallCount int
	CreditCallCount     int
}

func NewMockLedger() *MockLedger {
	return &MockLedger{balances: make(map[string]int)}
}

func (m *MockLedger) TryReserve(_ shared.TransactionContext, userID user.UserID, amount points.PointsAmount) error {
	m.TryReserveCallCount++
	if m.balances[userID.String()] < amount.Value() {
		return points.ErrInsufficientPoints
	}
	m.balances[userID.String()] -= amount.Value()
	return nil
}

func (m *MockLedger) Credit(_ shared.TransactionContext, userID user.UserID, amount points.PointsAmount) error {
	m.CreditCallCount++
	m.balances[userID.String()] += amount.Value()
	return nil
}

func (m *MockLedger) Balance(_ shared.TransactionContext, userID user.UserID) (points.PointsAmount, error) {
	return points.NewPointsAmount(m.balances[userID.String()])
}

// ===========================
// Mock EventPublisher
// ===========================

type MockEventPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func (m *MockEventPublisher) Publish(event shared.DomainEvent) error {
	return m.PublishBatch([]shared.DomainEvent{event})
}

func (m *MockEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
	return nil
}

func (m *MockEventPublisher) EventTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, 0, len(m.events))
	for _, e := range m.events {
		types = append(types, e.EventType())
	}
	return types
}

// ===========================
// Mock CheckoutLock
// ===========================

type MockCheckoutLock struct {
	held         map[string]bool
	ReleaseCount int
}

func NewMockCheckoutLock() *MockCheckoutLock {
	return &MockCheckoutLock{held: make(map[string]bool)}
}

func (m *MockCheckoutLock) Acquire(_ context.Context, key string) (func(), error) {
	if m.held[key] {
		return nil, order.ErrCheckoutInProgress
	}
	m.held[key] = true
	return func() {
		m.ReleaseCount++
		delete(m.held, key)
	}, nil
}
