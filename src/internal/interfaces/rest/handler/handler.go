package handler

import (
	"context"

	orderapp "github.com/jackyeh168/gas_shop/src/internal/application/order"
	pointsapp "github.com/jackyeh168/gas_shop/src/internal/application/points"
)

// OrderCreator 下單 Use Case
type OrderCreator interface {
	Execute(ctx context.Context, cmd orderapp.CreateOrderCommand) (*orderapp.OrderResult, error)
}

// OrderStatusChanger 訂單狀態變更 Use Case
type OrderStatusChanger interface {
	Execute(ctx context.Context, cmd orderapp.ChangeOrderStatusCommand) (*orderapp.OrderResult, error)
}

// OrderGetter 查詢訂單 Use Case
type OrderGetter interface {
	Execute(query orderapp.GetOrderQuery) (*orderapp.OrderResult, error)
}

// BalanceGetter 查詢積分 Use Case
type BalanceGetter interface {
	Execute(query pointsapp.GetPointsBalanceQuery) (*pointsapp.GetPointsBalanceResult, error)
}
