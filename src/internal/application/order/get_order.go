package order

import (
	"fmt"

	"github.com/jackyeh168/gas_shop/src/internal/domain/order"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
)

// GetOrderQuery 查詢訂單
// UserID 不為空時只返回該使用者的訂單（其他人的訂單視為不存在）
type GetOrderQuery struct {
	OrderID string
	UserID  string
}

// GetOrderUseCase 查詢訂單 Use Case
type GetOrderUseCase struct {
	orderRepo order.OrderRepository
}

// NewGetOrderUseCase 創建 Use Case 實例
func NewGetOrderUseCase(orderRepo order.OrderRepository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// Execute 執行查詢（auto-commit 讀取）
func (uc *GetOrderUseCase) Execute(query GetOrderQuery) (*OrderResult, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行查詢
func (uc *GetOrderUseCase) ExecuteWithContext(ctx shared.TransactionContext, query GetOrderQuery) (*OrderResult, error) {
	orderID, err := order.OrderIDFromString(query.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse order ID: %w", err)
	}

	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	if query.UserID != "" {
		userID, err := user.UserIDFromString(query.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse user ID: %w", err)
		}
		if !o.IsOwnedBy(userID) {
			return nil, order.ErrOrderNotFound.WithContext("order_id", orderID.String())
		}
	}

	return toOrderResult(o), nil
}
