package order

import (
	"context"
	"fmt"
	"time"

	"github.com/jackyeh168/gas_shop/src/internal/domain/cart"
	"github.com/jackyeh168/gas_shop/src/internal/domain/order"
	"github.com/jackyeh168/gas_shop/src/internal/domain/points"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
	"go.uber.org/zap"
)

// ===========================
// CreateOrder Use Case
// ===========================

// CreateOrderCommand 下單命令
type CreateOrderCommand struct {
	UserID  string
	StoveID string
}

// CreateOrderUseCase 由爐具購物車建立訂單
//
// 以下步驟在同一事務內完成，任何一步失敗全部回滾：
//  1. 讀取爐具（含綁定商品、贈品）與購物車
//  2. 計算金額與積分，快照明細 / 服務項目 / 爐具（order.PlaceOrder）
//  3. pointsUse > 0 時條件式扣點
//  4. 寫入訂單、明細、服務項目、爐具快照
//  5. 清空購物車（版本比對）
//
// 領域事件在提交後發布。
type CreateOrderUseCase struct {
	checkoutRepo cart.CheckoutRepository
	orderRepo    order.OrderRepository
	ledger       points.Ledger
	txManager    shared.TransactionManager
	publisher    shared.EventPublisher
	lock         CheckoutLock
	logger       *zap.Logger
	now          func() time.Time
}

// NewCreateOrderUseCase 創建 Use Case 實例；lock 可為 nil（停用結帳短鎖）
func NewCreateOrderUseCase(
	checkoutRepo cart.CheckoutRepository,
	orderRepo order.OrderRepository,
	ledger points.Ledger,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	lock CheckoutLock,
	logger *zap.Logger,
) *CreateOrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CreateOrderUseCase{
		checkoutRepo: checkoutRepo,
		orderRepo:    orderRepo,
		ledger:       ledger,
		txManager:    txManager,
		publisher:    publisher,
		lock:         lock,
		logger:       logger,
		now:          time.Now,
	}
}

// Execute 執行下單
//
// 錯誤處理：
// - ErrInvalidUserID: UserID 格式無效
// - cart.ErrStoveNotFound: 爐具不存在或不屬於使用者
// - cart.ErrEmptyCart: 購物車是空的
// - points.ErrInsufficientPoints: 積分不足
// - cart.ErrCartChanged: 購物車已被另一筆結帳消耗
// - order.ErrCheckoutInProgress: 同一爐具的結帳正在進行中
func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*OrderResult, error) {
	userID, err := user.UserIDFromString(cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user ID: %w", err)
	}
	stoveID, err := cart.StoveIDFromString(cmd.StoveID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stove ID: %w", err)
	}

	logger := uc.logger.With(
		zap.String("user_id", userID.String()),
		zap.String("stove_id", stoveID.String()),
	)

	if uc.lock != nil {
		release, err := uc.lock.Acquire(ctx, checkoutLockKey(userID.String(), stoveID.String()))
		if err != nil {
			logger.Info("checkout rejected", zap.Error(err))
			return nil, fmt.Errorf("failed to acquire checkout lock: %w", err)
		}
		defer release()
	}

	var placed *order.Order
	err = uc.txManager.InTransaction(ctx, func(tx shared.TransactionContext) error {
		checkout, err := uc.checkoutRepo.LoadCheckout(tx, userID, stoveID)
		if err != nil {
			return fmt.Errorf("failed to load checkout: %w", err)
		}

		o, err := order.PlaceOrder(userID, checkout.Stove, checkout.Cart, uc.now())
		if err != nil {
			return fmt.Errorf("failed to place order: %w", err)
		}

		if !o.PointsUsed().IsZero() {
			if err := uc.ledger.TryReserve(tx, userID, o.PointsUsed()); err != nil {
				return fmt.Errorf("failed to reserve points: %w", err)
			}
		}

		if err := uc.orderRepo.Save(tx, o); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}

		if err := uc.checkoutRepo.Consume(tx, checkout.Cart); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		placed = o
		return nil
	})
	if err != nil {
		logger.Warn("order creation failed", zap.Error(err))
		return nil, err
	}

	logger.Info("order created",
		zap.String("order_id", placed.OrderID().String()),
		zap.Int64("total_price", placed.TotalPrice().Int64()),
		zap.Int("points_used", placed.PointsUsed().Value()),
		zap.Int("points_earned", placed.PointsEarned().Value()),
	)

	publishEvents(uc.publisher, logger, placed.PullEvents())

	return toOrderResult(placed), nil
}

// publishEvents 發布事件；發布失敗只記錄，不影響已提交的結果
func publishEvents(publisher shared.EventPublisher, logger *zap.Logger, events []shared.DomainEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.PublishBatch(events); err != nil {
		logger.Error("failed to publish domain events", zap.Int("count", len(events)), zap.Error(err))
	}
}
