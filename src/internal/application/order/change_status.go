package order

import (
	"context"
	"fmt"
	"time"

	"github.com/jackyeh168/gas_shop/src/internal/domain/order"
	"github.com/jackyeh168/gas_shop/src/internal/domain/points"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"go.uber.org/zap"
)

// ===========================
// ChangeOrderStatus Use Case
// ===========================

// ChangeOrderStatusCommand 變更訂單狀態命令
type ChangeOrderStatusCommand struct {
	OrderID         string
	Status          string
	CancelledReason string
	ShipperID       string
}

// ChangeOrderStatusUseCase 變更訂單狀態並執行一次性積分結算
//
// 同一事務內：
//  1. 讀取訂單並驗證轉換（已完成保護 → 轉換表）
//  2. 以原狀態 compare-and-swap 寫入新狀態
//  3. 需要結算時以 points_settled compare-and-swap 取得結算權，
//     成功才加點（完成：獲得積分；取消：退還已用積分）
type ChangeOrderStatusUseCase struct {
	orderRepo order.OrderRepository
	ledger    points.Ledger
	txManager shared.TransactionManager
	publisher shared.EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewChangeOrderStatusUseCase 創建 Use Case 實例
func NewChangeOrderStatusUseCase(
	orderRepo order.OrderRepository,
	ledger points.Ledger,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *ChangeOrderStatusUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChangeOrderStatusUseCase{
		orderRepo: orderRepo,
		ledger:    ledger,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Execute 執行狀態變更
//
// 錯誤處理：
// - order.ErrInvalidOrderID / order.ErrInvalidStatus: 輸入格式無效
// - order.ErrOrderNotFound: 訂單不存在
// - order.ErrOrderFinalized: 訂單已完成
// - order.ErrInvalidTransition: 不允許的狀態轉換
// - order.ErrOrderConflict: 並發請求已先變更狀態
func (uc *ChangeOrderStatusUseCase) Execute(ctx context.Context, cmd ChangeOrderStatusCommand) (*OrderResult, error) {
	orderID, err := order.OrderIDFromString(cmd.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse order ID: %w", err)
	}
	target, err := order.ParseOrderStatus(cmd.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to parse order status: %w", err)
	}

	logger := uc.logger.With(
		zap.String("order_id", orderID.String()),
		zap.String("target_status", target.String()),
	)

	var updated *order.Order
	err = uc.txManager.InTransaction(ctx, func(tx shared.TransactionContext) error {
		o, err := uc.orderRepo.FindByID(tx, orderID)
		if err != nil {
			return fmt.Errorf("failed to find order: %w", err)
		}

		now := uc.now()
		from := o.Status()
		settlement, err := o.Transition(order.TransitionRequest{
			Target:          target,
			CancelledReason: cmd.CancelledReason,
			ShipperID:       cmd.ShipperID,
		}, now)
		if err != nil {
			return err
		}

		if err := uc.orderRepo.UpdateStatus(tx, o, from); err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}

		if settlement.Required() {
			if err := uc.settle(tx, o, settlement, now, logger); err != nil {
				return err
			}
		}

		updated = o
		return nil
	})
	if err != nil {
		logger.Warn("order status change failed", zap.Error(err))
		return nil, err
	}

	logger.Info("order status changed", zap.Bool("points_settled", updated.PointsSettled()))

	publishEvents(uc.publisher, logger, updated.PullEvents())

	return toOrderResult(updated), nil
}

// settle 取得結算權後加點；結算權已被取得時不做任何事
func (uc *ChangeOrderStatusUseCase) settle(
	tx shared.TransactionContext,
	o *order.Order,
	settlement order.Settlement,
	now time.Time,
	logger *zap.Logger,
) error {
	swapped, err := uc.orderRepo.MarkPointsSettled(tx, o.OrderID())
	if err != nil {
		return fmt.Errorf("failed to mark points settled: %w", err)
	}
	if !swapped {
		logger.Warn("points already settled, skipping", zap.String("settlement", string(settlement.Kind)))
		return nil
	}

	if !settlement.Amount.IsZero() {
		if err := uc.ledger.Credit(tx, o.UserID(), settlement.Amount); err != nil {
			return fmt.Errorf("failed to credit points: %w", err)
		}
	}

	o.ConfirmSettlement(settlement, now)
	return nil
}
