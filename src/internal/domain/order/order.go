package order

import (
	"strings"
	"time"

	"github.com/jackyeh168/gas_shop/src/internal/domain/cart"
	"github.com/jackyeh168/gas_shop/src/internal/domain/points"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
)

// DefaultCancelledReason 取消時未提供原因的預設訊息
const DefaultCancelledReason = "訂單已取消"

// ===========================
// Order Aggregate Root
// ===========================

// Order 訂單聚合根
//
// 不變量：
// 1. 建立後金額與明細不再變動，只能透過 Transition 變更狀態
// 2. pointsSettled 只會由 false 變為 true 一次，且只發生在 COMPLETED / CANCELLED
// 3. COMPLETED 訂單不可再修改
type Order struct {
	orderID OrderID
	userID  user.UserID
	stoveID cart.StoveID
	status  OrderStatus

	subtotal       shared.Money
	discountAmount shared.Money
	shipFee        shared.Money
	totalPrice     shared.Money

	pointsUsed    points.PointsAmount
	pointsEarned  points.PointsAmount
	pointsSettled bool

	confirmedAt     *time.Time
	deliveredAt     *time.Time
	cancelledReason *string
	shipperID       *string

	items         []Item
	serviceItems  []ServiceItem
	stoveSnapshot StoveSnapshot

	createdAt time.Time
	updatedAt time.Time

	events []shared.DomainEvent
}

// PlaceOrder 由爐具與購物車建立 PENDING 訂單
//
// 計算金額（CalculateQuote）並快照明細、服務項目與爐具。
// 積分扣減與持久化由應用層在同一事務內完成。
func PlaceOrder(userID user.UserID, stove *cart.Stove, c *cart.Cart, now time.Time) (*Order, error) {
	if stove == nil || !stove.OwnedBy(userID) {
		return nil, stoveNotFound(userID, stove)
	}
	if c == nil || c.IsEmpty() {
		return nil, cart.ErrEmptyCart.WithContext("stove_id", stove.ID.String())
	}

	quote := CalculateQuote(stove, c)

	items := snapshotItems(c)
	if c.IsStoveActive && stove.HasDefaultGas() &&
		stove.DefaultPromoChoice == cart.PromoChoiceGiftProduct && stove.PromoProduct != nil {
		items = append(items, giftItem(stove))
	}

	o := &Order{
		orderID:        NewOrderID(),
		userID:         userID,
		stoveID:        stove.ID,
		status:         StatusPending,
		subtotal:       quote.Subtotal,
		discountAmount: quote.DiscountAmount,
		shipFee:        quote.ShipFee,
		totalPrice:     quote.TotalPrice,
		pointsUsed:     quote.PointsUse,
		pointsEarned:   quote.PointsEarn,
		pointsSettled:  false,
		items:          items,
		serviceItems:   snapshotServiceItems(c),
		stoveSnapshot:  snapshotStove(stove, c),
		createdAt:      now,
		updatedAt:      now,
		events:         make([]shared.DomainEvent, 0),
	}

	o.publishEvent(newOrderPlacedEvent(o, now))

	return o, nil
}

func stoveNotFound(userID user.UserID, stove *cart.Stove) error {
	if stove == nil {
		return cart.ErrStoveNotFound.WithContext("user_id", userID.String())
	}
	return cart.ErrStoveNotFound.WithContext(
		"user_id", userID.String(),
		"stove_id", stove.ID.String(),
	)
}

// TransitionRequest 狀態變更請求
type TransitionRequest struct {
	Target          OrderStatus
	CancelledReason string
	ShipperID       string
}

// Transition 變更訂單狀態
//
// 檢查順序：已完成保護 → 轉換表。
// 成功時套用時間戳、取消原因與配送員，並返回應執行的積分結算。
// 失敗時訂單保持不變。
func (o *Order) Transition(req TransitionRequest, now time.Time) (Settlement, error) {
	if o.status == StatusCompleted {
		return Settlement{}, ErrOrderFinalized.WithContext("order_id", o.orderID.String())
	}
	if !o.status.CanTransitionTo(req.Target) {
		return Settlement{}, ErrInvalidTransition.WithContext(
			"order_id", o.orderID.String(),
			"from", o.status.String(),
			"to", req.Target.String(),
		)
	}

	from := o.status
	settlement := Settlement{}

	switch req.Target {
	case StatusConfirmed:
		o.confirmedAt = &now
	case StatusCompleted:
		o.deliveredAt = &now
		if !o.pointsSettled {
			settlement = Settlement{Kind: SettlementCreditEarned, Amount: o.pointsEarned}
		}
	case StatusCancelled:
		reason := strings.TrimSpace(req.CancelledReason)
		if reason == "" {
			reason = DefaultCancelledReason
		}
		o.cancelledReason = &reason
		if !o.pointsSettled {
			settlement = Settlement{Kind: SettlementRefundUsed, Amount: o.pointsUsed}
		}
	}

	if shipper := strings.TrimSpace(req.ShipperID); shipper != "" {
		o.shipperID = &shipper
	}

	o.status = req.Target
	o.updatedAt = now
	o.publishEvent(newOrderStatusChangedEvent(o.orderID, from, req.Target, now))

	return settlement, nil
}

// ConfirmSettlement 記錄結算已寫入（MarkPointsSettled 成功後呼叫）
func (o *Order) ConfirmSettlement(s Settlement, now time.Time) {
	if !s.Required() {
		return
	}
	o.pointsSettled = true
	o.publishEvent(newOrderPointsSettledEvent(o.orderID, o.userID, s, now))
}

// ===========================
// 事件管理
// ===========================

func (o *Order) publishEvent(event shared.DomainEvent) {
	o.events = append(o.events, event)
}

// PullEvents 獲取所有待發布事件並清空列表
// 事件在事務提交後由應用層發布
func (o *Order) PullEvents() []shared.DomainEvent {
	events := o.events
	o.events = make([]shared.DomainEvent, 0)
	return events
}

// ===========================
// Getters
// ===========================

func (o *Order) OrderID() OrderID { return o.orderID }
func (o *Order) UserID() user.UserID { return o.userID }
func (o *Order) StoveID() cart.StoveID { return o.stoveID }
func (o *Order) Status() OrderStatus { return o.status }
func (o *Order) Subtotal() shared.Money { return o.subtotal }
func (o *Order) DiscountAmount() shared.Money { return o.discountAmount }
func (o *Order) ShipFee() shared.Money { return o.shipFee }
func (o *Order) TotalPrice() shared.Money { return o.totalPrice }
func (o *Order) PointsUsed() points.PointsAmount { return o.pointsUsed }
func (o *Order) PointsEarned() points.PointsAmount { return o.pointsEarned }
func (o *Order) PointsSettled() bool { return o.pointsSettled }
func (o *Order) ConfirmedAt() *time.Time { return o.confirmedAt }
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }
func (o *Order) CancelledReason() *string { return o.cancelledReason }
func (o *Order) ShipperID() *string { return o.shipperID }
func (o *Order) StoveSnapshot() StoveSnapshot { return o.stoveSnapshot }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Items 返回明細副本
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// ServiceItems 返回服務項目副本
func (o *Order) ServiceItems() []ServiceItem {
	out := make([]ServiceItem, len(o.serviceItems))
	copy(out, o.serviceItems)
	return out
}

// IsOwnedBy 訂單是否屬於指定使用者
func (o *Order) IsOwnedBy(userID user.UserID) bool {
	return o.userID.Equals(userID)
}

// ===========================
// 重建（Repository 使用）
// ===========================

// OrderState 從資料庫載入的訂單狀態
type OrderState struct {
	OrderID         OrderID
	UserID          user.UserID
	StoveID         cart.StoveID
	Status          OrderStatus
	Subtotal        shared.Money
	DiscountAmount  shared.Money
	ShipFee         shared.Money
	TotalPrice      shared.Money
	PointsUsed      int
	PointsEarned    int
	PointsSettled   bool
	ConfirmedAt     *time.Time
	DeliveredAt     *time.Time
	CancelledReason *string
	ShipperID       *string
	Items           []Item
	ServiceItems    []ServiceItem
	StoveSnapshot   StoveSnapshot
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReconstructOrder 重建訂單聚合（不產生事件）
func ReconstructOrder(s OrderState) (*Order, error) {
	if _, err := ParseOrderStatus(string(s.Status)); err != nil {
		return nil, err
	}
	used, err := points.NewPointsAmount(s.PointsUsed)
	if err != nil {
		return nil, ErrCorruptedOrder.WithContext("order_id", s.OrderID.String(), "points_used", s.PointsUsed)
	}
	earned, err := points.NewPointsAmount(s.PointsEarned)
	if err != nil {
		return nil, ErrCorruptedOrder.WithContext("order_id", s.OrderID.String(), "points_earned", s.PointsEarned)
	}
	if s.PointsSettled && !s.Status.IsTerminal() {
		return nil, ErrCorruptedOrder.WithContext(
			"order_id", s.OrderID.String(),
			"reason", "points settled on non-terminal order",
		)
	}

	return &Order{
		orderID:         s.OrderID,
		userID:          s.UserID,
		stoveID:         s.StoveID,
		status:          s.Status,
		subtotal:        s.Subtotal,
		discountAmount:  s.DiscountAmount,
		shipFee:         s.ShipFee,
		totalPrice:      s.TotalPrice,
		pointsUsed:      used,
		pointsEarned:    earned,
		pointsSettled:   s.PointsSettled,
		confirmedAt:     s.ConfirmedAt,
		deliveredAt:     s.DeliveredAt,
		cancelledReason: s.CancelledReason,
		shipperID:       s.ShipperID,
		items:           s.Items,
		serviceItems:    s.ServiceItems,
		stoveSnapshot:   s.StoveSnapshot,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
		events:          make([]shared.DomainEvent, 0),
	}, nil
}
