package order

import (
	"time"

	"github.com/jackyeh168/gas_shop/src/internal/domain/order"
)

// OrderResult 訂單輸出（金額為整數越南盾）
type OrderResult struct {
	OrderID         string
	UserID          string
	StoveID         string
	Status          string
	Subtotal        int64
	DiscountAmount  int64
	ShipFee         int64
	TotalPrice      int64
	PointsUsed      int
	PointsEarned    int
	PointsSettled   bool
	ConfirmedAt     *time.Time
	DeliveredAt     *time.Time
	CancelledReason *string
	ShipperID       *string
	Items           []OrderItemResult
	ServiceItems    []OrderServiceItemResult
	Stove           StoveSnapshotResult
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItemResult 訂單明細輸出
type OrderItemResult struct {
	ProductID      string
	ProductName    string
	Quantity       int
	UnitPrice      int64
	UnitPointPrice int
	Type           string
	PayByPoints    bool
	EarnPoints     bool
	Bundled        bool
}

// OrderServiceItemResult 訂單服務項目輸出
type OrderServiceItemResult struct {
	Name      string
	UnitPrice int64
	Quantity  int
}

// StoveSnapshotResult 爐具快照輸出
type StoveSnapshotResult struct {
	StoveID            string
	Name               string
	Address            string
	Note               string
	IncludesDefaultGas bool
	ProductName        string
	ProductPrice       int64
	ProductQuantity    int
	PromoChoice        string
	PromoProductName   string
	PromoQuantity      int
}

func toOrderResult(o *order.Order) *OrderResult {
	items := make([]OrderItemResult, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResult{
			ProductID:      item.ProductID.String(),
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice.Int64(),
			UnitPointPrice: item.UnitPointPrice.Value(),
			Type:           string(item.Type),
			PayByPoints:    item.PayByPoints,
			EarnPoints:     item.EarnPoints,
			Bundled:        item.Bundled,
		})
	}

	services := make([]OrderServiceItemResult, 0, len(o.ServiceItems()))
	for _, svc := range o.ServiceItems() {
		services = append(services, OrderServiceItemResult{
			Name:      svc.Name,
			UnitPrice: svc.UnitPrice.Int64(),
			Quantity:  svc.Quantity,
		})
	}

	snap := o.StoveSnapshot()

	return &OrderResult{
		OrderID:         o.OrderID().String(),
		UserID:          o.UserID().String(),
		StoveID:         o.StoveID().String(),
		Status:          o.Status().String(),
		Subtotal:        o.Subtotal().Int64(),
		DiscountAmount:  o.DiscountAmount().Int64(),
		ShipFee:         o.ShipFee().Int64(),
		TotalPrice:      o.TotalPrice().Int64(),
		PointsUsed:      o.PointsUsed().Value(),
		PointsEarned:    o.PointsEarned().Value(),
		PointsSettled:   o.PointsSettled(),
		ConfirmedAt:     o.ConfirmedAt(),
		DeliveredAt:     o.DeliveredAt(),
		CancelledReason: o.CancelledReason(),
		ShipperID:       o.ShipperID(),
		Items:           items,
		ServiceItems:    services,
		Stove: StoveSnapshotResult{
			StoveID:            snap.StoveID.String(),
			Name:               snap.StoveName,
			Address:            snap.Address,
			Note:               snap.Note,
			IncludesDefaultGas: snap.IncludesDefaultGas,
			ProductName:        snap.ProductName,
			ProductPrice:       snap.ProductPrice.Int64(),
			ProductQuantity:    snap.ProductQuantity,
			PromoChoice:        string(snap.PromoChoice),
			PromoProductName:   snap.PromoProductName,
			PromoQuantity:      snap.PromoQuantity,
		},
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}
