package handler

import (
	"time"

	orderapp "github.com/jackyeh168/gas_shop/src/internal/application/order"
)

type createOrderRequest struct {
	StoveID string `json:"stove_id" binding:"required"`
}

type changeStatusRequest struct {
	Status          string `json:"status" binding:"required"`
	CancelledReason string `json:"cancelled_reason" binding:"max=255"`
	ShipperID       string `json:"shipper_id" binding:"omitempty,max=36"`
}

type orderItemResponse struct {
	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name"`
	Quantity       int    `json:"quantity"`
	UnitPrice      int64  `json:"unit_price"`
	UnitPointPrice int    `json:"unit_point_price"`
	Type           string `json:"type"`
	PayByPoints    bool   `json:"pay_by_points"`
	EarnPoints     bool   `json:"earn_points"`
	Bundled        bool   `json:"bundled"`
}

type orderServiceItemResponse struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type stoveSnapshotResponse struct {
	StoveID            string `json:"stove_id"`
	Name               string `json:"name"`
	Address            string `json:"address"`
	Note               string `json:"note,omitempty"`
	IncludesDefaultGas bool   `json:"includes_default_gas"`
	ProductName        string `json:"product_name,omitempty"`
	ProductPrice       int64  `json:"product_price"`
	ProductQuantity    int    `json:"product_quantity"`
	PromoChoice        string `json:"promo_choice,omitempty"`
	PromoProductName   string `json:"promo_product_name,omitempty"`
	PromoQuantity      int    `json:"promo_quantity"`
}

type orderResponse struct {
	ID              string                     `json:"id"`
	UserID          string                     `json:"user_id"`
	Status          string                     `json:"status"`
	Subtotal        int64                      `json:"subtotal"`
	DiscountAmount  int64                      `json:"discount_amount"`
	ShipFee         int64                      `json:"ship_fee"`
	TotalPrice      int64                      `json:"total_price"`
	PointsUsed      int                        `json:"points_used"`
	PointsEarned    int                        `json:"points_earned"`
	PointsSettled   bool                       `json:"points_settled"`
	ConfirmedAt     *time.Time                 `json:"confirmed_at,omitempty"`
	DeliveredAt     *time.Time                 `json:"delivered_at,omitempty"`
	CancelledReason *string                    `json:"cancelled_reason,omitempty"`
	ShipperID       *string                    `json:"shipper_id,omitempty"`
	Items           []orderItemResponse        `json:"items"`
	ServiceItems    []orderServiceItemResponse `json:"service_items"`
	Stove           stoveSnapshotResponse      `json:"stove"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

type balanceResponse struct {
	UserID string `json:"user_id"`
	Points int    `json:"points"`
}

func toOrderResponse(r *orderapp.OrderResult) orderResponse {
	items := make([]orderItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, orderItemResponse(it))
	}
	services := make([]orderServiceItemResponse, 0, len(r.ServiceItems))
	for _, s := range r.ServiceItems {
		services = append(services, orderServiceItemResponse(s))
	}

	return orderResponse{
		ID:              r.OrderID,
		UserID:          r.UserID,
		Status:          r.Status,
		Subtotal:        r.Subtotal,
		DiscountAmount:  r.DiscountAmount,
		ShipFee:         r.ShipFee,
		TotalPrice:      r.TotalPrice,
		PointsUsed:      r.PointsUsed,
		PointsEarned:    r.PointsEarned,
		PointsSettled:   r.PointsSettled,
		ConfirmedAt:     r.ConfirmedAt,
		DeliveredAt:     r.DeliveredAt,
		CancelledReason: r.CancelledReason,
		ShipperID:       r.ShipperID,
		Items:           items,
		ServiceItems:    services,
		Stove:           stoveSnapshotResponse(r.Stove),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
