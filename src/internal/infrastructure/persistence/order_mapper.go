package persistence

import (
	"github.com/jackyeh168/gas_shop/src/internal/domain/cart"
	"github.com/jackyeh168/gas_shop/src/internal/domain/order"
	"github.com/jackyeh168/gas_shop/src/internal/domain/points"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
)

// ===========================
// Order Mapper
// ===========================

func toOrderModel(o *order.Order) *OrderModel {
	id := o.OrderID().String()

	items := make([]OrderItemModel, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemModel{
			OrderID:        id,
			Position:       i,
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

	services := make([]OrderServiceItemModel, 0, len(o.ServiceItems()))
	for i, svc := range o.ServiceItems() {
		services = append(services, OrderServiceItemModel{
			OrderID:   id,
			Position:  i,
			Name:      svc.Name,
			UnitPrice: svc.UnitPrice.Int64(),
			Quantity:  svc.Quantity,
		})
	}

	snap := o.StoveSnapshot()
	snapshot := &OrderStoveSnapshotModel{
		OrderID:            id,
		StoveID:            snap.StoveID.String(),
		StoveName:          snap.StoveName,
		Address:            snap.Address,
		Note:               snap.Note,
		IncludesDefaultGas: snap.IncludesDefaultGas,
		ProductID:          productIDString(snap.ProductID),
		ProductName:        snap.ProductName,
		ProductPrice:       snap.ProductPrice.Int64(),
		ProductQuantity:    snap.ProductQuantity,
		PromoChoice:        string(snap.PromoChoice),
		PromoProductID:     productIDString(snap.PromoProductID),
		PromoProductName:   snap.PromoProductName,
		PromoQuantity:      snap.PromoQuantity,
	}

	return &OrderModel{
		ID:              id,
		UserID:          o.UserID().String(),
		StoveID:         o.StoveID().String(),
		Status:          string(o.Status()),
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
		StoveSnapshot:   snapshot,
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func toOrderDomain(m *OrderModel) (*order.Order, error) {
	id, err := order.OrderIDFromString(m.ID)
	if err != nil {
		return nil, err
	}
	userID, err := user.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}
	stoveID, err := cart.StoveIDFromString(m.StoveID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(m.Items))
	for _, im := range m.Items {
		productID, err := cart.ProductIDFromString(im.ProductID)
		if err != nil {
			return nil, err
		}
		pointPrice, err := points.NewPointsAmount(im.UnitPointPrice)
		if err != nil {
			return nil, order.ErrCorruptedOrder.WithContext("order_id", m.ID, "unit_point_price", im.UnitPointPrice)
		}
		items = append(items, order.Item{
			ProductID:      productID,
			ProductName:    im.ProductName,
			Quantity:       im.Quantity,
			UnitPrice:      shared.NewMoney(im.UnitPrice),
			UnitPointPrice: pointPrice,
			Type:           cart.CartItemType(im.Type),
			PayByPoints:    im.PayByPoints,
			EarnPoints:     im.EarnPoints,
			Bundled:        im.Bundled,
		})
	}

	services := make([]order.ServiceItem, 0, len(m.ServiceItems))
	for _, sm := range m.ServiceItems {
		services = append(services, order.ServiceItem{
			Name:      sm.Name,
			UnitPrice: shared.NewMoney(sm.UnitPrice),
			Quantity:  sm.Quantity,
		})
	}

	var snapshot order.StoveSnapshot
	if m.StoveSnapshot != nil {
		snapshot, err = toStoveSnapshotDomain(m.StoveSnapshot)
		if err != nil {
			return nil, err
		}
	}

	return order.ReconstructOrder(order.OrderState{
		OrderID:         id,
		UserID:          userID,
		StoveID:         stoveID,
		Status:          order.OrderStatus(m.Status),
		Subtotal:        shared.NewMoney(m.Subtotal),
		DiscountAmount:  shared.NewMoney(m.DiscountAmount),
		ShipFee:         shared.NewMoney(m.ShipFee),
		TotalPrice:      shared.NewMoney(m.TotalPrice),
		PointsUsed:      m.PointsUsed,
		PointsEarned:    m.PointsEarned,
		PointsSettled:   m.PointsSettled,
		ConfirmedAt:     m.ConfirmedAt,
		DeliveredAt:     m.DeliveredAt,
		CancelledReason: m.CancelledReason,
		ShipperID:       m.ShipperID,
		Items:           items,
		ServiceItems:    services,
		StoveSnapshot:   snapshot,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	})
}

func toStoveSnapshotDomain(m *OrderStoveSnapshotModel) (order.StoveSnapshot, error) {
	stoveID, err := cart.StoveIDFromString(m.StoveID)
	if err != nil {
		return order.StoveSnapshot{}, err
	}
	productID, err := parseOptionalProductID(m.ProductID)
	if err != nil {
		return order.StoveSnapshot{}, err
	}
	promoProductID, err := parseOptionalProductID(m.PromoProductID)
	if err != nil {
		return order.StoveSnapshot{}, err
	}

	return order.StoveSnapshot{
		StoveID:            stoveID,
		StoveName:          m.StoveName,
		Address:            m.Address,
		Note:               m.Note,
		IncludesDefaultGas: m.IncludesDefaultGas,
		ProductID:          productID,
		ProductName:        m.ProductName,
		ProductPrice:       shared.NewMoney(m.ProductPrice),
		ProductQuantity:    m.ProductQuantity,
		PromoChoice:        cart.PromoChoice(m.PromoChoice),
		PromoProductID:     promoProductID,
		PromoProductName:   m.PromoProductName,
		PromoQuantity:      m.PromoQuantity,
	}, nil
}

func productIDString(id *cart.ProductID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func parseOptionalProductID(s *string) (*cart.ProductID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := cart.ProductIDFromString(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
