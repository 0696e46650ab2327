package persistence

import (
	"github.com/jackyeh168/gas_shop/src/internal/domain/order"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMOrderRepository GORM 實作的訂單倉儲
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 創建訂單倉儲
func NewOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

var _ order.OrderRepository = (*GORMOrderRepository)(nil)

// Save 新增訂單、明細、服務項目與爐具快照
func (r *GORMOrderRepository) Save(ctx shared.TransactionContext, o *order.Order) error {
	db := dbFrom(ctx, r.db)
	model := toOrderModel(o)

	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		return mapError(err, nil, nil)
	}
	if len(model.Items) > 0 {
		if err := db.Create(&model.Items).Error; err != nil {
			return mapError(err, nil, nil)
		}
	}
	if len(model.ServiceItems) > 0 {
		if err := db.Create(&model.ServiceItems).Error; err != nil {
			return mapError(err, nil, nil)
		}
	}
	if err := db.Create(model.StoveSnapshot).Error; err != nil {
		return mapError(err, nil, nil)
	}
	return nil
}

// FindByID 根據訂單 ID 查找
func (r *GORMOrderRepository) FindByID(ctx shared.TransactionContext, id order.OrderID) (*order.Order, error) {
	var model OrderModel
	result := dbFrom(ctx, r.db).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		Preload("ServiceItems", func(tx *gorm.DB) *gorm.DB { return tx.Order("position") }).
		Preload("StoveSnapshot").
		First(&model, "id = ?", id.String())
	if result.Error != nil {
		return nil, mapError(result.Error, order.ErrOrderNotFound, nil)
	}
	return toOrderDomain(&model)
}

// UpdateStatus 以原狀態做 compare-and-swap 寫入狀態變更
//
//	UPDATE orders SET status = ?, ... WHERE id = ? AND status = ?
func (r *GORMOrderRepository) UpdateStatus(ctx shared.TransactionContext, o *order.Order, from order.OrderStatus) error {
	db := dbFrom(ctx, r.db)

	result := db.Model(&OrderModel{}).
		Where("id = ? AND status = ?", o.OrderID().String(), string(from)).
		Updates(map[string]interface{}{
			"status":           string(o.Status()),
			"confirmed_at":     o.ConfirmedAt(),
			"delivered_at":     o.DeliveredAt(),
			"cancelled_reason": o.CancelledReason(),
			"shipper_id":       o.ShipperID(),
			"updated_at":       o.UpdatedAt(),
		})
	if result.Error != nil {
		return mapError(result.Error, nil, nil)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := db.Model(&OrderModel{}).Where("id = ?", o.OrderID().String()).Count(&count).Error; err != nil {
		return mapError(err, nil, nil)
	}
	if count == 0 {
		return order.ErrOrderNotFound.WithContext("order_id", o.OrderID().String())
	}
	return order.ErrOrderConflict.WithContext(
		"order_id", o.OrderID().String(),
		"expected_status", string(from),
	)
}

// MarkPointsSettled 結算旗標 compare-and-swap
//
//	UPDATE orders SET points_settled = true WHERE id = ? AND points_settled = false
func (r *GORMOrderRepository) MarkPointsSettled(ctx shared.TransactionContext, id order.OrderID) (bool, error) {
	result := dbFrom(ctx, r.db).Model(&OrderModel{}).
		Where("id = ? AND points_settled = ?", id.String(), false).
		Update("points_settled", true)
	if result.Error != nil {
		return false, mapError(result.Error, nil, nil)
	}
	return result.RowsAffected == 1, nil
}
