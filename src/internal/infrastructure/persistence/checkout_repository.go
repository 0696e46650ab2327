package persistence

import (
	"errors"
	"time"

	"github.com/jackyeh168/gas_shop/src/internal/domain/cart"
	"github.com/jackyeh168/gas_shop/src/internal/domain/points"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
	"gorm.io/gorm"
)

// GORMCheckoutRepository 結帳讀取爐具 / 購物車並在下單後清空購物車
type GORMCheckoutRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewCheckoutRepository 創建結帳倉儲
func NewCheckoutRepository(db *gorm.DB) *GORMCheckoutRepository {
	return &GORMCheckoutRepository{db: db, now: time.Now}
}

var _ cart.CheckoutRepository = (*GORMCheckoutRepository)(nil)

// LoadCheckout 讀取使用者的爐具與其購物車
func (r *GORMCheckoutRepository) LoadCheckout(ctx shared.TransactionContext, userID user.UserID, stoveID cart.StoveID) (*cart.Checkout, error) {
	db := dbFrom(ctx, r.db)

	var stoveModel StoveModel
	result := db.
		Preload("Product.Tags").
		Preload("PromoProduct.Tags").
		Where("id = ? AND user_id = ?", stoveID.String(), userID.String()).
		First(&stoveModel)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, cart.ErrStoveNotFound.WithContext("stove_id", stoveID.String())
	}
	if result.Error != nil {
		return nil, mapError(result.Error, nil, nil)
	}

	stove, err := toStoveDomain(&stoveModel)
	if err != nil {
		return nil, err
	}

	var cartModel CartModel
	result = db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at, id") }).
		Preload("Items.Product.Tags").
		Preload("ServiceItems", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at, id") }).
		Where("stove_id = ?", stoveID.String()).
		First(&cartModel)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		// 尚未建立購物車：視為空購物車
		return &cart.Checkout{
			Stove: stove,
			Cart:  &cart.Cart{StoveID: stove.ID, Type: cart.CartTypeNormal},
		}, nil
	}
	if result.Error != nil {
		return nil, mapError(result.Error, nil, nil)
	}

	c, err := toCartDomain(&cartModel)
	if err != nil {
		return nil, err
	}

	return &cart.Checkout{Stove: stove, Cart: c}, nil
}

// Consume 清空購物車
//
//	UPDATE carts SET type = 'NORMAL', is_stove_active = false, version = version + 1
//	WHERE id = ? AND version = ?
//
// 受影響列數為 0 → cart.ErrCartChanged；之後刪除所有明細與服務項目
func (r *GORMCheckoutRepository) Consume(ctx shared.TransactionContext, c *cart.Cart) error {
	if c.ID.IsEmpty() {
		return nil
	}
	db := dbFrom(ctx, r.db)

	result := db.Model(&CartModel{}).
		Where("id = ? AND version = ?", c.ID.String(), c.Version).
		Updates(map[string]interface{}{
			"type":            string(cart.CartTypeNormal),
			"is_stove_active": false,
			"version":         gorm.Expr("version + 1"),
			"updated_at":      r.now(),
		})
	if result.Error != nil {
		return mapError(result.Error, nil, nil)
	}
	if result.RowsAffected == 0 {
		return cart.ErrCartChanged.WithContext(
			"cart_id", c.ID.String(),
			"version", c.Version,
		)
	}

	if err := db.Where("cart_id = ?", c.ID.String()).Delete(&CartItemModel{}).Error; err != nil {
		return mapError(err, nil, nil)
	}
	if err := db.Where("cart_id = ?", c.ID.String()).Delete(&CartServiceItemModel{}).Error; err != nil {
		return mapError(err, nil, nil)
	}

	return nil
}

// ===========================
// Mapper
// ===========================

func toProductDomain(m *ProductModel) (cart.Product, error) {
	id, err := cart.ProductIDFromString(m.ID)
	if err != nil {
		return cart.Product{}, err
	}
	pointValue, err := points.NewPointsAmount(m.PointValue)
	if err != nil {
		return cart.Product{}, err
	}

	tags := make([]string, 0, len(m.Tags))
	for _, t := range m.Tags {
		tags = append(tags, t.Tag)
	}

	return cart.Product{
		ID:         id,
		Name:       m.Name,
		Price:      shared.NewMoney(m.Price),
		PointValue: pointValue,
		Tags:       tags,
	}, nil
}

func toStoveDomain(m *StoveModel) (*cart.Stove, error) {
	id, err := cart.StoveIDFromString(m.ID)
	if err != nil {
		return nil, err
	}
	userID, err := user.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}
	choice, err := cart.ParsePromoChoice(m.DefaultPromoChoice)
	if err != nil {
		return nil, err
	}

	stove := &cart.Stove{
		ID:                     id,
		UserID:                 userID,
		Name:                   m.Name,
		Address:                m.Address,
		Note:                   m.Note,
		DefaultProductQuantity: m.DefaultProductQuantity,
		DefaultPromoChoice:     choice,
	}
	if m.Product != nil {
		p, err := toProductDomain(m.Product)
		if err != nil {
			return nil, err
		}
		stove.Product = &p
	}
	if m.PromoProduct != nil {
		p, err := toProductDomain(m.PromoProduct)
		if err != nil {
			return nil, err
		}
		stove.PromoProduct = &p
	}
	return stove, nil
}

func toCartDomain(m *CartModel) (*cart.Cart, error) {
	id, err := cart.CartIDFromString(m.ID)
	if err != nil {
		return nil, err
	}
	stoveID, err := cart.StoveIDFromString(m.StoveID)
	if err != nil {
		return nil, err
	}

	items := make([]cart.CartItem, 0, len(m.Items))
	for i := range m.Items {
		item, err := toCartItemDomain(&m.Items[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	services := make([]cart.ServiceItem, 0, len(m.ServiceItems))
	for _, s := range m.ServiceItems {
		sid, err := cart.ServiceItemIDFromString(s.ID)
		if err != nil {
			return nil, err
		}
		services = append(services, cart.ServiceItem{
			ID:       sid,
			Name:     s.Name,
			Price:    shared.NewMoney(s.Price),
			Quantity: s.Quantity,
		})
	}

	return &cart.Cart{
		ID:            id,
		StoveID:       stoveID,
		Type:          cart.CartType(m.Type),
		IsStoveActive: m.IsStoveActive,
		Version:       m.Version,
		Items:         items,
		ServiceItems:  services,
	}, nil
}

func toCartItemDomain(m *CartItemModel) (cart.CartItem, error) {
	id, err := cart.CartItemIDFromString(m.ID)
	if err != nil {
		return cart.CartItem{}, err
	}
	product, err := toProductDomain(&m.Product)
	if err != nil {
		return cart.CartItem{}, err
	}
	itemType, err := cart.ParseCartItemType(m.Type)
	if err != nil {
		return cart.CartItem{}, err
	}

	item := cart.CartItem{
		ID:          id,
		Product:     product,
		Quantity:    m.Quantity,
		PayByPoints: m.PayByPoints,
		EarnPoints:  m.EarnPoints,
		Type:        itemType,
	}
	if m.ParentItemID != nil {
		parentID, err := cart.CartItemIDFromString(*m.ParentItemID)
		if err != nil {
			return cart.CartItem{}, err
		}
		item.ParentItemID = &parentID
	}
	return item, nil
}
