package cart

import (
	"fmt"

	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
)

// CartType 購物車類型
type CartType string

const (
	CartTypeNormal CartType = "NORMAL"
	CartTypeStove  CartType = "STOVE"
)

// CartItemType 購物車明細類型
type CartItemType string

const (
	ItemTypeGas           CartItemType = "GAS"
	ItemTypeNormalProduct CartItemType = "NORMAL_PRODUCT"
	ItemTypePromoBonus    CartItemType = "PROMO_BONUS"
	ItemTypePointExchange CartItemType = "POINT_EXCHANGE"
)

// ParseCartItemType 解析明細類型
func ParseCartItemType(s string) (CartItemType, error) {
	switch t := CartItemType(s); t {
	case ItemTypeGas, ItemTypeNormalProduct, ItemTypePromoBonus, ItemTypePointExchange:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidItemType, s)
	}
}

// CartItem 購物車商品明細
//
// ParentItemID 不為 nil 表示隨附的贈品 / 組合品，不計價。
type CartItem struct {
	ID           CartItemID
	Product      Product
	Quantity     int
	PayByPoints  bool
	EarnPoints   bool
	ParentItemID *CartItemID
	Type         CartItemType
}

// IsTopLevel 是否為獨立計價的明細
func (i CartItem) IsTopLevel() bool {
	return i.ParentItemID == nil
}

// ServiceItem 購物車服務項目（安裝、檢修等）
type ServiceItem struct {
	ID       ServiceItemID
	Name     string
	Price    shared.Money
	Quantity int
}

// Cart 爐具對應的購物車（結帳讀取模型）
//
// 生命週期：累積 → 下單時消耗 → 重置為空的 NORMAL 購物車。
// Version 為樂觀鎖版本，Consume 時比對。
type Cart struct {
	ID            CartID
	StoveID       StoveID
	Type          CartType
	IsStoveActive bool
	Version       int64
	Items         []CartItem
	ServiceItems  []ServiceItem
}

// IsEmpty 沒有商品、沒有服務項目、爐具也未啟用
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0 && len(c.ServiceItems) == 0 && !c.IsStoveActive
}

// Checkout 結帳所需的爐具與購物車快照
type Checkout struct {
	Stove *Stove
	Cart  *Cart
}
