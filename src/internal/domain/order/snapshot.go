package order

import (
	"github.com/jackyeh168/gas_shop/src/internal/domain/cart"
	"github.com/jackyeh168/gas_shop/src/internal/domain/points"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
)

// Item 訂單明細快照（下單當下的價格，之後不再讀取商品目錄）
//
// Bundled 為隨附贈品 / 組合品，單價與兌換積分一律為 0。
type Item struct {
	ProductID      cart.ProductID
	ProductName    string
	Quantity       int
	UnitPrice      shared.Money
	UnitPointPrice points.PointsAmount
	Type           cart.CartItemType
	PayByPoints    bool
	EarnPoints     bool
	Bundled        bool
}

// ServiceItem 訂單服務項目快照
type ServiceItem struct {
	Name      string
	UnitPrice shared.Money
	Quantity  int
}

// StoveSnapshot 下單當下的爐具、綁定商品與優惠選項
//
// IncludesDefaultGas 表示本單是否包含爐具預設瓦斯（購物車啟用爐具且有綁定商品）。
type StoveSnapshot struct {
	StoveID            cart.StoveID
	StoveName          string
	Address            string
	Note               string
	IncludesDefaultGas bool
	ProductID          *cart.ProductID
	ProductName        string
	ProductPrice       shared.Money
	ProductQuantity    int
	PromoChoice        cart.PromoChoice
	PromoProductID     *cart.ProductID
	PromoProductName   string
	PromoQuantity      int
}

func snapshotItems(c *cart.Cart) []Item {
	items := make([]Item, 0, len(c.Items))
	for _, ci := range c.Items {
		item := Item{
			ProductID:   ci.Product.ID,
			ProductName: ci.Product.Name,
			Quantity:    ci.Quantity,
			Type:        ci.Type,
			PayByPoints: ci.PayByPoints,
			EarnPoints:  ci.EarnPoints,
			Bundled:     !ci.IsTopLevel(),
		}
		if ci.IsTopLevel() {
			item.UnitPrice = ci.Product.Price
			item.UnitPointPrice = ci.Product.PointValue
		} else {
			item.UnitPrice = shared.ZeroMoney()
			item.UnitPointPrice = points.ZeroPoints()
		}
		items = append(items, item)
	}
	return items
}

// giftItem GIFT_PRODUCT 優惠的零價贈品明細
func giftItem(stove *cart.Stove) Item {
	return Item{
		ProductID:      stove.PromoProduct.ID,
		ProductName:    stove.PromoProduct.Name,
		Quantity:       stove.DefaultProductQuantity,
		UnitPrice:      shared.ZeroMoney(),
		UnitPointPrice: points.ZeroPoints(),
		Type:           cart.ItemTypePromoBonus,
	}
}

func snapshotServiceItems(c *cart.Cart) []ServiceItem {
	out := make([]ServiceItem, 0, len(c.ServiceItems))
	for _, svc := range c.ServiceItems {
		out = append(out, ServiceItem{
			Name:      svc.Name,
			UnitPrice: svc.Price,
			Quantity:  svc.Quantity,
		})
	}
	return out
}

func snapshotStove(stove *cart.Stove, c *cart.Cart) StoveSnapshot {
	snap := StoveSnapshot{
		StoveID:            stove.ID,
		StoveName:          stove.Name,
		Address:            stove.Address,
		Note:               stove.Note,
		IncludesDefaultGas: c.IsStoveActive && stove.HasDefaultGas(),
		ProductPrice:       shared.ZeroMoney(),
		ProductQuantity:    stove.DefaultProductQuantity,
		PromoChoice:        stove.DefaultPromoChoice,
	}
	if stove.Product != nil {
		id := stove.Product.ID
		snap.ProductID = &id
		snap.ProductName = stove.Product.Name
		snap.ProductPrice = stove.Product.Price
	}
	if stove.PromoProduct != nil && stove.DefaultPromoChoice == cart.PromoChoiceGiftProduct {
		id := stove.PromoProduct.ID
		snap.PromoProductID = &id
		snap.PromoProductName = stove.PromoProduct.Name
		snap.PromoQuantity = stove.DefaultProductQuantity
	}
	return snap
}
