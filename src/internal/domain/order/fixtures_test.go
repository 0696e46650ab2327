package order_test

import (
	"time"

	"github.com/jackyeh168/gas_shop/src/internal/domain/cart"
	"github.com/jackyeh168/gas_shop/src/internal/domain/order"
	"github.com/jackyeh168/gas_shop/src/internal/domain/points"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func gasProduct(price int64) cart.Product {
	return cart.Product{
		ID:    cart.NewProductID(),
		Name:  "Gas Petrolimex 12kg",
		Price: shared.NewMoney(price),
		Tags:  []string{"gas", cart.BindableTag},
	}
}

func exchangeProduct(pointValue int) cart.Product {
	pv, _ := points.NewPointsAmount(pointValue)
	return cart.Product{
		ID:         cart.NewProductID(),
		Name:       "Chảo chống dính",
		Price:      shared.NewMoney(150000),
		PointValue: pv,
		Tags:       []string{"gift"},
	}
}

func newStove(owner user.UserID) *cart.Stove {
	return &cart.Stove{
		ID:      cart.NewStoveID(),
		UserID:  owner,
		Name:    "Bếp nhà",
		Address: "12 Nguyễn Trãi, Quận 1",
	}
}

func newCart(stoveID cart.StoveID, items ...cart.CartItem) *cart.Cart {
	return &cart.Cart{
		ID:      cart.NewCartID(),
		StoveID: stoveID,
		Type:    cart.CartTypeNormal,
		Items:   items,
	}
}

func lineItem(p cart.Product, qty int, payByPoints bool) cart.CartItem {
	itemType := cart.ItemTypeNormalProduct
	if payByPoints {
		itemType = cart.ItemTypePointExchange
	}
	return cart.CartItem{
		ID:          cart.NewCartItemID(),
		Product:     p,
		Quantity:    qty,
		PayByPoints: payByPoints,
		Type:        itemType,
	}
}

// placedOrder 建立一筆 PENDING 訂單：現金購買 1 桶可綁定瓦斯（獲得 2000 點）+ 積分兌換 800 點
func placedOrder() *order.Order {
	owner := user.NewUserID()
	stove := newStove(owner)
	c := newCart(stove.ID, lineItem(gasProduct(450000), 1, false), lineItem(exchangeProduct(800), 1, true))
	o, err := order.PlaceOrder(owner, stove, c, fixedNow)
	if err != nil {
		panic(err)
	}
	o.PullEvents()
	return o
}

// orderInStatus 以重建方式取得指定狀態的訂單
func orderInStatus(status order.OrderStatus, settled bool) *order.Order {
	o, err := order.ReconstructOrder(order.OrderState{
		OrderID:        order.NewOrderID(),
		UserID:         user.NewUserID(),
		StoveID:        cart.NewStoveID(),
		Status:         status,
		Subtotal:       shared.NewMoney(450000),
		DiscountAmount: shared.ZeroMoney(),
		ShipFee:        shared.ZeroMoney(),
		TotalPrice:     shared.NewMoney(450000),
		PointsUsed:     800,
		PointsEarned:   2000,
		PointsSettled:  settled,
		CreatedAt:      fixedNow,
		UpdatedAt:      fixedNow,
	})
	if err != nil {
		panic(err)
	}
	return o
}
