package order

import (
	"github.com/jackyeh168/gas_shop/src/internal/domain/cart"
	"github.com/jackyeh168/gas_shop/src/internal/domain/points"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
)

// CashDiscountPerUnit DISCOUNT_CASH 優惠每單位折抵金額
const CashDiscountPerUnit int64 = 10000

// Quote 訂單金額與積分計算結果
type Quote struct {
	Subtotal       shared.Money
	DiscountAmount shared.Money
	ShipFee        shared.Money
	TotalPrice     shared.Money
	PointsUse      points.PointsAmount
	PointsEarn     points.PointsAmount
}

// CalculateQuote 由爐具與購物車快照計算金額與積分（純函數，不修改任何資料）
//
//  1. 獨立明細：積分支付累加 pointsUse，否則累加 subtotal；
//     現金購買的可綁定商品每單位獲得 2000 點
//  2. 爐具啟用且有預設瓦斯：累加 subtotal，可綁定每單位 1000 點，再依優惠選項
//     DISCOUNT_CASH 折 10000 / BONUS_POINT 加 1000 點 / GIFT_PRODUCT 無金額影響
//  3. 服務項目累加 subtotal
//  4. totalPrice = max(subtotal - discount, 0)，運費固定為 0
func CalculateQuote(stove *cart.Stove, c *cart.Cart) Quote {
	subtotal := shared.ZeroMoney()
	discount := shared.ZeroMoney()
	pointsUse := points.ZeroPoints()
	pointsEarn := points.ZeroPoints()

	if c == nil {
		c = &cart.Cart{}
	}

	for _, item := range c.Items {
		if !item.IsTopLevel() {
			continue
		}
		if item.PayByPoints {
			pointsUse = pointsUse.Add(item.Product.PointValue.MulInt(item.Quantity))
			continue
		}
		subtotal = subtotal.Add(item.Product.Price.MulInt(item.Quantity))
		if item.Product.IsBindable() {
			pointsEarn = pointsEarn.Add(points.BonusFor(points.BindableCartBonusPerUnit, item.Quantity))
		}
	}

	if c.IsStoveActive && stove != nil && stove.HasDefaultGas() {
		qty := stove.DefaultProductQuantity
		subtotal = subtotal.Add(stove.Product.Price.MulInt(qty))
		if stove.Product.IsBindable() {
			pointsEarn = pointsEarn.Add(points.BonusFor(points.BindableStoveBonusPerUnit, qty))
		}

		switch stove.DefaultPromoChoice {
		case cart.PromoChoiceDiscountCash:
			discount = discount.Add(shared.NewMoney(CashDiscountPerUnit).MulInt(qty))
		case cart.PromoChoiceBonusPoint:
			pointsEarn = pointsEarn.Add(points.BonusFor(points.PromoBonusPointPerUnit, qty))
		case cart.PromoChoiceGiftProduct:
			// 贈品另以零價明細寫入訂單
		}
	}

	for _, svc := range c.ServiceItems {
		subtotal = subtotal.Add(svc.Price.MulInt(svc.Quantity))
	}

	return Quote{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		ShipFee:        shared.ZeroMoney(),
		TotalPrice:     subtotal.Sub(discount).ClampZero(),
		PointsUse:      pointsUse,
		PointsEarn:     pointsEarn,
	}
}
