package points

// 每單位積分獎勵（固定常數，無設定介面）
const (
	// BindableCartBonusPerUnit 購物車中以現金購買的可綁定（換瓶）商品，每單位獲得積分
	BindableCartBonusPerUnit = 2000

	// BindableStoveBonusPerUnit 爐具預設瓦斯（可綁定商品）每單位獲得積分
	BindableStoveBonusPerUnit = 1000

	// PromoBonusPointPerUnit 爐具優惠選擇 BONUS_POINT 時，每單位額外獲得積分
	PromoBonusPointPerUnit = 1000
)

// BonusFor 計算每單位獎勵 × 數量
func BonusFor(perUnit, quantity int) PointsAmount {
	return newPointsAmountUnchecked(perUnit).MulInt(quantity)
}
