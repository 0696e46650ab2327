package cart

import (
	"github.com/jackyeh168/gas_shop/src/internal/domain/points"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
)

// BindableTag 換瓶類商品（可綁定爐具的瓦斯桶）的標籤
const BindableTag = "bindable"

// Product 結帳時讀取的商品資料（目前售價、兌換積分、標籤）
type Product struct {
	ID         ProductID
	Name       string
	Price      shared.Money
	PointValue points.PointsAmount
	Tags       []string
}

// IsBindable 是否為可綁定商品
func (p Product) IsBindable() bool {
	for _, tag := range p.Tags {
		if tag == BindableTag {
			return true
		}
	}
	return false
}
