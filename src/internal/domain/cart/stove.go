package cart

import (
	"fmt"

	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
)

// PromoChoice 爐具預設瓦斯的優惠選項
type PromoChoice string

const (
	PromoChoiceNone         PromoChoice = ""
	PromoChoiceDiscountCash PromoChoice = "DISCOUNT_CASH"
	PromoChoiceBonusPoint   PromoChoice = "BONUS_POINT"
	PromoChoiceGiftProduct  PromoChoice = "GIFT_PRODUCT"
)

// ParsePromoChoice 解析優惠選項，空字串表示未選擇
func ParsePromoChoice(s string) (PromoChoice, error) {
	switch c := PromoChoice(s); c {
	case PromoChoiceNone, PromoChoiceDiscountCash, PromoChoiceBonusPoint, PromoChoiceGiftProduct:
		return c, nil
	default:
		return PromoChoiceNone, fmt.Errorf("%w: %q", ErrInvalidPromoChoice, s)
	}
}

// Stove 使用者綁定的爐具（配送地點）
//
// Product 為綁定的預設瓦斯商品，PromoProduct 為 GIFT_PRODUCT 的贈品，兩者皆可為 nil。
type Stove struct {
	ID                     StoveID
	UserID                 user.UserID
	Name                   string
	Address                string
	Note                   string
	DefaultProductQuantity int
	DefaultPromoChoice     PromoChoice
	Product                *Product
	PromoProduct           *Product
}

// HasDefaultGas 是否有可下單的預設瓦斯（綁定商品且數量 > 0）
func (s *Stove) HasDefaultGas() bool {
	return s.Product != nil && s.DefaultProductQuantity > 0
}

// OwnedBy 爐具是否屬於指定使用者
func (s *Stove) OwnedBy(userID user.UserID) bool {
	return s.UserID.Equals(userID)
}
