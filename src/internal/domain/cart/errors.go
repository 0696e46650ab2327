package cart

import "github.com/jackyeh168/gas_shop/src/internal/domain/shared"

// 錯誤代碼常量
const (
	ErrCodeStoveNotFound      shared.ErrorCode = "STOVE_NOT_FOUND"
	ErrCodeEmptyCart          shared.ErrorCode = "CART_EMPTY"
	ErrCodeCartChanged        shared.ErrorCode = "CART_CHANGED"
	ErrCodeInvalidCartID      shared.ErrorCode = "CART_ID_INVALID"
	ErrCodeInvalidProductID   shared.ErrorCode = "PRODUCT_ID_INVALID"
	ErrCodeInvalidPromoChoice shared.ErrorCode = "PROMO_CHOICE_INVALID"
	ErrCodeInvalidItemType    shared.ErrorCode = "CART_ITEM_TYPE_INVALID"
)

var (
	// ErrStoveNotFound 爐具不存在或不屬於目前使用者
	ErrStoveNotFound = &shared.DomainError{
		Code:    ErrCodeStoveNotFound,
		Message: "找不到爐具",
	}

	// ErrEmptyCart 沒有商品、沒有服務項目、爐具也未啟用
	ErrEmptyCart = &shared.DomainError{
		Code:    ErrCodeEmptyCart,
		Message: "購物車是空的",
	}

	// ErrCartChanged 讀取後購物車已被另一筆結帳消耗
	ErrCartChanged = &shared.DomainError{
		Code:    ErrCodeCartChanged,
		Message: "購物車已變更，請重新整理後再試",
	}

	ErrInvalidCartID = &shared.DomainError{
		Code:    ErrCodeInvalidCartID,
		Message: "無效的購物車 ID",
	}

	ErrInvalidProductID = &shared.DomainError{
		Code:    ErrCodeInvalidProductID,
		Message: "無效的商品 ID",
	}

	ErrInvalidPromoChoice = &shared.DomainError{
		Code:    ErrCodeInvalidPromoChoice,
		Message: "無效的優惠選項",
	}

	ErrInvalidItemType = &shared.DomainError{
		Code:    ErrCodeInvalidItemType,
		Message: "無效的購物車明細類型",
	}
)
