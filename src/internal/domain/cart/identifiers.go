package cart

import "github.com/jackyeh168/gas_shop/src/internal/domain/shared"

// 標記類型
type (
	ProductMarker     struct{}
	StoveMarker       struct{}
	CartMarker        struct{}
	CartItemMarker    struct{}
	ServiceItemMarker struct{}
)

// ProductID 商品 ID
type ProductID = shared.EntityID[ProductMarker]

// StoveID 爐具 ID
type StoveID = shared.EntityID[StoveMarker]

// CartID 購物車 ID
type CartID = shared.EntityID[CartMarker]

// CartItemID 購物車明細 ID
type CartItemID = shared.EntityID[CartItemMarker]

// ServiceItemID 購物車服務項目 ID
type ServiceItemID = shared.EntityID[ServiceItemMarker]

func NewProductID() ProductID { return shared.NewEntityID[ProductMarker]() }
func NewStoveID() StoveID { return shared.NewEntityID[StoveMarker]() }
func NewCartID() CartID { return shared.NewEntityID[CartMarker]() }
func NewCartItemID() CartItemID { return shared.NewEntityID[CartItemMarker]() }
func NewServiceItemID() ServiceItemID { return shared.NewEntityID[ServiceItemMarker]() }

// StoveIDFromString 解析爐具 ID
// 格式錯誤視同找不到爐具，不洩漏 ID 格式細節
func StoveIDFromString(s string) (StoveID, error) {
	return shared.EntityIDFromString[StoveMarker](s, ErrStoveNotFound)
}

// ProductIDFromString 解析商品 ID
func ProductIDFromString(s string) (ProductID, error) {
	return shared.EntityIDFromString[ProductMarker](s, ErrInvalidProductID)
}

// CartIDFromString 解析購物車 ID
func CartIDFromString(s string) (CartID, error) {
	return shared.EntityIDFromString[CartMarker](s, ErrInvalidCartID)
}

// CartItemIDFromString 解析購物車明細 ID
func CartItemIDFromString(s string) (CartItemID, error) {
	return shared.EntityIDFromString[CartItemMarker](s, ErrInvalidCartID)
}

// ServiceItemIDFromString 解析服務項目 ID
func ServiceItemIDFromString(s string) (ServiceItemID, error) {
	return shared.EntityIDFromString[ServiceItemMarker](s, ErrInvalidCartID)
}
