package persistence

import "time"

// ===========================
// GORM Models
// ===========================
//
// 金額欄位以 bigint 儲存整數越南盾，積分以 int 儲存。
// 這些結構只在 Infrastructure Layer 使用，透過 mapper 與 Domain 轉換。

// UserModel 使用者（points 只能經由 GORMPointLedger 變動）
type UserModel struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)"`
	PhoneNumber string    `gorm:"type:varchar(15);uniqueIndex;not null"`
	DisplayName string    `gorm:"type:varchar(100);not null"`
	Points      int       `gorm:"not null;default:0;check:chk_users_points_non_negative,points >= 0"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }

// ProductModel 商品目錄
type ProductModel struct {
	ID         string            `gorm:"primaryKey;type:varchar(36)"`
	Name       string            `gorm:"type:varchar(200);not null"`
	Price      int64             `gorm:"not null;default:0"`
	PointValue int               `gorm:"not null;default:0"`
	Tags       []ProductTagModel `gorm:"foreignKey:ProductID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (ProductModel) TableName() string { return "products" }

// ProductTagModel 商品標籤（"bindable" 表示換瓶類商品）
type ProductTagModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	ProductID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_product_tag"`
	Tag       string `gorm:"type:varchar(50);not null;uniqueIndex:idx_product_tag"`
}

func (ProductTagModel) TableName() string { return "product_tags" }

// StoveModel 使用者綁定的爐具
type StoveModel struct {
	ID                     string        `gorm:"primaryKey;type:varchar(36)"`
	UserID                 string        `gorm:"type:varchar(36);not null;index"`
	Name                   string        `gorm:"type:varchar(100);not null"`
	Address                string        `gorm:"type:varchar(255)"`
	Note                   string        `gorm:"type:varchar(255)"`
	DefaultProductQuantity int           `gorm:"not null;default:0"`
	DefaultPromoChoice     string        `gorm:"type:varchar(20)"`
	ProductID              *string       `gorm:"type:varchar(36)"`
	Product                *ProductModel `gorm:"foreignKey:ProductID"`
	PromoProductID         *string       `gorm:"type:varchar(36)"`
	PromoProduct           *ProductModel `gorm:"foreignKey:PromoProductID"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (StoveModel) TableName() string { return "stoves" }

// CartModel 爐具對應的購物車（version 為樂觀鎖）
type CartModel struct {
	ID            string                 `gorm:"primaryKey;type:varchar(36)"`
	StoveID       string                 `gorm:"type:varchar(36);not null;uniqueIndex"`
	Type          string                 `gorm:"type:varchar(10);not null;default:NORMAL"`
	IsStoveActive bool                   `gorm:"not null;default:false"`
	Version       int64                  `gorm:"not null;default:0"`
	Items         []CartItemModel        `gorm:"foreignKey:CartID"`
	ServiceItems  []CartServiceItemModel `gorm:"foreignKey:CartID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (CartModel) TableName() string { return "carts" }

// CartItemModel 購物車明細（parent_item_id 不為空表示隨附品）
type CartItemModel struct {
	ID           string       `gorm:"primaryKey;type:varchar(36)"`
	CartID       string       `gorm:"type:varchar(36);not null;index"`
	ProductID    string       `gorm:"type:varchar(36);not null"`
	Product      ProductModel `gorm:"foreignKey:ProductID"`
	Quantity     int          `gorm:"not null"`
	PayByPoints  bool         `gorm:"not null;default:false"`
	EarnPoints   bool         `gorm:"not null;default:false"`
	ParentItemID *string      `gorm:"type:varchar(36)"`
	Type         string       `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
}

func (CartItemModel) TableName() string { return "cart_items" }

// CartServiceItemModel 購物車服務項目
type CartServiceItemModel struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	CartID    string `gorm:"type:varchar(36);not null;index"`
	Name      string `gorm:"type:varchar(200);not null"`
	Price     int64  `gorm:"not null"`
	Quantity  int    `gorm:"not null"`
	CreatedAt time.Time
}

func (CartServiceItemModel) TableName() string { return "cart_service_items" }

// OrderModel 訂單
type OrderModel struct {
	ID              string                   `gorm:"primaryKey;type:varchar(36)"`
	UserID          string                   `gorm:"type:varchar(36);not null;index"`
	StoveID         string                   `gorm:"type:varchar(36);not null"`
	Status          string                   `gorm:"type:varchar(20);not null;index"`
	Subtotal        int64                    `gorm:"not null"`
	DiscountAmount  int64                    `gorm:"not null"`
	ShipFee         int64                    `gorm:"not null"`
	TotalPrice      int64                    `gorm:"not null"`
	PointsUsed      int                      `gorm:"not null"`
	PointsEarned    int                      `gorm:"not null"`
	PointsSettled   bool                     `gorm:"not null;default:false"`
	ConfirmedAt     *time.Time
	DeliveredAt     *time.Time
	CancelledReason *string                  `gorm:"type:varchar(255)"`
	ShipperID       *string                  `gorm:"type:varchar(36)"`
	Items           []OrderItemModel         `gorm:"foreignKey:OrderID"`
	ServiceItems    []OrderServiceItemModel  `gorm:"foreignKey:OrderID"`
	StoveSnapshot   *OrderStoveSnapshotModel `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time                `gorm:"not null"`
	UpdatedAt       time.Time                `gorm:"not null"`
}

func (OrderModel) TableName() string { return "orders" }

// OrderItemModel 訂單明細快照
type OrderItemModel struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	OrderID        string `gorm:"type:varchar(36);not null;index"`
	Position       int    `gorm:"not null"`
	ProductID      string `gorm:"type:varchar(36);not null"`
	ProductName    string `gorm:"type:varchar(200);not null"`
	Quantity       int    `gorm:"not null"`
	UnitPrice      int64  `gorm:"not null"`
	UnitPointPrice int    `gorm:"not null"`
	Type           string `gorm:"type:varchar(20);not null"`
	PayByPoints    bool   `gorm:"not null"`
	EarnPoints     bool   `gorm:"not null"`
	Bundled        bool   `gorm:"not null"`
}

func (OrderItemModel) TableName() string { return "order_items" }

// OrderServiceItemModel 訂單服務項目快照
type OrderServiceItemModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	OrderID   string `gorm:"type:varchar(36);not null;index"`
	Position  int    `gorm:"not null"`
	Name      string `gorm:"type:varchar(200);not null"`
	UnitPrice int64  `gorm:"not null"`
	Quantity  int    `gorm:"not null"`
}

func (OrderServiceItemModel) TableName() string { return "order_service_items" }

// OrderStoveSnapshotModel 下單當下的爐具快照（與訂單一對一）
type OrderStoveSnapshotModel struct {
	OrderID            string  `gorm:"primaryKey;type:varchar(36)"`
	StoveID            string  `gorm:"type:varchar(36);not null"`
	StoveName          string  `gorm:"type:varchar(100);not null"`
	Address            string  `gorm:"type:varchar(255)"`
	Note               string  `gorm:"type:varchar(255)"`
	IncludesDefaultGas bool    `gorm:"not null"`
	ProductID          *string `gorm:"type:varchar(36)"`
	ProductName        string  `gorm:"type:varchar(200)"`
	ProductPrice       int64   `gorm:"not null;default:0"`
	ProductQuantity    int     `gorm:"not null;default:0"`
	PromoChoice        string  `gorm:"type:varchar(20)"`
	PromoProductID     *string `gorm:"type:varchar(36)"`
	PromoProductName   string  `gorm:"type:varchar(200)"`
	PromoQuantity      int     `gorm:"not null;default:0"`
}

func (OrderStoveSnapshotModel) TableName() string { return "order_stove_snapshots" }

// PromotionModel 宣告式促銷規則（僅由 seed 寫入，結帳不讀取）
type PromotionModel struct {
	ID         string                    `gorm:"primaryKey;type:varchar(36)"`
	Name       string                    `gorm:"type:varchar(200);not null"`
	IsActive   bool                      `gorm:"not null;default:true"`
	StartsAt   *time.Time
	EndsAt     *time.Time
	Conditions []PromotionConditionModel `gorm:"foreignKey:PromotionID"`
	Actions    []PromotionActionModel    `gorm:"foreignKey:PromotionID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (PromotionModel) TableName() string { return "promotions" }

// PromotionConditionModel 促銷條件（依商品標籤、最低數量）
type PromotionConditionModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	PromotionID string `gorm:"type:varchar(36);not null;index"`
	Type        string `gorm:"type:varchar(20);not null"`
	Tag         string `gorm:"type:varchar(50)"`
	MinQuantity int    `gorm:"not null;default:0"`
}

func (PromotionConditionModel) TableName() string { return "promotion_conditions" }

// PromotionActionModel 促銷動作（折扣、贈點、免運）
type PromotionActionModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	PromotionID string `gorm:"type:varchar(36);not null;index"`
	Type        string `gorm:"type:varchar(20);not null"`
	Value       int64  `gorm:"not null;default:0"`
}

func (PromotionActionModel) TableName() string { return "promotion_actions" }

// allModels 遷移順序（被參照的表在前）
func allModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&ProductModel{},
		&ProductTagModel{},
		&StoveModel{},
		&CartModel{},
		&CartItemModel{},
		&CartServiceItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&OrderServiceItemModel{},
		&OrderStoveSnapshotModel{},
		&PromotionModel{},
		&PromotionConditionModel{},
		&PromotionActionModel{},
	}
}
