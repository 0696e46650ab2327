package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackyeh168/gas_shop/src/internal/domain/cart"
	"github.com/jackyeh168/gas_shop/src/internal/domain/points"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedResult seed 建立的示範資料 ID
type SeedResult struct {
	UserID  string
	StoveID string
	CartID  string
}

// Seed 寫入示範商品目錄、促銷規則、一位使用者與其爐具 / 購物車
//
// 所有寫入在同一事務內完成。使用者以 0 點建立，初始積分經由 Ledger.Credit 入帳。
func Seed(ctx context.Context, db *gorm.DB, phone string, initialPoints int) (*SeedResult, error) {
	phoneNumber, err := user.NewPhoneNumber(phone)
	if err != nil {
		return nil, err
	}
	funding, err := points.NewPointsAmount(initialPoints)
	if err != nil {
		return nil, err
	}
	u, err := user.NewUser(phoneNumber, "Khách hàng demo")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	gas12 := seedProduct("Gas Petrolimex 12kg", 450000, 0, "gas", cart.BindableTag)
	gas45 := seedProduct("Gas Petrolimex 45kg", 1650000, 0, "gas", cart.BindableTag)
	pan := seedProduct("Chảo chống dính 26cm", 180000, 800, "gift", "point_exchange")
	valve := seedProduct("Van điều áp", 120000, 0, "accessory")

	stove := &StoveModel{
		ID:                     uuid.NewString(),
		UserID:                 u.UserID().String(),
		Name:                   "Bếp nhà",
		Address:                "12 Nguyễn Trãi, Quận 1, TP.HCM",
		DefaultProductQuantity: 1,
		DefaultPromoChoice:     string(cart.PromoChoiceDiscountCash),
		ProductID:              &gas12.ID,
		PromoProductID:         &pan.ID,
	}
	c := &CartModel{
		ID:            uuid.NewString(),
		StoveID:       stove.ID,
		Type:          string(cart.CartTypeStove),
		IsStoveActive: true,
		Items: []CartItemModel{
			{ID: uuid.NewString(), ProductID: valve.ID, Quantity: 1, Type: string(cart.ItemTypeNormalProduct), CreatedAt: now},
			{ID: uuid.NewString(), ProductID: pan.ID, Quantity: 1, PayByPoints: true, Type: string(cart.ItemTypePointExchange), CreatedAt: now},
		},
		ServiceItems: []CartServiceItemModel{
			{ID: uuid.NewString(), Name: "Kiểm tra an toàn bếp", Price: 30000, Quantity: 1, CreatedAt: now},
		},
	}

	users := NewUserRepository(db)
	ledger := NewPointLedger(db)
	err = NewGORMTransactionManager(db).InTransaction(ctx, func(txCtx shared.TransactionContext) error {
		if err := users.Save(txCtx, u); err != nil {
			return err
		}
		if err := ledger.Credit(txCtx, u.UserID(), funding); err != nil {
			return err
		}

		tx := dbFrom(txCtx, db)
		for _, p := range []*ProductModel{gas12, gas45, pan, valve} {
			if err := tx.Create(p).Error; err != nil {
				return mapError(err, nil, nil)
			}
		}
		if err := tx.Omit(clause.Associations).Create(stove).Error; err != nil {
			return mapError(err, nil, nil)
		}
		if err := tx.Create(c).Error; err != nil {
			return mapError(err, nil, nil)
		}
		for _, promo := range seedPromotions() {
			if err := tx.Create(promo).Error; err != nil {
				return mapError(err, nil, nil)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SeedResult{UserID: u.UserID().String(), StoveID: stove.ID, CartID: c.ID}, nil
}

func seedProduct(name string, price int64, pointValue int, tags ...string) *ProductModel {
	p := &ProductModel{
		ID:         uuid.NewString(),
		Name:       name,
		Price:      price,
		PointValue: pointValue,
	}
	for _, tag := range tags {
		p.Tags = append(p.Tags, ProductTagModel{ProductID: p.ID, Tag: tag})
	}
	return p
}

// seedPromotions 宣告式促銷規則（與結帳時的固定規則內容一致，但不被結帳讀取）
func seedPromotions() []*PromotionModel {
	cashback := &PromotionModel{
		ID:       uuid.NewString(),
		Name:     "Giảm 10.000đ mỗi bình gas đổi vỏ",
		IsActive: true,
	}
	cashback.Conditions = []PromotionConditionModel{{PromotionID: cashback.ID, Type: "HAS_TAG", Tag: cart.BindableTag, MinQuantity: 1}}
	cashback.Actions = []PromotionActionModel{{PromotionID: cashback.ID, Type: "DISCOUNT_AMOUNT", Value: 10000}}

	bonus := &PromotionModel{
		ID:       uuid.NewString(),
		Name:     "Tặng 1.000 điểm mỗi bình gas",
		IsActive: true,
	}
	bonus.Conditions = []PromotionConditionModel{{PromotionID: bonus.ID, Type: "HAS_TAG", Tag: cart.BindableTag, MinQuantity: 1}}
	bonus.Actions = []PromotionActionModel{{PromotionID: bonus.ID, Type: "BONUS_POINTS", Value: 1000}}

	freeShip := &PromotionModel{
		ID:       uuid.NewString(),
		Name:     "Miễn phí giao hàng",
		IsActive: true,
	}
	freeShip.Conditions = []PromotionConditionModel{{PromotionID: freeShip.ID, Type: "MIN_QUANTITY", MinQuantity: 1}}
	freeShip.Actions = []PromotionActionModel{{PromotionID: freeShip.ID, Type: "FREE_SHIP"}}

	return []*PromotionModel{cashback, bonus, freeShip}
}
