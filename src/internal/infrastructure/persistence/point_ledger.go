package persistence

import (
	"time"

	"github.com/jackyeh168/gas_shop/src/internal/domain/points"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
	"gorm.io/gorm"
)

// GORMPointLedger users.points 的唯一寫入者
//
// 扣點與加點都是單一 UPDATE 語句，由資料庫判斷條件，
// 不做「先讀餘額、再寫回」的 read-modify-write。
type GORMPointLedger struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPointLedger 創建積分帳本
func NewPointLedger(db *gorm.DB) *GORMPointLedger {
	return &GORMPointLedger{db: db, now: time.Now}
}

var _ points.Ledger = (*GORMPointLedger)(nil)

// TryReserve 條件式扣點
//
//	UPDATE users SET points = points - ?, updated_at = ?
//	WHERE id = ? AND points >= ?
//
// 受影響列數為 0 → points.ErrInsufficientPoints
func (l *GORMPointLedger) TryReserve(ctx shared.TransactionContext, userID user.UserID, amount points.PointsAmount) error {
	if amount.IsZero() {
		return nil
	}

	result := dbFrom(ctx, l.db).Model(&UserModel{}).
		Where("id = ? AND points >= ?", userID.String(), amount.Value()).
		Updates(map[string]interface{}{
			"points":     gorm.Expr("points - ?", amount.Value()),
			"updated_at": l.now(),
		})
	if result.Error != nil {
		return mapError(result.Error, nil, nil)
	}

	if result.RowsAffected == 0 {
		return points.ErrInsufficientPoints.WithContext(
			"user_id", userID.String(),
			"requested", amount.Value(),
		)
	}
	return nil
}

// Credit 無條件加點
//
//	UPDATE users SET points = points + ?, updated_at = ? WHERE id = ?
func (l *GORMPointLedger) Credit(ctx shared.TransactionContext, userID user.UserID, amount points.PointsAmount) error {
	if amount.IsZero() {
		return nil
	}

	result := dbFrom(ctx, l.db).Model(&UserModel{}).
		Where("id = ?", userID.String()).
		Updates(map[string]interface{}{
			"points":     gorm.Expr("points + ?", amount.Value()),
			"updated_at": l.now(),
		})
	if result.Error != nil {
		return mapError(result.Error, nil, nil)
	}

	if result.RowsAffected == 0 {
		return user.ErrUserNotFound.WithContext("user_id", userID.String())
	}
	return nil
}

// Balance 讀取目前餘額
func (l *GORMPointLedger) Balance(ctx shared.TransactionContext, userID user.UserID) (points.PointsAmount, error) {
	var model UserModel
	result := dbFrom(ctx, l.db).Select("id", "points").First(&model, "id = ?", userID.String())
	if result.Error != nil {
		return points.PointsAmount{}, mapError(result.Error, user.ErrUserNotFound, nil)
	}

	balance, err := points.NewPointsAmount(model.Points)
	if err != nil {
		return points.PointsAmount{}, user.ErrCorruptedPointsBalance.WithContext(
			"user_id", userID.String(),
			"points", model.Points,
		)
	}
	return balance, nil
}
