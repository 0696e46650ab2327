package user

import (
	"strings"
	"time"
)

// ===========================
// User Aggregate Root
// ===========================

// User 使用者聚合根
//
// 不變量：
// 1. 必須有手機號碼（登入與配送聯絡）
// 2. 必須有顯示名稱
// 3. pointsBalance 只是讀取時的餘額快照，不提供修改方法；
//    餘額變動一律經由 points.Ledger（條件式扣減 / 無條件加點）
type User struct {
	userID        UserID
	phoneNumber   PhoneNumber
	displayName   string
	pointsBalance int

	createdAt time.Time
	updatedAt time.Time
}

// NewUser 創建新使用者（初始積分 0）
func NewUser(phoneNumber PhoneNumber, displayName string) (*User, error) {
	if phoneNumber.IsZero() {
		return nil, ErrInvalidPhoneNumber.WithContext("reason", "phone number is required")
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrInvalidDisplayName
	}

	now := time.Now()
	return &User{
		userID:        NewUserID(),
		phoneNumber:   phoneNumber,
		displayName:   displayName,
		pointsBalance: 0,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructUser 重建使用者聚合（用於從資料庫載入）
func ReconstructUser(
	userID UserID,
	phoneNumber PhoneNumber,
	displayName string,
	pointsBalance int,
	createdAt time.Time,
	updatedAt time.Time,
) (*User, error) {
	if userID.IsEmpty() {
		return nil, ErrInvalidUserID.WithContext("reason", "user id cannot be empty")
	}
	if displayName == "" {
		return nil, ErrInvalidDisplayName
	}
	if pointsBalance < 0 {
		return nil, ErrCorruptedPointsBalance.WithContext(
			"user_id", userID.String(),
			"points", pointsBalance,
		)
	}

	return &User{
		userID:        userID,
		phoneNumber:   phoneNumber,
		displayName:   displayName,
		pointsBalance: pointsBalance,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

// UserID 返回使用者 ID
func (u *User) UserID() UserID {
	return u.userID
}

// PhoneNumber 返回手機號碼
func (u *User) PhoneNumber() PhoneNumber {
	return u.phoneNumber
}

// DisplayName 返回顯示名稱
func (u *User) DisplayName() string {
	return u.displayName
}

// PointsBalance 返回載入時的積分餘額快照
func (u *User) PointsBalance() int {
	return u.pointsBalance
}

// CreatedAt 返回創建時間
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt 返回更新時間
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}
