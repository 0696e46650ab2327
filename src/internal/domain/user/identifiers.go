package user

import "github.com/jackyeh168/gas_shop/src/internal/domain/shared"

// UserMarker 是 UserID 的標記類型
type UserMarker struct{}

// UserID 使用者（訂購客戶）的唯一標識符
type UserID = shared.EntityID[UserMarker]

// NewUserID 生成新的使用者 ID
func NewUserID() UserID {
	return shared.NewEntityID[UserMarker]()
}

// UserIDFromString 從字串解析使用者 ID，失敗返回 ErrInvalidUserID
func UserIDFromString(s string) (UserID, error) {
	return shared.EntityIDFromString[UserMarker](s, ErrInvalidUserID)
}
