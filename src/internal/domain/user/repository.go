package user

import "github.com/jackyeh168/gas_shop/src/internal/domain/shared"

// UserRepository 使用者倉儲介面
//
// 注意：此介面不包含任何修改積分餘額的方法，
// 餘額只能透過 points.Ledger 變動。
type UserRepository interface {
	// Save 新增使用者
	// 錯誤：ErrUserAlreadyExists（手機號碼重複）
	Save(ctx shared.TransactionContext, u *User) error

	// FindByID 根據使用者 ID 查找
	// 錯誤：ErrUserNotFound
	FindByID(ctx shared.TransactionContext, id UserID) (*User, error)
}
