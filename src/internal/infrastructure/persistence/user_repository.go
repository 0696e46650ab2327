package persistence

import (
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
	"gorm.io/gorm"
)

// GORMUserRepository GORM 實作的使用者倉儲
//
// 只負責 Domain ↔ GORM 的轉換和錯誤映射；
// 積分欄位在新增時為 0，之後只由 GORMPointLedger 維護。
type GORMUserRepository struct {
	db *gorm.DB
}

// NewUserRepository 創建使用者倉儲
func NewUserRepository(db *gorm.DB) user.UserRepository {
	return &GORMUserRepository{db: db}
}

// Save 新增使用者
// 錯誤：user.ErrUserAlreadyExists（手機號碼重複）
func (r *GORMUserRepository) Save(ctx shared.TransactionContext, u *user.User) error {
	model := toUserModel(u)
	result := dbFrom(ctx, r.db).Create(model)
	return mapError(result.Error, nil, user.ErrUserAlreadyExists)
}

// FindByID 根據使用者 ID 查找
func (r *GORMUserRepository) FindByID(ctx shared.TransactionContext, id user.UserID) (*user.User, error) {
	var model UserModel
	result := dbFrom(ctx, r.db).First(&model, "id = ?", id.String())
	if result.Error != nil {
		return nil, mapError(result.Error, user.ErrUserNotFound, nil)
	}
	return toUserDomain(&model)
}

func toUserModel(u *user.User) *UserModel {
	return &UserModel{
		ID:          u.UserID().String(),
		PhoneNumber: u.PhoneNumber().String(),
		DisplayName: u.DisplayName(),
		Points:      u.PointsBalance(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}

func toUserDomain(m *UserModel) (*user.User, error) {
	id, err := user.UserIDFromString(m.ID)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhoneNumber(m.PhoneNumber)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(id, phone, m.DisplayName, m.Points, m.CreatedAt, m.UpdatedAt)
}
