package user

import "github.com/jackyeh168/gas_shop/src/internal/domain/shared"

// ===========================
// User Domain 錯誤定義
// ===========================

// User Domain 錯誤代碼常量
const (
	ErrCodeUserNotFound       shared.ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserAlreadyExists  shared.ErrorCode = "USER_ALREADY_EXISTS"
	ErrCodeInvalidUserID      shared.ErrorCode = "USER_ID_INVALID"
	ErrCodeInvalidPhoneNumber shared.ErrorCode = "PHONE_NUMBER_INVALID"
	ErrCodeInvalidDisplayName shared.ErrorCode = "DISPLAY_NAME_INVALID"
	ErrCodeCorruptedPoints    shared.ErrorCode = "USER_POINTS_CORRUPTED"
)

var (
	ErrUserNotFound = &shared.DomainError{
		Code:    ErrCodeUserNotFound,
		Message: "使用者不存在",
	}

	ErrUserAlreadyExists = &shared.DomainError{
		Code:    ErrCodeUserAlreadyExists,
		Message: "使用者已存在",
	}

	ErrInvalidUserID = &shared.DomainError{
		Code:    ErrCodeInvalidUserID,
		Message: "無效的使用者 ID",
	}

	ErrInvalidPhoneNumber = &shared.DomainError{
		Code:    ErrCodeInvalidPhoneNumber,
		Message: "手機號碼格式錯誤",
	}

	ErrInvalidDisplayName = &shared.DomainError{
		Code:    ErrCodeInvalidDisplayName,
		Message: "顯示名稱不能為空",
	}

	ErrCorruptedPointsBalance = &shared.DomainError{
		Code:    ErrCodeCorruptedPoints,
		Message: "積分餘額資料異常",
	}
)
