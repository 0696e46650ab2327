package persistence

import (
	"errors"
	"strings"

	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"gorm.io/gorm"
)

// mapError 映射 GORM 錯誤到 Domain 錯誤
//
// 映射規則：
// - gorm.ErrRecordNotFound      → notFound
// - gorm.ErrDuplicatedKey       → alreadyExists
// - Unique constraint violation → alreadyExists
// - 其他錯誤                     → shared.ErrRepositoryError
//
// notFound / alreadyExists 為 nil 時該類錯誤視為一般倉儲錯誤。
// 唯一約束檢測使用字串比對（SQLite / PostgreSQL 的英文錯誤訊息）。
func mapError(err error, notFound, alreadyExists *shared.DomainError) error {
	if err == nil {
		return nil
	}

	if notFound != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	if alreadyExists != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return alreadyExists
		}
		// SQLite: "UNIQUE constraint failed"
		// PostgreSQL: "duplicate key value violates unique constraint"
		errMsg := err.Error()
		if containsAny(errMsg, []string{"UNIQUE constraint", "duplicate key", "Duplicate entry"}) {
			return alreadyExists.WithContext("database_error", errMsg)
		}
	}

	return shared.ErrRepositoryError.WithContext("database_error", err.Error())
}

// containsAny 檢查字串是否包含任一子字串
func containsAny(s string, substrs []string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}
