package persistence

import (
	"context"

	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"gorm.io/gorm"
)

// GORMTransactionManager GORM 實作的事務管理器
//
// fn 返回錯誤時回滾；fn panic 時回滾並重新拋出；否則提交。
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 創建事務管理器
func NewGORMTransactionManager(db *gorm.DB) *GORMTransactionManager {
	return &GORMTransactionManager{db: db}
}

// InTransaction 在單一資料庫事務中執行 fn
func (m *GORMTransactionManager) InTransaction(ctx context.Context, fn func(tx shared.TransactionContext) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMTransactionContext(tx))
	})
}

var _ shared.TransactionManager = (*GORMTransactionManager)(nil)
