package persistence

import (
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate 建立 / 更新所有資料表
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
