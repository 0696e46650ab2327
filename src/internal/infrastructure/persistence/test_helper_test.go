package persistence

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackyeh168/gas_shop/src/internal/domain/cart"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ===========================
// 測試輔助函數
// ===========================

// setupTestDB 創建測試用的 SQLite in-memory 資料庫
//
// 限制為單一連線：:memory: 每條連線都是獨立的資料庫，
// 且並發事務會依序取得連線，行為等同序列化隔離。
func setupTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	cleanup := func() {
		sqlDB.Close()
	}

	return db, cleanup
}

var phoneSeq atomic.Int64

// createTestUser 直接寫入一位使用者與初始積分
func createTestUser(t *testing.T, db *gorm.DB, pointsBalance int) user.UserID {
	t.Helper()

	id := user.NewUserID()
	now := time.Now()
	model := &UserModel{
		ID:          id.String(),
		PhoneNumber: fmt.Sprintf("09%08d", phoneSeq.Add(1)),
		DisplayName: "Test User",
		Points:      pointsBalance,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.Create(model).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return id
}

// createTestProduct 寫入商品
func createTestProduct(t *testing.T, db *gorm.DB, name string, price int64, pointValue int, tags ...string) *ProductModel {
	t.Helper()

	p := seedProduct(name, price, pointValue, tags...)
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}
	return p
}

// createTestStove 寫入爐具（可選綁定商品）與其購物車
func createTestStove(t *testing.T, db *gorm.DB, owner user.UserID, bound *ProductModel, qty int, choice cart.PromoChoice) (*StoveModel, *CartModel) {
	t.Helper()

	stove := &StoveModel{
		ID:                     uuid.NewString(),
		UserID:                 owner.String(),
		Name:                   "Bếp nhà",
		Address:                "12 Nguyễn Trãi",
		DefaultProductQuantity: qty,
		DefaultPromoChoice:     string(choice),
	}
	if bound != nil {
		stove.ProductID = &bound.ID
	}
	if err := db.Omit("Product", "PromoProduct").Create(stove).Error; err != nil {
		t.Fatalf("Failed to create test stove: %v", err)
	}

	c := &CartModel{
		ID:      uuid.NewString(),
		StoveID: stove.ID,
		Type:    string(cart.CartTypeNormal),
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("Failed to create test cart: %v", err)
	}
	return stove, c
}

// addTestCartItem 加入購物車明細
func addTestCartItem(t *testing.T, db *gorm.DB, c *CartModel, p *ProductModel, qty int, payByPoints bool, parentID *string) *CartItemModel {
	t.Helper()

	itemType := cart.ItemTypeNormalProduct
	if payByPoints {
		itemType = cart.ItemTypePointExchange
	}
	item := &CartItemModel{
		ID:           uuid.NewString(),
		CartID:       c.ID,
		ProductID:    p.ID,
		Quantity:     qty,
		PayByPoints:  payByPoints,
		ParentItemID: parentID,
		Type:         string(itemType),
		CreatedAt:    time.Now(),
	}
	if err := db.Omit("Product").Create(item).Error; err != nil {
		t.Fatalf("Failed to create test cart item: %v", err)
	}
	return item
}

// pointsOf 直接讀取使用者積分
func pointsOf(t *testing.T, db *gorm.DB, id user.UserID) int {
	t.Helper()

	var model UserModel
	if err := db.First(&model, "id = ?", id.String()).Error; err != nil {
		t.Fatalf("Failed to load user: %v", err)
	}
	return model.Points
}

// statementLog 記錄 db 上執行過的 SQL（含事務內）
type statementLog struct {
	mu    sync.Mutex
	stmts []string
}

func (l *statementLog) record(tx *gorm.DB) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stmts = append(l.stmts, tx.Statement.SQL.String())
}

// on 返回涉及指定資料表的語句
func (l *statementLog) on(table string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	quoted := "`" + table + "`"
	var matched []string
	for _, stmt := range l.stmts {
		if strings.Contains(stmt, quoted) {
			matched = append(matched, stmt)
		}
	}
	return matched
}

// recordStatements 從此刻起記錄 db 執行的所有 SQL
func recordStatements(t *testing.T, db *gorm.DB) *statementLog {
	t.Helper()

	rec := &statementLog{}
	cb := db.Callback()
	errs := []error{
		cb.Create().After("gorm:create").Register("test:record_create", rec.record),
		cb.Query().After("gorm:query").Register("test:record_query", rec.record),
		cb.Update().After("gorm:update").Register("test:record_update", rec.record),
		cb.Delete().After("gorm:delete").Register("test:record_delete", rec.record),
		cb.Row().After("gorm:row").Register("test:record_row", rec.record),
		cb.Raw().After("gorm:raw").Register("test:record_raw", rec.record),
	}
	for _, err := range errs {
		if err != nil {
			t.Fatalf("Failed to register statement recorder: %v", err)
		}
	}
	return rec
}

// spendBeforeNextPointsWrite 在下一次寫入 users 之前，於同一連線上先扣掉 amount 點
//
// 模擬另一筆交易在「讀餘額」與「寫餘額」之間花掉積分。
func spendBeforeNextPointsWrite(t *testing.T, db *gorm.DB, id user.UserID, amount int) {
	t.Helper()

	var once sync.Once
	err := db.Callback().Update().Before("gorm:update").Register("test:competing_spend", func(tx *gorm.DB) {
		if tx.Statement.Table != "users" {
			return
		}
		once.Do(func() {
			_, err := tx.Statement.ConnPool.ExecContext(tx.Statement.Context,
				"UPDATE users SET points = points - ? WHERE id = ?", amount, id.String())
			if err != nil {
				_ = tx.AddError(err)
			}
		})
	})
	if err != nil {
		t.Fatalf("Failed to register competing spend: %v", err)
	}
}
