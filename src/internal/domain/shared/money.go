package shared

import (
	"github.com/shopspring/decimal"
)

// ===========================
// Money 值對象
// ===========================

// Money 金額值對象（越南盾，整數單位）
//
// 內部以 decimal.Decimal 計算，避免浮點誤差；
// 持久化時以 Int64() 取出整數寫入 bigint 欄位。
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney 零金額
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney 由整數金額建立 Money
func NewMoney(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount)}
}

// Add 相加
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub 相減（結果可能為負，呼叫端需要時以 ClampZero 處理）
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt 乘以數量
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// ClampZero 負數金額歸零
func (m Money) ClampZero() Money {
	if m.amount.IsNegative() {
		return ZeroMoney()
	}
	return m
}

// IsZero 是否為零
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equals 比較金額
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Int64 取出整數金額（小數部分截斷）
func (m Money) Int64() int64 {
	return m.amount.IntPart()
}

// String 字串表示
func (m Money) String() string {
	return m.amount.String()
}
