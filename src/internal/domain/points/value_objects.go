package points

import "fmt"

// PointsAmount 積分數量值對象
// 值對象不可變、自我驗證：積分數量永遠 >= 0
type PointsAmount struct {
	value int
}

// ZeroPoints 零積分
func ZeroPoints() PointsAmount {
	return PointsAmount{}
}

// NewPointsAmount 建構函數（checked 版本）
func NewPointsAmount(value int) (PointsAmount, error) {
	if value < 0 {
		return PointsAmount{}, fmt.Errorf(
			"%w: attempted to create PointsAmount with value %d",
			ErrNegativePointsAmount,
			value,
		)
	}
	return PointsAmount{value: value}, nil
}

// newPointsAmountUnchecked 內部建構函數，呼叫者必須保證 value >= 0
func newPointsAmountUnchecked(value int) PointsAmount {
	return PointsAmount{value: value}
}

// Value 獲取積分數量
func (p PointsAmount) Value() int {
	return p.value
}

// IsZero 是否為零
func (p PointsAmount) IsZero() bool {
	return p.value == 0
}

// Add 相加
func (p PointsAmount) Add(other PointsAmount) PointsAmount {
	return newPointsAmountUnchecked(p.value + other.value)
}

// MulInt 乘以數量；負數數量視為 0
func (p PointsAmount) MulInt(quantity int) PointsAmount {
	if quantity <= 0 {
		return ZeroPoints()
	}
	return newPointsAmountUnchecked(p.value * quantity)
}
