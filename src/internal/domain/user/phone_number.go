package user

import (
	"regexp"
	"strings"
)

// PhoneNumber 手機號碼值對象
//
// 業務規則（越南行動電話）：
// 1. 10 位數字
// 2. 以 03 / 05 / 07 / 08 / 09 開頭
// 3. 允許輸入國碼 +84 或 84，正規化為 0 開頭
type PhoneNumber struct {
	value string
}

var vnMobilePattern = regexp.MustCompile(`^0[35789][0-9]{8}$`)

// NewPhoneNumber 創建手機號碼值對象（Checked Constructor）
//
// 範例：
// - "0912345678"   → "0912345678"
// - "+84912345678" → "0912345678"
// - "0212345678"   → ErrInvalidPhoneNumber（市話區碼）
func NewPhoneNumber(value string) (PhoneNumber, error) {
	normalized := normalizePhone(value)
	if !vnMobilePattern.MatchString(normalized) {
		return PhoneNumber{}, ErrInvalidPhoneNumber.WithContext(
			"phone", value,
			"reason", "must be 10 digits starting with 03/05/07/08/09",
		)
	}
	return PhoneNumber{value: normalized}, nil
}

func normalizePhone(value string) string {
	v := strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(v, "+84"):
		return "0" + v[3:]
	case strings.HasPrefix(v, "84") && len(v) == 11:
		return "0" + v[2:]
	}
	return v
}

// String 返回手機號碼字串表示
func (p PhoneNumber) String() string {
	return p.value
}

// IsZero 是否為零值（未設定）
func (p PhoneNumber) IsZero() bool {
	return p.value == ""
}

// Equals 比較兩個手機號碼是否相等
func (p PhoneNumber) Equals(other PhoneNumber) bool {
	return p.value == other.value
}
