package shared

import "fmt"

// ===========================
// DomainError 結構
// ===========================

// ErrorCode 錯誤代碼類型
//
// 錯誤代碼是穩定的對外契約：HTTP 層依代碼映射狀態碼，
// 各 bounded context 在自己的 errors.go 中宣告代碼與錯誤實例。
type ErrorCode string

// 跨領域共用的錯誤代碼
const (
	ErrCodeRepositoryError ErrorCode = "REPOSITORY_ERROR"
)

// DomainError 領域錯誤
//
// - Code：結構化錯誤代碼（errors.Is 依代碼比對）
// - Message：可直接呈現給使用者的訊息
// - Context：除錯用上下文（不影響比對）
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// Error 實現 error 接口
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %+v)", e.Code, e.Message, e.Context)
}

// WithContext 添加上下文信息（返回新的錯誤實例，原實例不變）
func (e *DomainError) WithContext(keyValues ...interface{}) error {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)
	for k, v := range e.Context {
		ctx[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
	}
}

// Is 實現 errors.Is 接口（依錯誤代碼判斷）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ErrRepositoryError 倉儲操作錯誤（通用）
var ErrRepositoryError = &DomainError{
	Code:    ErrCodeRepositoryError,
	Message: "資料存取失敗",
}
