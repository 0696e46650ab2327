package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
	"github.com/jackyeh168/gas_shop/src/internal/interfaces/rest/response"
)

const (
	// UserIDHeader 上游閘道驗證後傳入的使用者 ID
	UserIDHeader = "X-User-ID"
	// UserIDKey gin context 中的使用者 ID
	UserIDKey = "user_id"
)

// RequireUser 要求 X-User-ID（身分驗證由上游負責）
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			response.Unauthorized(c, "缺少使用者身分")
			return
		}
		userID, err := user.UserIDFromString(raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Set(UserIDKey, userID.String())
		c.Next()
	}
}
