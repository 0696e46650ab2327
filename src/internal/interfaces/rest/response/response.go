package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackyeh168/gas_shop/src/internal/domain/cart"
	"github.com/jackyeh168/gas_shop/src/internal/domain/order"
	"github.com/jackyeh168/gas_shop/src/internal/domain/points"
	"github.com/jackyeh168/gas_shop/src/internal/domain/shared"
	"github.com/jackyeh168/gas_shop/src/internal/domain/user"
)

// Response 統一回應格式
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

const codeOK = "OK"

// Success 200
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: codeOK, Message: "success", Data: data})
}

// Created 201
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Code: codeOK, Message: "created", Data: data})
}

// BadRequest 400（請求格式錯誤，非領域錯誤）
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{Code: "BAD_REQUEST", Message: message})
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Response{Code: "UNAUTHORIZED", Message: message})
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Response{Code: "TOO_MANY_REQUESTS", Message: "請求過於頻繁"})
}

// InternalError 500（不外洩內部錯誤細節）
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, Response{Code: string(shared.ErrCodeRepositoryError), Message: "系統忙碌中，請稍後再試"})
}

// Error 依領域錯誤代碼決定狀態碼；非領域錯誤視為 500
func Error(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) {
		InternalError(c, err)
		return
	}

	status := StatusFor(domainErr.Code)
	if status >= http.StatusInternalServerError {
		InternalError(c, err)
		return
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, Response{Code: string(domainErr.Code), Message: domainErr.Message})
}

var statusByCode = map[shared.ErrorCode]int{
	user.ErrCodeInvalidUserID:          http.StatusBadRequest,
	order.ErrCodeInvalidOrderID:        http.StatusBadRequest,
	order.ErrCodeInvalidStatus:         http.StatusBadRequest,
	points.ErrCodeNegativePointsAmount: http.StatusBadRequest,
	user.ErrCodeUserNotFound:           http.StatusNotFound,
	cart.ErrCodeStoveNotFound:          http.StatusNotFound,
	order.ErrCodeOrderNotFound:         http.StatusNotFound,
	cart.ErrCodeCartChanged:            http.StatusConflict,
	order.ErrCodeOrderConflict:         http.StatusConflict,
	order.ErrCodeOrderFinalized:        http.StatusConflict,
	order.ErrCodeCheckoutInProgress:    http.StatusConflict,
	cart.ErrCodeEmptyCart:              http.StatusUnprocessableEntity,
	points.ErrCodeInsufficientPoints:   http.StatusUnprocessableEntity,
	order.ErrCodeInvalidTransition:     http.StatusUnprocessableEntity,
}

// StatusFor 錯誤代碼對應的 HTTP 狀態碼
func StatusFor(code shared.ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
