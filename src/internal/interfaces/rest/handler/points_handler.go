package handler

import (
	"github.com/gin-gonic/gin"
	pointsapp "github.com/jackyeh168/gas_shop/src/internal/application/points"
	"github.com/jackyeh168/gas_shop/src/internal/interfaces/rest/middleware"
	"github.com/jackyeh168/gas_shop/src/internal/interfaces/rest/response"
)

// PointsHandler 積分 API
type PointsHandler struct {
	balance BalanceGetter
}

// NewPointsHandler 創建積分 handler
func NewPointsHandler(balance BalanceGetter) *PointsHandler {
	return &PointsHandler{balance: balance}
}

// Balance 查詢自己的積分
// GET /api/v1/points/balance
func (h *PointsHandler) Balance(c *gin.Context) {
	result, err := h.balance.Execute(pointsapp.GetPointsBalanceQuery{
		UserID: c.GetString(middleware.UserIDKey),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, balanceResponse{UserID: result.UserID, Points: result.Points})
}
