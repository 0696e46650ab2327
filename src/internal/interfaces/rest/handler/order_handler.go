package handler

import (
	"github.com/gin-gonic/gin"
	orderapp "github.com/jackyeh168/gas_shop/src/internal/application/order"
	"github.com/jackyeh168/gas_shop/src/internal/interfaces/rest/middleware"
	"github.com/jackyeh168/gas_shop/src/internal/interfaces/rest/response"
)

// OrderHandler 訂單 API
type OrderHandler struct {
	create OrderCreator
	change OrderStatusChanger
	get    OrderGetter
}

// NewOrderHandler 創建訂單 handler
func NewOrderHandler(create OrderCreator, change OrderStatusChanger, get OrderGetter) *OrderHandler {
	return &OrderHandler{create: create, change: change, get: get}
}

// Create 以爐具購物車下單
// POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.create.Execute(c.Request.Context(), orderapp.CreateOrderCommand{
		UserID:  c.GetString(middleware.UserIDKey),
		StoveID: req.StoveID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toOrderResponse(result))
}

// Get 查詢自己的訂單
// GET /api/v1/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	result, err := h.get.Execute(orderapp.GetOrderQuery{
		OrderID: c.Param("id"),
		UserID:  c.GetString(middleware.UserIDKey),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toOrderResponse(result))
}

// ChangeStatus 後台變更訂單狀態
// PATCH /api/v1/admin/orders/:id/status
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.change.Execute(c.Request.Context(), orderapp.ChangeOrderStatusCommand{
		OrderID:         c.Param("id"),
		Status:          req.Status,
		CancelledReason: req.CancelledReason,
		ShipperID:       req.ShipperID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toOrderResponse(result))
}
