package rest

import (
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/jackyeh168/gas_shop/src/internal/interfaces/rest/handler"
	"github.com/jackyeh168/gas_shop/src/internal/interfaces/rest/middleware"
	"go.uber.org/zap"
)

// RouterDeps 路由所需的 handler 與設定
type RouterDeps struct {
	Orders *handler.OrderHandler
	Points *handler.PointsHandler
	Logger *zap.Logger
	// CheckoutLimiter 為 nil 時下單不限流
	CheckoutLimiter *middleware.KeyedLimiter
}

// NewRouter 組裝 gin engine
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	v1 := r.Group("/api/v1", middleware.RequireUser())
	{
		create := []gin.HandlerFunc{deps.Orders.Create}
		if deps.CheckoutLimiter != nil {
			create = append([]gin.HandlerFunc{middleware.RateLimit(deps.CheckoutLimiter)}, create...)
		}
		v1.POST("/orders", create...)
		v1.GET("/orders/:id", deps.Orders.Get)
		v1.GET("/points/balance", deps.Points.Balance)

		admin := v1.Group("/admin")
		admin.PATCH("/orders/:id/status", deps.Orders.ChangeStatus)
	}

	return r
}
