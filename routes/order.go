package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/hasnaintypes/3legant-platform/controllers/order"
	"github.com/hasnaintypes/3legant-platform/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Place a new order from cart lines
		orders.POST("", orderControllers.PlaceOrderHandler(db))

		// Fetch the caller's orders (paginated)
		orders.GET("", orderControllers.ListUserOrdersHandler(db))

		// Fetch a single order (owner or admin)
		orders.GET("/:id", orderControllers.GetOrderByIDHandler(db))

		admin := orders.Group("/admin")
		admin.Use(middleware.RequireAdmin)
		{
			// Fetch all orders, optionally filtered by status
			admin.GET("/all", orderControllers.ListAdminOrdersHandler(db))

			// websocket endpoint for real-time order updates
			admin.GET("/ws", orderControllers.OrderWebSocketHandler)
		}

		// Drive the order lifecycle (e.g. shipped, cancelled)
		orders.PUT("/:id", middleware.RequireAdmin, orderControllers.UpdateOrderStatusHandler(db))

		// Update payment status (e.g. paid, refunded)
		orders.PUT("/:id/payment-status", middleware.RequireAdmin, orderControllers.UpdatePaymentStatusHandler(db))
	}

	// Excel export for internal tooling, API-key guarded
	r.GET("/orders/export", middleware.ValidateAPIKey, orderControllers.ExportOrdersToExcel(db))
}
