package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/hasnaintypes/3legant-platform/controllers/cart"
	"github.com/hasnaintypes/3legant-platform/middleware"
)

// SetupCartRoutes registers all "/cart" endpoints. Requires JWT middleware.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetCartHandler(db))            // GET /cart
		cart.GET("/count", cartControllers.CartCountHandler(db))    // GET /cart/count
		cart.POST("", cartControllers.AddLineHandler(db))           // POST /cart
		cart.PUT("/:lineId", cartControllers.UpdateLineHandler(db)) // PUT /cart/:lineId
		cart.DELETE("/:lineId", cartControllers.RemoveLineHandler(db))
		cart.DELETE("", cartControllers.ClearCartHandler(db)) // DELETE /cart
	}
}
