package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/hasnaintypes/3legant-platform/controllers/product"
	"github.com/hasnaintypes/3legant-platform/middleware"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	// Public catalog reads
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))
		products.GET("/:id", productControllers.GetProductByID(db))
		products.GET("/:id/snapshot", productControllers.GetProductSnapshot(db))
	}

	// Catalog writes (admin)
	adminProducts := r.Group("/products")
	adminProducts.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		adminProducts.POST("", productControllers.CreateProduct(db))
		adminProducts.PUT("/:id", productControllers.UpdateProduct(db))
		adminProducts.DELETE("/:id", productControllers.DeleteProduct(db))
	}
}
