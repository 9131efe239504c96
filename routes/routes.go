package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the product, cart and
// order route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public catalog routes (no middleware)
	SetupProductRoutes(r, db)

	// Cart routes (JWT-protected)
	SetupCartRoutes(r, db)

	// Order routes (JWT-protected, admin subroutes)
	SetupOrderRoutes(r, db)
}
