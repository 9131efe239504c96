package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hasnaintypes/3legant-platform/models"
)

type ProductInput struct {
	Name               string   `json:"name" binding:"required"`
	Description        string   `json:"description"`
	Price              float64  `json:"price" binding:"required,gte=0"`
	DiscountPercentage float64  `json:"discount_percentage" binding:"gte=0,lte=100"`
	Stock              int      `json:"stock" binding:"gte=0"`
	Colors             []string `json:"colors" binding:"required,min=1"`
	Sizes              []string `json:"sizes" binding:"required,min=1"`
	SKU                string   `json:"sku" binding:"required"`
	Brand              string   `json:"brand"`
	Badge              string   `json:"badge"`
	IsFeatured         bool     `json:"is_featured"`
}

// CreateProduct creates a new catalog product (admin).
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:               input.Name,
			Description:        input.Description,
			Price:              input.Price,
			DiscountPercentage: input.DiscountPercentage,
			Stock:              input.Stock,
			Colors:             input.Colors,
			Sizes:              input.Sizes,
			SKU:                input.SKU,
			Brand:              input.Brand,
			Badge:              input.Badge,
			IsFeatured:         input.IsFeatured,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
