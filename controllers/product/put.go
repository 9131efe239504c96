package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hasnaintypes/3legant-platform/models"
)

type UpdateProductInput struct {
	Name               *string   `json:"name"`
	Description        *string   `json:"description"`
	Price              *float64  `json:"price"`
	DiscountPercentage *float64  `json:"discount_percentage"`
	Stock              *int      `json:"stock"`
	Colors             *[]string `json:"colors"`
	Sizes              *[]string `json:"sizes"`
	Brand              *string   `json:"brand"`
	Badge              *string   `json:"badge"`
	IsFeatured         *bool     `json:"is_featured"`
}

// UpdateProduct partially updates a catalog product (admin).
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Price != nil && *input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
			return
		}
		if input.DiscountPercentage != nil && (*input.DiscountPercentage < 0 || *input.DiscountPercentage > 100) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Discount percentage must be between 0 and 100"})
			return
		}
		if input.Stock != nil && *input.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock cannot be negative"})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.DiscountPercentage != nil {
			updates["discount_percentage"] = *input.DiscountPercentage
		}
		if input.Stock != nil {
			updates["stock"] = *input.Stock
		}
		if input.Brand != nil {
			updates["brand"] = *input.Brand
		}
		if input.Badge != nil {
			updates["badge"] = *input.Badge
		}
		if input.IsFeatured != nil {
			updates["is_featured"] = *input.IsFeatured
		}
		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}
		if input.Colors != nil {
			product.Colors = *input.Colors
		}
		if input.Sizes != nil {
			product.Sizes = *input.Sizes
		}
		if input.Colors != nil || input.Sizes != nil {
			if err := db.Save(&product).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}

		c.JSON(http.StatusOK, product)
	}
}
