package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hasnaintypes/3legant-platform/models"
)

// POST /cart
func AddLineHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input AddLineInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := AddLine(db, userID, input)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}

// PUT /cart/:lineId
func UpdateLineHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		lineID, ok := lineIDParam(c)
		if !ok {
			return
		}

		var input UpdateLineInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := UpdateLine(db, userID, lineID, input.Quantity)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /cart/:lineId
func RemoveLineHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		lineID, ok := lineIDParam(c)
		if !ok {
			return
		}

		cart, err := RemoveLine(db, userID, lineID)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /cart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		cart, err := Clear(db, userID)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// GET /cart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		cart, err := Fetch(db, userID)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// GET /cart/count
func CartCountHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		cart, err := Fetch(db, userID)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": cart.TotalItems})
	}
}

func currentUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userIDVal.(string), true
}

func lineIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("lineId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart line ID"})
		return 0, false
	}
	return uint(id), true
}

func respondCartError(c *gin.Context, err error) {
	var stockErr *models.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     stockErr.Error(),
			"product":   stockErr.ProductID,
			"requested": stockErr.Requested,
			"available": stockErr.Available,
		})
	case errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrCartNotFound),
		errors.Is(err, models.ErrCartLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
	}
}
