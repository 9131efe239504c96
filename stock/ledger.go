// Package stock is the authoritative ledger of purchasable units per
// product. Reserve and Release are each a single conditional SQL statement,
// so concurrent checkouts against the same product can never oversell.
package stock

import (
	"errors"

	"gorm.io/gorm"

	"github.com/hasnaintypes/3legant-platform/models"
)

// Reserve decrements a product's stock by quantity, only if enough units
// remain. The decrement and the availability check are one atomic UPDATE;
// there is no read-then-write window. Fails with InsufficientStockError
// (reporting the available quantity) or ErrProductNotFound, with no partial
// effect.
func Reserve(db *gorm.DB, productID uint, quantity int) error {
	if quantity < 1 {
		return models.ErrInvalidQuantity
	}

	res := db.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// No row matched: the product is either missing or short on stock.
	var product models.Product
	if err := db.Select("id", "name", "stock").First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrProductNotFound
		}
		return err
	}
	return &models.InsufficientStockError{
		ProductID:   product.ID,
		ProductName: product.Name,
		Requested:   quantity,
		Available:   product.Stock,
	}
}

// Release returns quantity units to a product's stock. Used only by
// compensating actions (failed placement, cancellation), so it increments
// unconditionally.
func Release(db *gorm.DB, productID uint, quantity int) error {
	if quantity < 1 {
		return models.ErrInvalidQuantity
	}

	res := db.Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrProductNotFound
	}
	return nil
}
