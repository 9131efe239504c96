package cartControllers

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hasnaintypes/3legant-platform/models"
	"github.com/hasnaintypes/3legant-platform/pricing"
)

type AddLineInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Color     string `json:"color" binding:"required"`
	Size      string `json:"size" binding:"required"`
}

type UpdateLineInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// AddLine adds a (product, color, size) selection to the user's cart,
// creating the cart lazily on first use. If a line for the same tuple already
// exists the quantities are merged; the merged quantity is still checked
// against current stock. Cart membership does not reserve stock.
func AddLine(db *gorm.DB, userID string, input AddLineInput) (*models.Cart, error) {
	product, err := fetchProduct(db, input.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := fetchOrCreateCart(db, userID)
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	var existing *models.CartLine
	for i := range cart.Lines {
		if cart.Lines[i].Matches(input.ProductID, input.Color, input.Size) {
			existing = &cart.Lines[i]
			quantity += existing.Quantity
			break
		}
	}

	if product.Stock < quantity {
		return nil, &models.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Requested:   quantity,
			Available:   product.Stock,
		}
	}

	if existing != nil {
		existing.Quantity = quantity
		existing.AddedAt = time.Now()
	} else {
		cart.Lines = append(cart.Lines, models.CartLine{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			Color:     input.Color,
			Size:      input.Size,
			Quantity:  input.Quantity,
			AddedAt:   time.Now(),
		})
	}

	if err := refreshLines(db, cart); err != nil {
		return nil, err
	}
	if err := saveCart(db, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateLine sets a line's quantity, checked against current product stock.
func UpdateLine(db *gorm.DB, userID string, lineID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, models.ErrInvalidQuantity
	}

	cart, err := fetchCart(db, userID)
	if err != nil {
		return nil, err
	}

	var line *models.CartLine
	for i := range cart.Lines {
		if cart.Lines[i].ID == lineID {
			line = &cart.Lines[i]
			break
		}
	}
	if line == nil {
		return nil, models.ErrCartLineNotFound
	}

	product, err := fetchProduct(db, line.ProductID)
	if err != nil {
		return nil, err
	}
	if product.Stock < quantity {
		return nil, &models.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Requested:   quantity,
			Available:   product.Stock,
		}
	}

	line.Quantity = quantity

	if err := refreshLines(db, cart); err != nil {
		return nil, err
	}
	if err := saveCart(db, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveLine deletes one line from the user's cart.
func RemoveLine(db *gorm.DB, userID string, lineID uint) (*models.Cart, error) {
	cart, err := fetchCart(db, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range cart.Lines {
		if cart.Lines[i].ID == lineID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, models.ErrCartLineNotFound
	}

	if err := db.Delete(&models.CartLine{}, lineID).Error; err != nil {
		return nil, err
	}
	cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)

	if err := refreshLines(db, cart); err != nil {
		return nil, err
	}
	if err := saveCart(db, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear removes every line and zeroes the aggregates.
func Clear(db *gorm.DB, userID string) (*models.Cart, error) {
	cart, err := fetchCart(db, userID)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartLine{}).Error; err != nil {
			return err
		}
		return tx.Model(cart).Updates(map[string]interface{}{
			"total_items": 0,
			"subtotal":    0,
			"discount":    0,
			"final_total": 0,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	cart.Lines = nil
	cart.Discount = 0
	cart.RecomputeTotals()
	return cart, nil
}

// Fetch returns the user's cart, or an empty unsaved cart if none exists yet.
func Fetch(db *gorm.DB, userID string) (*models.Cart, error) {
	cart, err := fetchCart(db, userID)
	if errors.Is(err, models.ErrCartNotFound) {
		return &models.Cart{UserID: userID, Lines: []models.CartLine{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func fetchProduct(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func fetchCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCartNotFound
		}
		return nil, err
	}
	if err := db.Where("cart_id = ?", cart.ID).Order("id").Find(&cart.Lines).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func fetchOrCreateCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
		return nil, err
	}
	if err := db.Where("cart_id = ?", cart.ID).Order("id").Find(&cart.Lines).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// refreshLines re-reads the catalog snapshot for every line, re-runs the
// price calculator, and recomputes the cart aggregates. Aggregates are a
// pure function of current lines; nothing is patched incrementally.
func refreshLines(db *gorm.DB, cart *models.Cart) error {
	for i := range cart.Lines {
		line := &cart.Lines[i]
		product, err := fetchProduct(db, line.ProductID)
		if err != nil {
			return err
		}
		quote, err := pricing.Quote(product.Price, product.DiscountPercentage, line.Quantity)
		if err != nil {
			return err
		}
		line.Price = quote.UnitPrice
		line.FinalPrice = quote.FinalUnitPrice
		line.LineTotal = quote.LineTotal
	}
	cart.RecomputeTotals()
	return nil
}

func saveCart(db *gorm.DB, cart *models.Cart) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range cart.Lines {
			cart.Lines[i].CartID = cart.ID
			if err := tx.Save(&cart.Lines[i]).Error; err != nil {
				return err
			}
		}
		return tx.Model(cart).Updates(map[string]interface{}{
			"total_items": cart.TotalItems,
			"subtotal":    cart.Subtotal,
			"discount":    cart.Discount,
			"final_total": cart.FinalTotal,
		}).Error
	})
}
