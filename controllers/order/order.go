package orderControllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hasnaintypes/3legant-platform/models"
	"github.com/hasnaintypes/3legant-platform/pricing"
	"github.com/hasnaintypes/3legant-platform/stock"
)

type OrderLineInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Color     string `json:"color" binding:"required"`
	Size      string `json:"size" binding:"required"`
}

type PlaceOrderRequest struct {
	Items           []OrderLineInput       `json:"items"`
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
	ShippingMethod  string                 `json:"shipping_method"`
	PaymentMethod   string                 `json:"payment_method"`
	Notes           string                 `json:"notes"`
}

// PlaceOrder turns a set of cart lines into a persisted order. Pricing and
// stock are always re-derived from the catalog at commit time; totals cached
// in the cart or supplied by the client are never trusted. Reservation,
// persistence and cart clearing happen in one transaction, so a failed
// placement leaves no partial reservation behind.
func PlaceOrder(db *gorm.DB, userID string, req PlaceOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, models.ErrEmptyOrder
	}
	if req.ShippingMethod == "" || req.PaymentMethod == "" || !req.ShippingAddress.Complete() {
		return nil, models.ErrMissingShippingInfo
	}

	shippingMethod, err := models.ParseShippingMethod(req.ShippingMethod)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := models.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	// Re-read the catalog snapshot and re-run the price calculator per line.
	var items []models.OrderItem
	totalItems := 0
	subtotal := 0.0
	for _, line := range req.Items {
		var product models.Product
		if err := db.First(&product, line.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("product %d: %w", line.ProductID, models.ErrProductNotFound)
			}
			return nil, err
		}
		if product.Stock < line.Quantity {
			return nil, &models.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Requested:   line.Quantity,
				Available:   product.Stock,
			}
		}

		quote, err := pricing.Quote(product.Price, product.DiscountPercentage, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, models.OrderItem{
			ProductID:  product.ID,
			Quantity:   line.Quantity,
			Color:      line.Color,
			Size:       line.Size,
			Price:      quote.UnitPrice,
			FinalPrice: quote.FinalUnitPrice,
			LineTotal:  quote.LineTotal,
		})
		totalItems += line.Quantity
		subtotal += quote.LineTotal
	}

	shippingCost := ShippingCost(shippingMethod)
	roundedSubtotal := pricing.Round2(subtotal)
	finalTotal := pricing.Round2(subtotal + shippingCost)

	now := time.Now()
	order := &models.Order{
		UserID:                userID,
		Items:                 items,
		TotalItems:            totalItems,
		Subtotal:              roundedSubtotal,
		ShippingAddress:       req.ShippingAddress,
		ShippingMethod:        shippingMethod,
		ShippingCost:          shippingCost,
		FinalTotal:            finalTotal,
		PaymentMethod:         paymentMethod,
		PaymentStatus:         models.PaymentStatusPending,
		OrderStatus:           models.OrderStatusProcessing,
		TrackingNumber:        generateTrackingNumber(),
		EstimatedDeliveryDate: estimatedDelivery(shippingMethod, now),
		Notes:                 req.Notes,
	}

	// Reservations, the order row, and the cart wipe commit or roll back as
	// one unit, so a failed placement never strands a reservation.
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if err := stock.Reserve(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return clearUserCart(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	broadcastOrderEvent("order_created", order)
	return order, nil
}

// UpdateStatus drives the order lifecycle. Cancellation is the only
// transition with a side effect: it releases the reserved stock for every
// line, and is rejected if the order is already cancelled.
func UpdateStatus(db *gorm.DB, orderID uint, next models.OrderStatus) (*models.Order, error) {
	order, err := fetchOrder(db, orderID)
	if err != nil {
		return nil, err
	}

	if next == models.OrderStatusCancelled {
		if err := cancel(db, order); err != nil {
			return nil, err
		}
		broadcastOrderEvent("order_status_changed", order)
		return order, nil
	}

	if !order.OrderStatus.CanTransitionTo(next) {
		return nil, models.ErrInvalidTransition
	}
	if err := db.Model(order).Update("order_status", next).Error; err != nil {
		return nil, err
	}
	order.OrderStatus = next

	broadcastOrderEvent("order_status_changed", order)
	return order, nil
}

// cancel restores stock for every line and marks the order cancelled, in one
// transaction. The status flip is a conditional write checked through
// RowsAffected, so of two racing cancellations only the one that wins the
// write releases stock.
func cancel(db *gorm.DB, order *models.Order) error {
	if order.OrderStatus == models.OrderStatusCancelled {
		return models.ErrAlreadyCancelled
	}
	if !order.OrderStatus.CanTransitionTo(models.OrderStatusCancelled) {
		return models.ErrInvalidTransition
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).
			Where("id = ? AND order_status NOT IN ?", order.ID,
				[]models.OrderStatus{models.OrderStatusCancelled, models.OrderStatusDelivered}).
			Update("order_status", models.OrderStatusCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var current models.Order
			if err := tx.Select("order_status").First(&current, order.ID).Error; err != nil {
				return err
			}
			if current.OrderStatus == models.OrderStatusCancelled {
				return models.ErrAlreadyCancelled
			}
			return models.ErrInvalidTransition
		}
		for _, item := range order.Items {
			if err := stock.Release(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	order.OrderStatus = models.OrderStatusCancelled
	return nil
}

// UpdatePayment records a payment status change. No stock side effects.
func UpdatePayment(db *gorm.DB, orderID uint, next models.PaymentStatus) (*models.Order, error) {
	order, err := fetchOrder(db, orderID)
	if err != nil {
		return nil, err
	}
	if err := db.Model(order).Update("payment_status", next).Error; err != nil {
		return nil, err
	}
	order.PaymentStatus = next
	return order, nil
}

func fetchOrder(db *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func clearUserCart(tx *gorm.DB, userID string) error {
	var cart models.Cart
	if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartLine{}).Error; err != nil {
		return err
	}
	return tx.Model(&cart).Updates(map[string]interface{}{
		"total_items": 0,
		"subtotal":    0,
		"discount":    0,
		"final_total": 0,
	}).Error
}

// Tracking numbers follow TRK-<unix-ms>-<suffix>; the uuid suffix keeps them
// unique even for orders placed in the same millisecond.
func generateTrackingNumber() string {
	return fmt.Sprintf("TRK-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
