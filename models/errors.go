package models

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrCartNotFound          = errors.New("cart not found")
	ErrCartLineNotFound      = errors.New("cart line not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrInvalidQuantity       = errors.New("quantity must be at least 1")
	ErrEmptyOrder            = errors.New("order must contain at least one item")
	ErrMissingShippingInfo   = errors.New("missing required shipping information")
	ErrInvalidShippingMethod = errors.New("invalid shipping method")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidOrderStatus    = errors.New("invalid order status")
	ErrInvalidPaymentStatus  = errors.New("invalid payment status")
	ErrInvalidTransition     = errors.New("invalid order status transition")
	ErrAlreadyCancelled      = errors.New("order is already cancelled")
	ErrNotAuthorized         = errors.New("not authorized")
)

// InsufficientStockError reports a stock shortfall with enough context for the
// client to render an actionable message.
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}
