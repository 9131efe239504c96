package models

import (
	"strings"
	"time"
)

type OrderStatus string
type PaymentStatus string
type ShippingMethod string
type PaymentMethod string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"

	ShippingStandard  ShippingMethod = "standard"
	ShippingExpress   ShippingMethod = "express"
	ShippingOvernight ShippingMethod = "overnight"

	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentPaypal     PaymentMethod = "paypal"
	PaymentStripe     PaymentMethod = "stripe"
)

// nextStatus is the forward edge of the order lifecycle:
// pending -> processing -> shipped -> delivered. Cancellation is handled
// separately because it is reachable from any non-terminal state.
var nextStatus = map[OrderStatus]OrderStatus{
	OrderStatusPending:    OrderStatusProcessing,
	OrderStatusProcessing: OrderStatusShipped,
	OrderStatusShipped:    OrderStatusDelivered,
}

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if next == OrderStatusCancelled {
		return !s.Terminal()
	}
	return nextStatus[s] == next
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(s)) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(strings.ToLower(s)), nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(strings.ToLower(s)) {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return PaymentStatus(strings.ToLower(s)), nil
	default:
		return "", ErrInvalidPaymentStatus
	}
}

func ParseShippingMethod(s string) (ShippingMethod, error) {
	switch ShippingMethod(strings.ToLower(s)) {
	case ShippingStandard, ShippingExpress, ShippingOvernight:
		return ShippingMethod(strings.ToLower(s)), nil
	default:
		return "", ErrInvalidShippingMethod
	}
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(s)) {
	case PaymentCreditCard, PaymentPaypal, PaymentStripe:
		return PaymentMethod(strings.ToLower(s)), nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

type ShippingAddress struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// Complete reports whether every required shipping field is present.
func (a ShippingAddress) Complete() bool {
	return a.FirstName != "" && a.LastName != "" && a.Address != "" &&
		a.City != "" && a.PostalCode != "" && a.Country != "" && a.Phone != ""
}

type Order struct {
	ID                    uint            `gorm:"primaryKey" json:"id"`
	UserID                string          `gorm:"not null;index" json:"user_id"`
	User                  User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items                 []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalItems            int             `json:"total_items"`
	Subtotal              float64         `json:"subtotal"`
	Discount              float64         `json:"discount"`
	ShippingAddress       ShippingAddress `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`
	ShippingMethod        ShippingMethod  `gorm:"type:VARCHAR(20)" json:"shipping_method"`
	ShippingCost          float64         `json:"shipping_cost"`
	FinalTotal            float64         `json:"final_total"`
	PaymentMethod         PaymentMethod   `gorm:"type:VARCHAR(20)" json:"payment_method"`
	PaymentStatus         PaymentStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	OrderStatus           OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"order_status"`
	TrackingNumber        string          `gorm:"uniqueIndex" json:"tracking_number"`
	EstimatedDeliveryDate time.Time       `json:"estimated_delivery_date"`
	Notes                 string          `json:"notes,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// OrderItem is an immutable copy of a purchased line. Product prices may
// change after purchase; the order keeps what the buyer actually paid.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    uint    `gorm:"index" json:"order_id"`
	ProductID  uint    `gorm:"not null" json:"product_id"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	Color      string  `gorm:"not null" json:"color"`
	Size       string  `gorm:"not null" json:"size"`
	Price      float64 `json:"price"`
	FinalPrice float64 `json:"final_price"`
	LineTotal  float64 `json:"line_total"`
}
