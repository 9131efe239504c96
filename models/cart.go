package models

import (
	"time"

	"github.com/hasnaintypes/3legant-platform/pricing"
)

type Cart struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     string     `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Lines      []CartLine `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"lines"`
	TotalItems int        `json:"total_items"`
	Subtotal   float64    `json:"subtotal"`
	Discount   float64    `json:"discount"`
	FinalTotal float64    `json:"final_total"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CartLine is one (product, color, size) selection. That tuple is the dedup
// key: the same product in another color or size is a distinct line.
type CartLine struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CartID     uint      `gorm:"index" json:"cart_id"`
	ProductID  uint      `gorm:"not null" json:"product_id"`
	Color      string    `gorm:"not null" json:"color"`
	Size       string    `gorm:"not null" json:"size"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Price      float64   `json:"price"`
	FinalPrice float64   `json:"final_price"`
	LineTotal  float64   `json:"line_total"`
	AddedAt    time.Time `json:"added_at"`
}

// Matches reports whether the line covers the given selection tuple.
func (l *CartLine) Matches(productID uint, color, size string) bool {
	return l.ProductID == productID && l.Color == color && l.Size == size
}

// RecomputeTotals derives the cart aggregates from the current lines. Always
// a full recompute, never an incremental patch, so the aggregates cannot
// drift from the lines. Line totals are summed unrounded; only the aggregates
// are rounded for presentation.
func (c *Cart) RecomputeTotals() {
	totalItems := 0
	subtotal := 0.0
	for _, line := range c.Lines {
		totalItems += line.Quantity
		subtotal += line.LineTotal
	}
	c.TotalItems = totalItems
	c.Subtotal = pricing.Round2(subtotal)
	c.FinalTotal = pricing.Round2(subtotal - c.Discount)
}
