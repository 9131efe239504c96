package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/hasnaintypes/3legant-platform/pricing"
)

type Product struct {
	ID                 uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string         `gorm:"not null" json:"name"`
	Description        string         `json:"description"`
	Price              float64        `gorm:"not null" json:"price"`
	DiscountPercentage float64        `gorm:"default:0" json:"discount_percentage"`
	Stock              int            `gorm:"not null;default:0" json:"stock"`
	Colors             []string       `gorm:"serializer:json" json:"colors"`
	Sizes              []string       `gorm:"serializer:json" json:"sizes"`
	SKU                string         `gorm:"uniqueIndex" json:"sku"`
	Brand              string         `json:"brand"`
	Badge              string         `json:"badge,omitempty"`
	IsFeatured         bool           `gorm:"default:false" json:"is_featured"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// FinalPrice is the discounted unit price, always derived from the current
// price and discount. It is never stored, so a stale value can never be
// charged at checkout.
func (p *Product) FinalPrice() float64 {
	quote, err := pricing.Quote(p.Price, p.DiscountPercentage, 1)
	if err != nil {
		return p.Price
	}
	return quote.FinalUnitPrice
}

// ProductSnapshot is the read-only catalog view the cart and order flows
// price against.
type ProductSnapshot struct {
	ID                 uint    `json:"id"`
	Name               string  `json:"name"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discount_percentage"`
	FinalPrice         float64 `json:"final_price"`
	Stock              int     `json:"stock"`
}

func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:                 p.ID,
		Name:               p.Name,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		FinalPrice:         p.FinalPrice(),
		Stock:              p.Stock,
	}
}
