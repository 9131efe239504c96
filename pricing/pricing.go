// Package pricing computes per-line prices for carts and orders. It is pure:
// no I/O, no persistence, so callers always re-quote from a fresh catalog
// read instead of trusting cached totals.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscount = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// LineQuote is the priced form of one (product, quantity) selection.
type LineQuote struct {
	UnitPrice      float64 `json:"unit_price"`
	FinalUnitPrice float64 `json:"final_unit_price"`
	LineTotal      float64 `json:"line_total"`
}

// Quote prices a single line. FinalUnitPrice is the discounted unit price,
// LineTotal the extended total. Line values are kept unrounded; only
// aggregates presented to clients are rounded (see Round2), so summing lines
// does not compound rounding error.
func Quote(price, discountPercentage float64, quantity int) (LineQuote, error) {
	if discountPercentage < 0 || discountPercentage > 100 {
		return LineQuote{}, ErrInvalidDiscount
	}
	if quantity < 1 {
		return LineQuote{}, ErrInvalidQuantity
	}

	final := price * (1 - discountPercentage/100)
	return LineQuote{
		UnitPrice:      price,
		FinalUnitPrice: final,
		LineTotal:      final * float64(quantity),
	}, nil
}

// Round2 rounds a currency amount to 2 decimal places, half away from zero.
func Round2(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}
