package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name          string
		price         float64
		discount      float64
		quantity      int
		wantFinalUnit float64
		wantLineTotal float64
	}{
		{"no discount", 100, 0, 1, 100, 100},
		{"ten percent off", 100, 10, 3, 90, 270},
		{"full discount", 49.99, 100, 2, 0, 0},
		{"fractional price", 19.95, 25, 4, 14.9625, 59.85},
		{"zero price", 0, 50, 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := Quote(tt.price, tt.discount, tt.quantity)
			require.NoError(t, err)
			assert.Equal(t, tt.price, quote.UnitPrice)
			assert.InDelta(t, tt.wantFinalUnit, quote.FinalUnitPrice, 1e-9)
			assert.InDelta(t, tt.wantLineTotal, quote.LineTotal, 1e-9)
		})
	}
}

func TestQuoteInvalidDiscount(t *testing.T) {
	for _, discount := range []float64{-1, -0.01, 100.01, 150} {
		_, err := Quote(100, discount, 1)
		assert.ErrorIs(t, err, ErrInvalidDiscount, "discount %v", discount)
	}
}

func TestQuoteInvalidQuantity(t *testing.T) {
	for _, qty := range []int{0, -1, -10} {
		_, err := Quote(100, 10, qty)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "quantity %d", qty)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 275.99, Round2(275.99))
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, 10.57, Round2(10.565))
	assert.Equal(t, 59.85, Round2(59.850000000000001))
	assert.Equal(t, -2.35, Round2(-2.345))
}
