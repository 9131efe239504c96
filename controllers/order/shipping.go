package orderControllers

import (
	"os"
	"strconv"
	"time"

	"github.com/hasnaintypes/3legant-platform/models"
)

// Default shipping costs; each can be overridden with SHIPPING_STANDARD,
// SHIPPING_EXPRESS or SHIPPING_OVERNIGHT.
const (
	defaultStandardCost  = 5.99
	defaultExpressCost   = 15.99
	defaultOvernightCost = 29.99
)

func ShippingCost(method models.ShippingMethod) float64 {
	switch method {
	case models.ShippingExpress:
		return envCost("SHIPPING_EXPRESS", defaultExpressCost)
	case models.ShippingOvernight:
		return envCost("SHIPPING_OVERNIGHT", defaultOvernightCost)
	default:
		return envCost("SHIPPING_STANDARD", defaultStandardCost)
	}
}

func estimatedDelivery(method models.ShippingMethod, from time.Time) time.Time {
	switch method {
	case models.ShippingExpress:
		return from.AddDate(0, 0, 2)
	case models.ShippingOvernight:
		return from.AddDate(0, 0, 1)
	default:
		return from.AddDate(0, 0, 5)
	}
}

func envCost(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	cost, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return cost
}
