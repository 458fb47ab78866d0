// Package pricing computes the cart price breakdown. Everything here
// is pure: it works on an immutable snapshot and touches no shared
// state, so it is safe to call from any goroutine.
package pricing

import (
	"food-delivery-app/models"

	"github.com/dustin/go-humanize"
)

const (
	// FreeDeliveryThreshold is the subtotal (ETB) at or above which
	// delivery is free.
	FreeDeliveryThreshold = 500.0
	// DeliveryFee is the flat fee below the threshold.
	DeliveryFee = 60.0
	// TaxRate is the flat 15% applied to the subtotal.
	TaxRate = 0.15
)

// Compute derives the breakdown from a cart snapshot. Arithmetic
// carries full float precision; rounding happens only in Format.
// An empty snapshot yields subtotal 0 and total equal to the fee.
func Compute(items []models.CartItem) models.PricingBreakdown {
	var subtotal float64
	for _, item := range items {
		subtotal += item.LineTotal()
	}

	// Free delivery for orders at or above 500 ETB
	fee := DeliveryFee
	if subtotal >= FreeDeliveryThreshold {
		fee = 0
	}

	tax := subtotal * TaxRate
	return models.PricingBreakdown{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal + fee + tax,
	}
}

// Format renders an ETB amount with thousands separators and exactly
// two decimal places, e.g. "1,150.00 ETB".
func Format(amount float64) string {
	return humanize.FormatFloat("#,###.##", amount) + " ETB"
}
