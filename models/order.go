package models

import "time"

// OrderStatus is the delivery progression shown on the tracking
// screen. It is display data, precomputed at placement; there is no
// live driver feed updating it.
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "PLACED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusOnTheWay  OrderStatus = "ON_THE_WAY"
	StatusDelivered OrderStatus = "DELIVERED"
)

// Order is the record produced by a successful placement. It is never
// mutated afterwards; a fresh placement simply replaces it (no order
// history is kept, and nothing survives a restart).
type Order struct {
	OrderNumber       string      `json:"order_number"` // FD- + 8 uppercase hex chars
	PlacedAt          time.Time   `json:"placed_at"`
	EstimatedDelivery string      `json:"estimated_delivery"` // e.g. "3:25 PM (15min)"
	DriverName        string      `json:"driver_name"`
	DriverPhone       string      `json:"driver_phone"`
	Vehicle           string      `json:"vehicle"`
	Status            OrderStatus `json:"status"`
}

// PricingBreakdown is derived from a cart snapshot on every query,
// never stored: the cart can mutate between reads.
type PricingBreakdown struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}
