package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"food-delivery-app/cart"
	"food-delivery-app/middleware"
	"food-delivery-app/pricing"

	"github.com/gin-gonic/gin"
)

type AddItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	UnitPrice float64 `json:"unit_price" binding:"required,gt=0"`
}

// GetCart returns the current cart snapshot with a freshly computed
// pricing breakdown
func GetCart(c *gin.Context) {
	sessionCart := Carts.Get(middleware.GetSessionID(c))
	items := sessionCart.Snapshot()
	breakdown := pricing.Compute(items)

	c.JSON(http.StatusOK, gin.H{
		"count":     len(items),
		"items":     items,
		"breakdown": breakdown,
		"formatted": gin.H{
			"subtotal":     pricing.Format(breakdown.Subtotal),
			"delivery_fee": pricing.Format(breakdown.DeliveryFee),
			"tax":          pricing.Format(breakdown.Tax),
			"total":        pricing.Format(breakdown.Total),
		},
	})
}

// AddItem appends a new line item with quantity 1. Adding the same
// dish twice yields two independent lines.
func AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionCart := Carts.Get(middleware.GetSessionID(c))
	sessionCart.Add(req.Name, req.UnitPrice)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item added to cart",
		"count":   sessionCart.ItemCount(),
	})
}

// IncreaseItem bumps a line item's quantity
func IncreaseItem(c *gin.Context) {
	mutateQuantity(c, func(sc *cart.Cart, index int) error {
		return sc.Increase(index)
	})
}

// DecreaseItem lowers a line item's quantity; at quantity 1 the call
// leaves the line unchanged
func DecreaseItem(c *gin.Context) {
	mutateQuantity(c, func(sc *cart.Cart, index int) error {
		return sc.Decrease(index)
	})
}

// RemoveItem deletes a line item; later indices shift down by one
func RemoveItem(c *gin.Context) {
	mutateQuantity(c, func(sc *cart.Cart, index int) error {
		return sc.Remove(index)
	})
}

func mutateQuantity(c *gin.Context, op func(*cart.Cart, int) error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart item index must be a number"})
		return
	}

	sessionCart := Carts.Get(middleware.GetSessionID(c))
	if err := op(sessionCart, index); err != nil {
		if errors.Is(err, cart.ErrInvalidIndex) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid cart item index",
				"count": sessionCart.ItemCount(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"items":   sessionCart.Snapshot(),
	})
}
