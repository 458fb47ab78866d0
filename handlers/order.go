package handlers

import (
	"errors"
	"net/http"

	"food-delivery-app/cart"
	"food-delivery-app/middleware"
	"food-delivery-app/orders"
	"food-delivery-app/statemachine"

	"github.com/gin-gonic/gin"
)

// PlaceOrder converts the session's cart into an order. The cart is
// cleared only on success; an empty cart is rejected with no state
// change.
func PlaceOrder(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	sessionCart := Carts.Get(sessionID)

	order, err := Orders.Place(sessionID, sessionCart)
	if err != nil {
		if errors.Is(err, cart.ErrEmptyCart) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Your cart is empty",
				"count": sessionCart.ItemCount(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order #" + order.OrderNumber + " placed successfully!",
		"order":   order,
	})
}

// TrackOrder returns the placed order's tracking record, or fails
// when no order has been placed in this session
func TrackOrder(c *gin.Context) {
	order, err := Orders.Tracking(middleware.GetSessionID(c))
	if err != nil {
		if errors.Is(err, orders.ErrNoActiveOrder) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Please place an order first"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tracking info"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":  order,
		"stages": statemachine.AllStages(),
	})
}
