package handlers

import (
	"net/http"

	"food-delivery-app/cart"
	"food-delivery-app/middleware"
	"food-delivery-app/orders"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Process-wide domain services, analogous to config.DB: one cart
// manager and one order service shared by all handlers.
var (
	Carts  = cart.NewManager()
	Orders = orders.NewService()
)

// StartSession creates a fresh session with an empty cart and returns
// the signed token the cart and order endpoints require. The session
// (and everything in it) lives only as long as the process.
func StartSession(c *gin.Context) {
	sessionID := uuid.NewString()
	Carts.Create(sessionID)

	token, err := middleware.GenerateToken(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate session token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Session started",
		"session_id": sessionID,
		"token":      token,
	})
}
