package middleware

import (
	"net/http"
	"strings"
	"time"

	"food-delivery-app/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carry the session id inside the signed token. This is
// session affinity, not authentication: there are no accounts or
// passwords, the token only pins a caller to their cart.
type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed session token for a session id
func GenerateToken(sessionID string) (string, error) {
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.SessionSecret)
}

// SessionRequired validates the session token and injects the session
// id into context
func SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session token required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.SessionSecret, nil
		})
		if err != nil || !token.Valid || claims.SessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			c.Abort()
			return
		}
		c.Set("sessionID", claims.SessionID)
		c.Next()
	}
}

// GetSessionID extracts the caller's session id from context
func GetSessionID(c *gin.Context) string {
	val, _ := c.Get("sessionID")
	id, _ := val.(string)
	return id
}
