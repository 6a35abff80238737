package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	cartCookieName = "cart_id"
	cartHeaderName = "X-Cart-Id"
	cartContextKey = "cart_id"

	// Cookie lifetime matches the cart's persisted TTL (30 days).
	cartCookieMaxAge = 30 * 24 * 3600
)

// CartSessionMiddleware resolves the caller's cart identity. API clients may
// pass it explicitly via the X-Cart-Id header; browsers get a cookie issued on
// first contact. An unknown or fresh id simply loads as an empty cart.
func CartSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.GetHeader(cartHeaderName)

		if cartID == "" {
			if cookie, err := c.Cookie(cartCookieName); err == nil {
				cartID = cookie
			}
		}

		// Only accept well-formed uuids; anything else gets a fresh identity.
		if _, err := uuid.Parse(cartID); err != nil {
			cartID = uuid.New().String()
			c.SetCookie(cartCookieName, cartID, cartCookieMaxAge, "/", "", false, true)
		}

		c.Set(cartContextKey, cartID)
		c.Next()
	}
}

// GetCartID returns the cart identity resolved for this request.
func GetCartID(c *gin.Context) string {
	return c.GetString(cartContextKey)
}
