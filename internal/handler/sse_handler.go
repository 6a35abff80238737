package handler

import (
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/caribtel/storefront-api/internal/middleware"
	"github.com/caribtel/storefront-api/internal/service"
	"github.com/caribtel/storefront-api/internal/sse"
	"github.com/caribtel/storefront-api/internal/utils"
)

// SSEHandler streams cart change events to the storefront.
type SSEHandler struct {
	hub         *sse.Hub
	cartService *service.CartService
}

// NewSSEHandler creates a new SSEHandler.
func NewSSEHandler(hub *sse.Hub, cartService *service.CartService) *SSEHandler {
	return &SSEHandler{hub: hub, cartService: cartService}
}

// Stream handles GET /v1/cart/events. The subscriber only receives events for
// its own cart; the nav badge and cart drawer listen on this stream.
func (h *SSEHandler) Stream(c *gin.Context) {
	cartID := middleware.GetCartID(c)
	if cartID == "" {
		utils.Error(c, 400, "VALIDATION_FAILED", "Cart session could not be resolved")
		return
	}

	clientID := fmt.Sprintf("cart-%s-%d", cartID, time.Now().UnixNano())

	// SSE headers
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable nginx buffering

	client := h.hub.Register(clientID, cartID)
	defer h.hub.Unregister(clientID)

	// Send initial connected event plus a snapshot of the current cart, so a
	// subscriber that connects before any mutation still renders its badge.
	c.SSEvent("connected", gin.H{
		"cartId":    cartID,
		"timestamp": time.Now().Format(time.RFC3339),
	})
	c.SSEvent("cart", h.cartService.Get(c.Request.Context(), cartID))
	c.Writer.Flush()

	log.Info().Str("cart_id", cartID).Msg("Cart SSE stream started")

	// Stream events
	c.Stream(func(w io.Writer) bool {
		select {
		case data, ok := <-client.Events:
			if !ok {
				return false
			}
			c.SSEvent("cart", string(data))
			return true
		case <-time.After(30 * time.Second):
			c.SSEvent("ping", gin.H{"timestamp": time.Now().Format(time.RFC3339)})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
