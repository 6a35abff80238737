package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/caribtel/storefront-api/internal/middleware"
	"github.com/caribtel/storefront-api/internal/models"
	"github.com/caribtel/storefront-api/internal/service"
	"github.com/caribtel/storefront-api/internal/utils"
)

// CartHandler handles the cart endpoints.
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler constructs a CartHandler.
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// addItemRequest is the POST /v1/cart/items payload.
type addItemRequest struct {
	ProductID    string          `json:"productId" binding:"required"`
	VariantID    *string         `json:"variantId"`
	PlanID       *string         `json:"planId"`
	ItemType     models.ItemType `json:"itemType"`
	Title        string          `json:"title" binding:"required"`
	VariantName  *string         `json:"variantName"`
	PlanName     *string         `json:"planName"`
	Price        float64         `json:"price"`
	PlanPrice    float64         `json:"planPrice"`
	CurrencyCode string          `json:"currencyCode"`
	ImageURL     *string         `json:"imageUrl"`
	Handle       *string         `json:"handle"`
}

// lineSelector identifies the cart lines a mutation applies to. With AnyPlan
// set the planId dimension is ignored; otherwise a nil planId selects the
// plan-less line.
type lineSelector struct {
	ProductID string  `json:"productId" binding:"required"`
	VariantID *string `json:"variantId"`
	PlanID    *string `json:"planId"`
	AnyPlan   bool    `json:"anyPlan"`
}

func (s *lineSelector) matcher() models.PlanMatcher {
	if s.AnyPlan {
		return models.MatchAnyPlan()
	}
	return models.MatchPlan(s.PlanID)
}

// updateQuantityRequest is the PATCH /v1/cart/items payload.
type updateQuantityRequest struct {
	lineSelector
	Quantity int `json:"quantity"`
}

// GetCart returns the current cart state.
func (h *CartHandler) GetCart(c *gin.Context) {
	cartID := middleware.GetCartID(c)
	state := h.cartService.Get(c.Request.Context(), cartID)
	utils.Success(c, 200, "Cart retrieved successfully", state)
}

// AddItem adds one unit of a line, merging with an existing line that shares
// the same (productId, variantId, planId) triple.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_FAILED", "productId and title are required")
		return
	}
	if req.Price < 0 || req.PlanPrice < 0 {
		utils.Error(c, 400, "VALIDATION_FAILED", "Prices must not be negative")
		return
	}

	if req.CurrencyCode == "" {
		req.CurrencyCode = models.DefaultCurrency
	}

	item := models.CartItem{
		ProductID:    req.ProductID,
		VariantID:    req.VariantID,
		PlanID:       req.PlanID,
		ItemType:     req.ItemType,
		Title:        req.Title,
		VariantName:  req.VariantName,
		PlanName:     req.PlanName,
		Price:        req.Price,
		PlanPrice:    req.PlanPrice,
		CurrencyCode: req.CurrencyCode,
		ImageURL:     req.ImageURL,
		Handle:       req.Handle,
	}

	cartID := middleware.GetCartID(c)
	state := h.cartService.AddItem(c.Request.Context(), cartID, item)
	utils.Success(c, 200, "Item added to cart", state)
}

// UpdateQuantity sets the quantity of the selected lines. Zero or less
// removes them.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_FAILED", "productId is required")
		return
	}

	cartID := middleware.GetCartID(c)
	state := h.cartService.UpdateQuantity(c.Request.Context(), cartID, req.ProductID, req.VariantID, req.matcher(), req.Quantity)
	utils.Success(c, 200, "Cart updated", state)
}

// RemoveItem removes the selected lines.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	var req lineSelector
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_FAILED", "productId is required")
		return
	}

	cartID := middleware.GetCartID(c)
	state := h.cartService.RemoveItem(c.Request.Context(), cartID, req.ProductID, req.VariantID, req.matcher())
	utils.Success(c, 200, "Item removed from cart", state)
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	cartID := middleware.GetCartID(c)
	state := h.cartService.Clear(c.Request.Context(), cartID)
	utils.Success(c, 200, "Cart cleared", state)
}
