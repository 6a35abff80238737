package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/caribtel/storefront-api/internal/middleware"
	"github.com/caribtel/storefront-api/internal/service"
	"github.com/caribtel/storefront-api/internal/utils"
)

// CheckoutHandler handles order placement and lookup.
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler constructs a CheckoutHandler.
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout places an order for the caller's cart.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_FAILED", "Request body is invalid")
		return
	}

	cartID := middleware.GetCartID(c)
	result, fields, err := h.checkoutService.Checkout(c.Request.Context(), cartID, &req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrEmptyCart):
			utils.Error(c, 400, "EMPTY_CART", "Cart is empty")
		case errors.Is(err, utils.ErrValidationFailed):
			utils.ValidationError(c, fields)
		case errors.Is(err, utils.ErrPaymentDeclined):
			utils.Error(c, 402, "PAYMENT_DECLINED", "Card was declined")
		case errors.Is(err, utils.ErrPaymentUnavailable):
			utils.Error(c, 502, "PAYMENT_UNAVAILABLE", "Payment service is unavailable, please try again")
		case errors.Is(err, utils.ErrLoanRejected):
			utils.Error(c, 402, "LOAN_REJECTED", "Loan application was not approved")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to place order")
		}
		return
	}

	utils.Success(c, 201, "Order placed successfully", result)
}

// GetOrder returns a placed order by its public order number.
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	result, err := h.checkoutService.GetOrder(orderNumber)
	if err != nil {
		utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
		return
	}

	utils.Success(c, 200, "Order retrieved successfully", result)
}
