package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/caribtel/storefront-api/internal/models"
	"github.com/caribtel/storefront-api/internal/service"
	"github.com/caribtel/storefront-api/internal/utils"
)

// MicroloanHandler handles financing eligibility and applications.
type MicroloanHandler struct {
	microloanService *service.MicroloanService
}

// NewMicroloanHandler constructs a MicroloanHandler.
func NewMicroloanHandler(microloanService *service.MicroloanService) *MicroloanHandler {
	return &MicroloanHandler{microloanService: microloanService}
}

type eligibilityRequest struct {
	MSISDN string  `json:"msisdn" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

type applyRequest struct {
	MSISDN        string                     `json:"msisdn" binding:"required"`
	LoanProductID int                        `json:"loanProductId" binding:"required"`
	Amount        float64                    `json:"amount" binding:"required"`
	CartItems     []models.MicroloanCartItem `json:"cartItems"`
}

// CheckEligibility returns the loan offers available to a subscriber.
func (h *MicroloanHandler) CheckEligibility(c *gin.Context) {
	var req eligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_FAILED", "msisdn and amount are required")
		return
	}

	eligibility, err := h.microloanService.CheckEligibility(c.Request.Context(), req.MSISDN, req.Amount)
	if err != nil {
		if errors.Is(err, utils.ErrValidationFailed) {
			utils.Error(c, 400, "VALIDATION_FAILED", "msisdn or amount is invalid")
			return
		}
		utils.Error(c, 502, "FINANCING_UNAVAILABLE", "Financing service is unavailable")
		return
	}

	utils.Success(c, 200, "Eligibility checked successfully", eligibility)
}

// Apply submits a loan application.
func (h *MicroloanHandler) Apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_FAILED", "msisdn, loanProductId and amount are required")
		return
	}

	application, err := h.microloanService.Apply(c.Request.Context(), req.MSISDN, req.LoanProductID, req.Amount, req.CartItems)
	if err != nil {
		if errors.Is(err, utils.ErrValidationFailed) {
			utils.Error(c, 400, "VALIDATION_FAILED", "Application payload is invalid")
			return
		}
		utils.Error(c, 402, "LOAN_REJECTED", "Loan application was not approved")
		return
	}

	utils.Success(c, 201, "Loan application submitted", application)
}
