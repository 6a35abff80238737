package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/caribtel/storefront-api/internal/models"
	"github.com/caribtel/storefront-api/internal/repository"
	"github.com/caribtel/storefront-api/internal/utils"
)

// WebhookHandler receives loan status callbacks from the financing service.
type WebhookHandler struct {
	orders        *repository.OrderRepository
	webhookSecret string
}

// NewWebhookHandler constructs a WebhookHandler.
func NewWebhookHandler(orders *repository.OrderRepository, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{orders: orders, webhookSecret: webhookSecret}
}

// loanCallback is the financing service's status notification.
type loanCallback struct {
	LoanID string `json:"loanId"`
	Status string `json:"status"`
}

// MicroloanCallback handles POST /webhook/microloan. The body is authenticated
// with an HMAC-SHA256 signature in X-Signature over the raw payload.
func (h *WebhookHandler) MicroloanCallback(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.Error(c, 400, "VALIDATION_FAILED", "Failed to read request body")
		return
	}

	if h.webhookSecret != "" {
		signature := c.GetHeader("X-Signature")
		if signature == "" || !utils.VerifySignature(body, signature, h.webhookSecret) {
			log.Warn().Msg("Microloan callback rejected: bad signature")
			utils.Error(c, 401, "INVALID_SIGNATURE", "Signature verification failed")
			return
		}
	}

	var callback loanCallback
	if err := json.Unmarshal(body, &callback); err != nil || callback.LoanID == "" || callback.Status == "" {
		utils.Error(c, 400, "VALIDATION_FAILED", "loanId and status are required")
		return
	}

	paymentStatus := models.PaymentStatusProcessing
	switch callback.Status {
	case models.LoanStatusApproved, models.LoanStatusDisbursed:
		paymentStatus = models.PaymentStatusPaid
	case "REJECTED", "CANCELLED":
		paymentStatus = models.PaymentStatusFailed
	}

	if err := h.orders.UpdateLoanStatus(callback.LoanID, callback.Status, paymentStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, 404, "ORDER_NOT_FOUND", "No order found for loan")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update loan status")
		return
	}

	log.Info().
		Str("loan_id", callback.LoanID).
		Str("loan_status", callback.Status).
		Msg("Loan status updated")

	utils.Success(c, 200, "Loan status updated", gin.H{
		"loanId": callback.LoanID,
		"status": callback.Status,
	})
}
