package payment

// ChargeRequest creates a card charge for an order.
type ChargeRequest struct {
	OrderNumber string  `json:"orderNumber"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	CardToken   string  `json:"cardToken"`
	Email       string  `json:"email"`
}

// ChargeResponse is the gateway's view of a charge.
type ChargeResponse struct {
	ChargeID    string `json:"chargeId"`
	OrderNumber string `json:"orderNumber"`
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
}

// Gateway charge statuses.
const (
	ChargeStatusPending  = "pending"
	ChargeStatusSettled  = "settled"
	ChargeStatusDeclined = "declined"
)
