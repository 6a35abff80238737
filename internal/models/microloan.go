package models

// MicroloanEligibility is the result of a financing eligibility check.
type MicroloanEligibility struct {
	Eligible  bool               `json:"eligible"`
	MaxAmount float64            `json:"maxAmount"`
	Currency  string             `json:"currency"`
	Products  []MicroloanProduct `json:"products"`
}

// MicroloanProduct is one loan offer the customer can pick.
type MicroloanProduct struct {
	ID             int     `json:"id"`
	Amount         float64 `json:"amount"`
	Term           string  `json:"term"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	InterestRate   float64 `json:"interestRate"`
}

// Loan application statuses reported by the financing service.
const (
	LoanStatusPending   = "PENDING"
	LoanStatusApproved  = "APPROVED"
	LoanStatusDisbursed = "DISBURSED"
)

// MicroloanApplication is a submitted (and possibly approved) loan.
type MicroloanApplication struct {
	LoanID         string  `json:"loanId"`
	Status         string  `json:"status"`
	Amount         float64 `json:"amount"`
	Term           string  `json:"term"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	Currency       string  `json:"currency"`
}

// MicroloanCartItem is the cart snapshot attached to a loan application.
type MicroloanCartItem struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
