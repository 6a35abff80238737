package microloan

// EligibilityResponse is the BFF's answer to an eligibility lookup.
type EligibilityResponse struct {
	Eligible  bool          `json:"eligible"`
	MaxAmount float64       `json:"maxAmount"`
	Currency  string        `json:"currency"`
	Products  []LoanProduct `json:"products"`
}

// LoanProduct is one loan offer in an eligibility response.
type LoanProduct struct {
	ID             int     `json:"id"`
	Amount         float64 `json:"amount"`
	Term           string  `json:"term"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	InterestRate   float64 `json:"interestRate"`
}

// CartItem is the order snapshot attached to a loan application.
type CartItem struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// ApplicationRequest creates a loan against the customer's mobile account.
type ApplicationRequest struct {
	MSISDN        string     `json:"msisdn"`
	LoanProductID int        `json:"loanProductId"`
	Amount        float64    `json:"amount"`
	CartItems     []CartItem `json:"cartItems"`
}

// ApplicationResponse describes the created loan.
type ApplicationResponse struct {
	LoanID         string  `json:"loanId"`
	Status         string  `json:"status"`
	Amount         float64 `json:"amount"`
	Term           string  `json:"term"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	Currency       string  `json:"currency"`
}
