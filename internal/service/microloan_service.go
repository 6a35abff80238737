package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/caribtel/storefront-api/internal/models"
	"github.com/caribtel/storefront-api/internal/utils"
	"github.com/caribtel/storefront-api/pkg/microloan"
)

// demoLoanAmounts is the offer ladder served in demo mode, when no financing
// BFF is configured. Amounts are amortized over three months at zero interest.
var demoLoanAmounts = []float64{500, 1000, 1500, 2000, 2500}

const demoLoanTerm = "3 months"

// MicroloanService checks financing eligibility and submits loan applications
// through the carrier's microloan BFF. With no BFF configured it runs in demo
// mode and serves a canned offer ladder; with a BFF configured, upstream
// failures surface as errors rather than fake approvals.
type MicroloanService struct {
	client *microloan.Client
}

// NewMicroloanService creates a MicroloanService. A nil client enables demo
// mode.
func NewMicroloanService(client *microloan.Client) *MicroloanService {
	return &MicroloanService{client: client}
}

// DemoMode reports whether the service is running without a real BFF.
func (s *MicroloanService) DemoMode() bool {
	return s.client == nil
}

// CheckEligibility returns the loan offers available to a subscriber for the
// requested amount. An ineligible subscriber is a successful result with
// Eligible=false, not an error.
func (s *MicroloanService) CheckEligibility(ctx context.Context, msisdn string, amount float64) (*models.MicroloanEligibility, error) {
	digits := microloan.DigitsOnly(msisdn)
	if len(digits) < 7 || amount <= 0 {
		return nil, utils.ErrValidationFailed
	}

	if s.client == nil {
		return demoEligibility(amount), nil
	}

	resp, err := s.client.CheckEligibility(ctx, digits)
	if err != nil {
		log.Error().Err(err).Msg("Microloan eligibility check failed")
		return nil, utils.ErrFinancingUnavailable
	}

	out := &models.MicroloanEligibility{
		Eligible:  resp.Eligible,
		MaxAmount: resp.MaxAmount,
		Currency:  resp.Currency,
		Products:  make([]models.MicroloanProduct, 0, len(resp.Products)),
	}
	if out.Currency == "" {
		out.Currency = models.DefaultCurrency
	}
	for _, p := range resp.Products {
		out.Products = append(out.Products, models.MicroloanProduct{
			ID:             p.ID,
			Amount:         p.Amount,
			Term:           p.Term,
			MonthlyPayment: p.MonthlyPayment,
			InterestRate:   p.InterestRate,
		})
	}
	return out, nil
}

// Apply submits a loan application for the given subscriber, offer and cart
// snapshot.
func (s *MicroloanService) Apply(ctx context.Context, msisdn string, loanProductID int, amount float64, items []models.MicroloanCartItem) (*models.MicroloanApplication, error) {
	digits := microloan.DigitsOnly(msisdn)
	if len(digits) < 7 || amount <= 0 {
		return nil, utils.ErrValidationFailed
	}

	if s.client == nil {
		return demoApplication(amount), nil
	}

	req := &microloan.ApplicationRequest{
		MSISDN:        digits,
		LoanProductID: loanProductID,
		Amount:        amount,
		CartItems:     make([]microloan.CartItem, 0, len(items)),
	}
	for _, it := range items {
		req.CartItems = append(req.CartItems, microloan.CartItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	resp, err := s.client.Apply(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("Microloan application failed")
		return nil, utils.ErrLoanRejected
	}

	app := &models.MicroloanApplication{
		LoanID:         resp.LoanID,
		Status:         resp.Status,
		Amount:         resp.Amount,
		Term:           resp.Term,
		MonthlyPayment: resp.MonthlyPayment,
		Currency:       resp.Currency,
	}
	if app.Currency == "" {
		app.Currency = models.DefaultCurrency
	}
	return app, nil
}

func demoEligibility(amount float64) *models.MicroloanEligibility {
	maxAmount := demoLoanAmounts[len(demoLoanAmounts)-1]
	limit := math.Max(amount, maxAmount)
	products := make([]models.MicroloanProduct, 0, len(demoLoanAmounts))
	for i, offer := range demoLoanAmounts {
		if offer > limit {
			continue
		}
		products = append(products, models.MicroloanProduct{
			ID:             i + 1,
			Amount:         offer,
			Term:           demoLoanTerm,
			MonthlyPayment: roundCents(offer / 3),
			InterestRate:   0,
		})
	}
	return &models.MicroloanEligibility{
		Eligible:  amount <= maxAmount,
		MaxAmount: maxAmount,
		Currency:  models.DefaultCurrency,
		Products:  products,
	}
}

func demoApplication(amount float64) *models.MicroloanApplication {
	return &models.MicroloanApplication{
		LoanID:         utils.GenerateLoanID(time.Now().Year()),
		Status:         models.LoanStatusApproved,
		Amount:         amount,
		Term:           demoLoanTerm,
		MonthlyPayment: roundCents(amount / 3),
		Currency:       models.DefaultCurrency,
	}
}
