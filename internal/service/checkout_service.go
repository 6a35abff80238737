package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/caribtel/storefront-api/internal/models"
	"github.com/caribtel/storefront-api/internal/repository"
	"github.com/caribtel/storefront-api/internal/utils"
	"github.com/caribtel/storefront-api/pkg/payment"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CheckoutRequest is the checkout form payload.
type CheckoutRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	Street *string `json:"street"`
	City   *string `json:"city"`
	Region *string `json:"region"`

	PaymentMethod models.PaymentMethod `json:"paymentMethod"`

	// Card payments.
	CardToken string `json:"cardToken,omitempty"`

	// Microloan payments.
	MSISDN        string  `json:"msisdn,omitempty"`
	LoanProductID int     `json:"loanProductId,omitempty"`
	LoanAmount    float64 `json:"loanAmount,omitempty"`
}

// CheckoutResult is the placed order with its line snapshots.
type CheckoutResult struct {
	Order *models.Order      `json:"order"`
	Items []models.OrderItem `json:"items"`
}

// CheckoutService validates the checkout form, settles payment through the
// configured channel and persists the order.
type CheckoutService struct {
	orders    *repository.OrderRepository
	carts     *CartService
	microloan *MicroloanService
	payments  *payment.Client
}

// NewCheckoutService creates a new CheckoutService. A nil payment client puts
// card payments in demo mode.
func NewCheckoutService(orders *repository.OrderRepository, carts *CartService, microloan *MicroloanService, payments *payment.Client) *CheckoutService {
	return &CheckoutService{
		orders:    orders,
		carts:     carts,
		microloan: microloan,
		payments:  payments,
	}
}

// Validate checks the form against the order type derived from the cart.
// It returns a field-to-message map, empty when the form is valid.
func Validate(req *CheckoutRequest, orderType models.OrderType) map[string]string {
	fields := map[string]string{}

	if strings.TrimSpace(req.CustomerName) == "" {
		fields["customerName"] = "Name is required"
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		fields["customerEmail"] = "Email is required"
	} else if !emailPattern.MatchString(req.CustomerEmail) {
		fields["customerEmail"] = "Email is invalid"
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		fields["customerPhone"] = "Phone is required"
	}

	if orderType.RequiresDelivery() {
		if req.Street == nil || strings.TrimSpace(*req.Street) == "" {
			fields["street"] = "Street is required"
		}
		if req.City == nil || strings.TrimSpace(*req.City) == "" {
			fields["city"] = "City is required"
		}
		if req.Region == nil || strings.TrimSpace(*req.Region) == "" {
			fields["region"] = "Region is required"
		}
	}

	switch req.PaymentMethod {
	case models.PaymentMethodCard:
		if strings.TrimSpace(req.CardToken) == "" {
			fields["cardToken"] = "Card token is required"
		}
	case models.PaymentMethodMicroloan:
		if strings.TrimSpace(req.MSISDN) == "" {
			fields["msisdn"] = "Mobile number is required"
		}
		if req.LoanProductID <= 0 {
			fields["loanProductId"] = "Loan offer is required"
		}
	case models.PaymentMethodCOD:
	default:
		fields["paymentMethod"] = "Payment method is invalid"
	}

	return fields
}

// Checkout places an order for the given cart. On success the cart is
// cleared; on payment failure the cart is left intact so the customer can
// retry. When validation fails the returned field map carries per-field
// messages alongside ErrValidationFailed.
func (s *CheckoutService) Checkout(ctx context.Context, cartID string, req *CheckoutRequest) (*CheckoutResult, map[string]string, error) {
	cart := s.carts.Get(ctx, cartID)
	if len(cart.Items) == 0 {
		return nil, nil, utils.ErrEmptyCart
	}

	orderType := models.ClassifyOrder(cart.Items)
	if fields := Validate(req, orderType); len(fields) > 0 {
		return nil, fields, utils.ErrValidationFailed
	}

	order := &models.Order{
		OrderNumber:   utils.GenerateOrderNumber(),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		OrderType:     orderType,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.PaymentStatusPending,
		Total:         cart.Total,
		CurrencyCode:  cart.CurrencyCode,
	}
	if orderType.RequiresDelivery() {
		order.Street = req.Street
		order.City = req.City
		order.Region = req.Region
	}

	switch req.PaymentMethod {
	case models.PaymentMethodCard:
		if err := s.settleCard(ctx, order, req); err != nil {
			return nil, nil, err
		}
	case models.PaymentMethodMicroloan:
		if err := s.settleMicroloan(ctx, order, req, cart.Items); err != nil {
			return nil, nil, err
		}
	case models.PaymentMethodCOD:
		// Settled on delivery.
	}

	items := orderItemsFromCart(cart.Items)
	if err := s.orders.Create(order, items); err != nil {
		log.Error().Err(err).Str("order_number", order.OrderNumber).Msg("Failed to persist order")
		return nil, nil, err
	}

	s.carts.Clear(ctx, cartID)

	log.Info().
		Str("order_number", order.OrderNumber).
		Str("order_type", string(order.OrderType)).
		Str("payment_method", string(order.PaymentMethod)).
		Float64("total", order.Total).
		Msg("Order placed")

	return &CheckoutResult{Order: order, Items: items}, nil, nil
}

// GetOrder returns a placed order by its public order number.
func (s *CheckoutService) GetOrder(orderNumber string) (*CheckoutResult, error) {
	order, items, err := s.orders.GetByOrderNumber(orderNumber)
	if err != nil {
		return nil, utils.ErrOrderNotFound
	}
	return &CheckoutResult{Order: order, Items: items}, nil
}

func (s *CheckoutService) settleCard(ctx context.Context, order *models.Order, req *CheckoutRequest) error {
	if s.payments == nil {
		// Demo mode: no gateway configured, mark the charge settled.
		order.PaymentStatus = models.PaymentStatusPaid
		return nil
	}

	charge, err := s.payments.CreateCharge(ctx, &payment.ChargeRequest{
		OrderNumber: order.OrderNumber,
		Amount:      order.Total,
		Currency:    order.CurrencyCode,
		CardToken:   req.CardToken,
		Email:       order.CustomerEmail,
	})
	if err != nil {
		log.Error().Err(err).Str("order_number", order.OrderNumber).Msg("Card charge failed")
		return utils.ErrPaymentUnavailable
	}

	order.ChargeID = &charge.ChargeID
	switch charge.Status {
	case payment.ChargeStatusSettled:
		order.PaymentStatus = models.PaymentStatusPaid
	case payment.ChargeStatusPending:
		order.PaymentStatus = models.PaymentStatusProcessing
	default:
		return utils.ErrPaymentDeclined
	}
	return nil
}

func (s *CheckoutService) settleMicroloan(ctx context.Context, order *models.Order, req *CheckoutRequest, items models.CartItems) error {
	amount := req.LoanAmount
	if amount <= 0 {
		amount = order.Total
	}

	snapshot := make([]models.MicroloanCartItem, 0, len(items))
	for i := range items {
		snapshot = append(snapshot, models.MicroloanCartItem{
			ProductID: items[i].ProductID,
			Title:     items[i].Title,
			Quantity:  items[i].Quantity,
			Price:     items[i].Price,
		})
	}

	app, err := s.microloan.Apply(ctx, req.MSISDN, req.LoanProductID, amount, snapshot)
	if err != nil {
		return err
	}

	order.LoanID = &app.LoanID
	order.LoanStatus = &app.Status
	switch app.Status {
	case models.LoanStatusApproved, models.LoanStatusDisbursed:
		order.PaymentStatus = models.PaymentStatusPaid
	default:
		order.PaymentStatus = models.PaymentStatusProcessing
	}
	return nil
}

func orderItemsFromCart(items models.CartItems) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for i := range items {
		out = append(out, models.OrderItem{
			ProductID: items[i].ProductID,
			VariantID: items[i].VariantID,
			PlanID:    items[i].PlanID,
			ItemType:  items[i].ItemType,
			Title:     items[i].Title,
			Price:     items[i].Price,
			PlanPrice: items[i].PlanPrice,
			Quantity:  items[i].Quantity,
		})
	}
	return out
}
