package service

import (
	"math"

	"github.com/caribtel/storefront-api/internal/models"
	"github.com/caribtel/storefront-api/internal/utils"
)

// PlanService serves the static plan catalog and bundle financing quotes.
type PlanService struct{}

// NewPlanService creates a new PlanService.
func NewPlanService() *PlanService {
	return &PlanService{}
}

// PostpaidPlans returns the full postpaid catalog.
func (s *PlanService) PostpaidPlans() []models.PostpaidPlan {
	return models.PostpaidPlans
}

// PrepaidBundles returns the full prepaid catalog.
func (s *PlanService) PrepaidBundles() []models.PrepaidBundle {
	return models.PrepaidBundles
}

// FeaturedPlans returns the postpaid plans highlighted on the home page, in
// the configured feature order.
func (s *PlanService) FeaturedPlans() []models.PostpaidPlan {
	featured := make([]models.PostpaidPlan, 0, len(models.FeaturedPlanIDs))
	for _, id := range models.FeaturedPlanIDs {
		if plan := models.PostpaidPlanByID(id); plan != nil {
			featured = append(featured, *plan)
		}
	}
	return featured
}

// PostpaidPlanByID looks up a single postpaid plan.
func (s *PlanService) PostpaidPlanByID(id string) (*models.PostpaidPlan, error) {
	plan := models.PostpaidPlanByID(id)
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	return plan, nil
}

// PrepaidBundleByID looks up a single prepaid bundle.
func (s *PlanService) PrepaidBundleByID(id string) (*models.PrepaidBundle, error) {
	bundle := models.PrepaidBundleByID(id)
	if bundle == nil {
		return nil, utils.ErrPlanNotFound
	}
	return bundle, nil
}

// BundleQuote is the financing breakdown for a device-plus-plan bundle.
type BundleQuote struct {
	PlanID         string  `json:"planId"`
	PlanName       string  `json:"planName"`
	DevicePrice    float64 `json:"devicePrice"`
	UpfrontTotal   float64 `json:"upfrontTotal"`
	TermMonths     int     `json:"termMonths"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	MonthlyPlan    float64 `json:"monthlyPlan"`
	CurrencyCode   string  `json:"currencyCode"`
}

// QuoteBundle amortizes a device price plus the plan's commitment value over
// the bundle term, rounded to cents.
func (s *PlanService) QuoteBundle(planID string, devicePrice float64) (*BundleQuote, error) {
	plan := models.PostpaidPlanByID(planID)
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	if devicePrice < 0 {
		return nil, utils.ErrValidationFailed
	}

	principal := devicePrice + plan.CommitmentValue
	monthly := models.MonthlyInstallment(principal, models.BundleMonthlyRate, models.BundleTermMonths)

	return &BundleQuote{
		PlanID:         plan.ID,
		PlanName:       plan.Name,
		DevicePrice:    devicePrice,
		UpfrontTotal:   principal,
		TermMonths:     models.BundleTermMonths,
		MonthlyPayment: roundCents(monthly),
		MonthlyPlan:    plan.MonthlyPrice,
		CurrencyCode:   models.DefaultCurrency,
	}, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
