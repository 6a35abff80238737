package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caribtel/storefront-api/internal/models"
	"github.com/caribtel/storefront-api/internal/utils"
)

func TestPlanServiceFeatured(t *testing.T) {
	svc := NewPlanService()

	featured := svc.FeaturedPlans()
	require.Len(t, featured, len(models.FeaturedPlanIDs))
	for i, id := range models.FeaturedPlanIDs {
		assert.Equal(t, id, featured[i].ID)
	}
}

func TestPlanServiceLookups(t *testing.T) {
	svc := NewPlanService()

	plan, err := svc.PostpaidPlanByID("unlimited")
	require.NoError(t, err)
	assert.Equal(t, "Unlimited", plan.Name)

	_, err = svc.PostpaidPlanByID("bogus")
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)

	bundle, err := svc.PrepaidBundleByID("monthly-pro")
	require.NoError(t, err)
	assert.Equal(t, 149.0, bundle.Price)

	_, err = svc.PrepaidBundleByID("bogus")
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestPlanServiceQuoteBundle(t *testing.T) {
	svc := NewPlanService()

	t.Run("amortizes device plus commitment", func(t *testing.T) {
		quote, err := svc.QuoteBundle("flex", 1000)
		require.NoError(t, err)

		assert.Equal(t, 1800.0, quote.UpfrontTotal)
		assert.Equal(t, models.BundleTermMonths, quote.TermMonths)
		assert.Equal(t, 129.0, quote.MonthlyPlan)
		// Monthly payment covers the principal plus some interest.
		assert.Greater(t, quote.MonthlyPayment*float64(quote.TermMonths), quote.UpfrontTotal)
	})

	t.Run("unknown plan", func(t *testing.T) {
		_, err := svc.QuoteBundle("bogus", 1000)
		assert.ErrorIs(t, err, utils.ErrPlanNotFound)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := svc.QuoteBundle("flex", -1)
		assert.ErrorIs(t, err, utils.ErrValidationFailed)
	})
}
