package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostpaidPlanByID(t *testing.T) {
	plan := PostpaidPlanByID("flex")
	require.NotNil(t, plan)
	assert.Equal(t, "Flex", plan.Name)
	assert.Equal(t, 129.0, plan.MonthlyPrice)

	assert.Nil(t, PostpaidPlanByID("no-such-plan"))
}

func TestPrepaidBundleByID(t *testing.T) {
	bundle := PrepaidBundleByID("weekly-surf")
	require.NotNil(t, bundle)
	assert.Equal(t, 35.0, bundle.Price)
	assert.Equal(t, "7 days", bundle.Validity)

	assert.Nil(t, PrepaidBundleByID("no-such-bundle"))
}

func TestFeaturedPlanIDsExist(t *testing.T) {
	for _, id := range FeaturedPlanIDs {
		assert.NotNil(t, PostpaidPlanByID(id), "featured plan %q missing from catalog", id)
	}
}

func TestMonthlyInstallment(t *testing.T) {
	t.Run("zero rate splits evenly", func(t *testing.T) {
		assert.InDelta(t, 100.0, MonthlyInstallment(800, 0, 8), 1e-9)
	})

	t.Run("positive rate exceeds even split", func(t *testing.T) {
		monthly := MonthlyInstallment(800, BundleMonthlyRate, BundleTermMonths)
		assert.Greater(t, monthly, 100.0)
		// Total repaid exceeds principal but not by more than term interest.
		assert.Less(t, monthly*float64(BundleTermMonths), 800*1.1)
	})

	t.Run("zero months returns zero", func(t *testing.T) {
		assert.Zero(t, MonthlyInstallment(800, BundleMonthlyRate, 0))
	})
}
