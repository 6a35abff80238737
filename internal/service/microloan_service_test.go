package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caribtel/storefront-api/internal/models"
	"github.com/caribtel/storefront-api/internal/utils"
	"github.com/caribtel/storefront-api/pkg/microloan"
)

func TestMicroloanServiceDemoMode(t *testing.T) {
	ctx := context.Background()
	svc := NewMicroloanService(nil)
	require.True(t, svc.DemoMode())

	t.Run("eligibility serves the offer ladder", func(t *testing.T) {
		eligibility, err := svc.CheckEligibility(ctx, "+1 (868) 555-0123", 1200)
		require.NoError(t, err)

		assert.True(t, eligibility.Eligible)
		assert.Equal(t, 2500.0, eligibility.MaxAmount)
		require.Len(t, eligibility.Products, 5)
		assert.Equal(t, 500.0, eligibility.Products[0].Amount)
		assert.Equal(t, 166.67, eligibility.Products[0].MonthlyPayment)
		assert.Equal(t, "3 months", eligibility.Products[0].Term)
		assert.Zero(t, eligibility.Products[0].InterestRate)
	})

	t.Run("amount above the ladder cap is ineligible", func(t *testing.T) {
		eligibility, err := svc.CheckEligibility(ctx, "8685550123", 3200)
		require.NoError(t, err)

		assert.False(t, eligibility.Eligible)
		assert.Equal(t, 2500.0, eligibility.MaxAmount)
		require.Len(t, eligibility.Products, 5)
	})

	t.Run("amount at the cap stays eligible", func(t *testing.T) {
		eligibility, err := svc.CheckEligibility(ctx, "8685550123", 2500)
		require.NoError(t, err)

		assert.True(t, eligibility.Eligible)
	})

	t.Run("apply approves with a generated loan id", func(t *testing.T) {
		app, err := svc.Apply(ctx, "8685550123", 2, 1000, nil)
		require.NoError(t, err)

		assert.Equal(t, models.LoanStatusApproved, app.Status)
		assert.True(t, strings.HasPrefix(app.LoanID, "TSTT-ML-"), "got %q", app.LoanID)
		assert.Equal(t, 333.33, app.MonthlyPayment)
	})

	t.Run("rejects short msisdn", func(t *testing.T) {
		_, err := svc.CheckEligibility(ctx, "12345", 1000)
		assert.ErrorIs(t, err, utils.ErrValidationFailed)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := svc.CheckEligibility(ctx, "8685550123", 0)
		assert.ErrorIs(t, err, utils.ErrValidationFailed)
	})
}

func TestMicroloanServiceProxy(t *testing.T) {
	ctx := context.Background()

	t.Run("maps BFF eligibility", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/bff/api/v1/clients/msisdn_8685550123", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"eligible":true,"maxAmount":1500,"currency":"TTD","products":[{"id":1,"amount":500,"term":"3 months","monthlyPayment":166.67,"interestRate":0}]}`))
		}))
		defer server.Close()

		svc := NewMicroloanService(microloan.NewClient(server.URL, "test-key"))
		require.False(t, svc.DemoMode())

		eligibility, err := svc.CheckEligibility(ctx, "(868) 555-0123", 900)
		require.NoError(t, err)
		assert.True(t, eligibility.Eligible)
		assert.Equal(t, 1500.0, eligibility.MaxAmount)
		require.Len(t, eligibility.Products, 1)
	})

	t.Run("non-2xx means ineligible", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		svc := NewMicroloanService(microloan.NewClient(server.URL, "test-key"))

		eligibility, err := svc.CheckEligibility(ctx, "8685550123", 900)
		require.NoError(t, err)
		assert.False(t, eligibility.Eligible)
		assert.Empty(t, eligibility.Products)
	})

	t.Run("network failure surfaces as unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // refuse connections

		svc := NewMicroloanService(microloan.NewClient(server.URL, "test-key"))

		_, err := svc.CheckEligibility(ctx, "8685550123", 900)
		assert.ErrorIs(t, err, utils.ErrFinancingUnavailable)
	})

	t.Run("rejected application surfaces as loan rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"insufficient tenure"}`))
		}))
		defer server.Close()

		svc := NewMicroloanService(microloan.NewClient(server.URL, "test-key"))

		_, err := svc.Apply(ctx, "8685550123", 1, 500, nil)
		assert.ErrorIs(t, err, utils.ErrLoanRejected)
	})
}
