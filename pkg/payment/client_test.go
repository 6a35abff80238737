package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCreateCharge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/charges", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

		var req ChargeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "OM-ABCD1234", req.OrderNumber)

		json.NewEncoder(w).Encode(ChargeResponse{
			ChargeID:    "ch_123",
			OrderNumber: req.OrderNumber,
			Status:      ChargeStatusSettled,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key")
	resp, err := client.CreateCharge(context.Background(), &ChargeRequest{
		OrderNumber: "OM-ABCD1234",
		Amount:      1299,
		Currency:    "TTD",
		CardToken:   "tok_visa",
	})
	require.NoError(t, err)
	assert.Equal(t, "ch_123", resp.ChargeID)
	assert.Equal(t, ChargeStatusSettled, resp.Status)
}

func TestClientGetCharge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/charges/ch_123", r.URL.Path)
		json.NewEncoder(w).Encode(ChargeResponse{ChargeID: "ch_123", Status: ChargeStatusPending})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key")
	resp, err := client.GetCharge(context.Background(), "ch_123")
	require.NoError(t, err)
	assert.Equal(t, ChargeStatusPending, resp.Status)
}

func TestClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"upstream down"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "key")
	_, err := client.GetCharge(context.Background(), "ch_123")
	assert.Error(t, err)
}
