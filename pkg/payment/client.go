package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Client is a minimal HTTP client for the card payment gateway.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	debug      bool
}

// NewClient constructs a new payment gateway client with sane defaults.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		debug:      os.Getenv("ENV") == "development",
	}
}

// CreateCharge submits a card charge for authorization.
func (c *Client) CreateCharge(ctx context.Context, req *ChargeRequest) (*ChargeResponse, error) {
	var resp ChargeResponse
	if err := c.doRequest(ctx, http.MethodPost, "/v1/charges", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCharge fetches the current status of a previously created charge.
func (c *Client) GetCharge(ctx context.Context, chargeID string) (*ChargeResponse, error) {
	var resp ChargeResponse
	if err := c.doRequest(ctx, http.MethodGet, "/v1/charges/"+chargeID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doRequest performs the HTTP call with JSON payloads and decodes the JSON
// response into result.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body any, result any) error {
	var reader io.Reader
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	// Debug logging for development
	if c.debug {
		ev := log.Debug().Str("endpoint", c.baseURL+endpoint)
		if payload != nil {
			ev = ev.RawJSON("request", payload)
		}
		ev.Msg("[PAYMENT] Outgoing request")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// Debug logging for development
	if c.debug {
		log.Debug().
			Str("endpoint", endpoint).
			Int("status_code", resp.StatusCode).
			RawJSON("response", respBody).
			Msg("[PAYMENT] Incoming response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("payment gateway error: status %d: %s", resp.StatusCode, string(respBody))
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
