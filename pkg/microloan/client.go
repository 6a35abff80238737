package microloan

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

// Client is a minimal HTTP client for the carrier's microloan BFF.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	debug      bool
}

// NewClient constructs a new microloan client with sane defaults.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		debug:      os.Getenv("ENV") == "development",
	}
}

// CheckEligibility looks up the loan offers available to a subscriber.
// A non-2xx answer from the BFF means the subscriber is not eligible,
// not that the call failed.
func (c *Client) CheckEligibility(ctx context.Context, msisdn string) (*EligibilityResponse, error) {
	endpoint := fmt.Sprintf("/bff/api/v1/clients/msisdn_%s", DigitsOnly(msisdn))

	status, body, err := c.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return &EligibilityResponse{Eligible: false}, nil
	}

	var resp EligibilityResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &resp, nil
}

// Apply submits a loan application for the given subscriber and cart.
func (c *Client) Apply(ctx context.Context, req *ApplicationRequest) (*ApplicationResponse, error) {
	req.MSISDN = DigitsOnly(req.MSISDN)

	status, body, err := c.doRequest(ctx, http.MethodPost, "/bff/api/v1/clients", req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("loan application rejected: status %d: %s", status, string(body))
	}

	var resp ApplicationResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &resp, nil
}

// DigitsOnly strips everything but digits from a phone number.
func DigitsOnly(msisdn string) string {
	var b strings.Builder
	for _, r := range msisdn {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// doRequest performs the HTTP call with JSON payloads and returns the raw
// status and body so callers can map non-2xx answers to domain outcomes.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body any) (int, []byte, error) {
	var reader io.Reader
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	// Debug logging for development
	if c.debug {
		ev := log.Debug().Str("endpoint", c.baseURL+endpoint)
		if payload != nil {
			ev = ev.RawJSON("request", payload)
		}
		ev.Msg("[MICROLOAN] Outgoing request")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Debug logging for development
	if c.debug {
		log.Debug().
			Str("endpoint", endpoint).
			Int("status_code", resp.StatusCode).
			RawJSON("response", respBody).
			Msg("[MICROLOAN] Incoming response")
	}

	return resp.StatusCode, respBody, nil
}
