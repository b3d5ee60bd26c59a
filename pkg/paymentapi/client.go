// Package paymentapi is the client for the third-party payment
// processor. It supports a mock mode so the rest of the system can run
// without processor credentials.
package paymentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Charge statuses reported by the processor.
const (
	StatusSucceeded = "succeeded"
	StatusDeclined  = "declined"
)

// Client represents a payment processor API client
type Client struct {
	BaseURL string
	APIKey  string
	MockAPI bool
	client  *http.Client
}

// ChargeRequest is a one-off charge instruction.
type ChargeRequest struct {
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Reference   string  `json:"reference"`
	Description string  `json:"description"`
}

// ChargeResponse is the processor's answer to a charge.
type ChargeResponse struct {
	ProcessorRef string    `json:"processorRef"`
	Status       string    `json:"status"`
	ChargedAt    time.Time `json:"chargedAt"`
}

// NewClient creates a new payment processor client
func NewClient(baseURL, apiKey string, mockAPI bool) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		MockAPI: mockAPI,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Charge submits a charge. It does not retry; a processor failure is
// returned to the caller as-is.
func (c *Client) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResponse, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("charge amount must be positive, got %v", req.Amount)
	}
	if c.MockAPI {
		return c.mockCharge(req)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/charges", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("payment processor returned status %d", resp.StatusCode)
	}

	var charge ChargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&charge); err != nil {
		return nil, err
	}
	return &charge, nil
}

// mockCharge approves every charge without contacting the processor.
func (c *Client) mockCharge(req *ChargeRequest) (*ChargeResponse, error) {
	return &ChargeResponse{
		ProcessorRef: "ch_mock_" + uuid.NewString(),
		Status:       StatusSucceeded,
		ChargedAt:    time.Now(),
	}, nil
}
