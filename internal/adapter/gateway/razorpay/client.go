package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"donation-gateway/config"
	"donation-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// maxResponseBytes caps how much of a gateway response is read.
const maxResponseBytes = 1 << 20

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.PaymentGatewayClient against the Razorpay Orders
// API. Authentication is HTTP basic auth with key id / key secret.
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a Razorpay API client.
func NewClient(cfg config.RazorpayConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
		httpClient: httpClient,
		log:        log,
	}
}

// orderRequestBody is the Orders API request. payment_capture 1 means the
// gateway captures the payment automatically on authorization.
type orderRequestBody struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Receipt        string `json:"receipt"`
	PaymentCapture int    `json:"payment_capture"`
}

// apiError is the Razorpay error envelope.
type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder requests a new order from the gateway. One call, no retries.
func (c *Client) CreateOrder(ctx context.Context, req ports.GatewayOrderRequest) (*ports.GatewayOrder, error) {
	body, err := json.Marshal(orderRequestBody{
		Amount:         req.AmountMinor,
		Currency:       req.Currency,
		Receipt:        req.Receipt,
		PaymentCapture: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("razorpay order request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read razorpay response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp.StatusCode, data)
	}

	var order ports.GatewayOrder
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("decode razorpay order: %w", err)
	}

	c.log.Debug().
		Str("order_id", order.ID).
		Int64("amount", order.Amount).
		Str("status", order.Status).
		Msg("razorpay order created")

	return &order, nil
}

// decodeError surfaces the gateway's own diagnostic when it sent one.
func (c *Client) decodeError(status int, data []byte) error {
	var apiErr apiError
	if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error.Description != "" {
		return fmt.Errorf("razorpay: %s (%s, http %d)", apiErr.Error.Description, apiErr.Error.Code, status)
	}
	return fmt.Errorf("razorpay: unexpected status %d", status)
}

// Ping implements ports.HealthChecker. Any HTTP response means the gateway
// is reachable; only transport failures count as unhealthy.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Name returns the dependency name.
func (c *Client) Name() string {
	return "razorpay"
}
