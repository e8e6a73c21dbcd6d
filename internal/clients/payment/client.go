// Package payment is the HTTP client for the upstream payment API,
// covering coupon discount lookup and payment intent creation.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/light-bringer/storefront-checkout/internal/app/cart/domain"
)

const (
	discountPath = "/api/v1/payment/discount"
	createPath   = "/api/v1/payment/create"
)

// Client talks to the payment backend. It implements both
// contracts.DiscountLookup and contracts.PaymentInitiator.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a payment API client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

type discountResponse struct {
	Discount float64 `json:"discount"`
}

type createPaymentRequest struct {
	Amount float64 `json:"amount"`
}

type createPaymentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// LookupDiscount resolves a coupon code via
// GET /api/v1/payment/discount?coupon=<code>.
// Non-2xx responses and transport failures are both errors; callers
// treat them identically to an invalid coupon.
func (c *Client) LookupDiscount(ctx context.Context, code string) (*domain.Money, error) {
	reqURL := fmt.Sprintf("%s%s?coupon=%s", c.baseURL, discountPath, url.QueryEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build discount request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("discount lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("discount lookup returned status %d: %w", resp.StatusCode, domain.ErrCouponInvalid)
	}

	var body discountResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode discount response: %w", err)
	}

	discount, err := domain.NewMoneyFromFloat(body.Discount)
	if err != nil {
		return nil, fmt.Errorf("invalid discount amount %v: %w", body.Discount, err)
	}
	return discount, nil
}

// CreatePayment initiates payment via POST /api/v1/payment/create and
// returns the provider-issued client secret.
func (c *Client) CreatePayment(ctx context.Context, amount *domain.Money) (string, error) {
	payload, err := json.Marshal(createPaymentRequest{Amount: amount.Float64()})
	if err != nil {
		return "", fmt.Errorf("failed to serialize payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createPath, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build payment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment initiation failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("payment initiation returned status %d", resp.StatusCode)
	}

	var body createPaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode payment response: %w", err)
	}
	if body.ClientSecret == "" {
		return "", fmt.Errorf("payment response missing client secret")
	}
	return body.ClientSecret, nil
}
