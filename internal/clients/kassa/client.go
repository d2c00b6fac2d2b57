// Package kassa talks to the payment provider gateway: exchanging payment
// details for a one-time token and confirming payments.
package kassa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avilov-dev/washpay/internal/entity"
	"github.com/avilov-dev/washpay/pkg/transport"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	const timeout = 30 * time.Second // confirmation waits for the user

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewRequestIDRoundTripper(http.DefaultTransport),
		},
	}
}

type TokenizeRequest struct {
	ClientApplicationKey string               `json:"clientApplicationKey"`
	ShopID               string               `json:"shopId"`
	Amount               decimal.Decimal      `json:"amount"`
	PaymentMethod        entity.PaymentMethod `json:"paymentMethod"`
	Title                string               `json:"title"`
	Subtitle             string               `json:"subtitle"`
	Phone                string               `json:"phone"`
}

type TokenizeResponse struct {
	Token             string               `json:"token"`
	PaymentMethodType entity.PaymentMethod `json:"paymentMethodType"`
}

// Tokenize exchanges payment details for a one-time opaque token.
func (c *Client) Tokenize(ctx context.Context, req TokenizeRequest) (TokenizeResponse, error) {
	var resp TokenizeResponse

	err := c.post(ctx, "/tokenize", req, &resp)
	if err != nil {
		return TokenizeResponse{}, fmt.Errorf("tokenize: %w", err)
	}

	return resp, nil
}

type ConfirmRequest struct {
	ConfirmationURL      string               `json:"confirmationUrl"`
	PaymentMethodType    entity.PaymentMethod `json:"paymentMethodType"`
	ShopID               string               `json:"shopId"`
	ClientApplicationKey string               `json:"clientApplicationKey"`
}

// Confirm drives external payment confirmation to completion. A user backing
// out surfaces as a RemoteError with one of the cancellation codes.
func (c *Client) Confirm(ctx context.Context, req ConfirmRequest) error {
	err := c.post(ctx, "/confirm", req, nil)
	if err != nil {
		return fmt.Errorf("confirm payment: %w", err)
	}

	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	j, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(j))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func decodeError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read error body: %w", err)
	}

	var remote entity.RemoteError

	err = json.Unmarshal(body, &remote)
	if err != nil || remote.Code == "" {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	return &remote
}
