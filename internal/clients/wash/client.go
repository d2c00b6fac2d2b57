// Package wash is the HTTP client for the car-wash backend: bay status,
// order lifecycle, pricing and promo validation.
package wash

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
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
	const timeout = 10 * time.Second

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewRequestIDRoundTripper(http.DefaultTransport),
		},
	}
}

type Credentials struct {
	ClientApplicationKey string `json:"clientApplicationKey"`
	ShopID               string `json:"shopId"`
}

// Credentials fetches the payment provider keys for this shop.
func (c *Client) Credentials(ctx context.Context) (Credentials, error) {
	var creds Credentials

	err := c.get(ctx, "/client/order/credentials", nil, &creds)
	if err != nil {
		return Credentials{}, fmt.Errorf("get credentials: %w", err)
	}

	return creds, nil
}

type CalculateDiscountRequest struct {
	Sum              decimal.Decimal `json:"sum"`
	SumBonus         decimal.Decimal `json:"sumBonus,omitempty"`
	RewardPointsUsed decimal.Decimal `json:"rewardPointsUsed"`
	PromoCode        *int64          `json:"promoCode,omitempty"`
	CarWashID        int64           `json:"carWashId"`
	CarWashDeviceID  int64           `json:"carWashDeviceId"`
	BayType          entity.BayType  `json:"bayType,omitempty"`
}

// CalculateDiscount asks the pricing endpoint for the payable breakdown.
func (c *Client) CalculateDiscount(ctx context.Context, req CalculateDiscountRequest) (entity.DiscountResult, error) {
	var result entity.DiscountResult

	err := c.post(ctx, "/client/order/calculate-discount", req, &result)
	if err != nil {
		return entity.DiscountResult{}, fmt.Errorf("calculate discount: %w", err)
	}

	return result, nil
}

type ValidatePromoCodeRequest struct {
	PromoCode string `json:"promoCode"`
	CarWashID int64  `json:"carWashId"`
}

type ValidatePromoCodeResponse struct {
	IsValid             bool   `json:"isValid"`
	PromoCodeID         *int64 `json:"promoCodeId"`
	IsPersonal          bool   `json:"isPersonal"`
	IsMarketingCampaign bool   `json:"isMarketingCampaign"`
	Message             string `json:"message"`
}

func (c *Client) ValidatePromoCode(ctx context.Context, promoCode string, carWashID int64) (ValidatePromoCodeResponse, error) {
	req := ValidatePromoCodeRequest{
		PromoCode: promoCode,
		CarWashID: carWashID,
	}

	var resp ValidatePromoCodeResponse

	err := c.post(ctx, "/order/promo/validate", req, &resp)
	if err != nil {
		return ValidatePromoCodeResponse{}, fmt.Errorf("validate promo code: %w", err)
	}

	return resp, nil
}

type PingResponse struct {
	ID           int64               `json:"id"`
	Status       entity.DeviceStatus `json:"status"`
	Type         entity.BayType      `json:"type"`
	ErrorMessage string              `json:"errorMessage"`
}

// Ping reports whether the bay is free to take an order.
func (c *Client) Ping(ctx context.Context, carWashID, carWashDeviceID int64) (PingResponse, error) {
	query := url.Values{}
	query.Set("carWashId", strconv.FormatInt(carWashID, 10))
	query.Set("carWashDeviceId", strconv.FormatInt(carWashDeviceID, 10))

	var resp PingResponse

	err := c.get(ctx, "/client/order/ping", query, &resp)
	if err != nil {
		return PingResponse{}, fmt.Errorf("ping bay: %w", err)
	}

	return resp, nil
}

type CreateOrderRequest struct {
	Sum              decimal.Decimal `json:"sum"`
	SumBonus         decimal.Decimal `json:"sumBonus"`
	RewardPointsUsed decimal.Decimal `json:"rewardPointsUsed"`
	PromoCodeID      *int64          `json:"promoCodeId,omitempty"`
	CarWashID        int64           `json:"carWashId"`
	CarWashDeviceID  int64           `json:"carWashDeviceId"`
	BayType          entity.BayType  `json:"bayType,omitempty"`
}

type CreateOrderResponse struct {
	OrderID int64               `json:"orderId"`
	Status  entity.CreateStatus `json:"status"`
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (CreateOrderResponse, error) {
	var resp CreateOrderResponse

	err := c.post(ctx, "/client/order/create", req, &resp)
	if err != nil {
		return CreateOrderResponse{}, fmt.Errorf("create order: %w", err)
	}

	return resp, nil
}

type RegisterOrderRequest struct {
	OrderID                  int64  `json:"orderId"`
	PaymentToken             string `json:"paymentToken"`
	ReceiptReturnPhoneNumber string `json:"receiptReturnPhoneNumber"`
}

type RegisterOrderResponse struct {
	Status          entity.RegisterStatus `json:"status"`
	PaymentID       string                `json:"paymentId"`
	ConfirmationURL string                `json:"confirmation_url"`
}

// RegisterOrder attaches the payment token to the order and opens a payment.
func (c *Client) RegisterOrder(ctx context.Context, req RegisterOrderRequest) (RegisterOrderResponse, error) {
	var resp RegisterOrderResponse

	err := c.post(ctx, "/client/order/register", req, &resp)
	if err != nil {
		return RegisterOrderResponse{}, fmt.Errorf("register order: %w", err)
	}

	return resp, nil
}

type OrderResponse struct {
	ID              int64                  `json:"id"`
	Status          entity.OrderStatusCode `json:"status"`
	TransactionID   string                 `json:"transactionId"`
	CarWashDeviceID int64                  `json:"carWashDeviceId"`
	Sum             decimal.Decimal        `json:"sum"`
	Cashback        decimal.Decimal        `json:"cashback"`
	CreatedAt       time.Time              `json:"createdAt"`
}

func (c *Client) Order(ctx context.Context, orderID int64) (OrderResponse, error) {
	var resp OrderResponse

	err := c.get(ctx, fmt.Sprintf("/client/order/%d", orderID), nil, &resp)
	if err != nil {
		return OrderResponse{}, fmt.Errorf("get order %d: %w", orderID, err)
	}

	return resp, nil
}

type updateOrderStatusRequest struct {
	Status entity.OrderStatusCode `json:"status"`
}

// UpdateOrderStatus is a best-effort status push, used on local cancellation.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status entity.OrderStatusCode) error {
	err := c.post(ctx, fmt.Sprintf("/client/order/status/%d", orderID), updateOrderStatusRequest{Status: status}, nil)
	if err != nil {
		return fmt.Errorf("update order %d status: %w", orderID, err)
	}

	return nil
}

// LatestCarwashes returns ids of the carwashes the user paid at recently.
func (c *Client) LatestCarwashes(ctx context.Context) ([]int64, error) {
	var ids []int64

	err := c.get(ctx, "/order/latest", nil, &ids)
	if err != nil {
		return nil, fmt.Errorf("get latest carwashes: %w", err)
	}

	return ids, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	return c.do(req, out)
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

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	token := entity.TokenFromCtx(req.Context())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

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

// decodeError turns a non-2xx reply into the structured {code, message}
// error the orchestrator maps to user texts.
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
