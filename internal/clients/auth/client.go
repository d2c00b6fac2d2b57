package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/avilov-dev/washpay/internal/entity"
	"github.com/avilov-dev/washpay/pkg/transport"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   time.Second,
			Transport: transport.NewRequestIDRoundTripper(http.DefaultTransport),
		},
	}
}

type UserByTokenRequest struct {
	Token string `json:"accessToken"`
}

type UserByTokenResponse struct {
	ID           uuid.UUID       `json:"id"`
	Phone        string          `json:"phone"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	RewardPoints decimal.Decimal `json:"rewardPoints"`
}

// User resolves a bearer token into the user with the loyalty balance.
func (c *Client) User(ctx context.Context, token string) (entity.User, error) {
	j, err := json.Marshal(UserByTokenRequest{Token: token})
	if err != nil {
		return entity.User{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/validate", bytes.NewReader(j))
	if err != nil {
		return entity.User{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.User{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return entity.User{}, entity.ErrUnauthenticated
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return entity.User{}, fmt.Errorf("unexpected status code: %d\nbody: %s", resp.StatusCode, body)
	}

	var data UserByTokenResponse

	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return entity.User{}, fmt.Errorf("decode response: %w", err)
	}

	return entity.User{
		ID:           data.ID,
		Phone:        data.Phone,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		RewardPoints: data.RewardPoints,
	}, nil
}
