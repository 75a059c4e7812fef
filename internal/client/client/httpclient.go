package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dkarlsson/priceportal/internal/client/models"
	"github.com/dkarlsson/priceportal/internal/common"
)

// HTTPClient talks to the portal server over its JSON API. A token obtained
// from Login can be attached to subsequent requests with SetToken.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body []byte) (*http.Request, error) {
	var r *http.Request
	var err error
	if body == nil {
		r, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	} else {
		r, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
		if err == nil {
			r.Header.Set("Content-Type", "application/json")
		}
	}
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		r.Header.Set(common.AuthHeaderName, "Bearer "+c.token)
	}
	return r, nil
}

// apiError maps an unexpected response status to one of the package
// sentinels, preserving the server message when the body carries one.
func apiError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	var sentinel error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		sentinel = ErrValidation
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusNotFound:
		sentinel = ErrNotFound
	default:
		sentinel = ErrServer
	}

	if body.Message != "" {
		return fmt.Errorf("%w: %s", sentinel, body.Message)
	}
	return sentinel
}

// Login exchanges the submitted credentials for a session token.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/login", payload)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apiError(resp)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding login response: %w", err)
	}
	if result.Token == "" {
		return "", fmt.Errorf("%w: empty token in response", ErrServer)
	}
	return result.Token, nil
}

func (c *HTTPClient) Pricelist(ctx context.Context) ([]models.PriceItem, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/pricelist", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var items []models.PriceItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decoding pricelist response: %w", err)
	}
	return items, nil
}

func (c *HTTPClient) Terms(ctx context.Context, language string) (*models.Terms, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/terms/"+language, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	doc := &models.Terms{}
	if err := json.NewDecoder(resp.Body).Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding terms response: %w", err)
	}
	return doc, nil
}

func (c *HTTPClient) Texts(ctx context.Context, language string) ([]models.Text, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/texts/"+language, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var result []models.Text
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding texts response: %w", err)
	}
	return result, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/ping", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
