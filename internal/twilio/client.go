// Package twilio is a thin REST client for the vendor API surfaces used by
// the TUI: accounts, TrustHub compliance resources and messaging metadata.
package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/Mark0025/Twilio-tools/internal/config"
	"github.com/Mark0025/Twilio-tools/internal/logger"
)

// Client issues authenticated requests against the vendor REST API.
type Client struct {
	accountSID    string
	authToken     string
	apiBase       string
	trustHubBase  string
	messagingBase string
	pageLimit     int
	httpClient    *http.Client
}

// New creates a client from the application configuration.
func New(cfg *config.Config) *Client {
	return &Client{
		accountSID:    cfg.AccountSID,
		authToken:     cfg.AuthToken,
		apiBase:       cfg.APIBase,
		trustHubBase:  cfg.TrustHubBase,
		messagingBase: cfg.MessagingBase,
		pageLimit:     cfg.PageLimit,
		httpClient:    &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// AccountSID returns the configured main account SID.
func (c *Client) AccountSID() string {
	return c.accountSID
}

// apiError is the vendor's JSON error body.
type apiError struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info,omitempty"`
}

// doJSON performs one request and decodes the response body into out.
// Every request carries basic auth and a generated request ID.
func (c *Client) doJSON(ctx context.Context, method, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("failed to close response body", "error", closeErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("api error (status %d, code %d): %s", resp.StatusCode, apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// listURL builds a list endpoint URL with a page size bound.
func (c *Client) listURL(base, path string, limit int) string {
	if limit <= 0 || limit > c.pageLimit {
		limit = c.pageLimit
	}
	q := url.Values{}
	q.Set("PageSize", strconv.Itoa(limit))
	return base + path + "?" + q.Encode()
}
