// Package rankapi provides a client for the external ranking/crawling
// backend.
package rankapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/logging"
)

// DefaultTimeout is the maximum time to wait for backend responses.
const DefaultTimeout = 30 * time.Second

// Client provides access to the ranking backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new ranking backend client.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: logger.Named("rankapi"),
	}
}

// GSCStatus fetches the Google Search Console connection status for the
// given account email. The parsed JSON body is returned verbatim so the
// handler can relay it unchanged.
func (c *Client) GSCStatus(ctx context.Context, email string) (json.RawMessage, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	endpoint = endpoint.JoinPath("gsc", "status")

	q := endpoint.Query()
	q.Set("email", email)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Fetching GSC status",
		zap.String("email", logging.RedactEmail(email)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call ranking backend: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Ranking backend returned error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("ranking backend returned status %d", resp.StatusCode)
	}

	// Validate that the body is JSON before relaying it verbatim.
	if !json.Valid(body) {
		return nil, fmt.Errorf("ranking backend returned invalid JSON")
	}

	return json.RawMessage(body), nil
}
