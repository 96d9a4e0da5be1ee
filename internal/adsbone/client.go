package adsbone

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"vipwatch/internal/models"
)

const (
	// DefaultBaseURL is the public adsb.one aggregator.
	DefaultBaseURL = "https://api.adsb.one"

	userAgent          = "vipwatch/1.0"
	maxBodyPreviewSize = 200 // characters of an error body shown in logs
)

// Client issues rate-limited requests against the adsb.one API. The
// aggregator allows 1 request per second; the client enforces that floor
// from the start of the previous request, regardless of response latency,
// so callers can never produce a retry storm.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	minInterval time.Duration
	lastRequest time.Time
}

// NewClient returns a client for the given base URL. An empty baseURL
// selects the public aggregator.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
		minInterval: 1 * time.Second,
	}
}

// Military fetches all currently broadcasting military aircraft.
func (c *Client) Military(ctx context.Context) (*models.Response, error) {
	return c.get(ctx, "/v2/mil")
}

// ByHex fetches specific aircraft by ICAO hex address.
func (c *Client) ByHex(ctx context.Context, codes []string) (*models.Response, error) {
	if len(codes) == 0 {
		return &models.Response{}, nil
	}
	return c.get(ctx, "/v2/hex/"+strings.Join(codes, ","))
}

func (c *Client) get(ctx context.Context, path string) (*models.Response, error) {
	if err := c.waitInterval(ctx); err != nil {
		return nil, err
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		slog.Warn("API returned non-OK status",
			"url", url,
			"status_code", resp.StatusCode,
			"response_body", truncateBodyPreview(string(body)),
		)
		return nil, fmt.Errorf("request to %s returned status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	parsed, err := models.DecodeResponse(body)
	if err != nil {
		return nil, err
	}
	if parsed.Rejected > 0 {
		slog.Warn("Dropped invalid aircraft records", "url", url, "rejected", parsed.Rejected)
	}
	return parsed, nil
}

// waitInterval blocks until the minimum inter-request interval has elapsed
// since the previous request started, or the context is cancelled.
func (c *Client) waitInterval(ctx context.Context) error {
	if !c.lastRequest.IsZero() {
		if remaining := c.minInterval - time.Since(c.lastRequest); remaining > 0 {
			timer := time.NewTimer(remaining)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	c.lastRequest = time.Now()
	return nil
}

func truncateBodyPreview(body string) string {
	if len(body) > maxBodyPreviewSize {
		return body[:maxBodyPreviewSize] + "... (truncated)"
	}
	return body
}
