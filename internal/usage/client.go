package usage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Record is one usage report sent to the analytics sink.
type Record struct {
	Model        string  `json:"model"`
	Feature      string  `json:"feature"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	ResponseTime float64 `json:"response_time"`
	DocumentSize float64 `json:"document_size,omitempty"`
}

// Client posts usage records to the analytics endpoint. An empty base URL
// disables tracking entirely.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(baseURL string, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// Enabled reports whether a sink is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Track sends a single record synchronously.
func (c *Client) Track(ctx context.Context, rec Record) error {
	if !c.Enabled() {
		return nil
	}
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal usage record: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/track-usage", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("track usage: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("track usage: status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// TrackAsync fires Track on a goroutine and swallows the error. Analytics
// must never block or fail an ingest or search call.
func (c *Client) TrackAsync(rec Record) {
	if !c.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.Track(ctx, rec); err != nil {
			c.log.Warn("usage tracking failed", "feature", rec.Feature, "error", err)
		}
	}()
}

// Close releases resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
