package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
)

// TrackingClient posts phishing reports to the internal tracking endpoint.
// The workflow treats failures here as noise; the client still reports them
// so the caller can log.
type TrackingClient struct {
	httpClient *http.Client
	apiURL     string
}

func NewTrackingClient(httpClient *http.Client, apiURL string) (*TrackingClient, error) {
	if apiURL == "" {
		return nil, fmt.Errorf("report API URL is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TrackingClient{httpClient: httpClient, apiURL: apiURL}, nil
}

func (c *TrackingClient) LogReport(ctx context.Context, payload *domain.TrackingPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal tracking payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build tracking request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.NetworkError{Op: "tracking request", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("failed to log report: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return nil
}
