package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
	"github.com/LCOG/outlook-report-phishing/internal/core/port"
)

const DefaultGraphBaseURL = "https://graph.microsoft.com/v1.0"

// graphErrorBody is the structured error envelope the mail API returns on
// non-success statuses.
type graphErrorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GraphFactory builds per-credential Graph clients sharing one transport.
type GraphFactory struct {
	httpClient *http.Client
	baseURL    string
}

func NewGraphFactory(httpClient *http.Client, baseURL string) *GraphFactory {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultGraphBaseURL
	}
	return &GraphFactory{httpClient: httpClient, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (f *GraphFactory) WithCredential(accessToken string) port.GraphAPI {
	return &GraphClient{
		httpClient:  f.httpClient,
		baseURL:     f.baseURL,
		accessToken: accessToken,
	}
}

// GraphClient is a thin typed wrapper over the mail REST API, bound to one
// bearer credential. Every call is a single attempt; callers decide whether
// to retry.
type GraphClient struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

func NewGraphClient(httpClient *http.Client, baseURL, accessToken string) *GraphClient {
	factory := NewGraphFactory(httpClient, baseURL)
	return factory.WithCredential(accessToken).(*GraphClient)
}

func (c *GraphClient) GetUser(ctx context.Context) (*domain.UserProfile, error) {
	var user domain.UserProfile
	if err := c.get(ctx, "/me", "", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *GraphClient) GetMessage(ctx context.Context, id, queryParams string) (*domain.Message, error) {
	var message domain.Message
	if err := c.get(ctx, "/me/messages/"+id, queryParams, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *GraphClient) ForwardMessage(ctx context.Context, id string, forward *domain.ForwardRequest) error {
	return c.post(ctx, "/me/messages/"+id+"/forward", forward, nil)
}

func (c *GraphClient) MoveMessage(ctx context.Context, id, destinationID string) (*domain.Message, error) {
	var message domain.Message
	body := map[string]string{"destinationId": destinationID}
	if err := c.post(ctx, "/me/messages/"+id+"/move", body, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *GraphClient) get(ctx context.Context, path, queryParams string, out any) error {
	return c.request(ctx, http.MethodGet, path+queryParams, nil, out)
}

func (c *GraphClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.request(ctx, http.MethodPost, path, bytes.NewReader(payload), out)
}

func (c *GraphClient) request(ctx context.Context, method, endpoint string, body io.Reader, out any) error {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.NetworkError{Op: "mail API request", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.parseError(resp)
	}

	// Forward and move may come back as 202/204 with no body. Treat an empty
	// body as an empty result rather than a parse attempt.
	if out == nil || resp.StatusCode == http.StatusNoContent || resp.ContentLength == 0 {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("failed to decode mail API response: %w", err)
	}
	return nil
}

func (c *GraphClient) parseError(resp *http.Response) error {
	var parsed graphErrorBody
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil || parsed.Error.Code == "" {
		return &domain.APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	log.WithFields(log.Fields{
		"status": resp.StatusCode,
		"code":   parsed.Error.Code,
	}).Debug("Mail API returned an error body")

	return &domain.APIError{
		StatusCode: resp.StatusCode,
		Code:       parsed.Error.Code,
		Message:    parsed.Error.Message,
	}
}
