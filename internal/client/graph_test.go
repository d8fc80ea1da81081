package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LCOG/outlook-report-phishing/internal/core/domain"
)

func TestGetMessage_SendsBearerAndQuery(t *testing.T) {
	var gotAuth, gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(domain.Message{
			ID:      "msg-123",
			Subject: "Suspicious",
			Body:    &domain.ItemBody{Content: "Click this link!"},
		})
	}))
	defer server.Close()

	graph := NewGraphClient(server.Client(), server.URL, "token-abc")
	message, err := graph.GetMessage(context.Background(), "msg-123", "?$select=subject,body")

	require.NoError(t, err)
	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.Equal(t, "/me/messages/msg-123", gotPath)
	assert.Equal(t, "$select=subject,body", gotQuery)
	assert.Equal(t, "Click this link!", message.Body.Content)
}

func TestForwardMessage_PostsForwardBody(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody domain.ForwardRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	graph := NewGraphClient(server.Client(), server.URL, "token-abc")
	err := graph.ForwardMessage(context.Background(), "msg-123", &domain.ForwardRequest{
		Comment: "a comment",
		ToRecipients: []domain.Recipient{
			{EmailAddress: domain.EmailAddress{Name: "Service Desk", Address: "security@company.com"}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/me/messages/msg-123/forward", gotPath)
	assert.Equal(t, "a comment", gotBody.Comment)
	assert.Equal(t, "security@company.com", gotBody.ToRecipients[0].EmailAddress.Address)
}

func TestMoveMessage_PostsDestinationID(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(domain.Message{ID: "msg-123"})
	}))
	defer server.Close()

	graph := NewGraphClient(server.Client(), server.URL, "token-abc")
	message, err := graph.MoveMessage(context.Background(), "msg-123", domain.JunkFolderID)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"destinationId": "junkemail"}, gotBody)
	assert.Equal(t, "msg-123", message.ID)
}

func TestRequest_ParsesStructuredError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"ErrorItemNotFound","message":"The specified object was not found."}}`))
	}))
	defer server.Close()

	graph := NewGraphClient(server.Client(), server.URL, "token-abc")
	_, err := graph.GetMessage(context.Background(), "missing", "")

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "ErrorItemNotFound", apiErr.Code)
	assert.Equal(t, "Graph API error (ErrorItemNotFound): The specified object was not found.", err.Error())
}

func TestRequest_FallsBackToStatusTextOnUnparsableError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>upstream broke</html>"))
	}))
	defer server.Close()

	graph := NewGraphClient(server.Client(), server.URL, "token-abc")
	_, err := graph.GetMessage(context.Background(), "msg-123", "")

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.Code)
	assert.Equal(t, "Graph API error: 502 Bad Gateway", err.Error())
}

func TestRequest_NoContentIsEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	graph := NewGraphClient(server.Client(), server.URL, "token-abc")
	message, err := graph.MoveMessage(context.Background(), "msg-123", domain.JunkFolderID)

	require.NoError(t, err)
	assert.Equal(t, &domain.Message{}, message)
}

func TestRequest_TransportFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse connections

	graph := NewGraphClient(http.DefaultClient, server.URL, "token-abc")
	_, err := graph.GetUser(context.Background())

	var netErr *domain.NetworkError
	require.ErrorAs(t, err, &netErr)
}
