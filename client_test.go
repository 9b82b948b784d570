package tapsilat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapsilat/tapsilat-go/webhook"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(NewConfig("test-api-key").
		WithBaseURL(server.URL).
		WithTimeout(5 * time.Second))
	require.NoError(t, err)
	return client
}

func TestExecuteSendsAuthHeaders(t *testing.T) {
	var gotAuth, gotContentType, gotUserAgent string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`{"ok": true}`))
	})

	_, err := client.Execute(context.Background(), "GET", "health", nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-api-key", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "tapsilat-go/"+Version, gotUserAgent)
}

func TestExecuteJoinsBaseURLAndEndpoint(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	})

	// leading slash on the endpoint must not double up
	_, err := client.Execute(context.Background(), "GET", "/order/ref-1/status", nil)
	require.NoError(t, err)
	assert.Equal(t, "/order/ref-1/status", gotPath)
}

func TestExecuteAPIError(t *testing.T) {
	t.Run("message extracted from error body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message": "amount is invalid"}`))
		})

		_, err := client.Execute(context.Background(), "POST", "order/create", map[string]string{})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Equal(t, "amount is invalid", apiErr.Message)
	})

	t.Run("non-JSON error body falls back to generic message", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>bad gateway</html>"))
		})

		_, err := client.Execute(context.Background(), "GET", "health", nil)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Equal(t, "Unknown API error", apiErr.Message)
	})
}

func TestExecuteEmptyBodyPolicy(t *testing.T) {
	emptyHandler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	t.Run("empty body is a parse error on regular endpoints", func(t *testing.T) {
		client := newTestClient(t, emptyHandler)
		_, err := client.Execute(context.Background(), "GET", "order/ref-1", nil)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Error(), "empty response body")
	})

	t.Run("empty body is accepted on no-content endpoints", func(t *testing.T) {
		client := newTestClient(t, emptyHandler)
		err := client.Orders().Cancel(context.Background(), "ref-1")
		assert.NoError(t, err)
	})
}

func TestExecuteInvalidJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	})

	_, err := client.Execute(context.Background(), "GET", "health", nil)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Error(), "not json at all")
}

func TestExecuteTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, err := NewClient(NewConfig("key").WithBaseURL(server.URL).WithTimeout(time.Second))
	require.NoError(t, err)

	_, err = client.Execute(context.Background(), "GET", "health", nil)
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures must not masquerade as API errors")
	var parseErr *ParseError
	assert.False(t, errors.As(err, &parseErr))
}

func TestUnwrapEnvelope(t *testing.T) {
	type record struct {
		ID string `json:"id"`
	}

	t.Run("data present", func(t *testing.T) {
		out, err := unwrap[record](json.RawMessage(`{"success": true, "data": {"id": "r1"}}`))
		require.NoError(t, err)
		assert.Equal(t, "r1", out.ID)
	})

	t.Run("null data fails with message", func(t *testing.T) {
		_, err := unwrap[record](json.RawMessage(`{"success": true, "data": null, "message": "order not found"}`))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Message, "order not found")
	})

	t.Run("absent data falls back to errors list", func(t *testing.T) {
		_, err := unwrap[record](json.RawMessage(`{"success": false, "errors": ["bad currency", "bad locale"]}`))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Message, "bad currency; bad locale")
	})

	t.Run("mismatched data shape fails", func(t *testing.T) {
		_, err := unwrap[record](json.RawMessage(`{"success": true, "data": [1,2,3]}`))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}

func TestClientVerifyWebhook(t *testing.T) {
	payload := []byte(`{"event_type": "order.completed", "data": {"order_id": "ord-1"}, "timestamp": "2026-01-01T00:00:00Z"}`)

	t.Run("with configured secret", func(t *testing.T) {
		client, err := NewClient(NewConfig("key").WithWebhookSecret("whsec"))
		require.NoError(t, err)

		result := client.VerifyWebhook(payload, webhook.Sign(payload, "whsec"))
		assert.True(t, result.IsValid)

		result = client.VerifyWebhook(payload, webhook.Sign(payload, "wrong"))
		assert.False(t, result.IsValid)
	})

	t.Run("without secret everything is rejected", func(t *testing.T) {
		client, err := NewClientFromAPIKey("key")
		require.NoError(t, err)

		result := client.VerifyWebhook(payload, webhook.Sign(payload, ""))
		assert.False(t, result.IsValid)
		assert.Contains(t, result.Error, "not configured")
	})
}

func TestClientHealthCheck(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Write([]byte(`{"status": "ok"}`))
	})

	raw, err := client.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status": "ok"}`, string(raw))
}
