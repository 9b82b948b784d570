// Package tapsilat is a Go client for the Tapsilat payment-processing API.
//
// The client is a stateless façade: every operation is a single
// request/response exchange with no retry, caching or session state. One
// long-lived connection-pooling transport backs each client and may be used
// concurrently from multiple goroutines.
package tapsilat

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strconv"
	"strings"

	stderrors "errors"

	"github.com/tapsilat/tapsilat-go/internal/httpclient"
	"github.com/tapsilat/tapsilat-go/types"
	"github.com/tapsilat/tapsilat-go/webhook"
)

// Version is the SDK version, sent in the User-Agent header
const Version = "1.0.0"

// Client is the entry point for all API operations
type Client struct {
	config Config
	http   *httpclient.Client
}

// NewClient creates a client from a validated configuration
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	http := httpclient.NewClient(
		httpclient.WithBaseURL(config.BaseURL),
		httpclient.WithTimeout(config.Timeout),
		httpclient.WithBearerToken(config.APIKey),
		httpclient.WithDefaultHeader("User-Agent", "tapsilat-go/"+Version),
	)

	return &Client{
		config: config,
		http:   http,
	}, nil
}

// NewClientFromAPIKey creates a client with default configuration
func NewClientFromAPIKey(apiKey string) (*Client, error) {
	return NewClient(NewConfig(apiKey))
}

// Orders returns the order operations view
func (c *Client) Orders() OrderService {
	return OrderService{client: c}
}

// Payments returns the payment operations view
func (c *Client) Payments() PaymentService {
	return PaymentService{client: c}
}

// Installments returns the installment operations view
func (c *Client) Installments() InstallmentService {
	return InstallmentService{client: c}
}

// Subscriptions returns the subscription operations view
func (c *Client) Subscriptions() SubscriptionService {
	return SubscriptionService{client: c}
}

// VerifyWebhook verifies an inbound webhook against the configured secret.
// Set the secret through Config.WithWebhookSecret; without one, every
// payload is rejected.
func (c *Client) VerifyWebhook(payload []byte, signature string, opts ...webhook.VerifyOption) types.VerificationResult {
	if c.config.WebhookSecret == "" {
		return types.VerificationResult{IsValid: false, Error: "webhook secret is not configured"}
	}
	return webhook.Verify(payload, signature, c.config.WebhookSecret, opts...)
}

// HealthCheck pings the API
func (c *Client) HealthCheck(ctx context.Context) (json.RawMessage, error) {
	return c.Execute(ctx, "GET", "health", nil)
}

// OrganizationSettings fetches the merchant organization settings
func (c *Client) OrganizationSettings(ctx context.Context) (json.RawMessage, error) {
	return c.Execute(ctx, "GET", "organization/settings", nil)
}

// SystemOrderStatuses fetches the system-wide order status table
func (c *Client) SystemOrderStatuses(ctx context.Context) (json.RawMessage, error) {
	return c.Execute(ctx, "GET", "system/order-statuses", nil)
}

// Execute performs one API request and returns the raw JSON response body.
// Status >= 400 becomes an APIError with the message extracted from the
// error body; a non-empty body that is not valid JSON becomes a ParseError
// carrying the raw body. Empty bodies are a ParseError here: only the
// operations documented as no-content accept them, through executeNoContent.
func (c *Client) Execute(ctx context.Context, method, endpoint string, body interface{}) (json.RawMessage, error) {
	return c.execute(ctx, method, endpoint, body, false)
}

// executeNoContent performs a request whose endpoint legitimately returns
// an empty body on success (cancel, terminate, term delete and similar).
func (c *Client) executeNoContent(ctx context.Context, method, endpoint string, body interface{}) (json.RawMessage, error) {
	return c.execute(ctx, method, endpoint, body, true)
}

func (c *Client) execute(ctx context.Context, method, endpoint string, body interface{}, allowEmpty bool) (json.RawMessage, error) {
	endpoint = strings.TrimPrefix(endpoint, "/")

	resp, err := c.http.DoRequest(ctx, method, endpoint, body)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if stderrors.As(err, &httpErr) {
			if resp != nil && resp.Body != nil {
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
			}
			return nil, apiErrorFromHTTP(httpErr)
		}
		// Connection, DNS or timeout failure: surfaced as-is.
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ParseError{Message: "failed to read response body: " + err.Error()}
	}

	trimmed := bytes.TrimSpace(bodyBytes)
	if len(trimmed) == 0 {
		if allowEmpty {
			return nil, nil
		}
		return nil, &ParseError{Message: "unexpected empty response body"}
	}

	if !json.Valid(trimmed) {
		return nil, &ParseError{Message: "response body is not valid JSON", Body: string(bodyBytes)}
	}

	return json.RawMessage(trimmed), nil
}

// unwrap parses the response envelope and decodes its data payload.
// Absence of data is the authoritative failure signal regardless of the
// success flag, which is not consistent across API versions.
func unwrap[T any](raw json.RawMessage) (*T, error) {
	var envelope types.APIResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &ParseError{Message: "failed to parse response envelope: " + err.Error(), Body: string(raw)}
	}

	if !envelope.HasData() {
		message := envelope.Message
		if message == "" && len(envelope.Errors) > 0 {
			message = strings.Join(envelope.Errors, "; ")
		}
		if message == "" {
			message = "no data in response"
		}
		return nil, &ParseError{Message: message, Body: string(raw)}
	}

	var data T
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, &ParseError{Message: "failed to parse response data: " + err.Error(), Body: string(envelope.Data)}
	}
	return &data, nil
}

// listEndpoint renders pagination and extra query parameters onto a path
func listEndpoint(path string, params types.ListParams, extra url.Values) string {
	query := url.Values{}
	if params.Page != nil {
		query.Set("page", strconv.Itoa(*params.Page))
	}
	if params.PerPage != nil {
		query.Set("per_page", strconv.Itoa(*params.PerPage))
	}
	for key, values := range extra {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
