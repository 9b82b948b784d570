package types

import (
	"encoding/json"
	"fmt"
)

// WebhookEventType is the closed set of lifecycle events delivered by
// webhooks. Unknown event-type strings fail deserialization rather than
// silently mapping to a default.
type WebhookEventType string

const (
	WebhookEventOrderCompleted       WebhookEventType = "order.completed"
	WebhookEventOrderFailed          WebhookEventType = "order.failed"
	WebhookEventOrderCancelled       WebhookEventType = "order.cancelled"
	WebhookEventOrderRefunded        WebhookEventType = "order.refunded"
	WebhookEventPaymentCompleted     WebhookEventType = "payment.completed"
	WebhookEventPaymentFailed        WebhookEventType = "payment.failed"
	WebhookEventInstallmentCompleted WebhookEventType = "installment.completed"
	WebhookEventInstallmentFailed    WebhookEventType = "installment.failed"
)

var webhookEventTypes = map[WebhookEventType]struct{}{
	WebhookEventOrderCompleted:       {},
	WebhookEventOrderFailed:          {},
	WebhookEventOrderCancelled:       {},
	WebhookEventOrderRefunded:        {},
	WebhookEventPaymentCompleted:     {},
	WebhookEventPaymentFailed:        {},
	WebhookEventInstallmentCompleted: {},
	WebhookEventInstallmentFailed:    {},
}

// UnmarshalJSON enforces the closed enum
func (t *WebhookEventType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid event type: %w", err)
	}
	if _, ok := webhookEventTypes[WebhookEventType(s)]; !ok {
		return fmt.Errorf("unknown webhook event type %q", s)
	}
	*t = WebhookEventType(s)
	return nil
}

func (t WebhookEventType) String() string {
	return string(t)
}

// WebhookData is the payload embedded in a webhook event
type WebhookData struct {
	OrderID       string                     `json:"order_id,omitempty"`
	PaymentID     string                     `json:"payment_id,omitempty"`
	InstallmentID string                     `json:"installment_id,omitempty"`
	Amount        *Amount                    `json:"amount,omitempty"`
	Currency      Currency                   `json:"currency,omitempty"`
	Status        string                     `json:"status,omitempty"`
	Metadata      map[string]json.RawMessage `json:"metadata,omitempty"`
}

// WebhookEvent is an inbound webhook notification. Timestamp is either an
// ISO-8601 string or epoch seconds, as sent by the gateway.
type WebhookEvent struct {
	EventType WebhookEventType `json:"event_type"`
	Data      WebhookData      `json:"data"`
	Timestamp string           `json:"timestamp"`
	Signature string           `json:"signature,omitempty"`
}

// VerificationResult reports the outcome of webhook verification. Parse
// failures, timestamp violations and signature mismatches all land here
// with IsValid false and a human-readable Error.
type VerificationResult struct {
	IsValid bool
	Error   string
}
