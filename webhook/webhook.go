// Package webhook verifies inbound Tapsilat webhook notifications. It is a
// plain stateless utility package: no client, no lifecycle.
//
// Signatures are HMAC-SHA256 over the raw payload bytes, hex encoded,
// optionally prefixed with "sha256=". Comparison is constant time.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/tapsilat/tapsilat-go/types"
)

// VerifyOption adjusts a single Verify call
type VerifyOption func(*verifyConfig)

type verifyConfig struct {
	tolerance *time.Duration
	now       func() time.Time
}

// WithTolerance rejects webhooks whose embedded timestamp differs from the
// current time by more than d, in either direction.
func WithTolerance(d time.Duration) VerifyOption {
	return func(c *verifyConfig) {
		c.tolerance = &d
	}
}

// withClock overrides the time source, for tests
func withClock(now func() time.Time) VerifyOption {
	return func(c *verifyConfig) {
		c.now = now
	}
}

// Parse deserializes a webhook payload. Unknown event types fail: the event
// enum is closed, and mapping an unrecognized event to a default would hide
// new lifecycle states from the caller.
func Parse(payload []byte) (*types.WebhookEvent, error) {
	var event types.WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse webhook payload")
	}
	return &event, nil
}

// Sign computes the hex HMAC-SHA256 signature of payload under secret.
// Webhook senders and tests use it to produce signatures; Verify uses it to
// check them.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a webhook payload against its signature and, when a
// tolerance is supplied, against the clock. Parse failures, timestamp
// violations and signature mismatches all report through the result value;
// Verify never panics and never returns an error.
func Verify(payload []byte, signature, secret string, opts ...VerifyOption) types.VerificationResult {
	cfg := verifyConfig{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	event, err := Parse(payload)
	if err != nil {
		return types.VerificationResult{IsValid: false, Error: fmt.Sprintf("invalid webhook payload: %v", err)}
	}

	if cfg.tolerance != nil {
		if err := verifyTimestamp(event.Timestamp, *cfg.tolerance, cfg.now()); err != nil {
			return types.VerificationResult{IsValid: false, Error: fmt.Sprintf("timestamp validation failed: %v", err)}
		}
	}

	if !signatureMatches(payload, signature, secret) {
		return types.VerificationResult{IsValid: false, Error: "invalid signature"}
	}

	return types.VerificationResult{IsValid: true}
}

func signatureMatches(payload []byte, signature, secret string) bool {
	signature = strings.TrimPrefix(signature, "sha256=")

	expected := Sign(payload, secret)

	got, err := hex.DecodeString(signature)
	if err != nil {
		// Not valid hex; fall back to a constant-time string compare so
		// malformed input takes the same path as a mismatch.
		return subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) == 1
	}
	want, _ := hex.DecodeString(expected)
	return hmac.Equal(got, want)
}

func verifyTimestamp(timestamp string, tolerance time.Duration, now time.Time) error {
	webhookTime, err := parseTimestamp(timestamp)
	if err != nil {
		return err
	}

	diff := now.Sub(webhookTime)
	if diff < 0 {
		diff = -diff
	}
	if diff > tolerance {
		return errors.Errorf("webhook timestamp outside tolerance: difference %s, tolerance %s", diff, tolerance)
	}
	return nil
}

// parseTimestamp accepts ISO-8601 or epoch seconds
func parseTimestamp(timestamp string) (time.Time, error) {
	if strings.Contains(timestamp, "T") {
		t, err := time.Parse(time.RFC3339, timestamp)
		if err != nil {
			return time.Time{}, errors.Wrapf(err, "invalid ISO-8601 timestamp %q", timestamp)
		}
		return t, nil
	}

	secs, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid timestamp %q", timestamp)
	}
	return time.Unix(secs, 0), nil
}
