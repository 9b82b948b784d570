package tapsilat

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapsilat/tapsilat-go/types"
)

func TestPaymentCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/payment/create", r.URL.Path)
			w.Write([]byte(`{
				"success": true,
				"data": {
					"payment": {"id": "pay-1", "amount": 99.90, "currency": "TRY", "status": "processing"},
					"checkout_url": "https://pay.example/pay-1"
				}
			}`))
		})

		resp, err := client.Payments().Create(context.Background(), types.CreatePaymentRequest{
			Amount:   types.NewAmount(99.90),
			Currency: types.CurrencyTRY,
		})
		require.NoError(t, err)
		assert.Equal(t, "pay-1", resp.Payment.ID)
		assert.Equal(t, types.PaymentStatusProcessing, resp.Payment.Status)
		assert.Equal(t, "https://pay.example/pay-1", resp.CheckoutURL)
	})

	t.Run("validation failures", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("request must not be sent")
		})

		_, err := client.Payments().Create(context.Background(), types.CreatePaymentRequest{
			Currency: types.CurrencyTRY,
		})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)

		_, err = client.Payments().Create(context.Background(), types.CreatePaymentRequest{
			Amount: types.NewAmount(99.90),
		})
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestPaymentGet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment/pay-1", r.URL.Path)
		w.Write([]byte(`{"success": true, "data": {"id": "pay-1", "amount": 99.90, "currency": "TRY", "status": "completed"}}`))
	})

	payment, err := client.Payments().Get(context.Background(), "pay-1")
	require.NoError(t, err)
	assert.Equal(t, types.PaymentStatusCompleted, payment.Status)

	_, err = client.Payments().Get(context.Background(), "")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestPaymentCancel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment/pay-1/cancel", r.URL.Path)
		w.Write([]byte(`{"success": true, "data": {"id": "pay-1", "status": "cancelled"}}`))
	})

	payment, err := client.Payments().Cancel(context.Background(), "pay-1")
	require.NoError(t, err)
	assert.Equal(t, types.PaymentStatusCancelled, payment.Status)
}
