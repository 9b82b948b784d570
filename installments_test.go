package tapsilat

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapsilat/tapsilat-go/types"
)

func TestInstallmentCreatePlan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/installments/plans", r.URL.Path)
			w.Write([]byte(`{
				"success": true,
				"data": {
					"id": "plan-1",
					"order_id": "ord-1",
					"total_installments": 3,
					"installment_amount": 50.00,
					"currency": "TRY",
					"status": "pending",
					"installments": [
						{"id": "inst-1", "installment_number": 1, "amount": 50.00, "due_date": "2026-10-01", "status": "pending"},
						{"id": "inst-2", "installment_number": 2, "amount": 50.00, "due_date": "2026-11-01", "status": "pending"},
						{"id": "inst-3", "installment_number": 3, "amount": 50.00, "due_date": "2026-12-01", "status": "pending"}
					]
				}
			}`))
		})

		plan, err := client.Installments().CreatePlan(context.Background(), types.CreateInstallmentPlanRequest{
			OrderID:              "ord-1",
			InstallmentCount:     3,
			FirstInstallmentDate: "2026-10-01",
		})
		require.NoError(t, err)
		assert.Equal(t, "plan-1", plan.ID)
		assert.Equal(t, types.InstallmentStatusPending, plan.Status)
		require.Len(t, plan.Installments, 3)
		assert.Equal(t, 2, plan.Installments[1].InstallmentNumber)
	})

	t.Run("validation failures", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("request must not be sent")
		})

		tests := []struct {
			name    string
			request types.CreateInstallmentPlanRequest
			message string
		}{
			{
				name: "missing order id",
				request: types.CreateInstallmentPlanRequest{
					InstallmentCount:     3,
					FirstInstallmentDate: "2026-10-01",
				},
				message: "order ID",
			},
			{
				name: "zero installments",
				request: types.CreateInstallmentPlanRequest{
					OrderID:              "ord-1",
					FirstInstallmentDate: "2026-10-01",
				},
				message: "installment count",
			},
			{
				name: "too many installments",
				request: types.CreateInstallmentPlanRequest{
					OrderID:              "ord-1",
					InstallmentCount:     13,
					FirstInstallmentDate: "2026-10-01",
				},
				message: "installment count",
			},
			{
				name: "missing date",
				request: types.CreateInstallmentPlanRequest{
					OrderID:          "ord-1",
					InstallmentCount: 3,
				},
				message: "first installment date",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := client.Installments().CreatePlan(context.Background(), tt.request)
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Error(), tt.message)
			})
		}
	})
}

func TestInstallmentPlansByOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/ord-1/installments/plans", r.URL.Path)
		w.Write([]byte(`{"success": true, "data": [{"id": "plan-1", "order_id": "ord-1"}]}`))
	})

	plans, err := client.Installments().PlansByOrder(context.Background(), "ord-1")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "plan-1", plans[0].ID)
}

func TestInstallmentUpdate(t *testing.T) {
	t.Run("amount validated when present", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("request must not be sent")
		})

		bad := types.NewAmount(10.555)
		_, err := client.Installments().UpdateInstallment(context.Background(), "inst-1", types.UpdateInstallmentRequest{
			Amount: &bad,
		})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("due date only", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/installments/inst-1", r.URL.Path)
			w.Write([]byte(`{"success": true, "data": {"id": "inst-1", "installment_number": 1, "amount": 50.00, "due_date": "2026-11-15", "status": "pending"}}`))
		})

		inst, err := client.Installments().UpdateInstallment(context.Background(), "inst-1", types.UpdateInstallmentRequest{
			DueDate: "2026-11-15",
		})
		require.NoError(t, err)
		assert.Equal(t, "2026-11-15", inst.DueDate)
	})
}

func TestInstallmentCancelPlan(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/installments/plans/plan-1/cancel", r.URL.Path)
		w.Write([]byte(`{"success": true, "data": {"id": "plan-1", "status": "cancelled"}}`))
	})

	plan, err := client.Installments().CancelPlan(context.Background(), "plan-1")
	require.NoError(t, err)
	assert.Equal(t, types.InstallmentStatusCancelled, plan.Status)
	assert.True(t, plan.Status.IsTerminal())
}

func TestInstallmentRefund(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/installments/inst-1/refund", r.URL.Path)
		w.Write([]byte(`{"success": true, "data": {"id": "inst-1", "status": "refunded"}}`))
	})

	// nil amount asks for a full refund
	inst, err := client.Installments().RefundInstallment(context.Background(), "inst-1", types.RefundInstallmentRequest{
		Reason: "customer request",
	})
	require.NoError(t, err)
	assert.Equal(t, types.InstallmentStatusRefunded, inst.Status)
}
