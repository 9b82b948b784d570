package tapsilat

import (
	"context"
	"fmt"

	"github.com/tapsilat/tapsilat-go/types"
	"github.com/tapsilat/tapsilat-go/validators"
)

// InstallmentService exposes installment plan operations. Obtain one per
// call via Client.Installments().
type InstallmentService struct {
	client *Client
}

// CreatePlan validates and creates an installment plan for an order
func (s InstallmentService) CreatePlan(ctx context.Context, request types.CreateInstallmentPlanRequest) (*types.InstallmentPlan, error) {
	if request.OrderID == "" {
		return nil, &ValidationError{Message: "order ID cannot be empty"}
	}
	if err := validators.ValidateInstallments(request.InstallmentCount); err != nil {
		return nil, err
	}
	if request.FirstInstallmentDate == "" {
		return nil, &ValidationError{Message: "first installment date cannot be empty"}
	}

	raw, err := s.client.Execute(ctx, "POST", "installments/plans", request)
	if err != nil {
		return nil, err
	}
	return unwrap[types.InstallmentPlan](raw)
}

// GetPlan retrieves an installment plan by id
func (s InstallmentService) GetPlan(ctx context.Context, planID string) (*types.InstallmentPlan, error) {
	if planID == "" {
		return nil, &ValidationError{Message: "plan ID cannot be empty"}
	}

	raw, err := s.client.Execute(ctx, "GET", "installments/plans/"+planID, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[types.InstallmentPlan](raw)
}

// PlansByOrder retrieves every installment plan attached to an order
func (s InstallmentService) PlansByOrder(ctx context.Context, orderID string) ([]types.InstallmentPlan, error) {
	if orderID == "" {
		return nil, &ValidationError{Message: "order ID cannot be empty"}
	}

	raw, err := s.client.Execute(ctx, "GET", fmt.Sprintf("orders/%s/installments/plans", orderID), nil)
	if err != nil {
		return nil, err
	}
	plans, err := unwrap[[]types.InstallmentPlan](raw)
	if err != nil {
		return nil, err
	}
	return *plans, nil
}

// UpdateInstallment updates a single installment's due date or amount
func (s InstallmentService) UpdateInstallment(ctx context.Context, installmentID string, request types.UpdateInstallmentRequest) (*types.Installment, error) {
	if installmentID == "" {
		return nil, &ValidationError{Message: "installment ID cannot be empty"}
	}
	if request.Amount != nil {
		if err := validators.ValidateAmount(request.Amount.Float64()); err != nil {
			return nil, err
		}
	}

	raw, err := s.client.Execute(ctx, "PUT", "installments/"+installmentID, request)
	if err != nil {
		return nil, err
	}
	return unwrap[types.Installment](raw)
}

// CancelPlan cancels an installment plan and returns its updated record
func (s InstallmentService) CancelPlan(ctx context.Context, planID string) (*types.InstallmentPlan, error) {
	if planID == "" {
		return nil, &ValidationError{Message: "plan ID cannot be empty"}
	}

	raw, err := s.client.Execute(ctx, "POST", "installments/plans/"+planID+"/cancel", nil)
	if err != nil {
		return nil, err
	}
	return unwrap[types.InstallmentPlan](raw)
}

// RefundInstallment refunds a single installment. A request without an
// amount asks for a full refund.
func (s InstallmentService) RefundInstallment(ctx context.Context, installmentID string, request types.RefundInstallmentRequest) (*types.Installment, error) {
	if installmentID == "" {
		return nil, &ValidationError{Message: "installment ID cannot be empty"}
	}
	if request.Amount != nil {
		if err := validators.ValidateAmount(request.Amount.Float64()); err != nil {
			return nil, err
		}
	}

	raw, err := s.client.Execute(ctx, "POST", "installments/"+installmentID+"/refund", request)
	if err != nil {
		return nil, err
	}
	return unwrap[types.Installment](raw)
}

// ListPlans returns a page of installment plans
func (s InstallmentService) ListPlans(ctx context.Context, params types.ListParams) (*types.PaginatedResponse[types.InstallmentPlan], error) {
	raw, err := s.client.Execute(ctx, "GET", listEndpoint("installments/plans", params, nil), nil)
	if err != nil {
		return nil, err
	}
	return unwrap[types.PaginatedResponse[types.InstallmentPlan]](raw)
}
