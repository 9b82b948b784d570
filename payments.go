package tapsilat

import (
	"context"

	"github.com/tapsilat/tapsilat-go/types"
	"github.com/tapsilat/tapsilat-go/validators"
)

// PaymentService exposes standalone payment operations. Obtain one per call
// via Client.Payments().
type PaymentService struct {
	client *Client
}

// Create validates and submits a standalone payment
func (s PaymentService) Create(ctx context.Context, request types.CreatePaymentRequest) (*types.PaymentResponse, error) {
	if err := validators.ValidateAmount(request.Amount.Float64()); err != nil {
		return nil, err
	}
	if request.Currency == "" {
		return nil, &ValidationError{Message: "currency is required"}
	}

	raw, err := s.client.Execute(ctx, "POST", "payment/create", request)
	if err != nil {
		return nil, err
	}
	return unwrap[types.PaymentResponse](raw)
}

// Get retrieves a payment by id
func (s PaymentService) Get(ctx context.Context, paymentID string) (*types.Payment, error) {
	if paymentID == "" {
		return nil, &ValidationError{Message: "payment ID cannot be empty"}
	}

	raw, err := s.client.Execute(ctx, "GET", "payment/"+paymentID, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[types.Payment](raw)
}

// List returns a page of payments
func (s PaymentService) List(ctx context.Context, params types.ListParams) (*types.PaginatedResponse[types.Payment], error) {
	raw, err := s.client.Execute(ctx, "GET", listEndpoint("payment/list", params, nil), nil)
	if err != nil {
		return nil, err
	}
	return unwrap[types.PaginatedResponse[types.Payment]](raw)
}

// Cancel cancels a pending payment and returns its updated record
func (s PaymentService) Cancel(ctx context.Context, paymentID string) (*types.Payment, error) {
	if paymentID == "" {
		return nil, &ValidationError{Message: "payment ID cannot be empty"}
	}

	raw, err := s.client.Execute(ctx, "POST", "payment/"+paymentID+"/cancel", nil)
	if err != nil {
		return nil, err
	}
	return unwrap[types.Payment](raw)
}
