package tapsilat

import (
	"context"

	"github.com/tapsilat/tapsilat-go/types"
	"github.com/tapsilat/tapsilat-go/validators"
)

// SubscriptionService exposes subscription operations. Obtain one per call
// via Client.Subscriptions().
type SubscriptionService struct {
	client *Client
}

// Create validates and submits a recurring subscription
func (s SubscriptionService) Create(ctx context.Context, request types.SubscriptionCreateRequest) (*types.SubscriptionCreateResponse, error) {
	if err := validators.ValidateAmount(request.Amount.Float64()); err != nil {
		return nil, err
	}
	if request.Currency == "" {
		return nil, &ValidationError{Message: "currency is required"}
	}
	if request.User != nil {
		if request.User.Email != "" {
			if err := validators.ValidateEmail(request.User.Email); err != nil {
				return nil, err
			}
		}
		if request.User.Phone != "" {
			normalized, err := validators.ValidateGSM(request.User.Phone)
			if err != nil {
				return nil, err
			}
			request.User.Phone = normalized
		}
	}

	raw, err := s.client.Execute(ctx, "POST", "subscription/create", request)
	if err != nil {
		return nil, err
	}
	return unwrap[types.SubscriptionCreateResponse](raw)
}

// Get retrieves subscription details by reference or external reference id
func (s SubscriptionService) Get(ctx context.Context, request types.SubscriptionGetRequest) (*types.SubscriptionDetail, error) {
	if request.ReferenceID == "" && request.ExternalReferenceID == "" {
		return nil, &ValidationError{Message: "reference ID or external reference ID is required"}
	}

	raw, err := s.client.Execute(ctx, "POST", "subscription", request)
	if err != nil {
		return nil, err
	}
	return unwrap[types.SubscriptionDetail](raw)
}

// Cancel cancels a subscription. The endpoint may answer with an empty body.
func (s SubscriptionService) Cancel(ctx context.Context, request types.SubscriptionCancelRequest) error {
	if request.ReferenceID == "" && request.ExternalReferenceID == "" {
		return &ValidationError{Message: "reference ID or external reference ID is required"}
	}

	_, err := s.client.executeNoContent(ctx, "POST", "subscription/cancel", request)
	return err
}

// List returns a page of subscriptions
func (s SubscriptionService) List(ctx context.Context, params types.ListParams) (*types.PaginatedResponse[types.SubscriptionListItem], error) {
	raw, err := s.client.Execute(ctx, "GET", listEndpoint("subscription/list", params, nil), nil)
	if err != nil {
		return nil, err
	}
	return unwrap[types.PaginatedResponse[types.SubscriptionListItem]](raw)
}

// Redirect returns the hosted payment page URL for a subscription
func (s SubscriptionService) Redirect(ctx context.Context, request types.SubscriptionRedirectRequest) (*types.SubscriptionRedirectResponse, error) {
	raw, err := s.client.Execute(ctx, "POST", "subscription/redirect", request)
	if err != nil {
		return nil, err
	}
	return unwrap[types.SubscriptionRedirectResponse](raw)
}
