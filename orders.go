package tapsilat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/tapsilat/tapsilat-go/types"
	"github.com/tapsilat/tapsilat-go/validators"
)

// OrderService exposes order operations. It is a lightweight view over the
// shared client; obtain one per call via Client.Orders().
type OrderService struct {
	client *Client
}

// Create validates and submits a new order. A conversation id is generated
// when the request does not carry one, and the buyer's GSM number is
// normalized to canonical form before the request is sent.
func (s OrderService) Create(ctx context.Context, request types.CreateOrderRequest) (*types.CreateOrderResponse, error) {
	if err := s.validateCreateRequest(&request); err != nil {
		return nil, err
	}

	if request.ConversationID == "" {
		request.ConversationID = uuid.NewString()
	}

	raw, err := s.client.Execute(ctx, "POST", "order/create", request)
	if err != nil {
		return nil, err
	}
	return unwrap[types.CreateOrderResponse](raw)
}

// Get retrieves an order by reference id
func (s OrderService) Get(ctx context.Context, referenceID string) (*types.Order, error) {
	raw, err := s.client.Execute(ctx, "GET", "order/"+referenceID, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[types.Order](raw)
}

// GetByConversationID retrieves an order by its conversation id
func (s OrderService) GetByConversationID(ctx context.Context, conversationID string) (*types.Order, error) {
	raw, err := s.client.Execute(ctx, "GET", "order/conversation/"+conversationID, nil)
	if err != nil {
		return nil, err
	}
	return unwrap[types.Order](raw)
}

// Status fetches the current status of an order
func (s OrderService) Status(ctx context.Context, referenceID string) (json.RawMessage, error) {
	return s.client.Execute(ctx, "GET", fmt.Sprintf("order/%s/status", referenceID), nil)
}

// Transactions lists the payment transactions recorded against an order
func (s OrderService) Transactions(ctx context.Context, referenceID string) (json.RawMessage, error) {
	return s.client.Execute(ctx, "GET", fmt.Sprintf("order/%s/transactions", referenceID), nil)
}

// PaymentDetails fetches payment details for an order. When conversationID
// is set the lookup goes through the conversation-scoped endpoint.
func (s OrderService) PaymentDetails(ctx context.Context, referenceID, conversationID string) (json.RawMessage, error) {
	if conversationID != "" {
		payload := map[string]string{
			"conversation_id": conversationID,
			"reference_id":    referenceID,
		}
		return s.client.Execute(ctx, "POST", "order/payment-details", payload)
	}
	return s.client.Execute(ctx, "GET", fmt.Sprintf("order/%s/payment-details", referenceID), nil)
}

// List returns a page of orders
func (s OrderService) List(ctx context.Context, params types.ListParams) (*types.PaginatedResponse[types.Order], error) {
	return s.list(ctx, params, nil)
}

// ListByBuyer returns a page of orders belonging to one buyer
func (s OrderService) ListByBuyer(ctx context.Context, buyerID string, params types.ListParams) (*types.PaginatedResponse[types.Order], error) {
	extra := url.Values{}
	extra.Set("buyer_id", buyerID)
	return s.list(ctx, params, extra)
}

func (s OrderService) list(ctx context.Context, params types.ListParams, extra url.Values) (*types.PaginatedResponse[types.Order], error) {
	raw, err := s.client.Execute(ctx, "GET", listEndpoint("order/list", params, extra), nil)
	if err != nil {
		return nil, err
	}
	return unwrap[types.PaginatedResponse[types.Order]](raw)
}

// Cancel cancels an order. The endpoint may answer with an empty body.
func (s OrderService) Cancel(ctx context.Context, referenceID string) error {
	payload := map[string]string{"reference_id": referenceID}
	_, err := s.client.executeNoContent(ctx, "POST", "order/cancel", payload)
	return err
}

// Refund refunds part or all of an order
func (s OrderService) Refund(ctx context.Context, request types.RefundOrderRequest) (json.RawMessage, error) {
	if err := validators.ValidateAmount(request.Amount.Float64()); err != nil {
		return nil, err
	}
	return s.client.Execute(ctx, "POST", "order/refund", request)
}

// RefundAll refunds every item in an order
func (s OrderService) RefundAll(ctx context.Context, referenceID string) (json.RawMessage, error) {
	payload := map[string]string{"reference_id": referenceID}
	return s.client.Execute(ctx, "POST", "order/refund-all", payload)
}

// CheckoutURL fetches the order and returns its hosted checkout URL
func (s OrderService) CheckoutURL(ctx context.Context, referenceID string) (string, error) {
	order, err := s.Get(ctx, referenceID)
	if err != nil {
		return "", err
	}
	if order.CheckoutURL == "" {
		return "", &ParseError{Message: "checkout URL not found on order " + referenceID}
	}
	return order.CheckoutURL, nil
}

// ManualCallback re-triggers the order callback. No-content on success.
func (s OrderService) ManualCallback(ctx context.Context, referenceID, conversationID string) error {
	payload := map[string]string{"reference_id": referenceID}
	if conversationID != "" {
		payload["conversation_id"] = conversationID
	}
	_, err := s.client.executeNoContent(ctx, "POST", "order/manual-callback", payload)
	return err
}

// Terminate terminates an order. No-content on success.
func (s OrderService) Terminate(ctx context.Context, referenceID string) error {
	payload := map[string]string{"reference_id": referenceID}
	_, err := s.client.executeNoContent(ctx, "POST", "order/terminate", payload)
	return err
}

// RelatedUpdate links an order to a related order. No-content on success.
func (s OrderService) RelatedUpdate(ctx context.Context, referenceID, relatedReferenceID string) error {
	payload := map[string]string{
		"reference_id":         referenceID,
		"related_reference_id": relatedReferenceID,
	}
	_, err := s.client.executeNoContent(ctx, "POST", "order/related-update", payload)
	return err
}

// Accounting triggers accounting export for an order
func (s OrderService) Accounting(ctx context.Context, request types.OrderAccountingRequest) (json.RawMessage, error) {
	return s.client.Execute(ctx, "POST", "order/accounting", request)
}

// PostAuth captures a previously authorized amount
func (s OrderService) PostAuth(ctx context.Context, request types.OrderPostAuthRequest) (json.RawMessage, error) {
	if err := validators.ValidateAmount(request.Amount.Float64()); err != nil {
		return nil, err
	}
	return s.client.Execute(ctx, "POST", "order/postauth", request)
}

// Submerchants returns a page of the organization's sub-merchants
func (s OrderService) Submerchants(ctx context.Context, params types.ListParams) (json.RawMessage, error) {
	return s.client.Execute(ctx, "GET", listEndpoint("order/submerchants", params, nil), nil)
}

// CreateTerm adds a payment term to an existing order
func (s OrderService) CreateTerm(ctx context.Context, request types.PaymentTermCreateRequest) (json.RawMessage, error) {
	if err := validators.ValidateAmount(request.Amount.Float64()); err != nil {
		return nil, err
	}
	return s.client.Execute(ctx, "POST", "order/term", request)
}

// UpdateTerm updates an existing payment term
func (s OrderService) UpdateTerm(ctx context.Context, request types.PaymentTermUpdateRequest) (json.RawMessage, error) {
	if request.Amount != nil {
		if err := validators.ValidateAmount(request.Amount.Float64()); err != nil {
			return nil, err
		}
	}
	return s.client.Execute(ctx, "POST", "order/term/update", request)
}

// DeleteTerm removes a payment term from an order. No-content on success.
func (s OrderService) DeleteTerm(ctx context.Context, orderID, termReferenceID string) error {
	payload := map[string]string{
		"order_id":          orderID,
		"term_reference_id": termReferenceID,
	}
	_, err := s.client.executeNoContent(ctx, "POST", "order/term/delete", payload)
	return err
}

// RefundTerm refunds a single payment term
func (s OrderService) RefundTerm(ctx context.Context, request types.TermRefundRequest) (json.RawMessage, error) {
	if err := validators.ValidateAmount(request.Amount.Float64()); err != nil {
		return nil, err
	}
	return s.client.Execute(ctx, "POST", "order/term/refund", request)
}

// TerminateTerm terminates a payment term. No-content on success.
func (s OrderService) TerminateTerm(ctx context.Context, termReferenceID, reason string) error {
	payload := map[string]string{"term_reference_id": termReferenceID}
	if reason != "" {
		payload["reason"] = reason
	}
	_, err := s.client.executeNoContent(ctx, "POST", "order/term/terminate", payload)
	return err
}

// Term fetches a single payment term
func (s OrderService) Term(ctx context.Context, termReferenceID string) (json.RawMessage, error) {
	return s.client.Execute(ctx, "GET", "order/term/"+termReferenceID, nil)
}

// validateCreateRequest runs every local check before the request leaves
// the process. Contact fields are optional at the type level; when present
// they must be well-formed. The GSM number is rewritten in canonical form.
func (s OrderService) validateCreateRequest(request *types.CreateOrderRequest) error {
	if err := validators.ValidateAmount(request.Amount.Float64()); err != nil {
		return err
	}
	if request.Currency == "" {
		return &ValidationError{Message: "currency is required"}
	}
	if request.Buyer.Name == "" || request.Buyer.Surname == "" {
		return &ValidationError{Message: "buyer name and surname are required"}
	}
	if request.Buyer.Email != "" {
		if err := validators.ValidateEmail(request.Buyer.Email); err != nil {
			return err
		}
	}
	if request.Buyer.GSMNumber != "" {
		normalized, err := validators.ValidateGSM(request.Buyer.GSMNumber)
		if err != nil {
			return err
		}
		request.Buyer.GSMNumber = normalized
	}
	if request.Buyer.IdentityNumber != "" {
		if err := validators.ValidateIdentityNumber(request.Buyer.IdentityNumber); err != nil {
			return err
		}
	}
	if s.client.config.StrictTotals {
		if err := validators.ValidateOrderTotals(request.Amount.Float64(), request.BasketItems); err != nil {
			return err
		}
	}
	return nil
}
