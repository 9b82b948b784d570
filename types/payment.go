package types

// PaymentStatus is the lifecycle state of a standalone payment
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
)

// Payment is a standalone payment record
type Payment struct {
	ID          string        `json:"id"`
	Amount      Amount        `json:"amount"`
	Currency    Currency      `json:"currency"`
	Status      PaymentStatus `json:"status"`
	Description string        `json:"description,omitempty"`
	CustomerID  string        `json:"customer_id,omitempty"`
	CreatedAt   string        `json:"created_at,omitempty"`
	UpdatedAt   string        `json:"updated_at,omitempty"`
}

// CreatePaymentRequest creates a standalone payment
type CreatePaymentRequest struct {
	Amount      Amount   `json:"amount"`
	Currency    Currency `json:"currency"`
	Description string   `json:"description,omitempty"`
	CustomerID  string   `json:"customer_id,omitempty"`
	CallbackURL string   `json:"callback_url,omitempty"`
}

// PaymentResponse is returned from payment creation
type PaymentResponse struct {
	Payment     Payment `json:"payment"`
	CheckoutURL string  `json:"checkout_url,omitempty"`
}
