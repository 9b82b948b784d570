package types

// SubscriptionBilling is the billing address on a subscription
type SubscriptionBilling struct {
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	ContactName string `json:"contact_name,omitempty"`
	Country     string `json:"country,omitempty"`
	VATNumber   string `json:"vat_number,omitempty"`
	ZipCode     string `json:"zip_code,omitempty"`
}

// SubscriptionUser is the billed customer on a subscription
type SubscriptionUser struct {
	ID             string `json:"id,omitempty"`
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	IdentityNumber string `json:"identity_number,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	Country        string `json:"country,omitempty"`
	ZipCode        string `json:"zip_code,omitempty"`
}

// SubscriptionOrder is one generated billing occurrence of a subscription
type SubscriptionOrder struct {
	Amount      Amount   `json:"amount,omitempty"`
	Currency    Currency `json:"currency,omitempty"`
	PaymentDate string   `json:"payment_date,omitempty"`
	PaymentURL  string   `json:"payment_url,omitempty"`
	ReferenceID string   `json:"reference_id,omitempty"`
	Status      string   `json:"status,omitempty"`
}

// SubscriptionDetail is the full subscription record
type SubscriptionDetail struct {
	Title               string              `json:"title,omitempty"`
	Amount              Amount              `json:"amount,omitempty"`
	Currency            Currency            `json:"currency,omitempty"`
	Period              int                 `json:"period,omitempty"`
	PaymentDate         int                 `json:"payment_date,omitempty"`
	PaymentStatus       string              `json:"payment_status,omitempty"`
	DueDate             string              `json:"due_date,omitempty"`
	ExternalReferenceID string              `json:"external_reference_id,omitempty"`
	IsActive            *bool               `json:"is_active,omitempty"`
	Orders              []SubscriptionOrder `json:"orders,omitempty"`
	User                *SubscriptionUser   `json:"user,omitempty"`
}

// SubscriptionListItem is the trimmed subscription shape in list responses
type SubscriptionListItem struct {
	Title               string   `json:"title,omitempty"`
	Amount              Amount   `json:"amount,omitempty"`
	Currency            Currency `json:"currency,omitempty"`
	Period              int      `json:"period,omitempty"`
	PaymentDate         int      `json:"payment_date,omitempty"`
	PaymentStatus       string   `json:"payment_status,omitempty"`
	ReferenceID         string   `json:"reference_id,omitempty"`
	ExternalReferenceID string   `json:"external_reference_id,omitempty"`
	IsActive            *bool    `json:"is_active,omitempty"`
}

// SubscriptionCreateRequest creates a recurring subscription
type SubscriptionCreateRequest struct {
	Title               string               `json:"title,omitempty"`
	Amount              Amount               `json:"amount"`
	Currency            Currency             `json:"currency"`
	Period              int                  `json:"period,omitempty"`
	Cycle               int                  `json:"cycle,omitempty"`
	PaymentDate         int                  `json:"payment_date,omitempty"`
	CardID              string               `json:"card_id,omitempty"`
	ExternalReferenceID string               `json:"external_reference_id,omitempty"`
	SuccessURL          string               `json:"success_url,omitempty"`
	FailureURL          string               `json:"failure_url,omitempty"`
	Billing             *SubscriptionBilling `json:"billing,omitempty"`
	User                *SubscriptionUser    `json:"user,omitempty"`
}

// SubscriptionCreateResponse is returned from subscription creation
type SubscriptionCreateResponse struct {
	Code             int    `json:"code,omitempty"`
	Message          string `json:"message,omitempty"`
	OrderReferenceID string `json:"order_reference_id,omitempty"`
	ReferenceID      string `json:"reference_id,omitempty"`
}

// SubscriptionGetRequest looks up a subscription by either identifier
type SubscriptionGetRequest struct {
	ExternalReferenceID string `json:"external_reference_id,omitempty"`
	ReferenceID         string `json:"reference_id,omitempty"`
}

// SubscriptionCancelRequest cancels a subscription by either identifier
type SubscriptionCancelRequest struct {
	ExternalReferenceID string `json:"external_reference_id,omitempty"`
	ReferenceID         string `json:"reference_id,omitempty"`
}

// SubscriptionRedirectRequest requests a hosted payment page URL
type SubscriptionRedirectRequest struct {
	SubscriptionID string `json:"subscription_id,omitempty"`
}

// SubscriptionRedirectResponse carries the hosted payment page URL
type SubscriptionRedirectResponse struct {
	URL string `json:"url,omitempty"`
}
