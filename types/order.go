package types

// OrderStatus values reported by the status_enum response field
const (
	OrderStatusPending           = "pending"
	OrderStatusProcessing        = "processing"
	OrderStatusCompleted         = "completed"
	OrderStatusFailed            = "failed"
	OrderStatusCancelled         = "cancelled"
	OrderStatusRefunded          = "refunded"
	OrderStatusPartiallyRefunded = "partially_refunded"
)

// Order is the full order record as returned by the API. Monetary fields
// arrive as strings in some API versions and numbers in others; Amount
// absorbs both.
type Order struct {
	ID             string       `json:"id,omitempty"`
	ReferenceID    string       `json:"reference_id,omitempty"`
	ConversationID string       `json:"conversation_id,omitempty"`
	Amount         Amount       `json:"amount,omitempty"`
	Total          Amount       `json:"total,omitempty"`
	PaidAmount     Amount       `json:"paid_amount,omitempty"`
	RefundedAmount Amount       `json:"refunded_amount,omitempty"`
	Currency       Currency     `json:"currency,omitempty"`
	Status         int          `json:"status,omitempty"`
	StatusEnum     string       `json:"status_enum,omitempty"`
	Description    string       `json:"description,omitempty"`
	Buyer          *Buyer       `json:"buyer,omitempty"`
	BasketItems    []BasketItem `json:"basket_items,omitempty"`
	CallbackURL    string       `json:"callback_url,omitempty"`
	CheckoutURL    string       `json:"checkout_url,omitempty"`
	CreatedAt      string       `json:"created_at,omitempty"`
	UpdatedAt      string       `json:"updated_at,omitempty"`
	Metadata       []Metadata   `json:"metadata,omitempty"`
}

// BasketItem is a purchasable line entry within an order
type BasketItem struct {
	ID               string           `json:"id,omitempty"`
	Name             string           `json:"name,omitempty"`
	Price            Amount           `json:"price,omitempty"`
	Quantity         int              `json:"quantity,omitempty"`
	QuantityFloat    float64          `json:"quantity_float,omitempty"`
	QuantityUnit     string           `json:"quantity_unit,omitempty"`
	Category1        string           `json:"category1,omitempty"`
	Category2        string           `json:"category2,omitempty"`
	ItemType         string           `json:"item_type,omitempty"`
	CommissionAmount *Amount          `json:"commission_amount,omitempty"`
	Coupon           string           `json:"coupon,omitempty"`
	CouponDiscount   *Amount          `json:"coupon_discount,omitempty"`
	Data             string           `json:"data,omitempty"`
	PaidAmount       *Amount          `json:"paid_amount,omitempty"`
	Payer            *BasketItemPayer `json:"payer,omitempty"`
	SubMerchantKey   string           `json:"sub_merchant_key,omitempty"`
	SubMerchantPrice string           `json:"sub_merchant_price,omitempty"`
}

// BasketItemPayer identifies a third party paying for a single basket item
type BasketItemPayer struct {
	Address     string `json:"address,omitempty"`
	ReferenceID string `json:"reference_id,omitempty"`
	TaxOffice   string `json:"tax_office,omitempty"`
	Title       string `json:"title,omitempty"`
	Type        string `json:"type,omitempty"`
	VAT         string `json:"vat,omitempty"`
}

// PaymentTerm is a single dated portion of an order's payment schedule
type PaymentTerm struct {
	TermReferenceID string  `json:"term_reference_id,omitempty"`
	TermSequence    int     `json:"term_sequence,omitempty"`
	Amount          *Amount `json:"amount,omitempty"`
	DueDate         string  `json:"due_date,omitempty"`
	PaidDate        string  `json:"paid_date,omitempty"`
	Required        *bool   `json:"required,omitempty"`
	Status          string  `json:"status,omitempty"`
	Data            string  `json:"data,omitempty"`
}

// CheckoutDesign customizes the hosted checkout page
type CheckoutDesign struct {
	InputBackgroundColor string `json:"input_background_color,omitempty"`
	InputTextColor       string `json:"input_text_color,omitempty"`
	LabelTextColor       string `json:"label_text_color,omitempty"`
	LeftBackgroundColor  string `json:"left_background_color,omitempty"`
	Logo                 string `json:"logo,omitempty"`
	OrderDetailHTML      string `json:"order_detail_html,omitempty"`
	PayButtonColor       string `json:"pay_button_color,omitempty"`
	RedirectURL          string `json:"redirect_url,omitempty"`
	RightBackgroundColor string `json:"right_background_color,omitempty"`
	TextColor            string `json:"text_color,omitempty"`
}

// OrderCard selects a stored card for the order
type OrderCard struct {
	CardID       string `json:"card_id"`
	CardSequence int    `json:"card_sequence"`
}

// PFSubMerchant is the payment-facilitator sub-merchant on an order
type PFSubMerchant struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name,omitempty"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	Country        string `json:"country,omitempty"`
	CountryISOCode string `json:"country_iso_code,omitempty"`
	MCC            string `json:"mcc,omitempty"`
	OrgID          string `json:"org_id,omitempty"`
	PostalCode     string `json:"postal_code,omitempty"`
	SubmerchantNIN string `json:"submerchant_nin,omitempty"`
	SubmerchantURL string `json:"submerchant_url,omitempty"`
	TerminalNo     string `json:"terminal_no,omitempty"`
}

// SubOrganization is the sub-organization an order is created under
type SubOrganization struct {
	Acquirer              string `json:"acquirer,omitempty"`
	Address               string `json:"address,omitempty"`
	ContactFirstName      string `json:"contact_first_name,omitempty"`
	ContactLastName       string `json:"contact_last_name,omitempty"`
	Currency              string `json:"currency,omitempty"`
	Email                 string `json:"email,omitempty"`
	GSMNumber             string `json:"gsm_number,omitempty"`
	IBAN                  string `json:"iban,omitempty"`
	IdentityNumber        string `json:"identity_number,omitempty"`
	LegalCompanyTitle     string `json:"legal_company_title,omitempty"`
	OrganizationName      string `json:"organization_name,omitempty"`
	SubMerchantExternalID string `json:"sub_merchant_external_id,omitempty"`
	SubMerchantKey        string `json:"sub_merchant_key,omitempty"`
	SubMerchantType       string `json:"sub_merchant_type,omitempty"`
	TaxNumber             string `json:"tax_number,omitempty"`
	TaxOffice             string `json:"tax_office,omitempty"`
}

// Submerchant splits part of the order amount to another merchant
type Submerchant struct {
	Amount              *Amount `json:"amount,omitempty"`
	MerchantReferenceID string  `json:"merchant_reference_id,omitempty"`
	OrderBasketItemID   string  `json:"order_basket_item_id,omitempty"`
}

// CreateOrderRequest creates a new order
type CreateOrderRequest struct {
	Amount              Amount           `json:"amount"`
	Currency            Currency         `json:"currency"`
	Locale              string           `json:"locale"`
	Buyer               Buyer            `json:"buyer"`
	BasketItems         []BasketItem     `json:"basket_items,omitempty"`
	BillingAddress      *BillingAddress  `json:"billing_address,omitempty"`
	ShippingAddress     *ShippingAddress `json:"shipping_address,omitempty"`
	CheckoutDesign      *CheckoutDesign  `json:"checkout_design,omitempty"`
	ConversationID      string           `json:"conversation_id,omitempty"`
	EnabledInstallments []int            `json:"enabled_installments,omitempty"`
	ExternalReferenceID string           `json:"external_reference_id,omitempty"`
	Metadata            []Metadata       `json:"metadata,omitempty"`
	OrderCards          *OrderCard       `json:"order_cards,omitempty"`
	PaidAmount          *Amount          `json:"paid_amount,omitempty"`
	PartialPayment      *bool            `json:"partial_payment,omitempty"`
	PaymentFailureURL   string           `json:"payment_failure_url,omitempty"`
	PaymentMethods      *bool            `json:"payment_methods,omitempty"`
	PaymentMode         string           `json:"payment_mode,omitempty"`
	PaymentOptions      []string         `json:"payment_options,omitempty"`
	PaymentSuccessURL   string           `json:"payment_success_url,omitempty"`
	PaymentTerms        []PaymentTerm    `json:"payment_terms,omitempty"`
	PFSubMerchant       *PFSubMerchant   `json:"pf_sub_merchant,omitempty"`
	RedirectFailureURL  string           `json:"redirect_failure_url,omitempty"`
	RedirectSuccessURL  string           `json:"redirect_success_url,omitempty"`
	SubOrganization     *SubOrganization `json:"sub_organization,omitempty"`
	Submerchants        []Submerchant    `json:"submerchants,omitempty"`
	TaxAmount           *Amount          `json:"tax_amount,omitempty"`
	ThreeDForce         *bool            `json:"three_d_force,omitempty"`
}

// CreateOrderResponse is returned from order creation
type CreateOrderResponse struct {
	OrderID     string `json:"order_id,omitempty"`
	ReferenceID string `json:"reference_id,omitempty"`
	CheckoutURL string `json:"checkout_url,omitempty"`
}

// RefundOrderRequest refunds part or all of an order
type RefundOrderRequest struct {
	Amount             Amount `json:"amount"`
	ReferenceID        string `json:"reference_id"`
	OrderItemID        string `json:"order_item_id,omitempty"`
	OrderItemPaymentID string `json:"order_item_payment_id,omitempty"`
}

// OrderAccountingRequest triggers accounting export for an order
type OrderAccountingRequest struct {
	OrderReferenceID string `json:"order_reference_id"`
}

// OrderPostAuthRequest captures a previously authorized amount
type OrderPostAuthRequest struct {
	Amount      Amount `json:"amount"`
	ReferenceID string `json:"reference_id"`
}

// PaymentTermCreateRequest adds a payment term to an existing order
type PaymentTermCreateRequest struct {
	OrderID         string `json:"order_id"`
	TermReferenceID string `json:"term_reference_id"`
	Amount          Amount `json:"amount"`
	DueDate         string `json:"due_date"`
	TermSequence    int    `json:"term_sequence"`
	Required        bool   `json:"required"`
	Status          string `json:"status"`
	Data            string `json:"data,omitempty"`
	PaidDate        string `json:"paid_date,omitempty"`
}

// PaymentTermUpdateRequest updates an existing payment term
type PaymentTermUpdateRequest struct {
	TermReferenceID string  `json:"term_reference_id"`
	Amount          *Amount `json:"amount,omitempty"`
	DueDate         string  `json:"due_date,omitempty"`
	PaidDate        string  `json:"paid_date,omitempty"`
	Required        *bool   `json:"required,omitempty"`
	Status          string  `json:"status,omitempty"`
	TermSequence    *int    `json:"term_sequence,omitempty"`
}

// TermRefundRequest refunds a single payment term
type TermRefundRequest struct {
	TermID        string `json:"term_id"`
	Amount        Amount `json:"amount"`
	ReferenceID   string `json:"reference_id,omitempty"`
	TermPaymentID string `json:"term_payment_id,omitempty"`
}
