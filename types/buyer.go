package types

// Buyer identifies the paying customer on an order. Contact fields vary in
// optionality across API versions, so every contact field is optional at the
// type level; required-for-operation rules live in the validators package.
type Buyer struct {
	ID                  string `json:"id,omitempty"`
	Name                string `json:"name"`
	Surname             string `json:"surname"`
	Email               string `json:"email,omitempty"`
	GSMNumber           string `json:"gsm_number,omitempty"`
	IdentityNumber      string `json:"identity_number,omitempty"`
	LastLoginDate       string `json:"last_login_date,omitempty"`
	RegistrationDate    string `json:"registration_date,omitempty"`
	RegistrationAddress string `json:"registration_address,omitempty"`
	IP                  string `json:"ip,omitempty"`
	City                string `json:"city,omitempty"`
	Country             string `json:"country,omitempty"`
	ZipCode             string `json:"zip_code,omitempty"`
}

// BillingAddress is the invoice address attached to an order
type BillingAddress struct {
	Address      string `json:"address,omitempty"`
	BillingType  string `json:"billing_type,omitempty"`
	Citizenship  string `json:"citizenship,omitempty"`
	City         string `json:"city,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Country      string `json:"country,omitempty"`
	District     string `json:"district,omitempty"`
	TaxOffice    string `json:"tax_office,omitempty"`
	Title        string `json:"title,omitempty"`
	VATNumber    string `json:"vat_number,omitempty"`
	ZipCode      string `json:"zip_code,omitempty"`
}

// ShippingAddress is the delivery address attached to an order
type ShippingAddress struct {
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	Country      string `json:"country,omitempty"`
	ShippingDate string `json:"shipping_date,omitempty"`
	TrackingCode string `json:"tracking_code,omitempty"`
	ZipCode      string `json:"zip_code,omitempty"`
}
