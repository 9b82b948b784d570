package types

// Currency is an ISO 4217 currency code. The set below covers the codes the
// API is documented to accept; unknown codes deserialize and round-trip
// untouched so that upstream additions never break unmarshaling.
type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// KnownCurrencies lists the documented currency codes
var KnownCurrencies = []Currency{CurrencyTRY, CurrencyUSD, CurrencyEUR, CurrencyGBP}

// IsKnown reports whether the code is one of the documented currencies
func (c Currency) IsKnown() bool {
	for _, known := range KnownCurrencies {
		if c == known {
			return true
		}
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}
