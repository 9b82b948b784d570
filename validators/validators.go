// Package validators holds the pure input checks the SDK runs before a
// request ever leaves the process. Everything here is stateless and does no
// I/O; failures are ValidationError values from the root package.
package validators

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tapsilat/tapsilat-go/types"
)

// ValidationError is a local input check failure. It never reaches the
// network.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Message
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ValidateGSM validates a Turkish GSM number and returns its canonical
// 90XXXXXXXXXX form. Accepted input prefixes: +90, 90, 0, or the bare
// national significant number. Whitespace and hyphens are stripped.
func ValidateGSM(gsm string) (string, error) {
	cleaned := strings.TrimSpace(gsm)
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")

	var normalized string
	switch {
	case strings.HasPrefix(cleaned, "+90"):
		normalized = strings.TrimPrefix(cleaned, "+90")
	case strings.HasPrefix(cleaned, "90"):
		normalized = strings.TrimPrefix(cleaned, "90")
	case strings.HasPrefix(cleaned, "0"):
		normalized = strings.TrimPrefix(cleaned, "0")
	default:
		normalized = cleaned
	}

	if len(normalized) != 10 {
		return "", newValidationError("GSM number must be 10 digits long")
	}
	if normalized[0] != '5' {
		return "", newValidationError("Turkish mobile numbers must start with 5")
	}
	for _, c := range normalized {
		if c < '0' || c > '9' {
			return "", newValidationError("GSM number must contain only digits")
		}
	}

	return "90" + normalized, nil
}

// ValidateAmount checks that an amount is positive and carries at most two
// fractional digits. The precision check runs on the decimal expansion of
// the value, not on float rounding artifacts, so 10.555 fails while 10.55
// passes.
func ValidateAmount(amount float64) error {
	d := decimal.NewFromFloat(amount)
	if d.Sign() <= 0 {
		return newValidationError("amount must be greater than 0")
	}
	if !d.Equal(d.Round(2)) {
		return newValidationError("amount cannot have more than 2 decimal places")
	}
	return nil
}

// ValidateInstallments checks that an installment count is within 1..12
func ValidateInstallments(count int) error {
	if count < 1 || count > 12 {
		return newValidationError("invalid installment count: %d. Valid values are 1-12", count)
	}
	return nil
}

// ValidateEmail checks the basic local@domain.tld shape: non-empty local
// part, a single @, a dot in the domain, and no embedded whitespace.
func ValidateEmail(email string) error {
	if strings.ContainsAny(email, " \t\n\r") {
		return newValidationError("invalid email format")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return newValidationError("invalid email format")
	}
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return newValidationError("invalid email format")
	}
	return nil
}

// ValidateIdentityNumber validates a Turkish identity number (TC Kimlik No):
// exactly 11 digits, first digit non-zero, and both checksum digits correct.
//
// digit10 = ((d1+d3+d5+d7+d9)*7 - (d2+d4+d6+d8)) mod 10
// digit11 = (d1+...+d10) mod 10
func ValidateIdentityNumber(identity string) error {
	identity = strings.TrimSpace(identity)

	if len(identity) != 11 {
		return newValidationError("identity number must be 11 digits")
	}

	digits := make([]int, 11)
	for i, c := range identity {
		if c < '0' || c > '9' {
			return newValidationError("identity number must contain only digits")
		}
		digits[i] = int(c - '0')
	}

	if digits[0] == 0 {
		return newValidationError("identity number cannot start with 0")
	}

	sumOdd := digits[0] + digits[2] + digits[4] + digits[6] + digits[8]
	sumEven := digits[1] + digits[3] + digits[5] + digits[7]

	checkDigit10 := (sumOdd*7 - sumEven) % 10
	if checkDigit10 < 0 {
		checkDigit10 += 10
	}
	if checkDigit10 != digits[9] {
		return newValidationError("invalid identity number checksum")
	}

	totalSum := 0
	for _, d := range digits[:10] {
		totalSum += d
	}
	if totalSum%10 != digits[10] {
		return newValidationError("invalid identity number checksum")
	}

	return nil
}

// ValidateOrderTotals cross-checks the order amount against the sum of
// basket item price*quantity. This is an opt-in policy, enabled through the
// client's StrictTotals setting; the API itself does not require it.
func ValidateOrderTotals(amount float64, items []types.BasketItem) error {
	if len(items) == 0 {
		return nil
	}

	orderAmount := decimal.NewFromFloat(amount)
	itemTotal := decimal.Zero
	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		if item.Quantity == 0 && item.QuantityFloat != 0 {
			qty = decimal.NewFromFloat(item.QuantityFloat)
		}
		itemTotal = itemTotal.Add(item.Price.Decimal.Mul(qty))
	}

	if !orderAmount.Equal(itemTotal) {
		return newValidationError("order amount %s does not match basket total %s",
			orderAmount.String(), itemTotal.String())
	}
	return nil
}
