package valueobject

import (
	"strings"

	"github.com/rentals/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places stored for monetary amounts
const MoneyPlaces = 2

// MaxMoney is the largest amount a NUMERIC(10,2) column holds
var MaxMoney = decimal.RequireFromString("99999999.99")

// ParseAmount parses a user-entered monetary amount. A comma decimal
// separator is accepted and normalized to a dot. The amount must be
// strictly positive once rounded to cents.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, shared.NewValidationError("INVALID_AMOUNT", "Amount is required")
	}
	if strings.Count(s, ",") > 1 || (strings.Contains(s, ",") && strings.Contains(s, ".")) {
		return decimal.Zero, shared.NewValidationError("INVALID_AMOUNT", "Amount must be a decimal number")
	}
	s = strings.Replace(s, ",", ".", 1)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, shared.NewValidationError("INVALID_AMOUNT", "Amount must be a decimal number")
	}
	return PositiveMoney(d, "Amount")
}

// PositiveMoney rounds d to cents and checks the result lies in (0, MaxMoney]
func PositiveMoney(d decimal.Decimal, field string) (decimal.Decimal, error) {
	rounded := RoundMoney(d)
	if err := requirePositive(rounded, field); err != nil {
		return decimal.Zero, err
	}
	return rounded, nil
}

// requirePositive returns a validation error unless 0 < d <= MaxMoney
func requirePositive(d decimal.Decimal, field string) error {
	if !d.IsPositive() {
		return shared.NewValidationError("INVALID_AMOUNT", field+" must be greater than zero")
	}
	return requireWithinMax(d, field)
}

// requireWithinMax returns a validation error if d exceeds MaxMoney
func requireWithinMax(d decimal.Decimal, field string) error {
	if d.GreaterThan(MaxMoney) {
		return shared.NewValidationError("INVALID_AMOUNT", field+" cannot exceed "+MaxMoney.StringFixed(MoneyPlaces))
	}
	return nil
}

// RoundMoney rounds d half away from zero to MoneyPlaces
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}
