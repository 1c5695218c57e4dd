package domain

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrUnsupportedCurrency indicates a currency code the wallet does not know.
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrInvalidAmountFormat indicates that an amount string could not be parsed.
	ErrInvalidAmountFormat = errors.New("invalid amount format")
)

// Currency identifies the unit a CurrencyValue is denominated in.
type Currency string

// Supported currencies. All of them count in 1e-8 base units (satoshis).
const (
	CurrencyBTC Currency = "BTC"
	CurrencyBCH Currency = "BCH"
	CurrencyBSV Currency = "BSV"
)

const satoshiDecimals = 8

// ParseCurrency validates a currency code, case-insensitively.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	switch c {
	case CurrencyBTC, CurrencyBCH, CurrencyBSV:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}
}

// Decimals returns the number of fractional digits of the currency.
func (c Currency) Decimals() int {
	return satoshiDecimals
}

// CurrencyValue is a signed amount of base units together with its currency.
type CurrencyValue struct {
	amount   *big.Int
	currency Currency
}

// NewCurrencyValue creates a CurrencyValue from an amount in base units.
// The amount is copied.
func NewCurrencyValue(baseUnits *big.Int, currency Currency) CurrencyValue {
	amount := new(big.Int)
	if baseUnits != nil {
		amount.Set(baseUnits)
	}
	return CurrencyValue{amount: amount, currency: currency}
}

// NewCurrencyValueFromSatoshis is a shorthand for int64 base unit amounts.
func NewCurrencyValueFromSatoshis(satoshis int64, currency Currency) CurrencyValue {
	return CurrencyValue{amount: big.NewInt(satoshis), currency: currency}
}

// ParseCurrencyValue parses a plain decimal string such as "-0.0001" into base units.
func ParseCurrencyValue(s string, currency Currency) (CurrencyValue, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return CurrencyValue{}, fmt.Errorf("%w: input string is empty", ErrInvalidAmountFormat)
	}

	r, ok := new(big.Rat).SetString(trimmed)
	if !ok {
		return CurrencyValue{}, fmt.Errorf("%w: failed to parse '%s'", ErrInvalidAmountFormat, trimmed)
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(currency.Decimals())), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))
	if !r.IsInt() {
		return CurrencyValue{}, fmt.Errorf("%w: '%s' has more than %d decimals", ErrInvalidAmountFormat, trimmed, currency.Decimals())
	}
	return CurrencyValue{amount: new(big.Int).Set(r.Num()), currency: currency}, nil
}

// Currency returns the unit of the value.
func (cv CurrencyValue) Currency() Currency {
	return cv.currency
}

// BaseUnits returns a copy of the amount in base units.
func (cv CurrencyValue) BaseUnits() *big.Int {
	if cv.amount == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(cv.amount)
}

// Sign returns -1, 0 or +1 depending on the sign of the amount.
func (cv CurrencyValue) Sign() int {
	if cv.amount == nil {
		return 0
	}
	return cv.amount.Sign()
}

// Abs returns the magnitude of the value in the same currency.
func (cv CurrencyValue) Abs() CurrencyValue {
	return CurrencyValue{amount: new(big.Int).Abs(cv.BaseUnits()), currency: cv.currency}
}

// PlainString renders the amount in whole units with all fractional digits, e.g. "0.00012000".
func (cv CurrencyValue) PlainString() string {
	decimals := cv.currency.Decimals()
	digits := new(big.Int).Abs(cv.BaseUnits()).String()
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}

	split := len(digits) - decimals
	out := digits[:split] + "." + digits[split:]
	if cv.Sign() < 0 {
		out = "-" + out
	}
	return out
}

// String returns the plain amount followed by the currency code.
func (cv CurrencyValue) String() string {
	return cv.PlainString() + " " + string(cv.currency)
}

// IsZero checks if the value represents zero.
func (cv CurrencyValue) IsZero() bool {
	return cv.Sign() == 0
}

// Equals checks if two values have the same amount and currency.
func (cv CurrencyValue) Equals(other CurrencyValue) bool {
	return cv.currency == other.currency && cv.BaseUnits().Cmp(other.BaseUnits()) == 0
}
