// Package money provides the exact, base-10 fixed-point arithmetic the
// commissions pipeline requires. Every monetary value that crosses a stage
// boundary is a money.Amount; binary floats never appear in the pipeline.
package money

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Amount wraps decimal.Decimal so the pipeline has one vocabulary for money:
// Zero, clamping, two-decimal quantization, and JSON as a base-10 string.
type Amount struct {
	d decimal.Decimal
}

// Zero is the additive identity.
var Zero = Amount{d: decimal.Zero}

// New builds an Amount from an exact decimal string, e.g. "1000000.50".
func New(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{d: d}, nil
}

// MustNew is New without an error return, for constants and tests.
func MustNew(s string) Amount {
	a, err := New(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromDecimal wraps an already-parsed decimal.Decimal.
func FromDecimal(d decimal.Decimal) Amount { return Amount{d: d} }

// FromInt builds an exact integer Amount.
func FromInt(i int64) Amount { return Amount{d: decimal.NewFromInt(i)} }

func (a Amount) Decimal() decimal.Decimal { return a.d }

func (a Amount) Add(b Amount) Amount { return Amount{d: a.d.Add(b.d)} }
func (a Amount) Sub(b Amount) Amount { return Amount{d: a.d.Sub(b.d)} }
func (a Amount) Mul(rate Rate) Amount { return Amount{d: a.d.Mul(rate.d)} }

// Min/Max mirror the repeated min(...)/max(...) clauses throughout spec.md.
func Min(a, b Amount) Amount {
	if a.d.Cmp(b.d) <= 0 {
		return a
	}
	return b
}

func Max(a, b Amount) Amount {
	if a.d.Cmp(b.d) >= 0 {
		return a
	}
	return b
}

// ClampNonNegative enforces the "no stage produces a negative monetary
// value" invariant (spec.md §3).
func (a Amount) ClampNonNegative() Amount {
	if a.d.IsNegative() {
		return Zero
	}
	return a
}

func (a Amount) IsZero() bool     { return a.d.IsZero() }
func (a Amount) IsPositive() bool { return a.d.IsPositive() }
func (a Amount) IsNegative() bool { return a.d.IsNegative() }

func (a Amount) Cmp(b Amount) int { return a.d.Cmp(b.d) }
func (a Amount) LessThan(b Amount) bool    { return a.d.LessThan(b.d) }
func (a Amount) GreaterThan(b Amount) bool { return a.d.GreaterThan(b.d) }
func (a Amount) GreaterThanOrEqual(b Amount) bool { return a.d.GreaterThanOrEqual(b.d) }

// Percentage returns numerator/denominator expressed as a percentage
// (e.g. 0.5 and 1 yields 50), rounded at 8 internal digits before the
// caller's final Quantize. Returns zero when denominator is zero rather
// than dividing by it.
func Percentage(numerator, denominator Amount) Amount {
	if denominator.d.IsZero() {
		return Zero
	}
	return Amount{d: numerator.d.DivRound(denominator.d, 8).Mul(decimal.NewFromInt(100))}
}

// Quantize rounds to two fractional digits, half-up, for boundary output
// only — intermediate computation never calls this (spec.md §3).
func (a Amount) Quantize() Amount {
	return Amount{d: a.d.RoundHalfUp(2)}
}

// String renders the base-10, two-fractional-digit form required at the
// JSON boundary (spec.md §6).
func (a Amount) String() string {
	return a.Quantize().d.StringFixed(2)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts integers, floats, or numeric strings, exactly as
// spec.md §6 requires of all input numbers.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d, err := decimalFromJSONValue(raw)
	if err != nil {
		return err
	}
	a.d = d
	return nil
}

func decimalFromJSONValue(raw interface{}) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case string:
		return decimal.NewFromString(v)
	case json.Number:
		return decimal.NewFromString(v.String())
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Decimal{}, errInvalidMoneyJSON
	}
}
