package money

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

var errInvalidMoneyJSON = errors.New("money: value must be a number or numeric string")

// Rate is a decimal in [0, 1] — every rate in the pipeline (FINRA constant,
// Lehman tier rate, fixed/preferred rate) is one (spec.md §3).
type Rate struct {
	d decimal.Decimal
}

var ZeroRate = Rate{d: decimal.Zero}

func NewRate(s string) (Rate, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rate{}, err
	}
	return Rate{d: d}, nil
}

func MustNewRate(s string) Rate {
	r, err := NewRate(s)
	if err != nil {
		panic(err)
	}
	return r
}

// InRange reports whether the rate satisfies the universal [0,1] invariant.
func (r Rate) InRange() bool {
	return r.d.GreaterThanOrEqual(decimal.Zero) && r.d.LessThanOrEqual(decimal.NewFromInt(1))
}

func (r Rate) Decimal() decimal.Decimal { return r.d }

func (r *Rate) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d, err := decimalFromJSONValue(raw)
	if err != nil {
		return err
	}
	r.d = d
	return nil
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.d.String())
}
