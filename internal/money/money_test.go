package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_QuantizeHalfUp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"40000", "40000.00"},
		{"100000.005", "100000.01"},
		{"100000.004", "100000.00"},
		{"0", "0.00"},
	}
	for _, c := range cases {
		a := MustNew(c.in)
		assert.Equal(t, c.want, a.String())
	}
}

func TestAmount_ClampNonNegative(t *testing.T) {
	a := MustNew("-5.00")
	assert.True(t, a.ClampNonNegative().IsZero())
	assert.Equal(t, "0.00", a.ClampNonNegative().String())
}

func TestAmount_MinMax(t *testing.T) {
	a := MustNew("10")
	b := MustNew("20")
	assert.True(t, Min(a, b).Cmp(a) == 0)
	assert.True(t, Max(a, b).Cmp(b) == 0)
}

func TestAmount_UnmarshalJSON_AcceptsIntFloatString(t *testing.T) {
	var ints, floats, strs Amount
	require.NoError(t, json.Unmarshal([]byte(`2000000`), &ints))
	require.NoError(t, json.Unmarshal([]byte(`2000000.5`), &floats))
	require.NoError(t, json.Unmarshal([]byte(`"2000000.50"`), &strs))

	assert.Equal(t, "2000000.00", ints.String())
	assert.Equal(t, "2000000.50", floats.String())
	assert.Equal(t, "2000000.50", strs.String())
}

func TestAmount_MarshalJSON_IsQuantizedString(t *testing.T) {
	a := MustNew("123.4")
	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `"123.40"`, string(out))
}

func TestRate_InRange(t *testing.T) {
	assert.True(t, MustNewRate("0").InRange())
	assert.True(t, MustNewRate("1").InRange())
	assert.True(t, MustNewRate("0.04732").InRange())
	assert.False(t, MustNewRate("1.01").InRange())
	assert.False(t, MustNewRate("-0.01").InRange())
}
