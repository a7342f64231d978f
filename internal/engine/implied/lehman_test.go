package implied

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dealsyte/commissions-engine/internal/money"
	"github.com/dealsyte/commissions-engine/internal/types"
)

func tier(lower string, upper *string, rate string) types.LehmanTier {
	t := types.LehmanTier{LowerBound: money.MustNew(lower), Rate: money.MustNewRate(rate)}
	if upper != nil {
		u := money.MustNew(*upper)
		t.UpperBound = &u
	}
	return t
}

func strp(s string) *string { return &s }

func TestLehman_WithHistoryAndNoGap(t *testing.T) {
	tiers := []types.LehmanTier{
		tier("0", strp("1000000"), "0.05"),
		tier("1000000", strp("5000000"), "0.04"),
		tier("5000000", nil, "0.03"),
	}
	s := lehmanStrategy{tiers: tiers, cursor: money.MustNew("4000000")}
	assert.Equal(t, "100000.00", s.Compute(money.MustNew("3000000")).String())
}

func TestLehman_GapJumpDoesNotConsumeRemaining(t *testing.T) {
	tiers := []types.LehmanTier{
		tier("0", strp("1000000"), "0.05"),
		tier("2000000", strp("5000000"), "0.04"),
	}
	s := lehmanStrategy{tiers: tiers, cursor: money.MustNew("500000")}
	// 500k@5% to reach 1M (+25000), gap-jump to 2M, then 2.5M@4% (+100000)
	assert.Equal(t, "125000.00", s.Compute(money.MustNew("3000000")).String())
}

func TestLehman_FromZeroSingleOpenTier(t *testing.T) {
	tiers := []types.LehmanTier{tier("0", nil, "0.05")}
	s := lehmanStrategy{tiers: tiers, cursor: money.Zero}
	assert.Equal(t, "50000.00", s.Compute(money.MustNew("1000000")).String())
}

func TestLehman_ExhaustedTiersAccrueZero(t *testing.T) {
	tiers := []types.LehmanTier{
		tier("0", strp("1000000"), "0.05"),
	}
	s := lehmanStrategy{tiers: tiers, cursor: money.Zero}
	// 1M@5% = 50000, remaining 500k has no tier left -> accrues at 0
	assert.Equal(t, "50000.00", s.Compute(money.MustNew("1500000")).String())
}

func TestLehman_CursorBeyondAllTiersAccruesZero(t *testing.T) {
	tiers := []types.LehmanTier{
		tier("0", strp("1000000"), "0.05"),
	}
	s := lehmanStrategy{tiers: tiers, cursor: money.MustNew("2000000")}
	assert.True(t, s.Compute(money.MustNew("500000")).IsZero())
}
