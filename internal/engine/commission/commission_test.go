package commission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dealsyte/commissions-engine/internal/money"
)

func TestStandard_GraduatesOnPositiveResidual(t *testing.T) {
	res := Standard(money.MustNew("5000"), false)
	assert.Equal(t, "5000.00", res.FinalisCommissions.String())
	assert.True(t, res.EnteredCommissionsMode)
}

func TestStandard_StaysPrepaymentModeWhenResidualZero(t *testing.T) {
	res := Standard(money.Zero, false)
	assert.False(t, res.EnteredCommissionsMode)
}

func TestStandard_RemainsInModeOncePriorTrue(t *testing.T) {
	res := Standard(money.Zero, true)
	assert.True(t, res.EnteredCommissionsMode)
}

func TestPAYG_EnteringCommissionsMode(t *testing.T) {
	res := PAYG(money.MustNew("5000"), money.MustNew("10000"), money.MustNew("8000"), false)
	assert.Equal(t, "2000.00", res.ARRContribution.String())
	assert.Equal(t, "3000.00", res.Excess.String())
	assert.True(t, res.EnteredCommissionsMode)
	assert.Equal(t, "10000.00", res.AccumulatedAfter.String())
}

func TestPAYG_ExactHitCountsAsEntered(t *testing.T) {
	res := PAYG(money.MustNew("2000"), money.MustNew("10000"), money.MustNew("8000"), false)
	assert.True(t, res.EnteredCommissionsMode)
	assert.True(t, res.Excess.IsZero())
}

func TestPAYG_BelowTargetStaysOut(t *testing.T) {
	res := PAYG(money.MustNew("1000"), money.MustNew("10000"), money.MustNew("8000"), false)
	assert.False(t, res.EnteredCommissionsMode)
	assert.Equal(t, "1000.00", res.ARRContribution.String())
	assert.True(t, res.Excess.IsZero())
}

func TestPAYG_AlreadyInModeAllExcess(t *testing.T) {
	res := PAYG(money.MustNew("5000"), money.MustNew("10000"), money.MustNew("10000"), true)
	assert.True(t, res.ARRContribution.IsZero())
	assert.Equal(t, "5000.00", res.Excess.String())
	assert.True(t, res.EnteredCommissionsMode)
}
