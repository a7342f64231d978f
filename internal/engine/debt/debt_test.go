package debt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealsyte/commissions-engine/internal/money"
	"github.com/dealsyte/commissions-engine/internal/types"
)

func mustDate(t *testing.T, s string) types.Date {
	t.Helper()
	d, err := types.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestContractYear_YearOneIsDaysZeroTo364(t *testing.T) {
	start := mustDate(t, "2024-01-01")
	sameDay, ok := ContractYear(start, &start)
	require.True(t, ok)
	assert.Equal(t, 1, sameDay)

	day364 := mustDate(t, "2024-12-30") // 364 days after 2024-01-01
	y, ok := ContractYear(day364, &start)
	require.True(t, ok)
	assert.Equal(t, 1, y)

	day365 := mustDate(t, "2024-12-31")
	y2, ok := ContractYear(day365, &start)
	require.True(t, ok)
	assert.Equal(t, 2, y2)
}

func TestContractYear_NoStartDateSkipsDeferred(t *testing.T) {
	_, ok := ContractYear(mustDate(t, "2024-01-01"), nil)
	assert.False(t, ok)
}

func TestRun_DebtThenDeferredPartial(t *testing.T) {
	start := mustDate(t, "2024-01-01")
	dealDate := mustDate(t, "2024-02-01")
	contract := types.Contract{ContractStartDate: &start}
	state := types.ContractState{
		CurrentDebt:      money.MustNew("30000"),
		DeferredSchedule: []types.DeferredScheduleEntry{{Year: 1, Amount: money.MustNew("40000")}},
	}

	res := Run(money.MustNew("50000"), dealDate, contract, state)

	assert.Equal(t, "50000.00", res.DebtCollected.String())
	assert.Equal(t, "0.00", res.CurrentDebtAfter.String())
	require.Len(t, res.DeferredSchedule, 1)
	assert.Equal(t, "20000.00", res.DeferredSchedule[0].Amount.String())
}

func TestRun_DeferredEntryRemovedWhenFullyCollected(t *testing.T) {
	start := mustDate(t, "2024-01-01")
	dealDate := mustDate(t, "2024-02-01")
	contract := types.Contract{ContractStartDate: &start}
	state := types.ContractState{
		DeferredSchedule: []types.DeferredScheduleEntry{{Year: 1, Amount: money.MustNew("1000")}},
	}

	res := Run(money.MustNew("5000"), dealDate, contract, state)
	assert.Equal(t, "1000.00", res.DeferredCollected.String())
	assert.Empty(t, res.DeferredSchedule)
}

func TestRun_LegacyScalarUsedWhenScheduleEmpty(t *testing.T) {
	start := mustDate(t, "2024-01-01")
	dealDate := mustDate(t, "2024-02-01")
	contract := types.Contract{ContractStartDate: &start}
	state := types.ContractState{DeferredSubscriptionFee: money.MustNew("2500")}

	res := Run(money.MustNew("5000"), dealDate, contract, state)
	assert.Equal(t, "2500.00", res.DeferredCollected.String())
}

func TestRun_NoStartDateSkipsDeferredEntirely(t *testing.T) {
	dealDate := mustDate(t, "2024-02-01")
	contract := types.Contract{}
	state := types.ContractState{
		DeferredSchedule: []types.DeferredScheduleEntry{{Year: 1, Amount: money.MustNew("40000")}},
	}

	res := Run(money.MustNew("50000"), dealDate, contract, state)
	assert.True(t, res.DeferredCollected.IsZero())
	assert.Equal(t, "0.00", res.DebtCollected.String())
}

func TestCreditGenerated_StandardFullConversion(t *testing.T) {
	assert.Equal(t, "50000.00", CreditGenerated(false, money.MustNew("50000")).String())
}

func TestCreditGenerated_PAYGNoConversion(t *testing.T) {
	assert.True(t, CreditGenerated(true, money.MustNew("50000")).IsZero())
}
