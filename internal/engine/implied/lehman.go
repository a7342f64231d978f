package implied

import (
	"github.com/dealsyte/commissions-engine/internal/money"
	"github.com/dealsyte/commissions-engine/internal/types"
)

// lehmanStrategy traverses a progressive rate schedule starting from the
// contract's prior cumulative volume (spec.md §4.3 "Lehman traversal").
type lehmanStrategy struct {
	tiers  []types.LehmanTier
	cursor money.Amount
}

// Compute walks the tier list, consuming basis (remaining) from cursor
// forward, accruing take*rate per tier crossed, exactly per spec.md §4.3:
//
//  1. Select the first tier T with cursor < T.UpperBound (or T is open).
//  2. If cursor < T.LowerBound, it's a gap: advance cursor to T.LowerBound
//     without consuming remaining (the gap-jump rule — never an error).
//  3. take = min(remaining, T.UpperBound-cursor), or all of remaining if T
//     is open.
//  4. Accrue take*T.Rate; advance cursor += take; remaining -= take.
//  5. Repeat until remaining == 0, or the tiers are exhausted (remainder
//     then accrues at rate 0 — spec.md's pinned design choice).
func (s lehmanStrategy) Compute(basis money.Amount) money.Amount {
	cursor := s.cursor
	remaining := basis
	total := money.Zero

	i := 0
	for remaining.IsPositive() {
		tier, ok := firstApplicableTier(s.tiers, i, cursor)
		if !ok {
			// Tiers exhausted before remaining was consumed: the
			// remainder accrues at 0 (spec.md §4.3).
			break
		}
		i = tier.index

		if cursor.LessThan(tier.LowerBound) {
			cursor = tier.LowerBound
			continue
		}

		var take money.Amount
		if tier.Open() {
			take = remaining
		} else {
			take = money.Min(remaining, tier.UpperBound.Sub(cursor))
		}

		total = total.Add(take.Mul(tier.Rate))
		cursor = cursor.Add(take)
		remaining = remaining.Sub(take)
		i++
	}

	return total
}

type indexedTier struct {
	types.LehmanTier
	index int
}

// firstApplicableTier returns the first tier, scanning forward from
// startIdx, whose range could still apply at the given cursor position:
// cursor < tier.UpperBound, or the tier is open-ended.
func firstApplicableTier(tiers []types.LehmanTier, startIdx int, cursor money.Amount) (indexedTier, bool) {
	for idx := startIdx; idx < len(tiers); idx++ {
		t := tiers[idx]
		if t.Open() || cursor.LessThan(*t.UpperBound) {
			return indexedTier{LehmanTier: t, index: idx}, true
		}
	}
	return indexedTier{}, false
}
