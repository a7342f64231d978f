package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealsyte/commissions-engine/internal/money"
	"github.com/dealsyte/commissions-engine/internal/types"
)

func TestStore_RecordAndUpsert(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	resp := types.Response{
		DealSummary:  types.DealSummary{DealName: "acme"},
		Calculations: types.Calculations{NetPayout: money.MustNew("1000")},
	}
	require.NoError(t, s.RecordDeal("deals/acme.json", resp, types.ContractState{}))

	resp.Calculations.NetPayout = money.MustNew("2000")
	require.NoError(t, s.RecordDeal("deals/acme.json", resp, types.ContractState{}))

	var count int
	row := s.db.QueryRow("SELECT COUNT(*) FROM processed_deals WHERE source_path = ?", "deals/acme.json")
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 1, count)

	var netPayout string
	row = s.db.QueryRow("SELECT net_payout FROM processed_deals WHERE source_path = ?", "deals/acme.json")
	require.NoError(t, row.Scan(&netPayout))
	assert.Equal(t, "2000.00", netPayout)
}
