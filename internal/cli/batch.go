package cli

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dealsyte/commissions-engine/internal/types"
)

var batchStoreDB string

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Process every *.json deal file in a directory concurrently",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchStoreDB, "store", "", "optional sqlite path to record each result")
	rootCmd.AddCommand(batchCmd)
}

// runBatch processes every file concurrently via errgroup: invocations
// share no state and are safe to run in parallel (spec.md §5).
func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := currentConfig()
	if err != nil {
		return err
	}
	rates, err := cfg.Defaults.EngineRates()
	if err != nil {
		return fmt.Errorf("resolving configured rates: %w", err)
	}

	matches, err := filepath.Glob(filepath.Join(args[0], "*.json"))
	if err != nil {
		return err
	}
	sort.Strings(matches)

	processStoreDB = batchStoreDB
	results := make([]types.Response, len(matches))
	errs := make([]error, len(matches))

	var g errgroup.Group
	for i, path := range matches {
		i, path := i, path
		g.Go(func() error {
			resp, err := processDealFile(path, rates)
			results[i] = resp
			errs[i] = err
			return nil
		})
	}
	_ = g.Wait()

	for i, path := range matches {
		if errs[i] != nil {
			fmt.Printf("%s: error: %v\n", path, errs[i])
			continue
		}
		fmt.Printf("%s: net_payout=%s finalis_commissions=%s\n",
			path, results[i].Calculations.NetPayout.String(), results[i].Calculations.FinalisCommissions.String())
	}
	return nil
}
