package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dealsyte/commissions-engine/internal/engine"
	"github.com/dealsyte/commissions-engine/internal/store"
	"github.com/dealsyte/commissions-engine/internal/types"
)

var processStoreDB string

var processCmd = &cobra.Command{
	Use:   "process <deal.json>",
	Short: "Run a single deal through the engine and print the response",
	Args:  cobra.ExactArgs(1),
	RunE:  runProcess,
}

func init() {
	processCmd.Flags().StringVar(&processStoreDB, "store", "", "optional sqlite path to record the result (reference adapter, not part of the engine)")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := currentConfig()
	if err != nil {
		return err
	}
	rates, err := cfg.Defaults.EngineRates()
	if err != nil {
		return fmt.Errorf("resolving configured rates: %w", err)
	}

	resp, err := processDealFile(args[0], rates)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

type dealFile struct {
	Deal     types.Deal          `json:"deal"`
	Contract types.Contract      `json:"contract"`
	State    types.ContractState `json:"state"`
}

// processDealFile loads, processes, and optionally records one deal file
// against the given rates. Shared by both `process` and `batch` so the two
// commands stay identical in behavior for a single file.
func processDealFile(path string, rates engine.Rates) (types.Response, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return types.Response{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var df dealFile
	if err := json.Unmarshal(raw, &df); err != nil {
		return types.Response{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	result, err := engine.Process(engine.Request{Deal: df.Deal, Contract: df.Contract, State: df.State, Rates: &rates})
	if err != nil {
		return types.Response{}, fmt.Errorf("processing %s: %w", path, err)
	}

	if processStoreDB != "" {
		if err := recordResult(processStoreDB, path, result); err != nil {
			return types.Response{}, fmt.Errorf("recording result for %s: %w", path, err)
		}
	}
	return result.Response, nil
}

func recordResult(dbPath, sourcePath string, result engine.Result) error {
	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.RecordDeal(sourcePath, result.Response, result.State)
}
