package cli

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	apihttp "github.com/dealsyte/commissions-engine/internal/server/api/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP transport for POST /v1/deals:process",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// runServe wires config, logger, and HTTP server directly: the commissions
// engine only ever constructs these three services once at startup, so a
// generic registry buys nothing a few local variables don't already give.
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := currentConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	log := applogFor(cfg)

	rates, err := cfg.Defaults.EngineRates()
	if err != nil {
		return fmt.Errorf("resolving configured rates: %w", err)
	}
	srv := apihttp.New(log, cfg.Cache.IdempotencyCacheSize, time.Duration(cfg.Cache.IdempotencyCacheTTLSeconds)*time.Second, rates)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Infof("listening on %s", addr)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}
	if err := httpServer.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		return err
	}
	return nil
}
