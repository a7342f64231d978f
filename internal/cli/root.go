package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dealsyte/commissions-engine/internal/applog"
	"github.com/dealsyte/commissions-engine/internal/config"
)

var (
	// Global flags
	configFile string
	debug      bool
	verbose    bool
	quiet      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "commissionsd",
	Short: "commissionsd - M&A broker-dealer commissions calculation engine",
	Long: `commissionsd runs the deterministic, stateless commissions calculation
pipeline that processes one deal against a contract configuration and an
evolving contract state: fee computation, implied-cost derivation, debt
collection, credit application, subscription prepayment, commission
calculation, cost-cap enforcement, and payout/state assembly.`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable normally suppressed debug logging")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output to console after startup")
}

// initConfig is an empty OnInitialize hook: it reads nothing. Configuration
// is loaded lazily by each subcommand via currentConfig (config.Load) so a
// missing/invalid --conf only fails the commands that actually need it.
func initConfig() {}

// currentConfig resolves the active configuration from the persistent
// --conf/--debug/--verbose/--quiet flags, applying the CLI's log-level
// override on top of whatever the file/environment supplied.
func currentConfig() (config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return config.Config{}, err
	}
	switch {
	case quiet:
		cfg.Log.Level = "quiet"
	case debug || verbose:
		cfg.Log.Level = "debug"
		cfg.Log.Debug = true
	}
	return cfg, nil
}

func applogFor(cfg config.Config) *applog.Logger {
	return applog.New(os.Stderr, applog.ParseLevel(cfg.Log.Level))
}