// Package config loads the commissions engine's configuration: the HTTP
// transport's host/port/timeouts, logging verbosity, the idempotency cache
// sizing, and the engine-wide defaults a deal/contract can omit. Grounded on
// the teacher's internal/config/config.go + loader.go (a single struct with
// toml+mapstructure tags loaded through spf13/viper, env override via
// AutomaticEnv, live reload via fsnotify), trimmed to this engine's much
// smaller surface — no peer/ledger/port-map sections.
package config

import (
	"fmt"

	"github.com/dealsyte/commissions-engine/internal/engine"
	"github.com/dealsyte/commissions-engine/internal/engine/fees"
	"github.com/dealsyte/commissions-engine/internal/engine/implied"
	"github.com/dealsyte/commissions-engine/internal/money"
)

// Config is the root configuration object.
type Config struct {
	Server   ServerConfig   `toml:"server" mapstructure:"server"`
	Log      LogConfig      `toml:"log" mapstructure:"log"`
	Cache    CacheConfig    `toml:"cache" mapstructure:"cache"`
	Defaults DefaultsConfig `toml:"defaults" mapstructure:"defaults"`
}

// ServerConfig configures the HTTP transport (internal/server/api/http).
type ServerConfig struct {
	Host         string `toml:"host" mapstructure:"host"`
	Port         int    `toml:"port" mapstructure:"port"`
	ReadTimeout  int    `toml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout int    `toml:"write_timeout" mapstructure:"write_timeout"`
}

// LogConfig drives internal/applog's level filtering, wired to the CLI's
// --debug/--verbose/--quiet persistent flags.
type LogConfig struct {
	Level string `toml:"level" mapstructure:"level"`
	Debug bool   `toml:"debug" mapstructure:"debug"`
}

// CacheConfig sizes the transport's idempotency result cache
// (hashicorp/golang-lru/v2), which exploits the engine's determinism
// property (spec.md §8) to serve repeated identical requests without
// recomputing.
type CacheConfig struct {
	IdempotencyCacheSize int `toml:"idempotency_cache_size" mapstructure:"idempotency_cache_size"`
	IdempotencyCacheTTLSeconds int `toml:"idempotency_cache_ttl_seconds" mapstructure:"idempotency_cache_ttl_seconds"`
}

// DefaultsConfig holds the engine-wide rates and defaults the fee/
// implied-cost calculators apply, including the FINRA toggle used when a
// deal omits has_finra_fee (spec.md §4.2-§4.3). The validator does not read
// them. Kept as named, overridable constants rather than literals sprinkled
// through the pipeline.
type DefaultsConfig struct {
	FinraFeeEnabledByDefault bool   `toml:"finra_fee_enabled_by_default" mapstructure:"finra_fee_enabled_by_default"`
	FinraFeeRate             string `toml:"finra_fee_rate" mapstructure:"finra_fee_rate"`
	DistributionSourcingRate string `toml:"distribution_sourcing_rate" mapstructure:"distribution_sourcing_rate"`
	ExemptDealRate           string `toml:"exempt_deal_rate" mapstructure:"exempt_deal_rate"`
}

// EngineRates converts the configured string rates into the engine's
// Rates, parsed once at startup rather than on every request. This is the
// wiring SPEC_FULL.md §1.2 requires: changing defaults.finra_fee_rate in a
// deployed TOML/env var now reaches fees.Run/implied.Select through the CLI
// and HTTP transport's engine.Request.Rates.
func (d DefaultsConfig) EngineRates() (engine.Rates, error) {
	finra, err := money.NewRate(d.FinraFeeRate)
	if err != nil {
		return engine.Rates{}, fmt.Errorf("defaults.finra_fee_rate: %w", err)
	}
	distSourcing, err := money.NewRate(d.DistributionSourcingRate)
	if err != nil {
		return engine.Rates{}, fmt.Errorf("defaults.distribution_sourcing_rate: %w", err)
	}
	exempt, err := money.NewRate(d.ExemptDealRate)
	if err != nil {
		return engine.Rates{}, fmt.Errorf("defaults.exempt_deal_rate: %w", err)
	}
	return engine.Rates{
		Fees: fees.Rates{
			Finra:                 finra,
			DistributionSourcing:  distSourcing,
			FinraEnabledByDefault: d.FinraFeeEnabledByDefault,
		},
		Implied: implied.Rates{Exempt: exempt},
	}, nil
}

// Default returns the configuration used when no file or environment
// override is present — the same rates and toggles spec.md §4.2-§4.3 pin as
// the engine's built-in behavior.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  10,
			WriteTimeout: 10,
		},
		Log: LogConfig{Level: "info"},
		Cache: CacheConfig{
			IdempotencyCacheSize:       1024,
			IdempotencyCacheTTLSeconds: 300,
		},
		Defaults: DefaultsConfig{
			FinraFeeEnabledByDefault: true,
			FinraFeeRate:             "0.004732",
			DistributionSourcingRate: "0.10",
			ExemptDealRate:           "0.015",
		},
	}
}
