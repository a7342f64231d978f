package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Load reads configuration from, in priority order: built-in defaults, the
// TOML file at path (if non-empty and present), then COMMISSIONSD_-prefixed
// environment variables. Grounded on the teacher's LoadConfig
// (internal/config/loader.go): a fresh viper instance per call, defaults set
// first, file loaded over them, env applied last.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if _, err := os.Stat(path); err == nil {
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to stat config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("COMMISSIONSD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// WatchReload re-invokes onChange with the freshly loaded configuration
// whenever the file at path changes on disk, mirroring the teacher's
// fsnotify-driven live reload. Returns immediately; watching runs until the
// process exits. Caller errors from onChange are not surfaced here — by
// design, a bad reload leaves the previous configuration in effect.
func WatchReload(path string, onChange func(Config)) error {
	if path == "" {
		return nil
	}
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.OnConfigChange(func(_ fsnotify.Event) {
		var cfg Config
		if err := v.Unmarshal(&cfg); err == nil {
			onChange(cfg)
		}
	})
	v.WatchConfig()
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("cache.idempotency_cache_size", d.Cache.IdempotencyCacheSize)
	v.SetDefault("cache.idempotency_cache_ttl_seconds", d.Cache.IdempotencyCacheTTLSeconds)
	v.SetDefault("defaults.finra_fee_enabled_by_default", d.Defaults.FinraFeeEnabledByDefault)
	v.SetDefault("defaults.finra_fee_rate", d.Defaults.FinraFeeRate)
	v.SetDefault("defaults.distribution_sourcing_rate", d.Defaults.DistributionSourcingRate)
	v.SetDefault("defaults.exempt_deal_rate", d.Defaults.ExemptDealRate)
}
