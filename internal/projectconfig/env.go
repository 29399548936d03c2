package projectconfig

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Environment variables that override config.yaml.
const (
	EnvDocsDir          = "OPENKIT_DOCS_DIR"
	EnvStripPrefix      = "OPENKIT_STRIP_PREFIX"
	EnvStaleAfterDays   = "OPENKIT_STALE_AFTER_DAYS"
	EnvHealthyThreshold = "OPENKIT_HEALTHY_THRESHOLD"
	EnvWarningThreshold = "OPENKIT_WARNING_THRESHOLD"
)

var envKeys = map[string]string{
	EnvDocsDir:          "docs_dir",
	EnvStripPrefix:      "strip_prefix",
	EnvStaleAfterDays:   "stale_after_days",
	EnvHealthyThreshold: "healthy",
	EnvWarningThreshold: "warning",
}

type envOverrides struct {
	DocsDir        string  `mapstructure:"docs_dir"`
	StripPrefix    *string `mapstructure:"strip_prefix"`
	StaleAfterDays int     `mapstructure:"stale_after_days"`
	Healthy        int     `mapstructure:"healthy"`
	Warning        int     `mapstructure:"warning"`
}

// applyEnv decodes the OPENKIT_* variables onto cfg. Numeric values arrive
// as strings, so the decoder runs weakly typed.
func applyEnv(cfg *MemoryConfig, lookup func(string) (string, bool)) error {
	raw := make(map[string]any)
	for env, key := range envKeys {
		if v, ok := lookup(env); ok {
			raw[key] = v
		}
	}
	if len(raw) == 0 {
		return nil
	}

	var o envOverrides
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &o,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("decoding OPENKIT_* environment overrides: %w", err)
	}

	if o.DocsDir != "" {
		cfg.Doctor.DocsDir = o.DocsDir
	}
	if o.StripPrefix != nil {
		cfg.Doctor.StripPrefix = o.StripPrefix
	}
	if o.StaleAfterDays != 0 {
		cfg.Doctor.StaleAfterDays = o.StaleAfterDays
	}
	if o.Healthy != 0 {
		cfg.HealthThresholds.Healthy = o.Healthy
	}
	if o.Warning != 0 {
		cfg.HealthThresholds.Warning = o.Warning
	}
	return nil
}
