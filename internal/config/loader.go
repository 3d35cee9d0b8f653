package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"axis-mapper/internal/detect"
)

// EnvPrefix prefixes environment variables: AXISMAP_VALIDATION_MODE sets
// validation_mode.
const EnvPrefix = "AXISMAP_"

// DefaultFiles are searched in the working directory when no file is given.
var DefaultFiles = []string{"axismap.yaml", "axismap.yml"}

// Loaded is a configuration together with the file it came from.
type Loaded struct {
	*Config
	// File is the config file used, empty when none was found.
	File string
}

// findConfigFile finds the config file to use.
// Priority: explicit path > axismap.yaml > axismap.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}

	for _, name := range DefaultFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

func defaults() map[string]any {
	return map[string]any{
		"allow_override":        true,
		"allow_duplicates":      false,
		"validation":            DefaultValidation,
		"validation_mode":       DefaultValidationMode,
		"min_value_cardinality": detect.DefaultMinValueCardinality,
		"enabled":               true,
		"verbose":               false,
		"output":                DefaultOutput,
	}
}

// Load reads configuration from file, environment variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// Only flags that were explicitly set are applied; their kebab-case names
// map to snake_case keys.
func Load(cfgFile string, flags *pflag.FlagSet) (*Loaded, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}

			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Loaded{Config: &cfg, File: used}, nil
}
