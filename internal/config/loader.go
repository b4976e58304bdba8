package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes every environment variable the loader reads. A double
// underscore separates nested keys: MACROSYNTH_MAPPING__DECODER_TYPE.
const EnvPrefix = "MACROSYNTH_"

// configNames are searched in the working directory when no file is given.
var configNames = []string{"macro-synth.yaml", "macro-synth.yml"}

// Defaults returns the default value of every configuration key.
func Defaults() map[string]any {
	return map[string]any{
		"log_level":             "info",
		"log_json":              false,
		"jobs":                  0,
		"output":                OutputText,
		"color":                 ColorAuto,
		"out_dir":               "",
		"mapping.decoder_type":  "ObjectMapper.Map",
		"mapping.param":         "map",
		"mapping.capability":    "Mappable",
		"mapping.function":      "mapping",
		"mapping.operator":      "<-",
		"resource.receiver":     "Bundle.main",
		"resource.method":       "object",
		"resource.label":        "forInfoDictionaryKey",
		"resource.default_type": "String",
		"interface.suffix":      "Interface",
		"interface.refines":     []string{"AnyObject"},
	}
}

// Default returns the configuration made of defaults only.
func Default() *Config {
	k := koanf.New(".")
	_ = k.Load(confmap.Provider(Defaults(), "."), nil)

	var cfg Config
	_ = k.Unmarshal("", &cfg)

	return &cfg
}

// findConfigFile returns explicit, or the first config file found in dir.
func findConfigFile(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}

	for _, name := range configNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// envKey turns MACROSYNTH_MAPPING__DECODER_TYPE into mapping.decoder_type.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))

	return strings.ReplaceAll(key, "__", ".")
}

// Load reads configuration from defaults, file, environment variables and
// flags. Precedence (highest to lowest): flags > env vars > config file >
// defaults. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	return LoadFrom(cwd, cfgFile, flags)
}

// LoadFrom is Load with an explicit directory to search for a config file.
func LoadFrom(dir, cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	used := findConfigFile(cfgFile, dir)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set
	if flags != nil {
		known := Defaults()

		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}

			// kebab-case flags map to snake_case keys; flags with no key
			// (--config, --dump) are not configuration
			key := strings.ReplaceAll(f.Name, "-", "_")
			if _, ok := known[key]; !ok {
				return "", nil
			}

			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.FileUsed = used
	cfg.Interface.Refines = splitList(cfg.Interface.Refines)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// splitList expands comma-separated entries, which is how a list arrives
// from an environment variable.
func splitList(items []string) []string {
	out := make([]string, 0, len(items))

	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}
