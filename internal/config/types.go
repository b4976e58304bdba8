// Package config loads macro-synth settings from defaults, a config file,
// MACROSYNTH_ environment variables and command-line flags.
package config

import (
	"macro-synth/internal/expand"
	"macro-synth/internal/logger"
)

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Color modes.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Config is the full set of settings a command runs with.
type Config struct {
	LogLevel  string          `koanf:"log_level"`
	LogJSON   bool            `koanf:"log_json"`
	Jobs      int             `koanf:"jobs"`
	Output    string          `koanf:"output"`
	Color     string          `koanf:"color"`
	OutDir    string          `koanf:"out_dir"`
	Mapping   MappingConfig   `koanf:"mapping"`
	Resource  ResourceConfig  `koanf:"resource"`
	Interface InterfaceConfig `koanf:"interface"`

	// FileUsed is the config file that was read, empty when none was found.
	FileUsed string `koanf:"-"`
}

// MappingConfig names the decoding library Field-Mapping Synthesis targets.
type MappingConfig struct {
	DecoderType string `koanf:"decoder_type"`
	Param       string `koanf:"param"`
	Capability  string `koanf:"capability"`
	Function    string `koanf:"function"`
	Operator    string `koanf:"operator"`
}

// ResourceConfig describes the resource-table lookup.
type ResourceConfig struct {
	Receiver    string `koanf:"receiver"`
	Method      string `koanf:"method"`
	Label       string `koanf:"label"`
	DefaultType string `koanf:"default_type"`
}

// InterfaceConfig shapes extracted interfaces.
type InterfaceConfig struct {
	Suffix  string   `koanf:"suffix"`
	Refines []string `koanf:"refines"`
}

// Engine converts the config into expansion engine options.
func (c *Config) Engine(log logger.Logger) expand.Options {
	return expand.Options{
		Mapping: expand.MappingConventions{
			DecoderType: c.Mapping.DecoderType,
			Param:       c.Mapping.Param,
			Capability:  c.Mapping.Capability,
			Function:    c.Mapping.Function,
			Operator:    c.Mapping.Operator,
		},
		Interface: expand.InterfaceConventions{
			Suffix:  c.Interface.Suffix,
			Refines: c.Interface.Refines,
		},
		Resources: expand.BundleTable{
			Receiver: c.Resource.Receiver,
			Method:   c.Resource.Method,
			Label:    c.Resource.Label,
		},
		DefaultResourceType: c.Resource.DefaultType,
		Logger:              log,
	}
}

// Logger builds the logger configuration described by LogLevel and LogJSON.
func (c *Config) Logger() *logger.Config {
	lc := logger.DefaultConfig()
	lc.Level = logger.ParseLevel(c.LogLevel)
	lc.JSON = c.LogJSON

	return lc
}
