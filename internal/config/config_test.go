package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macro-synth/internal/expand"
	"macro-synth/internal/logger"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("log-level", "info", "")
	fs.StringP("output", "o", OutputText, "")
	fs.String("color", ColorAuto, "")
	fs.IntP("jobs", "j", 0, "")
	fs.String("out-dir", "", "")
	fs.Bool("dump", false, "")

	return fs
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "", nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
	assert.Equal(t, 0, cfg.Jobs)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Empty(t, cfg.OutDir)
	assert.Empty(t, cfg.FileUsed)

	assert.Equal(t, MappingConfig{
		DecoderType: "ObjectMapper.Map",
		Param:       "map",
		Capability:  "Mappable",
		Function:    "mapping",
		Operator:    "<-",
	}, cfg.Mapping)
	assert.Equal(t, ResourceConfig{
		Receiver:    "Bundle.main",
		Method:      "object",
		Label:       "forInfoDictionaryKey",
		DefaultType: "String",
	}, cfg.Resource)
	assert.Equal(t, "Interface", cfg.Interface.Suffix)
	assert.Equal(t, []string{"AnyObject"}, cfg.Interface.Refines)
}

func TestLoad_FileDiscovery(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "macro-synth.yml", `
jobs: 3
mapping:
  decoder_type: Map
  param: json
interface:
  suffix: Protocol
  refines: [AnyObject, Sendable]
`)

	cfg, err := LoadFrom(dir, "", nil)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.FileUsed)
	assert.Equal(t, 3, cfg.Jobs)
	assert.Equal(t, "Map", cfg.Mapping.DecoderType)
	assert.Equal(t, "json", cfg.Mapping.Param)
	assert.Equal(t, "Mappable", cfg.Mapping.Capability, "unset keys keep defaults")
	assert.Equal(t, "Protocol", cfg.Interface.Suffix)
	assert.Equal(t, []string{"AnyObject", "Sendable"}, cfg.Interface.Refines)
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "macro-synth.yaml", "output: yaml\n")
	explicit := writeConfig(t, t.TempDir(), "custom.yaml", "color: \"off\"\n")

	cfg, err := LoadFrom(dir, explicit, nil)
	require.NoError(t, err)

	assert.Equal(t, explicit, cfg.FileUsed)
	assert.Equal(t, ColorOff, cfg.Color)
	assert.Equal(t, OutputText, cfg.Output, "discovered file is ignored when one is given")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := LoadFrom(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "macro-synth.yaml", `
log_level: warn
jobs: 2
output: yaml
mapping:
  operator: "<~"
`)

	t.Setenv("MACROSYNTH_JOBS", "4")
	t.Setenv("MACROSYNTH_MAPPING__OPERATOR", "=>")
	t.Setenv("MACROSYNTH_INTERFACE__REFINES", "AnyObject, Sendable")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"-j", "8", "--out-dir", "gen", "--dump"}))

	cfg, err := LoadFrom(dir, "", fs)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel, "file over defaults")
	assert.Equal(t, OutputYAML, cfg.Output, "unchanged flag does not override file")
	assert.Equal(t, "=>", cfg.Mapping.Operator, "env over file")
	assert.Equal(t, []string{"AnyObject", "Sendable"}, cfg.Interface.Refines)
	assert.Equal(t, 8, cfg.Jobs, "flag over env")
	assert.Equal(t, "gen", cfg.OutDir)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"bad output", "output: json\n", "unsupported output"},
		{"bad color", "color: always\n", "unsupported color mode"},
		{"negative jobs", "jobs: -1\n", "jobs must not be negative"},
		{"empty param", "mapping:\n  param: \"  \"\n", "mapping.param is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, "macro-synth.yaml", tt.content)

			_, err := LoadFrom(dir, "", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_Engine(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "", nil)
	require.NoError(t, err)

	cfg.Mapping.Param = "json"
	cfg.Resource.Receiver = "Config.shared"

	log := logger.NewNop()
	opts := cfg.Engine(log)

	assert.Equal(t, "json", opts.Mapping.Param)
	assert.Equal(t, expand.BundleTable{
		Receiver: "Config.shared",
		Method:   "object",
		Label:    "forInfoDictionaryKey",
	}, opts.Resources)
	assert.Equal(t, "String", opts.DefaultResourceType)
	assert.Equal(t, []string{"AnyObject"}, opts.Interface.Refines)
	assert.Nil(t, opts.Decoder, "the engine derives the decoder from the param")
	assert.Same(t, log, opts.Logger)
}

func TestConfig_Logger(t *testing.T) {
	cfg := &Config{LogLevel: "DEBUG", LogJSON: true}

	lc := cfg.Logger()
	assert.Equal(t, logger.DebugLevel, lc.Level)
	assert.True(t, lc.JSON)
	assert.Equal(t, os.Stderr, lc.Output)
}

func TestDefault(t *testing.T) {
	t.Setenv("MACROSYNTH_OUTPUT", OutputYAML)

	cfg := Default()
	assert.Equal(t, OutputText, cfg.Output, "environment is not read")
	assert.Equal(t, "ObjectMapper.Map", cfg.Mapping.DecoderType)
	require.NoError(t, cfg.Validate())
}
