package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"macro-synth/internal/analyze"
	"macro-synth/internal/decl"
	"macro-synth/internal/diagnostic"
	"macro-synth/internal/expand"
)

const demoYAML = "../../examples/requests/demo.yaml"

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMacrosCommand(t *testing.T) {
	out, _, err := run(t, "macros")
	require.NoError(t, err)
	assert.Equal(t, "Constant\nInterfaceGen\nMappable\nmainBundle\nstringify\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "macro-synth v"+Version)
}

func TestExpandCommand_Text(t *testing.T) {
	out, errOut, err := run(t, "expand", demoYAML, "--log-level", "disabled")
	require.NoError(t, err)
	assert.Empty(t, errOut)

	assert.Contains(t, out, "// Code generated by macro-synth from "+demoYAML+". DO NOT EDIT.\n")
	assert.Contains(t, out, "// stringify at App.swift:4:13\n\n(a + b, \"a + b\")\n")
	assert.Contains(t, out, `Bundle.main.object(forInfoDictionaryKey: "BuildNumber") as? Int`)
	assert.Contains(t, out, `static let appIcon = "app_icon"`)
	assert.Contains(t, out, "public protocol MerchantInterface: AnyObject {")
	assert.Contains(t, out, "override func mapping(map: ObjectMapper.Map) {")
	assert.Contains(t, out, `itemTitle <- map["item_title"]`)
	assert.Contains(t, out, "extension TestModel: Mappable {}")
	assert.Equal(t, 8, strings.Count(out, "DO NOT EDIT."))
}

func TestExpandCommand_TOMLAndConventions(t *testing.T) {
	t.Setenv("MACROSYNTH_MAPPING__DECODER_TYPE", "Map")

	out, _, err := run(t, "expand", "../../examples/requests/demo.toml", "--log-level", "disabled")
	require.NoError(t, err)
	assert.Contains(t, out, "init?(map: Map) {}")
	assert.Contains(t, out, "mutating func mapping(map: Map) {")
}

func TestExpandCommand_YAMLOutput(t *testing.T) {
	out, _, err := run(t, "expand", demoYAML, "-o", "yaml", "--log-level", "disabled")
	require.NoError(t, err)

	var report yamlReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	require.Len(t, report.Expansions, 8)

	first := report.Expansions[0]
	assert.Equal(t, demoYAML, first.Source)
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, "stringify", first.Macro)
	assert.Equal(t, "App.swift:4:13", first.Location)
	assert.Empty(t, first.Type)
	assert.Equal(t, "String?", report.Expansions[1].Type)
	assert.Equal(t, `(a + b, "a + b")`, first.Output)
}

func TestExpandCommand_OutDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gen")

	out, _, err := run(t, "expand", demoYAML, "--out-dir", dir, "--log-level", "disabled")
	require.NoError(t, err)
	assert.Empty(t, out)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 8)

	got, err := os.ReadFile(filepath.Join(dir, "demo.4.generated.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(got), `static let appIcon = "app_icon"`)
}

func TestExpandCommand_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		stderr  string
	}{
		{
			name: "error diagnostic",
			content: `requests:
  - macro: Mappable
    location: {file: M.swift, line: 1, column: 1}
    args: "isSubclass: true"
    declaration: {kind: class, name: Orphan}
`,
			stderr: "M.swift:1:1: error: ",
		},
		{
			name: "unknown macro",
			content: `requests:
  - macro: stringfy
    location: {file: M.swift, line: 2}
    args: "x"
`,
			stderr: `did you mean "stringify"?`,
		},
		{
			name: "invalid file",
			content: `requests:
  - args: "x"
`,
			stderr: "[missing_macro]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.yaml", tt.content)

			_, errOut, err := run(t, "expand", path, "--color", "off", "--log-level", "disabled")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrExpansionFailed))
			assert.Contains(t, errOut, tt.stderr)
		})
	}
}

func TestExpandCommand_LoadError(t *testing.T) {
	_, _, err := run(t, "expand", writeFile(t, "req.json", "{}"), "--log-level", "disabled")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrExpansionFailed))
	assert.Contains(t, err.Error(), "unsupported request file extension")
}

func TestExpandCommand_BadConfig(t *testing.T) {
	_, _, err := run(t, "expand", demoYAML, "--color", "sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported color mode")
}

func TestExpandCommand_Dump(t *testing.T) {
	_, errOut, err := run(t, "expand", "../../examples/requests/demo.toml", "--dump", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "loaded requests")
	assert.Contains(t, errOut, "expand.Request")
}

func TestScanCommand(t *testing.T) {
	out, errOut, err := run(t, "scan", "../../examples/models", "--color", "off", "--log-level", "disabled")

	// Shape is an enumeration and cannot have an interface extracted
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExpansionFailed))
	assert.Contains(t, errOut, "error: unsupported declaration kind for interface extraction")

	assert.Contains(t, out, "// Code generated by macro-synth from macro-synth/examples/models. DO NOT EDIT.\n")
	assert.Contains(t, out, "public protocol MerchantInterface: AnyObject {")
	assert.Contains(t, out, "extension BaseResponse: Mappable {}")
	assert.Contains(t, out, `static let appIcon = "app_icon"`)
}

func TestScanBatches(t *testing.T) {
	scan := &analyze.Scan{
		Packages: []string{"a", "b"},
		Annotated: []analyze.Annotated{
			{ID: analyze.TypeID{PkgPath: "b", Name: "X"}, Directives: []analyze.Directive{{Macro: "stringify"}}},
			{ID: analyze.TypeID{PkgPath: "a", Name: "Y"}, Directives: []analyze.Directive{{Macro: "Constant"}, {Macro: "stringify"}}},
		},
	}

	batches := scanBatches(scan)
	require.Len(t, batches, 2)
	assert.Equal(t, "a", batches[0].Source)
	assert.Len(t, batches[0].Requests, 2)
	assert.Equal(t, "b", batches[1].Source)
	assert.Len(t, batches[1].Requests, 1)
}

func TestReporter_FormatDiagnostic(t *testing.T) {
	loc := decl.Location{File: "M.swift", Line: 3, Column: 1}
	d := diagnostic.New(diagnostic.SeverityWarning, loc, "careful")

	plain := NewReporter(nil, nil, "text", false)
	assert.Equal(t, "M.swift:3:1: warning: careful ["+d.ID.String()+"]", plain.FormatDiagnostic(d))

	var res diagnostic.Diagnostics
	res.AddError("missing_macro", "macro is required", "requests[0]", loc)
	assert.Equal(t, "M.swift:3:1: error: macro is required [missing_macro] (requests[0])", plain.FormatDiagnostic(res.Errors[0]))

	colored := NewReporter(nil, nil, "text", true)
	assert.Contains(t, colored.FormatDiagnostic(d), "\x1b[")
}

func TestReporter_FatalInYAML(t *testing.T) {
	var out bytes.Buffer

	rep := NewReporter(&out, nil, "yaml", false)
	err := rep.Results([]Result{{
		Source:  "x.yaml",
		Index:   1,
		Request: &expand.Request{Macro: "nope"},
		Outcome: expand.Outcome{Err: expand.ErrUnknownMacro},
	}})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "error: "+expand.ErrUnknownMacro.Error())
}
