package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"macro-synth/internal/config"
	"macro-synth/internal/decl"
	"macro-synth/internal/diagnostic"
	"macro-synth/internal/render"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// useColor resolves a color mode against the writer diagnostics go to.
func useColor(mode string, w io.Writer) bool {
	return mode == config.ColorOn || (mode == config.ColorAuto && isTerminal(w))
}

// Reporter prints expansions to the output writer and diagnostics to the
// error writer.
type Reporter struct {
	out     io.Writer
	errOut  io.Writer
	format  string
	printer *render.Printer

	locColor  *color.Color
	errColor  *color.Color
	warnColor *color.Color
}

// NewReporter creates a reporter. Color is forced on or off so the output
// does not depend on the global NoColor detection.
func NewReporter(out, errOut io.Writer, format string, colored bool) *Reporter {
	r := &Reporter{
		out:       out,
		errOut:    errOut,
		format:    format,
		printer:   render.NewPrinter(),
		locColor:  color.New(color.Bold),
		errColor:  color.New(color.FgRed, color.Bold),
		warnColor: color.New(color.FgYellow, color.Bold),
	}

	for _, c := range []*color.Color{r.locColor, r.errColor, r.warnColor} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

// newReporter builds the reporter for cmd from its loaded config.
func newReporter(cmd *cobra.Command) *Reporter {
	cfg := GetConfig(cmd.Context())

	return NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Output, useColor(cfg.Color, cmd.ErrOrStderr()))
}

// FormatDiagnostic renders "file:line:col: error: message [domain/id]".
// Validation diagnostics carry their code instead of the message identity.
func (r *Reporter) FormatDiagnostic(d diagnostic.Diagnostic) string {
	sev := r.warnColor.Sprint(d.Severity.String())
	if d.IsError() {
		sev = r.errColor.Sprint(d.Severity.String())
	}

	tag := d.ID.String()
	if d.Code != "" {
		tag = d.Code
	}

	line := fmt.Sprintf("%s: %s: %s [%s]", r.locColor.Sprint(d.Location.String()), sev, d.Message, tag)
	if d.Subject != "" {
		line += " (" + d.Subject + ")"
	}

	return line
}

// Diagnostics prints each diagnostic on its own line.
func (r *Reporter) Diagnostics(diags []diagnostic.Diagnostic) {
	for _, d := range diags {
		_, _ = fmt.Fprintln(r.errOut, r.FormatDiagnostic(d))
	}
}

// Fatal prints a request that did not reach its rule.
func (r *Reporter) Fatal(loc decl.Location, err error) {
	_, _ = fmt.Fprintf(r.errOut, "%s: %s: %v\n", r.locColor.Sprint(loc.String()), r.errColor.Sprint("fatal"), err)
}

// Results prints every result in the configured format.
func (r *Reporter) Results(results []Result) error {
	if r.format == config.OutputYAML {
		return r.yaml(results)
	}

	printed := 0

	for _, res := range results {
		if res.Outcome.Err != nil {
			r.Fatal(res.Request.Location, res.Outcome.Err)
			continue
		}

		r.Diagnostics(res.Outcome.Expansion.Diagnostics)

		if printed > 0 {
			_, _ = fmt.Fprintln(r.out)
		}

		printed++

		file, err := r.printer.File(res.Source, res.Index, res.Outcome.Expansion)
		if err != nil {
			return err
		}

		_, _ = r.out.Write(file.Content)
	}

	return nil
}

// Files renders the successful expansions into generated files. Fatal
// outcomes are reported and skipped.
func (r *Reporter) Files(results []Result) ([]*render.GeneratedFile, error) {
	files := make([]*render.GeneratedFile, 0, len(results))

	for _, res := range results {
		if res.Outcome.Err != nil {
			r.Fatal(res.Request.Location, res.Outcome.Err)
			continue
		}

		r.Diagnostics(res.Outcome.Expansion.Diagnostics)

		file, err := r.printer.File(res.Source, res.Index, res.Outcome.Expansion)
		if err != nil {
			return nil, err
		}

		files = append(files, file)
	}

	return files, nil
}

type yamlReport struct {
	Expansions []yamlExpansion `yaml:"expansions"`
}

type yamlExpansion struct {
	Source      string           `yaml:"source"`
	Index       int              `yaml:"index"`
	Macro       string           `yaml:"macro"`
	Location    string           `yaml:"location"`
	Type        string           `yaml:"type,omitempty"`
	Output      string           `yaml:"output,omitempty"`
	Error       string           `yaml:"error,omitempty"`
	Diagnostics []yamlDiagnostic `yaml:"diagnostics,omitempty"`
}

type yamlDiagnostic struct {
	Severity string `yaml:"severity"`
	Message  string `yaml:"message"`
	ID       string `yaml:"id"`
	Location string `yaml:"location,omitempty"`
}

func (r *Reporter) yaml(results []Result) error {
	report := yamlReport{Expansions: make([]yamlExpansion, 0, len(results))}

	for _, res := range results {
		entry := yamlExpansion{
			Source:   res.Source,
			Index:    res.Index,
			Macro:    res.Request.Macro,
			Location: res.Request.Location.String(),
		}

		if res.Outcome.Err != nil {
			entry.Error = res.Outcome.Err.Error()
			report.Expansions = append(report.Expansions, entry)

			continue
		}

		exp := res.Outcome.Expansion
		entry.Type = exp.ResultType()
		entry.Output = r.printer.Expansion(exp)

		for _, d := range exp.Diagnostics {
			yd := yamlDiagnostic{
				Severity: d.Severity.String(),
				Message:  d.Message,
				ID:       d.ID.String(),
			}
			if !d.Location.IsZero() {
				yd.Location = d.Location.String()
			}

			entry.Diagnostics = append(entry.Diagnostics, yd)
		}

		report.Expansions = append(report.Expansions, entry)
	}

	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)

	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding yaml output: %w", err)
	}

	return enc.Close()
}
