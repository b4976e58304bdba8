package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"macro-synth/internal/expand"
)

// GeneratedFile is one rendered expansion ready to be written.
type GeneratedFile struct {
	// Filename is the base name, e.g. "models.2.generated.txt".
	Filename string
	Content  []byte
}

type fileData struct {
	Source      string
	Macro       string
	Location    string
	ResultType  string
	Diagnostics []string
	Body        string
}

var fileTemplate = template.Must(template.New("expansion").Parse(`// Code generated by macro-synth from {{.Source}}. DO NOT EDIT.
// {{.Macro}} at {{.Location}}
{{- if .ResultType}}
// type: {{.ResultType}}
{{- end}}
{{- range .Diagnostics}}
// {{.}}
{{- end}}
{{- if .Body}}

{{.Body}}
{{- end}}
`))

// Expansion prints the expression or the declarations of exp.
func (p *Printer) Expansion(exp *expand.Expansion) string {
	if exp.Expression != nil {
		return p.Expr(exp.Expression)
	}

	return p.Decls(exp.Declarations)
}

// FileName returns the name of the n-th expansion file generated from
// source: "<stem>.<n>.generated.txt".
func FileName(source string, n int) string {
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if stem == "" || stem == "." {
		stem = "expansion"
	}

	return fmt.Sprintf("%s.%d.generated.txt", stem, n)
}

// File renders exp, the n-th expansion of source, into a GeneratedFile.
func (p *Printer) File(source string, n int, exp *expand.Expansion) (*GeneratedFile, error) {
	data := fileData{
		Source:     source,
		Macro:      exp.Macro,
		Location:   exp.Location.String(),
		ResultType: exp.ResultType(),
		Body:       p.Expansion(exp),
	}

	for _, d := range exp.Diagnostics {
		data.Diagnostics = append(data.Diagnostics, d.String())
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", exp.Macro, err)
	}

	return &GeneratedFile{Filename: FileName(source, n), Content: buf.Bytes()}, nil
}
