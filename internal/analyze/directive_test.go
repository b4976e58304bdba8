package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macro-synth/internal/decl"
)

func TestParseDirective(t *testing.T) {
	loc := decl.Location{File: "m.go", Line: 3, Column: 1}

	tests := []struct {
		text  string
		macro string
		args  int
	}{
		{"//synth:Mappable", "Mappable", 0},
		{"//synth:Mappable()", "Mappable", 0},
		{"//synth: InterfaceGen ", "InterfaceGen", 0},
		{"//synth:Mappable(isSubclass: true)", "Mappable", 1},
		{`//synth:mainBundle("Key", Int.self)`, "mainBundle", 2},
		{`//synth:stringify(f(a, b))`, "stringify", 1},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			d, ok, err := ParseDirective(tt.text, loc)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.macro, d.Macro)
			assert.Len(t, d.Arguments, tt.args)
			assert.Equal(t, loc, d.Location)
		})
	}
}

func TestParseDirective_NotADirective(t *testing.T) {
	for _, text := range []string{"// synth:Mappable", "// Mappable", "//go:generate x"} {
		_, ok, err := ParseDirective(text, decl.Location{})
		require.NoError(t, err)
		assert.False(t, ok, text)
	}
}

func TestParseDirective_Errors(t *testing.T) {
	for _, text := range []string{
		"//synth:",
		"//synth:Mappable(isSubclass: true",
		`//synth:mainBundle("Key)`,
		"//synth:Two Words",
	} {
		t.Run(text, func(t *testing.T) {
			_, ok, err := ParseDirective(text, decl.Location{File: "m.go", Line: 1})
			assert.True(t, ok)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "m.go:1")
		})
	}
}
