package request

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a request file. The format is chosen by
// extension: .yaml and .yml are YAML, .toml is TOML.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file %s: %w", path, err)
	}

	var f *File

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		f, err = Parse(data)
	case ".toml":
		f, err = ParseTOML(data)
	default:
		return nil, fmt.Errorf("unsupported request file extension %q in %s", ext, path)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Source = path

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse request YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// ParseTOML parses TOML data into a File.
func ParseTOML(data []byte) (*File, error) {
	var f File

	_, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse request TOML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Requests {
		r := &f.Requests[i]
		r.Macro = strings.TrimSpace(r.Macro)

		if r.Declaration == nil {
			continue
		}

		if r.Declaration.Location == (LocationSpec{}) {
			r.Declaration.Location = r.Location
		}

		for j := range r.Declaration.Members {
			fn := r.Declaration.Members[j].Function
			if fn != nil && fn.Init && fn.Name == "" {
				fn.Name = "init"
			}
		}
	}
}
