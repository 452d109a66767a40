// Package toolchain loads the toolchain descriptor: which driver CLI to
// invoke and which bindings exist, in which order. Binding order in the file
// is the audit's processing order and the report's row order, so both the
// JSON and YAML loaders preserve document order exactly.
package toolchain

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultCLI is the driver used when the descriptor does not name one.
const DefaultCLI = "./bindctl"

// Binding describes one language binding of the library under audit.
type Binding struct {
	Name string

	// Build reports whether the binding has a separate build step before
	// its test step.
	Build bool

	// Requires lists external tools the binding's commands depend on
	// (probed by the doctor command, not by the audit itself).
	Requires []string
}

// Toolchain is the loaded descriptor.
type Toolchain struct {
	// CLI is the driver command. The audit invokes "<CLI> clean all" and
	// "<CLI> setup|build|test <binding>".
	CLI string

	// Bindings in document order.
	Bindings []Binding
}

type bindingSpec struct {
	Build    bool     `json:"build" yaml:"build"`
	Requires []string `json:"requires" yaml:"requires"`
}

// Load reads a descriptor from path. The format is chosen by extension:
// .json, or .yaml/.yml.
func Load(path string) (*Toolchain, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read toolchain config: %w", err)
	}

	var tc *Toolchain
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		tc, err = parseJSON(raw)
	case ".yaml", ".yml":
		tc, err = parseYAML(raw)
	default:
		return nil, fmt.Errorf("unsupported toolchain config extension %q (expected .json, .yaml or .yml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse toolchain config %s: %w", path, err)
	}

	if tc.CLI == "" {
		tc.CLI = DefaultCLI
	}
	if err := tc.validate(); err != nil {
		return nil, fmt.Errorf("invalid toolchain config %s: %w", path, err)
	}
	return tc, nil
}

func (tc *Toolchain) validate() error {
	if len(tc.Bindings) == 0 {
		return fmt.Errorf("no bindings declared")
	}
	seen := make(map[string]struct{}, len(tc.Bindings))
	for _, b := range tc.Bindings {
		if b.Name == "" {
			return fmt.Errorf("binding with empty name")
		}
		if _, dup := seen[b.Name]; dup {
			return fmt.Errorf("duplicate binding %q", b.Name)
		}
		seen[b.Name] = struct{}{}
	}
	return nil
}

// parseJSON decodes the descriptor from the token stream rather than into a
// map, because encoding/json maps do not preserve key order and binding
// order is load-bearing.
func parseJSON(raw []byte) (*Toolchain, error) {
	dec := json.NewDecoder(strings.NewReader(string(raw)))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	tc := &Toolchain{}
	for dec.More() {
		key, err := readString(dec)
		if err != nil {
			return nil, err
		}
		switch key {
		case "cli":
			if err := dec.Decode(&tc.CLI); err != nil {
				return nil, fmt.Errorf("decode cli: %w", err)
			}
		case "bindings":
			bindings, err := parseJSONBindings(dec)
			if err != nil {
				return nil, err
			}
			tc.Bindings = bindings
		default:
			// Tolerate unknown top-level keys.
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("decode %q: %w", key, err)
			}
		}
	}
	return tc, nil
}

func parseJSONBindings(dec *json.Decoder) ([]Binding, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var bindings []Binding
	for dec.More() {
		name, err := readString(dec)
		if err != nil {
			return nil, err
		}
		var spec bindingSpec
		if err := dec.Decode(&spec); err != nil {
			return nil, fmt.Errorf("decode binding %q: %w", name, err)
		}
		bindings = append(bindings, Binding{Name: name, Build: spec.Build, Requires: spec.Requires})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return bindings, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func readString(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("read key: %w", err)
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return s, nil
}

// parseYAML walks the yaml.Node tree; mapping node content preserves
// document order.
func parseYAML(raw []byte) (*Toolchain, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level must be a mapping")
	}

	tc := &Toolchain{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "cli":
			if err := val.Decode(&tc.CLI); err != nil {
				return nil, fmt.Errorf("decode cli: %w", err)
			}
		case "bindings":
			if val.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("bindings must be a mapping")
			}
			for j := 0; j+1 < len(val.Content); j += 2 {
				name, specNode := val.Content[j], val.Content[j+1]
				var spec bindingSpec
				if err := specNode.Decode(&spec); err != nil {
					return nil, fmt.Errorf("decode binding %q: %w", name.Value, err)
				}
				tc.Bindings = append(tc.Bindings, Binding{Name: name.Value, Build: spec.Build, Requires: spec.Requires})
			}
		}
	}
	return tc, nil
}
