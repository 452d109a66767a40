package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Config struct {
	// MAINTAINER NOTE: If you add/change/remove config fields that affect
	// audit behavior, keep the CLI flags in internal/cli/audit.go in sync.
	Audit   Audit
	Checks  Checks
	Output  Output
	Runtime Runtime
}

type Audit struct {
	// Toolchain is the path to the toolchain descriptor (see --toolchain).
	// JSON or YAML, chosen by extension.
	Toolchain string

	// WorkDir is the working directory for driver commands (see --workdir).
	WorkDir string

	// SkipClean skips the global "clean all" before auditing (see --skip-clean).
	SkipClean bool

	// DryRun resolves the toolchain and checks and prints the plan without
	// running anything (see --dry-run).
	DryRun bool
}

type Checks struct {
	// Selector selects which semantic checks are required.
	// Empty means all registered checks (see --checks).
	Selector string
}

type Output struct {
	// ConsoleFormat controls the human-facing console sink format
	// (see --console-format). Allowed values: text, json, ndjson.
	ConsoleFormat string

	// Report writes the Markdown audit report to this path (see --report).
	Report string

	// Out writes structured output to this path (see --out).
	Out string

	// OutFormat selects the format for --out (see --out-format).
	// Allowed values: json, ndjson. If empty, inferred from the extension.
	OutFormat string

	// Emit writes an additional structured event stream to stdout (see --emit).
	// Allowed values: json, ndjson.
	Emit []string

	// NoConsole suppresses the console sink and progress lines (see --no-console).
	NoConsole bool
}

type Runtime struct {
	// Verbose enables more detailed diagnostics.
	Verbose bool
}

func New() *Config {
	return &Config{
		Audit: Audit{
			Toolchain: "toolchain.json",
		},
		Output: Output{
			ConsoleFormat: "text",
			Report:        "FINAL_AUDIT_REPORT.md",
		},
	}
}

func (c *Config) Validate() error {
	c.Output.Emit = splitCommaList(c.Output.Emit)

	if strings.TrimSpace(c.Audit.Toolchain) == "" {
		return errors.New("--toolchain path must not be empty")
	}

	c.Output.ConsoleFormat = normalizeEnumValue(c.Output.ConsoleFormat)
	if c.Output.ConsoleFormat == "" {
		c.Output.ConsoleFormat = "text"
	}
	if c.Output.ConsoleFormat != "text" && c.Output.ConsoleFormat != "json" && c.Output.ConsoleFormat != "ndjson" {
		return fmt.Errorf("unsupported --console-format: %s (must be one of: text, json, ndjson)", c.Output.ConsoleFormat)
	}

	for _, emit := range c.Output.Emit {
		v := normalizeEnumValue(emit)
		if v != "json" && v != "ndjson" {
			return fmt.Errorf("unsupported --emit value: %s (must be one of: json, ndjson)", emit)
		}
	}

	if c.Output.Out != "" {
		c.Output.OutFormat = normalizeEnumValue(c.Output.OutFormat)
		if c.Output.OutFormat == "" {
			ext := strings.ToLower(filepath.Ext(c.Output.Out))
			switch ext {
			case ".json":
				c.Output.OutFormat = "json"
			case ".ndjson", ".jsonl":
				c.Output.OutFormat = "ndjson"
			default:
				if ext == "" {
					return errors.New("cannot infer output format from file extension (missing extension); use --out-format")
				}
				return fmt.Errorf("cannot infer output format from file extension %q; use --out-format", ext)
			}
		} else if c.Output.OutFormat != "json" && c.Output.OutFormat != "ndjson" {
			return fmt.Errorf("unsupported output format: %s", c.Output.OutFormat)
		}
	}

	return nil
}

func normalizeEnumValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
