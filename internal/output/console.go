package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"bindaudit/internal/audit"

	"github.com/fatih/color"
)

type ConsoleSink struct {
	writer   io.Writer
	format   string // "text", "json", "ndjson"
	mu       sync.Mutex
	outcomes []audit.Outcome // for JSON array output
}

func NewConsoleSink(w io.Writer, format string) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	if format == "" {
		format = "text"
	}
	return &ConsoleSink{
		writer: w,
		format: format,
	}
}

var (
	certifiedColor = color.New(color.FgGreen, color.Bold)
	failColor      = color.New(color.FgRed, color.Bold)
)

func (s *ConsoleSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(v)
}

func (s *ConsoleSink) writeLocked(v any) error {
	switch s.format {
	case "json":
		o, ok := v.(audit.Outcome)
		if !ok {
			// Ignore lifecycle events in JSON console mode.
			return nil
		}
		s.outcomes = append(s.outcomes, o)
		return nil
	case "ndjson":
		encoder := json.NewEncoder(s.writer)
		switch t := v.(type) {
		case Event:
			if err := encoder.Encode(t); err != nil {
				return err
			}
			return flushIfPossible(s.writer)
		case audit.Outcome:
			if err := encoder.Encode(eventFromOutcome(t)); err != nil {
				return err
			}
			return flushIfPossible(s.writer)
		default:
			return nil
		}
	case "text":
		o, ok := v.(audit.Outcome)
		if !ok {
			// Ignore events in text mode.
			return nil
		}
		verdictColor := failColor
		if o.Verdict.Certified() {
			verdictColor = certifiedColor
		}
		if _, err := verdictColor.Fprintf(s.writer, "[%s]", o.Verdict); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(s.writer, " %s%s\n", o.Binding, outcomeDetail(o)); err != nil {
			return err
		}
		return flushIfPossible(s.writer)
	default:
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
}

func outcomeDetail(o audit.Outcome) string {
	if !o.Analyzed {
		return ""
	}
	detail := fmt.Sprintf(" - tests: %s, skips: %d, warnings: %d", o.Tests, o.Skips, o.Warnings)
	var missing []string
	for id, ok := range o.Checks {
		if !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		detail += fmt.Sprintf(", missing checks: %s", strings.Join(missing, ", "))
	}
	return detail
}

func (s *ConsoleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.format == "json" {
		encoder := json.NewEncoder(s.writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s.outcomes); err != nil {
			return err
		}
		return flushIfPossible(s.writer)
	}
	if s.format != "text" && s.format != "ndjson" {
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
	return nil
}
