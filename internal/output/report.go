package output

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"bindaudit/internal/audit"
	"bindaudit/internal/checks"
)

// ReportSink writes the final audit report as a Markdown table, one row per
// binding in audit order. It buffers outcomes and renders on Close.
type ReportSink struct {
	path     string
	file     *os.File
	required []checks.Check
	mu       sync.Mutex
	outcomes []audit.Outcome
}

func NewReportSink(path string, required []checks.Check) (*ReportSink, error) {
	if path == "" {
		return nil, fmt.Errorf("report path required")
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}

	return &ReportSink{
		path:     path,
		file:     f,
		required: required,
	}, nil
}

func (s *ReportSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := v.(audit.Outcome); ok {
		s.outcomes = append(s.outcomes, o)
	}
	return nil
}

func (s *ReportSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	b.WriteString("# Final Audit Report\n\n")

	header := []string{"Binding", "Build", "Tests", "Zero Skips", "Zero Warnings"}
	for _, c := range s.required {
		header = append(header, "Semantic: "+c.Column())
	}
	header = append(header, "Verdict")

	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("| :--- |" + strings.Repeat(" :---: |", len(header)-1) + "\n")

	for _, o := range s.outcomes {
		row := []string{o.Binding, buildCell(o), testsCell(o), skipsCell(o), warningsCell(o)}
		for _, c := range s.required {
			row = append(row, semanticCell(o, c.ID()))
		}
		row = append(row, verdictCell(o))
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	if _, err := s.file.WriteString(b.String()); err != nil {
		_ = s.file.Close()
		return err
	}
	return s.file.Close()
}

func buildCell(o audit.Outcome) string {
	switch o.Build {
	case audit.BuildSetupFailed:
		return "❌ Fail (Setup)"
	case audit.BuildFailed:
		return "❌ Fail (Build)"
	default:
		return "✅"
	}
}

func testsCell(o audit.Outcome) string {
	if !o.Analyzed {
		return "0"
	}
	return o.Tests
}

func skipsCell(o audit.Outcome) string {
	if !o.Analyzed {
		return "N/A"
	}
	if o.Skips == 0 {
		return "✅"
	}
	return fmt.Sprintf("❌ (%d Skip)", o.Skips)
}

func warningsCell(o audit.Outcome) string {
	if !o.Analyzed {
		return "N/A"
	}
	if o.Warnings == 0 {
		return "✅"
	}
	return fmt.Sprintf("❌ (%d Warn)", o.Warnings)
}

func semanticCell(o audit.Outcome, checkID string) string {
	if !o.Analyzed {
		return "N/A"
	}
	if o.Checks[checkID] {
		return "✅ Verified"
	}
	return "❓ Missing"
}

func verdictCell(o audit.Outcome) string {
	if o.Verdict.Certified() {
		return "🟢 " + string(o.Verdict)
	}
	return "🔴 " + string(o.Verdict)
}
