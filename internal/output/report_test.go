package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bindaudit/internal/audit"
	"bindaudit/internal/checks"
	"bindaudit/internal/classify"
)

func renderReport(t *testing.T, outcomes ...audit.Outcome) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.md")

	required, err := checks.Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	s, err := NewReportSink(path, required)
	if err != nil {
		t.Fatalf("NewReportSink: %v", err)
	}
	for _, o := range outcomes {
		if err := s.Write(o); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	return string(raw)
}

func TestReportHeader(t *testing.T) {
	got := renderReport(t)
	if !strings.HasPrefix(got, "# Final Audit Report\n") {
		t.Fatalf("missing title:\n%s", got)
	}
	want := "| Binding | Build | Tests | Zero Skips | Zero Warnings | Semantic: DupNames | Semantic: Ranges | Verdict |"
	if !strings.Contains(got, want) {
		t.Fatalf("header:\nwant %s\ngot:\n%s", want, got)
	}
}

func TestReportRows(t *testing.T) {
	certified := audit.Outcome{
		Binding:  "rust",
		Build:    audit.BuildOK,
		Analyzed: true,
		Tests:    "42",
		Checks:   map[string]bool{"dup-names": true, "ranges": true},
		Verdict:  classify.VerdictCertified,
	}
	skippy := audit.Outcome{
		Binding:  "python",
		Build:    audit.BuildOK,
		Analyzed: true,
		Tests:    "714",
		Skips:    2,
		Warnings: 1,
		Checks:   map[string]bool{"dup-names": true, "ranges": false},
		Verdict:  classify.VerdictFailSkips,
	}
	broken := audit.Outcome{
		Binding: "swift",
		Build:   audit.BuildSetupFailed,
		Verdict: classify.VerdictFailSetup,
	}

	got := renderReport(t, certified, skippy, broken)

	wantRows := []string{
		"| rust | ✅ | 42 | ✅ | ✅ | ✅ Verified | ✅ Verified | 🟢 CERTIFIED |",
		"| python | ✅ | 714 | ❌ (2 Skip) | ❌ (1 Warn) | ✅ Verified | ❓ Missing | 🔴 FAIL (Skips) |",
		"| swift | ❌ Fail (Setup) | 0 | N/A | N/A | N/A | N/A | 🔴 FAIL (Setup) |",
	}
	for _, row := range wantRows {
		if !strings.Contains(got, row) {
			t.Fatalf("missing row:\n%s\nreport:\n%s", row, got)
		}
	}

	// Rows appear in audit order.
	if strings.Index(got, "| rust |") > strings.Index(got, "| python |") ||
		strings.Index(got, "| python |") > strings.Index(got, "| swift |") {
		t.Fatalf("rows out of order:\n%s", got)
	}
}

func TestReportIgnoresLifecycleEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	s, err := NewReportSink(path, nil)
	if err != nil {
		t.Fatalf("NewReportSink: %v", err)
	}
	if err := s.Write(Event{Type: "run.started"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if strings.Contains(string(raw), "run.started") {
		t.Fatalf("lifecycle event leaked into report:\n%s", raw)
	}
}
