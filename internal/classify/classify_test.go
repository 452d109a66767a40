package classify

import "testing"

func TestAnalyzeSkips(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		stderr string
		want   int
	}{
		{
			name:   "genuine skip line counts",
			stdout: "3 tests skipped\n",
			want:   1,
		},
		{
			name:   "summary zero skipped excluded on same line",
			stdout: "test result: ok. 5 passed; 0 failed; 0 skipped\n",
			want:   0,
		},
		{
			name:   "exclusion is line scoped not global",
			stdout: "0 skipped\ntest foo ... skipped\n",
			want:   1,
		},
		{
			name:   "line matching several detect rules counts once",
			stdout: "SKIPPED: case is pending, marked TODO\n",
			want:   1,
		},
		{
			name:   "gradle task skip excluded",
			stdout: "> Task :checkKotlinGradlePluginConfigurationErrors SKIPPED\n",
			want:   0,
		},
		{
			name:   "go test run marker excluded",
			stdout: "=== RUN   comments are ignored by the parser\n",
			want:   0,
		},
		{
			name:   "busted zero pending excluded",
			stdout: "598 successes / 0 failures / 0 errors / 0 pending\n",
			want:   0,
		},
		{
			name:   "skips in stderr count too",
			stderr: "test_foo ... ignored\n",
			want:   1,
		},
		{
			name:   "two qualifying lines count twice",
			stdout: "test a ... skipped\ntest b ... skipped\n",
			want:   2,
		},
		{
			name:   "no skips",
			stdout: "all 12 tests passed\n",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.stdout, tt.stderr)
			if got.Skips != tt.want {
				t.Fatalf("Skips: want %d, got %d", tt.want, got.Skips)
			}
		})
	}
}

func TestAnalyzeWarnings(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		stderr string
		want   int
	}{
		{
			name:   "plain warning counts",
			stderr: "warning: deprecated call\n",
			want:   1,
		},
		{
			name:   "locale warning excluded",
			stderr: "perl: warning: Setting locale failed.\n",
			want:   0,
		},
		{
			name:   "cargo lint warnings excluded",
			stderr: "warning: unused variable `x`\nwarning: unused import: std::fmt\n",
			want:   0,
		},
		{
			name:   "mixed lines count only real warnings",
			stderr: "warning: unused import: foo\nwarning: integer overflow in expression\n",
			want:   1,
		},
		{
			name:   "uppercase variant counts",
			stdout: "WARNING: api responded slowly\n",
			want:   1,
		},
		{
			name:   "no colon is not a warning",
			stdout: "generated 3 warnings\n",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.stdout, tt.stderr)
			if got.Warnings != tt.want {
				t.Fatalf("Warnings: want %d, got %d", tt.want, got.Warnings)
			}
		})
	}
}

func TestAnalyzeTestCount(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		stderr string
		want   string
	}{
		{
			name:   "cargo summary",
			stdout: "test result: ok. 42 passed; 0 failed\n",
			want:   "42",
		},
		{
			name:   "pytest summary",
			stdout: "==== 714 passed in 0.45s ====\n",
			want:   "714",
		},
		{
			name:   "jest summary",
			stdout: "Tests:       20 passed, 20 total\n",
			want:   "20",
		},
		{
			name:   "maven summary",
			stdout: "Tests run: 31, Failures: 0, Errors: 0\n",
			want:   "31",
		},
		{
			name:   "registry order wins over magnitude",
			stdout: "test result: ok. 578 passed\nTests:   20 passed, 20 total\n",
			want:   "20",
		},
		{
			name:   "ctest percentage fallback",
			stdout: "100% tests passed, 0 tests failed out of 12\n",
			want:   "12",
		},
		{
			name:   "xctest aggregate is the maximum",
			stdout: "Executed 10 tests, with 1 failures\nExecuted 37 tests, with 2 failures\n",
			want:   "37",
		},
		{
			name:   "xctest clean summary matches directly",
			stdout: "Executed 10 tests.\nExecuted 37 tests, with 0 failures\n",
			want:   "37",
		},
		{
			name:   "go package ok lines are unit qualified",
			stdout: "ok  \texample/parser\t0.21s\nok  \texample/lexer\t0.02s\n",
			want:   "2 pkgs",
		},
		{
			name:   "run markers as last resort",
			stdout: "=== RUN TestA\n=== RUN TestB\n=== RUN TestC\n",
			want:   "3",
		},
		{
			name:   "nothing recognizable yields the sentinel",
			stdout: "hello world\n",
			want:   TestCountUnknown,
		},
		{
			name: "sentinel is never zero",
			want: TestCountUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.stdout, tt.stderr)
			if got.TestCount != tt.want {
				t.Fatalf("TestCount: want %q, got %q", tt.want, got.TestCount)
			}
		})
	}
}

func TestAnalyzeIsTotal(t *testing.T) {
	inputs := []string{
		"",
		"\x00\xff\xfe\x01binary-ish\x00",
		"\n\n\n",
		"warning:",
		"Tests:",
	}
	for _, in := range inputs {
		got := Analyze(in, in)
		if got.Skips < 0 || got.Warnings < 0 {
			t.Fatalf("negative counts for %q: %+v", in, got)
		}
		if got.TestCount == "" {
			t.Fatalf("empty test count for %q", in)
		}
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	stdout := "test result: ok. 42 passed\n0 warnings emitted\ndup_names check ran\nsemantic_ranges ok"
	first := Analyze(stdout, "")
	for i := 0; i < 10; i++ {
		if got := Analyze(stdout, ""); got != first {
			t.Fatalf("run %d: want %+v, got %+v", i, first, got)
		}
	}
	if first.Skips != 0 || first.Warnings != 0 || first.TestCount != "42" {
		t.Fatalf("unexpected classification: %+v", first)
	}
}
