package checks

import (
	"strings"
	"testing"
)

func TestListIsSortedByID(t *testing.T) {
	all := List()
	if len(all) < 2 {
		t.Fatalf("expected at least 2 registered checks, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID() >= all[i].ID() {
			t.Fatalf("List not sorted: %s before %s", all[i-1].ID(), all[i].ID())
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		wantIDs  []string
		wantErr  bool
	}{
		{name: "empty selector selects all", selector: "", wantIDs: []string{"dup-names", "ranges"}},
		{name: "single id", selector: "ranges", wantIDs: []string{"ranges"}},
		{name: "comma list with spaces", selector: "dup-names, ranges", wantIDs: []string{"dup-names", "ranges"}},
		{name: "unknown id errors", selector: "dup-names,bogus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.selector)
			if tt.wantErr {
				if err == nil {
					t.Fatal("want error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.selector, err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("want %d checks, got %d", len(tt.wantIDs), len(got))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID() != id {
					t.Fatalf("check %d: want %s, got %s", i, id, got[i].ID())
				}
			}
		})
	}
}

func TestSatisfied(t *testing.T) {
	dup := &DupNamesCheck{}

	tests := []struct {
		name   string
		output string
		want   bool
	}{
		{name: "marker anywhere in output", output: "PASS test_semantic_duplicates ... ok", want: true},
		{name: "fixture filename spelling", output: "loading semantic_duplicates.json\nall green", want: true},
		{name: "column spelling is exact case", output: "ran DupNames scenario", want: true},
		{name: "wrong case does not match", output: "ran DUPNAMES scenario", want: false},
		{name: "marker split across lines still matches containment", output: "case: dup_names\nstatus: PASS", want: true},
		{name: "absent marker", output: "42 tests passed", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Satisfied(dup, tt.output); got != tt.want {
				t.Fatalf("Satisfied: want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRegisterRejectsDuplicateID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	Register(&DupNamesCheck{})
}

func TestDescriptionsForHelpOutput(t *testing.T) {
	for _, c := range List() {
		if strings.TrimSpace(c.Description()) == "" {
			t.Fatalf("check %s has an empty description", c.ID())
		}
		if c.Column() == "" {
			t.Fatalf("check %s has an empty report column", c.ID())
		}
	}
}
