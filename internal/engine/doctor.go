package engine

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"bindaudit/internal/runner"
	"bindaudit/internal/toolchain"
)

// ToolStatus is one probed prerequisite of one binding.
type ToolStatus struct {
	Binding   string
	Tool      string
	Available bool
	Detail    string
}

// Doctor probes every tool the toolchain's bindings declare in "requires" by
// running "<tool> --version". Probes are read-only, so unlike the audit
// itself they run concurrently (bounded). Results come back in toolchain
// order regardless of probe completion order.
func Doctor(ctx context.Context, r runner.Runner, tc *toolchain.Toolchain) ([]ToolStatus, error) {
	if r == nil {
		return nil, fmt.Errorf("runner is nil")
	}
	if tc == nil {
		return nil, fmt.Errorf("toolchain is nil")
	}

	type probe struct {
		binding string
		tool    string
	}
	var probes []probe
	for _, b := range tc.Bindings {
		for _, tool := range b.Requires {
			probes = append(probes, probe{binding: b.Name, tool: tool})
		}
	}

	results := make([]ToolStatus, len(probes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, p := range probes {
		g.Go(func() error {
			st := ToolStatus{Binding: p.binding, Tool: p.tool}
			inv, err := r.Run(gctx, fmt.Sprintf("%s --version", p.tool))
			if err == nil && inv.ExitCode == 0 {
				st.Available = true
				st.Detail = firstLine(inv.Stdout)
				if st.Detail == "" {
					st.Detail = firstLine(inv.Stderr)
				}
			} else if err != nil {
				st.Detail = "not runnable"
			} else {
				st.Detail = fmt.Sprintf("exit code %d", inv.ExitCode)
			}
			results[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(line)
}
