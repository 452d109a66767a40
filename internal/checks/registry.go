package checks

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	registry = make(map[string]Check)
	mu       sync.RWMutex
)

func Register(c Check) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[c.ID()]; exists {
		panic(fmt.Sprintf("check %s already registered", c.ID()))
	}
	registry[c.ID()] = c
}

func List() []Check {
	mu.RLock()
	defer mu.RUnlock()
	var out []Check
	for _, c := range registry {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID() < out[j].ID()
	})
	return out
}

// Resolve selects checks by a comma-separated ID list. An empty selector
// selects all registered checks.
func Resolve(selector string) ([]Check, error) {
	if selector == "" {
		return List(), nil
	}

	mu.RLock()
	defer mu.RUnlock()

	ids := strings.Split(selector, ",")
	var selected []Check
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if c, ok := registry[id]; ok {
			selected = append(selected, c)
		} else {
			return nil, fmt.Errorf("check not found: %s", id)
		}
	}
	return selected, nil
}

// Satisfied reports whether any of the check's aliases appears in the
// combined output. Containment is whole-output, not line-scoped: some
// runners print the test name on one line and its status on another.
func Satisfied(c Check, output string) bool {
	for _, alias := range c.Aliases() {
		if strings.Contains(output, alias) {
			return true
		}
	}
	return false
}
