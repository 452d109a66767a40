package output

import "bindaudit/internal/audit"

// Event is a lifecycle record for NDJSON streaming output.
//
// In NDJSON mode, sinks emit Events (one JSON object per line), including:
// - run.started
// - binding.started
// - binding.result
// - binding.finished
// - run.finished
//
// JSON mode remains an aggregate of audit.Outcome values.
type Event struct {
	Type     string         `json:"type"`
	Binding  string         `json:"binding,omitempty"`
	Outcome  *audit.Outcome `json:"outcome,omitempty"`
	Bindings int            `json:"bindings,omitempty"`
	Checks   int            `json:"checks,omitempty"`
	ExitCode int            `json:"exit_code,omitempty"`
}

func eventFromOutcome(o audit.Outcome) Event {
	return Event{Type: "binding.result", Binding: o.Binding, Outcome: &o}
}
