package output

import (
	"fmt"
	"testing"

	"bindaudit/internal/audit"
)

type recordingSink struct {
	writes []any
	closed bool

	writeErr error
	closeErr error
}

func (s *recordingSink) Write(v any) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes = append(s.writes, v)
	return nil
}

func (s *recordingSink) Close() error {
	s.closed = true
	return s.closeErr
}

func TestManagerFansOutWrites(t *testing.T) {
	m := NewManager()
	a := &recordingSink{}
	b := &recordingSink{}
	if err := m.AddSink(a); err != nil {
		t.Fatalf("AddSink: %v", err)
	}
	if err := m.AddSink(b); err != nil {
		t.Fatalf("AddSink: %v", err)
	}

	o := audit.Outcome{Binding: "python"}
	if err := m.Write(o); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := m.Write(Event{Type: "run.finished"}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	for name, s := range map[string]*recordingSink{"a": a, "b": b} {
		if len(s.writes) != 2 {
			t.Fatalf("sink %s: want 2 writes, got %d", name, len(s.writes))
		}
	}

	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !a.closed || !b.closed {
		t.Fatal("not all sinks closed")
	}
}

func TestManagerCollectsWriteErrors(t *testing.T) {
	m := NewManager()
	bad := &recordingSink{writeErr: fmt.Errorf("disk full")}
	good := &recordingSink{}
	_ = m.AddSink(bad)
	_ = m.AddSink(good)

	err := m.Write(audit.Outcome{Binding: "python"})
	if err == nil {
		t.Fatal("want error, got nil")
	}
	// The healthy sink must still have received the write.
	if len(good.writes) != 1 {
		t.Fatalf("healthy sink writes: want 1, got %d", len(good.writes))
	}
}

func TestManagerRejectsNilSink(t *testing.T) {
	m := NewManager()
	if err := m.AddSink(nil); err == nil {
		t.Fatal("want error, got nil")
	}
}
