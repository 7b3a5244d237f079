package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestMemoryLoggerSequencesEvents(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(CombatEvent{Type: EventTurnStart, Details: "a"})
	l.Log(CombatEvent{Type: EventDraw, Details: "b"})
	l.Log(CombatEvent{Type: EventDraw, Details: "c"})

	events := l.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, e := range events {
		if e.Seq != i+1 {
			t.Errorf("event %d has seq %d", i, e.Seq)
		}
	}

	if last := l.LastEvent(); last.Details != "c" {
		t.Errorf("last event = %q", last.Details)
	}
	if draws := l.EventsOfType(EventDraw); len(draws) != 2 {
		t.Errorf("expected 2 draw events, got %d", len(draws))
	}
}

func TestEventsSinceCursor(t *testing.T) {
	l := NewMemoryLogger()
	for i := 0; i < 4; i++ {
		l.Log(CombatEvent{Type: EventDraw})
	}

	since := l.EventsSince(2)
	if len(since) != 2 {
		t.Fatalf("expected 2 events past seq 2, got %d", len(since))
	}
	if since[0].Seq != 3 || since[1].Seq != 4 {
		t.Errorf("got seqs %d, %d", since[0].Seq, since[1].Seq)
	}
	if rest := l.EventsSince(4); len(rest) != 0 {
		t.Errorf("expected no events past seq 4, got %d", len(rest))
	}
}

func TestLogOverwritesCallerSeq(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(CombatEvent{Seq: 99})
	if got := l.LastEvent().Seq; got != 1 {
		t.Errorf("seq = %d, want 1", got)
	}
}

func TestEmptyLoggerLastEvent(t *testing.T) {
	l := NewMemoryLogger()
	if last := l.LastEvent(); last.Type != EventCombatStart || last.Seq != 0 {
		t.Errorf("expected zero event, got %+v", last)
	}
}

func TestTextLoggerWritesAndStores(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf)
	l.Log(NewDrawEvent(1, "Player Turn", "Strike"))
	l.Log(NewTurnEndEvent(1))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "T1  Player Turn | player draws Strike" {
		t.Errorf("line = %q", lines[0])
	}
	if len(l.Events()) != 2 {
		t.Errorf("expected events retained in memory, got %d", len(l.Events()))
	}
}

func TestFormatEvent(t *testing.T) {
	got := FormatEvent(CombatEvent{Turn: 2, Phase: "Enemy Turn", Details: "Gnawer acts"})
	if got != "T2  Enemy Turn  | Gnawer acts" {
		t.Errorf("formatted = %q", got)
	}

	// No phase keeps the column alignment.
	got = FormatEvent(CombatEvent{Turn: 12, Details: "=== Victory on turn 12 ==="})
	if got != "T12             | === Victory on turn 12 ===" {
		t.Errorf("formatted = %q", got)
	}
}

func TestFormatAll(t *testing.T) {
	events := []CombatEvent{
		{Turn: 1, Phase: "Player Turn", Details: "a"},
		{Turn: 1, Phase: "Player Turn", Details: "b"},
	}
	got := FormatAll(events)
	want := "T1  Player Turn | a\nT1  Player Turn | b\n"
	if got != want {
		t.Errorf("formatted = %q, want %q", got, want)
	}
}
