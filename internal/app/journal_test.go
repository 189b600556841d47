package app

import (
	"testing"
	"time"
)

func TestJournalNewestFirstAndBounded(t *testing.T) {
	j := NewJournal(3)
	for i, text := range []string{"a", "b", "c", "d"} {
		j.Add(float64(i), text)
	}
	entries := j.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"d", "c", "b"} {
		if entries[i].Text != want {
			t.Errorf("position %d: expected %q, got %q", i, want, entries[i].Text)
		}
	}
	if got := j.Latest(2); len(got) != 2 || got[0].Text != "d" {
		t.Errorf("unexpected Latest(2): %v", got)
	}
	if got := j.Latest(10); len(got) != 3 {
		t.Errorf("expected Latest to cap at the length, got %d", len(got))
	}
}

func TestEntryStamp(t *testing.T) {
	e := Entry{Time: 125.7, Text: "x"}
	if e.Stamp() != "02:05" {
		t.Errorf("expected 02:05, got %s", e.Stamp())
	}
	if e.String() != "02:05 x" {
		t.Errorf("unexpected String: %q", e.String())
	}
}

func TestClockClampsDelta(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewClockWith(func() time.Time { return now })

	now = now.Add(20 * time.Millisecond)
	if got := c.Tick(); got < 0.0199 || got > 0.0201 {
		t.Errorf("expected 0.02, got %f", got)
	}
	now = now.Add(3 * time.Second)
	if got := c.Tick(); got != 0.05 {
		t.Errorf("expected clamp to 0.05, got %f", got)
	}
	now = now.Add(-time.Second)
	if got := c.Tick(); got != 0 {
		t.Errorf("expected 0 for a clock going backwards, got %f", got)
	}
}
