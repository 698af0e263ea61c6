package audit

import (
	"testing"
)

func TestNewEntry(t *testing.T) {
	entry := NewEntry("encode")

	if entry.ID == "" {
		t.Error("Expected a generated entry ID")
	}
	if entry.Operation != "encode" {
		t.Errorf("Expected operation %q, got %q", "encode", entry.Operation)
	}
	if entry.Timestamp == "" {
		t.Error("Expected a timestamp")
	}

	other := NewEntry("decode")
	if other.ID == entry.ID {
		t.Error("Expected distinct IDs across entries")
	}
}

func TestLogAndReadEntries(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	first := NewEntry("encode")
	first.Outcome = OutcomeOK
	first.PlaintextBytes = 5
	first.PayloadBytes = 33
	first.Width = 6
	first.Height = 6
	first.Artifact = "/tmp/pixelock-abc.png"
	Log(first)

	second := NewEntry("decode")
	second.Outcome = OutcomeError
	second.Category = "crypto"
	Log(second)

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	if entries[0].ID != first.ID || entries[0].PayloadBytes != 33 {
		t.Errorf("First entry did not round trip: %+v", entries[0])
	}
	if entries[1].Operation != "decode" || entries[1].Category != "crypto" {
		t.Errorf("Second entry did not round trip: %+v", entries[1])
	}
}

func TestReadEntries_MissingJournal(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("Expected no error for a missing journal, got: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"id":"a","ts":"2026-01-02T03:04:05.000000Z","op":"encode","outcome":"ok"}
not json at all
{"id":"b","ts":"2026-01-02T03:04:06.000000Z","op":"decode","outcome":"error","category":"io"}

{"broken":
`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 valid entries, got %d", len(entries))
	}
	if entries[0].ID != "a" || entries[1].ID != "b" {
		t.Errorf("Unexpected entries: %+v", entries)
	}
}

func TestParseEntries_Empty(t *testing.T) {
	entries, err := ParseEntries(nil)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil for empty input, got %+v", entries)
	}
}
