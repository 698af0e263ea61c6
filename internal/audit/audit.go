package audit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Entry represents a single journal entry.
type Entry struct {
	ID        string `json:"id"` // Random UUID per entry.
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"` // "encode", "decode", or "inspect".
	Outcome   string `json:"outcome"`

	// Optional fields depending on operation.
	PlaintextBytes int    `json:"plaintext_bytes,omitempty"`
	PayloadBytes   int    `json:"payload_bytes,omitempty"`
	Width          int    `json:"width,omitempty"`
	Height         int    `json:"height,omitempty"`
	Artifact       string `json:"artifact,omitempty"` // Output image path for encode.
	Category       string `json:"category,omitempty"` // Failure category: input, io, crypto.
}

// Outcome values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// NewEntry creates an entry for the given operation with a fresh ID and
// timestamp.
func NewEntry(op string) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000000Z"),
		Operation: op,
	}
}

// Log appends an entry to the journal.
// Journaling is best-effort: operations must not fail because the journal
// could not be written, so errors are swallowed.
//
// Entries never record why an authenticated decryption failed beyond the
// "crypto" category; wrong passphrase and corrupted image are one and the
// same here too.
func Log(entry Entry) {
	path, err := JournalPath()
	if err != nil {
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// JournalPath returns the path to the journal file under the user config
// directory.
func JournalPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(configDir, "pixelock", "journal.jsonl"), nil
}

// ReadEntries reads all entries from the journal.
// Returns an empty slice if the journal doesn't exist.
func ReadEntries() ([]Entry, error) {
	path, err := JournalPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into journal entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
