package pipeline

import (
	"context"

	perrors "github.com/anwit-paul/encryption-conversion/internal/errors"
)

// PassphraseProvider supplies the secret for one operation. Implementations
// may prompt interactively, read an environment variable, or return a fixed
// value in tests.
//
// A provider signals cancellation by returning ErrPassphraseCancelled; the
// pipeline then aborts before any key is derived or artifact touched.
type PassphraseProvider interface {
	// Passphrase returns the passphrase for the current operation.
	// confirm is true when the caller wants double entry (encode), so
	// interactive providers can ask twice.
	Passphrase(ctx context.Context, confirm bool) ([]byte, error)
}

// Static is a PassphraseProvider backed by a fixed byte slice, used for
// the environment-variable path and in tests.
type Static []byte

// Passphrase returns the fixed passphrase, or ErrEmptyPassphrase when the
// slice is empty.
func (s Static) Passphrase(ctx context.Context, confirm bool) ([]byte, error) {
	if len(s) == 0 {
		return nil, perrors.ErrEmptyPassphrase
	}
	return []byte(s), nil
}
