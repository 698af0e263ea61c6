package crypto

import (
	"crypto/sha256"

	perrors "github.com/anwit-paul/encryption-conversion/internal/errors"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32

	// Iterations is the PBKDF2 work factor. Deliberately large so that
	// brute-forcing passphrases is slow.
	Iterations = 100000
)

// fixedSalt is hardcoded so that the same passphrase always derives the
// same key, which is what keeps images portable between machines without
// any side channel for salt exchange. The cost is that security reduces
// to passphrase strength alone and precomputed-dictionary attacks work
// across all users. Changing this value breaks every previously generated
// image.
var fixedSalt = []byte("pixelock.kdf.v1")

// DeriveKey stretches a passphrase into a 256-bit key using
// PBKDF2-HMAC-SHA256 with a fixed salt and iteration count.
//
// The function is pure: identical passphrases always yield identical keys.
// It is also intentionally expensive; callers that care about
// responsiveness should run it off the hot path.
func DeriveKey(passphrase []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, perrors.ErrEmptyPassphrase
	}

	return pbkdf2.Key(passphrase, fixedSalt, Iterations, KeySize, sha256.New), nil
}
