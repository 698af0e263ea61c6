package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	perrors "github.com/anwit-paul/encryption-conversion/internal/errors"
)

const (
	// NonceSize is the AES-GCM nonce length in bytes (96 bits).
	NonceSize = 12

	// TagSize is the AES-GCM authentication tag length in bytes (128 bits).
	TagSize = 16

	// Overhead is the fixed size added to a plaintext by Encrypt:
	// the nonce prepended to the ciphertext plus the appended tag.
	Overhead = NonceSize + TagSize
)

// Encrypt seals plaintext under key with AES-256-GCM and returns the
// envelope nonce ‖ ciphertext ‖ tag as one contiguous byte sequence.
//
// A fresh random nonce is drawn from crypto/rand on every call, so two
// calls with identical inputs produce different envelopes. Zero-length
// plaintext is valid and produces an Overhead-sized envelope.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", perrors.ErrInvalidKeyLength, KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perrors.ErrEncryptFailed, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perrors.ErrEncryptFailed, err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: %v", perrors.ErrEncryptFailed, err)
	}

	// Seal appends ciphertext and tag after the nonce prefix.
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens an envelope produced by Encrypt.
//
// Every failure mode returns the same ErrDecryptFailed with no further
// detail, so the caller cannot learn whether the key was wrong or the
// envelope was damaged.
func Decrypt(payload, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", perrors.ErrInvalidKeyLength, KeySize, len(key))
	}

	if len(payload) < Overhead {
		return nil, perrors.ErrDecryptFailed
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, perrors.ErrDecryptFailed
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, perrors.ErrDecryptFailed
	}

	plaintext, err := gcm.Open(nil, payload[:NonceSize], payload[NonceSize:], nil)
	if err != nil {
		return nil, perrors.ErrDecryptFailed
	}

	return plaintext, nil
}
