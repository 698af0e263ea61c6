package crypto

import (
	"bytes"
	"errors"
	"testing"

	perrors "github.com/anwit-paul/encryption-conversion/internal/errors"
)

// testKey derives a key and fails the test on error.
func testKey(t *testing.T, passphrase string) []byte {
	t.Helper()
	key, err := DeriveKey([]byte(passphrase))
	if err != nil {
		t.Fatalf("Failed to derive test key: %v", err)
	}
	return key
}

func TestEncrypt_EnvelopeLength(t *testing.T) {
	key := testKey(t, "1234")

	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", []byte{}},
		{"single byte", []byte{0x42}},
		{"hello", []byte("hello")},
		{"kilobyte", bytes.Repeat([]byte{0xAB}, 1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Encrypt(tt.plaintext, key)
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			want := len(tt.plaintext) + Overhead
			if len(payload) != want {
				t.Errorf("Expected %d-byte envelope, got %d bytes", want, len(payload))
			}
		})
	}
}

func TestEncrypt_NonDeterministic(t *testing.T) {
	key := testKey(t, "1234")

	first, err := Encrypt([]byte("hello"), key)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	second, err := Encrypt([]byte("hello"), key)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if bytes.Equal(first, second) {
		t.Error("Two encryptions of the same plaintext produced identical envelopes")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := testKey(t, "1234")

	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", []byte{}},
		{"hello", []byte("hello")},
		{"binary", []byte{0x00, 0xFF, 0x01, 0xFE}},
		{"unicode", []byte("héllo wörld ✓ 🔒")},
		{"large", bytes.Repeat([]byte("0123456789"), 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Encrypt(tt.plaintext, key)
			if err != nil {
				t.Fatalf("Encrypt failed: %v", err)
			}

			recovered, err := Decrypt(payload, key)
			if err != nil {
				t.Fatalf("Decrypt failed: %v", err)
			}

			if !bytes.Equal(recovered, tt.plaintext) {
				t.Errorf("Round trip mismatch: got %q, want %q", recovered, tt.plaintext)
			}
		})
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	payload, err := Encrypt([]byte("hello"), testKey(t, "1234"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	_, err = Decrypt(payload, testKey(t, "0000"))
	if !errors.Is(err, perrors.ErrDecryptFailed) {
		t.Errorf("Expected ErrDecryptFailed, got: %v", err)
	}
}

func TestDecrypt_TamperedPayload(t *testing.T) {
	key := testKey(t, "1234")

	payload, err := Encrypt([]byte("hello"), key)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// Flipping any byte, whether in the nonce, ciphertext, or tag,
	// must yield the same generic failure.
	offsets := []int{0, NonceSize, NonceSize + 2, len(payload) - 1}
	for _, off := range offsets {
		tampered := bytes.Clone(payload)
		tampered[off] ^= 0x01

		if _, err := Decrypt(tampered, key); !errors.Is(err, perrors.ErrDecryptFailed) {
			t.Errorf("Tampering at offset %d: expected ErrDecryptFailed, got: %v", off, err)
		}
	}
}

func TestDecrypt_TruncatedPayload(t *testing.T) {
	key := testKey(t, "1234")

	tests := []struct {
		name    string
		payload []byte
	}{
		{"empty", []byte{}},
		{"shorter than nonce", make([]byte, NonceSize-1)},
		{"nonce only", make([]byte, NonceSize)},
		{"one short of minimum", make([]byte, Overhead-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decrypt(tt.payload, key); !errors.Is(err, perrors.ErrDecryptFailed) {
				t.Errorf("Expected ErrDecryptFailed, got: %v", err)
			}
		})
	}
}

func TestBadKeyLength(t *testing.T) {
	short := make([]byte, 16)

	if _, err := Encrypt([]byte("hello"), short); !errors.Is(err, perrors.ErrInvalidKeyLength) {
		t.Errorf("Encrypt: expected ErrInvalidKeyLength, got: %v", err)
	}

	if _, err := Decrypt(make([]byte, Overhead), short); !errors.Is(err, perrors.ErrInvalidKeyLength) {
		t.Errorf("Decrypt: expected ErrInvalidKeyLength, got: %v", err)
	}
}
