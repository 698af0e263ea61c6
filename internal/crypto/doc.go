// Package crypto provides the cryptographic core of pixelock.
//
// # Key Derivation
//
// Keys are stretched from a passphrase with PBKDF2-HMAC-SHA256 using
// 100,000 iterations and a fixed, hardcoded salt. The fixed salt is a
// deliberate design trade-off: it keeps a generated image decryptable
// from the passphrase alone, at the cost of allowing precomputed
// dictionary attacks. See DeriveKey.
//
// # Authenticated Encryption
//
// Payloads are sealed with AES-256-GCM. The wire envelope is
//
//	nonce (12 bytes) ‖ ciphertext (len(plaintext) bytes) ‖ tag (16 bytes)
//
// so every envelope is exactly Overhead bytes longer than its plaintext.
// Encryption draws a fresh random nonce per call and is therefore
// non-deterministic; decryption verifies the tag and reports every
// failure as the single generic ErrDecryptFailed.
//
// # Security Considerations
//
// Decrypt must never distinguish a wrong key from a corrupted envelope,
// neither in its error value nor in anything it logs. Callers hold the
// same obligation when presenting failures to users.
package crypto
