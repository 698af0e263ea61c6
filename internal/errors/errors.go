package errors

import "errors"

// Input errors indicate missing or unusable user input.
var (
	// ErrEmptyPassphrase indicates the passphrase prompt returned nothing.
	ErrEmptyPassphrase = errors.New("passphrase must not be empty")

	// ErrPassphraseCancelled indicates the user aborted the passphrase prompt.
	ErrPassphraseCancelled = errors.New("passphrase entry cancelled")

	// ErrPassphraseMismatch indicates the confirmation entry did not match.
	ErrPassphraseMismatch = errors.New("passphrases do not match")

	// ErrEmptyPlaintext indicates there is no text to encrypt.
	ErrEmptyPlaintext = errors.New("no text provided to encrypt")

	// ErrNoInputImage indicates no image was supplied for decoding.
	ErrNoInputImage = errors.New("no input image provided")
)

// IO errors indicate issues reading or writing artifacts.
var (
	// ErrTextFileUnreadable indicates the plaintext source file could not be read.
	ErrTextFileUnreadable = errors.New("text file could not be read")

	// ErrImageUnreadable indicates the carrier image could not be read or parsed.
	ErrImageUnreadable = errors.New("image file could not be read or is not a valid PNG")

	// ErrArtifactWriteFailed indicates the output artifact could not be written.
	ErrArtifactWriteFailed = errors.New("failed to write output file")
)

// Cryptographic errors indicate failures during encryption or decryption.
//
// ErrDecryptFailed deliberately covers every authentication failure mode.
// Callers must not attempt to distinguish a wrong passphrase from a
// corrupted or foreign image.
var (
	// ErrEncryptFailed indicates the plaintext could not be sealed.
	ErrEncryptFailed = errors.New("encryption failed")

	// ErrDecryptFailed indicates authenticated decryption failed.
	ErrDecryptFailed = errors.New("decryption failed: wrong passphrase or damaged image")

	// ErrInvalidKeyLength indicates the derived key has an unexpected length.
	ErrInvalidKeyLength = errors.New("invalid key length")
)

// State errors indicate misuse of the sequential pipeline API.
var (
	// ErrOperationInProgress indicates an encode or decode is already running.
	ErrOperationInProgress = errors.New("another operation is already in progress")
)
