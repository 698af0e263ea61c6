// Package errors provides typed error values for the pixelock application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Input errors: Missing text, image, or passphrase (ErrEmptyPlaintext)
//   - IO errors: Unreadable or unwritable artifacts (ErrImageUnreadable)
//   - Crypto errors: Encryption/decryption failures (ErrDecryptFailed)
//   - State errors: Pipeline misuse (ErrOperationInProgress)
//
// # The generic decryption error
//
// ErrDecryptFailed is intentionally the only signal for every
// authentication failure: wrong passphrase, tampered image, and truncated
// payload all surface identically. The CLI layer must present one message
// for all of them so that nothing leaks about why verification failed.
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(passphrase) == 0 {
//	    return nil, errors.ErrEmptyPassphrase
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := pipeline.Decode(ctx, opts)
//	if errors.Is(err, perrors.ErrDecryptFailed) {
//	    // Show the single generic failure message
//	}
package errors
