// Package pipeline provides high-level orchestration for pixelock
// commands.
//
// The pipeline composes key derivation, authenticated encryption, and the
// byte-to-image codec into two flows: encode (plaintext → encrypted
// payload → image) and decode (image → encrypted payload → plaintext).
// It is the only layer the CLI talks to.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate pipeline method
//   - Formats the result for display
//
// The pipeline handles everything else:
//   - Acquiring the passphrase through an injected PassphraseProvider
//   - Running the flow steps in strict sequence
//   - Managing the generated image artifact's lifetime
//   - Recording journal entries
//
// # Sequential Contract
//
// Operations are mutually exclusive in time. The pipeline keeps an
// explicit state machine (Idle, Encoding, Decoding) and rejects a second
// operation while one is in flight with ErrOperationInProgress. There is
// no internal concurrency beyond running the slow key stretch off the
// caller's goroutine so context cancellation is honored.
//
// # Error Handling
//
// The pipeline returns sentinel errors from internal/errors. The CLI
// layer matches them with errors.Is() and must render all authentication
// failures with one generic message:
//
//	result, err := pl.Decode(ctx, opts)
//	if errors.Is(err, perrors.ErrDecryptFailed) {
//	    // render "wrong passphrase or damaged image", never more detail
//	}
package pipeline
