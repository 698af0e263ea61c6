package pipeline

import (
	"context"
	"errors"

	"github.com/anwit-paul/encryption-conversion/internal/audit"
	"github.com/anwit-paul/encryption-conversion/internal/crypto"
	perrors "github.com/anwit-paul/encryption-conversion/internal/errors"
	"github.com/anwit-paul/encryption-conversion/internal/imaging"
)

// DecodeOptions configures a decode operation.
type DecodeOptions struct {
	// ImagePath is the carrier image to read. Must be non-empty.
	ImagePath string
}

// DecodeResult contains the outcome of a decode operation.
type DecodeResult struct {
	// Plaintext is the recovered message.
	Plaintext []byte

	// PayloadBytes is the size of the encrypted envelope extracted from
	// the image.
	PayloadBytes int

	// Width and Height are the carrier image dimensions.
	Width  int
	Height int
}

// Decode recovers plaintext from a carrier image.
//
// The image is read first so file problems surface before the passphrase
// prompt; no cryptographic work happens until the prompt completes. The
// pixel scan, key derivation, and authenticated decryption then run in
// strict sequence. Authentication failures surface as the single generic
// ErrDecryptFailed regardless of cause.
func (p *Pipeline) Decode(ctx context.Context, opts DecodeOptions) (*DecodeResult, error) {
	if err := p.begin(Decoding); err != nil {
		return nil, err
	}
	defer p.end()

	entry := audit.NewEntry("decode")

	result, err := p.decode(ctx, opts)
	if err != nil {
		entry.Outcome = audit.OutcomeError
		entry.Category = failureCategory(err)
		audit.Log(entry)
		return nil, err
	}

	entry.Outcome = audit.OutcomeOK
	entry.PlaintextBytes = len(result.Plaintext)
	entry.PayloadBytes = result.PayloadBytes
	entry.Width = result.Width
	entry.Height = result.Height
	audit.Log(entry)

	return result, nil
}

func (p *Pipeline) decode(ctx context.Context, opts DecodeOptions) (*DecodeResult, error) {
	if opts.ImagePath == "" {
		return nil, perrors.ErrNoInputImage
	}

	img, err := imaging.ReadPNG(opts.ImagePath)
	if err != nil {
		return nil, err
	}

	passphrase, err := p.acquirePassphrase(ctx, false)
	if err != nil {
		return nil, err
	}

	payload := imaging.Decode(img)

	key, err := deriveKey(ctx, passphrase)
	if err != nil {
		return nil, err
	}

	plaintext, err := crypto.Decrypt(payload, key)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DecodeResult{
		Plaintext:    plaintext,
		PayloadBytes: len(payload),
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
	}, nil
}

// failureCategory maps an error onto a coarse journal category. The
// crypto category deliberately covers all authentication failures with
// no further detail.
func failureCategory(err error) string {
	switch {
	case errors.Is(err, perrors.ErrDecryptFailed),
		errors.Is(err, perrors.ErrEncryptFailed),
		errors.Is(err, perrors.ErrInvalidKeyLength):
		return "crypto"
	case errors.Is(err, perrors.ErrImageUnreadable),
		errors.Is(err, perrors.ErrTextFileUnreadable),
		errors.Is(err, perrors.ErrArtifactWriteFailed):
		return "io"
	case errors.Is(err, perrors.ErrEmptyPassphrase),
		errors.Is(err, perrors.ErrPassphraseCancelled),
		errors.Is(err, perrors.ErrPassphraseMismatch),
		errors.Is(err, perrors.ErrEmptyPlaintext),
		errors.Is(err, perrors.ErrNoInputImage):
		return "input"
	default:
		return "other"
	}
}
