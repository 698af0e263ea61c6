package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/anwit-paul/encryption-conversion/internal/audit"
	"github.com/anwit-paul/encryption-conversion/internal/crypto"
	perrors "github.com/anwit-paul/encryption-conversion/internal/errors"
	"github.com/anwit-paul/encryption-conversion/internal/imaging"

	"github.com/google/uuid"
)

// EncodeOptions configures an encode operation.
type EncodeOptions struct {
	// Plaintext is the message to protect. Must be non-empty.
	Plaintext []byte

	// OutputPath is where the image is written. If empty, the pipeline
	// generates a unique name in the configured output directory and
	// manages the artifact's lifetime itself.
	OutputPath string
}

// EncodeResult contains the outcome of an encode operation.
type EncodeResult struct {
	// OutputPath is the image file that was written.
	OutputPath string

	// PlaintextBytes is the size of the message that was sealed.
	PlaintextBytes int

	// PayloadBytes is the size of the encrypted envelope carried by the
	// image: plaintext plus nonce and tag.
	PayloadBytes int

	// Width and Height are the generated image dimensions.
	Width  int
	Height int

	// ReplacedArtifact is the previously generated image that was removed
	// to make room for this one, if any.
	ReplacedArtifact string
}

// Encode turns plaintext into an encrypted carrier image.
//
// The steps run in strict sequence: acquire passphrase, derive key,
// encrypt, map to pixels, persist as PNG. Nothing is derived or written
// when the passphrase prompt is cancelled or any input is empty.
//
// When the pipeline names the artifact itself, the previously generated
// image is removed first so at most one managed artifact exists at a
// time (unless the keep_artifacts setting is on).
func (p *Pipeline) Encode(ctx context.Context, opts EncodeOptions) (*EncodeResult, error) {
	if err := p.begin(Encoding); err != nil {
		return nil, err
	}
	defer p.end()

	entry := audit.NewEntry("encode")

	result, err := p.encode(ctx, opts)
	if err != nil {
		entry.Outcome = audit.OutcomeError
		entry.Category = failureCategory(err)
		audit.Log(entry)
		return nil, err
	}

	entry.Outcome = audit.OutcomeOK
	entry.PlaintextBytes = result.PlaintextBytes
	entry.PayloadBytes = result.PayloadBytes
	entry.Width = result.Width
	entry.Height = result.Height
	entry.Artifact = result.OutputPath
	audit.Log(entry)

	return result, nil
}

func (p *Pipeline) encode(ctx context.Context, opts EncodeOptions) (*EncodeResult, error) {
	if len(opts.Plaintext) == 0 {
		return nil, perrors.ErrEmptyPlaintext
	}

	passphrase, err := p.acquirePassphrase(ctx, true)
	if err != nil {
		return nil, err
	}

	key, err := deriveKey(ctx, passphrase)
	if err != nil {
		return nil, err
	}

	payload, err := crypto.Encrypt(opts.Plaintext, key)
	if err != nil {
		return nil, err
	}

	img := imaging.Encode(payload)

	result := &EncodeResult{
		PlaintextBytes: len(opts.Plaintext),
		PayloadBytes:   len(payload),
		Width:          img.Bounds().Dx(),
		Height:         img.Bounds().Dy(),
	}

	managed := opts.OutputPath == ""
	outputPath := opts.OutputPath
	if managed {
		outputPath = filepath.Join(p.settings.Output.Directory, fmt.Sprintf("pixelock-%s.png", uuid.NewString()))

		// Release the previous managed artifact before creating a new one.
		if released := p.releaseArtifact(); released != "" {
			result.ReplacedArtifact = released
		}
	}

	if err := imaging.WritePNG(outputPath, img); err != nil {
		return nil, err
	}

	if managed {
		p.mu.Lock()
		p.lastArtifact = outputPath
		p.mu.Unlock()
	}

	result.OutputPath = outputPath
	return result, nil
}

// releaseArtifact removes the previously generated managed image, if any,
// and returns its path. Honors the keep_artifacts setting.
func (p *Pipeline) releaseArtifact() string {
	p.mu.Lock()
	previous := p.lastArtifact
	p.lastArtifact = ""
	p.mu.Unlock()

	if previous == "" || p.settings.Output.KeepArtifacts {
		return ""
	}

	if err := os.Remove(previous); err != nil && !os.IsNotExist(err) {
		return ""
	}
	return previous
}
