package pipeline

import (
	"context"
	"sync"

	"github.com/anwit-paul/encryption-conversion/internal/configs"
	"github.com/anwit-paul/encryption-conversion/internal/crypto"
	perrors "github.com/anwit-paul/encryption-conversion/internal/errors"
)

// Pipeline orchestrates the encode and decode flows. It owns passphrase
// acquisition, threads derived keys into the cipher, moves cipher output
// through the image codec, and manages the lifetime of the generated
// image artifact.
//
// The API is strictly sequential: at most one operation runs at a time,
// and a second call while one is in flight fails with
// ErrOperationInProgress rather than queueing.
type Pipeline struct {
	mu           sync.Mutex
	state        State
	lastArtifact string

	provider PassphraseProvider
	settings configs.Settings
}

// New constructs a pipeline with the given passphrase provider and user
// settings.
func New(provider PassphraseProvider, settings configs.Settings) *Pipeline {
	return &Pipeline{
		provider: provider,
		settings: settings,
	}
}

// acquirePassphrase runs the provider and normalizes its failure modes:
// an empty result is an input error and cancellation aborts the whole
// operation before any cryptographic work.
func (p *Pipeline) acquirePassphrase(ctx context.Context, confirm bool) ([]byte, error) {
	passphrase, err := p.provider.Passphrase(ctx, confirm)
	if err != nil {
		return nil, err
	}
	if len(passphrase) == 0 {
		return nil, perrors.ErrEmptyPassphrase
	}
	return passphrase, nil
}

// deriveKey runs the deliberately slow key stretching off the calling
// goroutine so that context cancellation is honored. The stretch itself
// is not interruptible; on cancellation its result is discarded.
func deriveKey(ctx context.Context, passphrase []byte) ([]byte, error) {
	type derived struct {
		key []byte
		err error
	}

	ch := make(chan derived, 1)
	go func() {
		key, err := crypto.DeriveKey(passphrase)
		ch <- derived{key: key, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case d := <-ch:
		return d.key, d.err
	}
}
