package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	perrors "github.com/anwit-paul/encryption-conversion/internal/errors"
	"github.com/anwit-paul/encryption-conversion/internal/pipeline"
	"github.com/anwit-paul/encryption-conversion/internal/utils"

	"github.com/briandowns/spinner"
)

// PassphraseEnvVar overrides interactive passphrase entry, mainly for
// scripting and CI.
const PassphraseEnvVar = "PIXELOCK_PASSPHRASE"

// passphraseProvider picks the passphrase source for this invocation:
// the environment variable if set, otherwise a hidden terminal prompt.
// The spinner is paused while the prompt is on screen.
func passphraseProvider(s *spinner.Spinner) pipeline.PassphraseProvider {
	if env := os.Getenv(PassphraseEnvVar); env != "" {
		Logger.Debugf("Using passphrase from %s", PassphraseEnvVar)
		return pipeline.Static(env)
	}
	return terminalProvider{spinner: s}
}

// terminalProvider prompts on the controlling terminal. When stdin is a
// pipe (text being piped into encode), the prompt falls back to /dev/tty.
type terminalProvider struct {
	spinner *spinner.Spinner
}

func (t terminalProvider) Passphrase(ctx context.Context, confirm bool) ([]byte, error) {
	// Pause the spinner so its animation doesn't garble the prompt line.
	if t.spinner != nil && t.spinner.Active() {
		t.spinner.Stop()
		defer t.spinner.Start()
	}

	read := utils.ReadPassphrase
	if !utils.IsTerminal() {
		read = utils.ReadPassphraseFromTTY
	}

	passphrase, err := read("Enter passphrase: ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perrors.ErrPassphraseCancelled, err)
	}
	if len(passphrase) == 0 {
		return nil, perrors.ErrEmptyPassphrase
	}

	if confirm {
		confirmation, err := read("Confirm passphrase: ")
		if err != nil {
			utils.ZeroBytes(passphrase)
			return nil, fmt.Errorf("%w: %v", perrors.ErrPassphraseCancelled, err)
		}
		match := bytes.Equal(passphrase, confirmation)
		utils.ZeroBytes(confirmation)
		if !match {
			utils.ZeroBytes(passphrase)
			return nil, perrors.ErrPassphraseMismatch
		}
	}

	return passphrase, nil
}
