package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	perrors "github.com/anwit-paul/encryption-conversion/internal/errors"
	"github.com/anwit-paul/encryption-conversion/internal/ui"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup
// function calls ui.EnsureNewline() on the final message before printing
// it, keeping output formatting consistent across commands.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// fail renders err as the spinner's final message and returns it with
// cobra's own error echo silenced, so the process exits non-zero without
// printing the error twice.
func fail(cmd *cobra.Command, s *spinner.Spinner, err error) error {
	Logger.Errorf("%v", err)
	s.FinalMSG = failureMessage(err)
	cmd.SilenceErrors = true
	return err
}

// failureMessage maps a pipeline error onto the single user-facing line
// for its category. Authentication failures always get the same wording,
// whatever their cause.
func failureMessage(err error) string {
	cross := ui.Error.Sprint("✗") + " "

	switch {
	case errors.Is(err, perrors.ErrDecryptFailed):
		return cross + "Could not decrypt: wrong passphrase or damaged image"
	case errors.Is(err, perrors.ErrEmptyPassphrase):
		return cross + "A passphrase is required"
	case errors.Is(err, perrors.ErrPassphraseCancelled):
		return cross + "Cancelled"
	case errors.Is(err, perrors.ErrPassphraseMismatch):
		return cross + "Passphrases do not match"
	case errors.Is(err, perrors.ErrEmptyPlaintext):
		return cross + "Nothing to encrypt: provide " + ui.Code.Sprint("--text") + ", " + ui.Code.Sprint("--in") + ", or pipe text on stdin"
	case errors.Is(err, perrors.ErrNoInputImage):
		return cross + "An input image is required: use " + ui.Code.Sprint("--in")
	case errors.Is(err, perrors.ErrImageUnreadable):
		return cross + "Could not read the image: " + err.Error()
	case errors.Is(err, perrors.ErrTextFileUnreadable):
		return cross + "Could not read the text file: " + err.Error()
	case errors.Is(err, perrors.ErrArtifactWriteFailed):
		return cross + "Could not write the output file: " + err.Error()
	case errors.Is(err, perrors.ErrOperationInProgress):
		return cross + "Another operation is already running"
	default:
		return cross + err.Error()
	}
}
