package cmd

import (
	"fmt"
	"os"

	"github.com/anwit-paul/encryption-conversion/internal/configs"
	perrors "github.com/anwit-paul/encryption-conversion/internal/errors"
	"github.com/anwit-paul/encryption-conversion/internal/pipeline"
	"github.com/anwit-paul/encryption-conversion/internal/ui"
	"github.com/anwit-paul/encryption-conversion/internal/utils"

	"github.com/spf13/cobra"
)

var (
	encodeText    string
	encodeInPath  string
	encodeOutPath string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encrypts text under a passphrase and packs it into a PNG image",
	Long: `Encrypts text under a passphrase and packs the resulting ciphertext
into a freshly generated PNG image, one payload byte per pixel.

The text comes from --text, from a file via --in, or from stdin when piped.
The passphrase is prompted for twice (or taken from PIXELOCK_PASSPHRASE).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encode command")
		s, cleanup := startSpinner("Encrypting text into an image...")
		defer cleanup()

		plaintext, err := resolvePlaintext()
		if err != nil {
			return fail(cmd, s, err)
		}
		Logger.Debugf("Resolved %d bytes of plaintext", len(plaintext))

		settings, err := configs.LoadSettings()
		if err != nil {
			Logger.Warnf("Falling back to default settings: %v", err)
		}

		pl := pipeline.New(passphraseProvider(s), settings)
		result, err := pl.Encode(cmd.Context(), pipeline.EncodeOptions{
			Plaintext:  plaintext,
			OutputPath: encodeOutPath,
		})
		if err != nil {
			return fail(cmd, s, err)
		}
		Logger.Infof("Encode completed: %d payload bytes in %dx%d image", result.PayloadBytes, result.Width, result.Height)

		finalMessage := ui.Success.Sprint("✓") + " Image written to " + ui.Path.Sprint(result.OutputPath) + "\n" +
			ui.Info.Sprint("→") + " " + fmt.Sprintf("%d bytes of text sealed into a %s pixel grid %s",
			result.PlaintextBytes,
			ui.Highlight.Sprintf("%d×%d", result.Width, result.Height),
			ui.Muted.Sprintf("%d-byte payload", result.PayloadBytes))
		if result.ReplacedArtifact != "" {
			finalMessage += "\n" + ui.Muted.Sprint("replaced "+result.ReplacedArtifact)
		}
		s.FinalMSG = finalMessage
		return nil
	},
}

// resolvePlaintext picks the text source in priority order: the --text
// flag, the --in file, then piped stdin.
func resolvePlaintext() ([]byte, error) {
	switch {
	case encodeText != "":
		return []byte(encodeText), nil
	case encodeInPath != "":
		data, err := os.ReadFile(encodeInPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", perrors.ErrTextFileUnreadable, err)
		}
		if len(data) == 0 {
			return nil, perrors.ErrEmptyPlaintext
		}
		return data, nil
	case !utils.IsTerminal():
		data, err := utils.ReadStdin()
		if err != nil {
			return nil, perrors.ErrEmptyPlaintext
		}
		return data, nil
	default:
		return nil, perrors.ErrEmptyPlaintext
	}
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeText, "text", "t", "", "text to encrypt")
	encodeCmd.Flags().StringVarP(&encodeInPath, "in", "i", "", "read text from this file")
	encodeCmd.Flags().StringVarP(&encodeOutPath, "out", "o", "", "write the image here (default: generated name in the output directory)")
}
