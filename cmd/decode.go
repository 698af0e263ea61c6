package cmd

import (
	"fmt"
	"os"

	"github.com/anwit-paul/encryption-conversion/internal/configs"
	perrors "github.com/anwit-paul/encryption-conversion/internal/errors"
	"github.com/anwit-paul/encryption-conversion/internal/pipeline"
	"github.com/anwit-paul/encryption-conversion/internal/ui"

	"github.com/spf13/cobra"
)

var (
	decodeInPath  string
	decodeOutPath string
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Recovers the text hidden in a pixelock PNG image",
	Long: `Reads a pixelock PNG image, extracts the encrypted payload from its
pixels, and decrypts it with the passphrase.

The recovered text is printed to stdout, or written to a file with --out.
A wrong passphrase and a damaged image produce the same error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decode command")
		s, cleanup := startSpinner("Decrypting image...")
		defer cleanup()

		settings, err := configs.LoadSettings()
		if err != nil {
			Logger.Warnf("Falling back to default settings: %v", err)
		}

		pl := pipeline.New(passphraseProvider(s), settings)
		result, err := pl.Decode(cmd.Context(), pipeline.DecodeOptions{
			ImagePath: decodeInPath,
		})
		if err != nil {
			return fail(cmd, s, err)
		}
		Logger.Infof("Decode completed: %d bytes recovered from %dx%d image", len(result.Plaintext), result.Width, result.Height)

		if decodeOutPath != "" {
			if err := os.WriteFile(decodeOutPath, result.Plaintext, 0600); err != nil {
				return fail(cmd, s, fmt.Errorf("%w: %v", perrors.ErrArtifactWriteFailed, err))
			}
			s.FinalMSG = ui.Success.Sprint("✓") + " Text recovered to " + ui.Path.Sprint(decodeOutPath) + " " +
				ui.Muted.Sprintf("%d bytes", len(result.Plaintext))
			return nil
		}

		s.FinalMSG = ui.Success.Sprint("✓") + " Text recovered " +
			ui.Muted.Sprintf("%d bytes", len(result.Plaintext)) + "\n" +
			string(result.Plaintext)
		return nil
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeInPath, "in", "i", "", "pixelock PNG image to decode (required)")
	decodeCmd.Flags().StringVarP(&decodeOutPath, "out", "o", "", "write the recovered text to this file instead of stdout")
	_ = decodeCmd.MarkFlagRequired("in")
}
