package cmd

import (
	"fmt"

	"github.com/anwit-paul/encryption-conversion/internal/audit"
	"github.com/anwit-paul/encryption-conversion/internal/crypto"
	"github.com/anwit-paul/encryption-conversion/internal/imaging"
	"github.com/anwit-paul/encryption-conversion/internal/ui"

	"github.com/spf13/cobra"
)

var inspectInPath string

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Shows a pixelock image's geometry without decrypting it",
	Long: `Reports an image's dimensions, carrier capacity, and apparent payload
length (the bytes before the first zero sentinel). No passphrase is needed
and nothing is decrypted.

The apparent length is a lower bound: a payload that happens to contain a
zero byte looks shorter than it really is.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting inspect command")
		s, cleanup := startSpinner("Inspecting image...")
		defer cleanup()

		entry := audit.NewEntry("inspect")

		img, err := imaging.ReadPNG(inspectInPath)
		if err != nil {
			entry.Outcome = audit.OutcomeError
			entry.Category = "io"
			audit.Log(entry)
			return fail(cmd, s, err)
		}

		info := imaging.Inspect(img)
		Logger.Debugf("Image %dx%d, capacity %d, apparent payload %d", info.Width, info.Height, info.Capacity, info.Apparent)

		entry.Outcome = audit.OutcomeOK
		entry.Width = info.Width
		entry.Height = info.Height
		entry.PayloadBytes = info.Apparent
		audit.Log(entry)

		verdict := ui.Success.Sprint("✓") + " Large enough to hold an encrypted payload"
		if info.Apparent < crypto.Overhead {
			verdict = ui.Warning.Sprint("⚠") + " Apparent payload is smaller than the minimum envelope; this is probably not a pixelock image"
		}

		s.FinalMSG = ui.Info.Sprint("→") + " " + ui.Path.Sprint(inspectInPath) + "\n" +
			fmt.Sprintf("  dimensions: %s\n", ui.Highlight.Sprintf("%d×%d", info.Width, info.Height)) +
			fmt.Sprintf("  capacity:   %s\n", ui.Highlight.Sprintf("%d bytes", info.Capacity)) +
			fmt.Sprintf("  apparent:   %s\n", ui.Highlight.Sprintf("%d bytes", info.Apparent)) +
			verdict
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectInPath, "in", "i", "", "PNG image to inspect (required)")
	_ = inspectCmd.MarkFlagRequired("in")
}
