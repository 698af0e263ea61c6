package cmd

import (
	"fmt"
	"strings"

	"github.com/anwit-paul/encryption-conversion/internal/audit"
	"github.com/anwit-paul/encryption-conversion/internal/ui"

	"github.com/spf13/cobra"
)

var logLimit int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Shows recent encode and decode operations",
	Long: `Prints the most recent entries from the local operation journal:
what ran, when, with what sizes, and whether it succeeded.

The journal never records passphrases, plaintext, or why a decryption
failed beyond the fact that it did.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := audit.ReadEntries()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read journal: %v", err)
		}

		if len(entries) == 0 {
			fmt.Println(ui.Muted.Sprint("no operations recorded yet"))
			return nil
		}

		if logLimit > 0 && len(entries) > logLimit {
			entries = entries[len(entries)-logLimit:]
		}

		var b strings.Builder
		for _, entry := range entries {
			mark := ui.Success.Sprint("✓")
			if entry.Outcome != audit.OutcomeOK {
				mark = ui.Error.Sprint("✗")
			}

			b.WriteString(fmt.Sprintf("%s %s %-7s", mark, ui.Muted.Sprint(entry.Timestamp), entry.Operation))
			if entry.Width > 0 {
				b.WriteString(" " + ui.Highlight.Sprintf("%d×%d", entry.Width, entry.Height))
			}
			if entry.PayloadBytes > 0 {
				b.WriteString(fmt.Sprintf(" %d bytes", entry.PayloadBytes))
			}
			if entry.Artifact != "" {
				b.WriteString(" " + ui.Path.Sprint(entry.Artifact))
			}
			if entry.Category != "" {
				b.WriteString(" " + ui.Muted.Sprint(entry.Category))
			}
			b.WriteString("\n")
		}

		fmt.Print(b.String())
		return nil
	},
}

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 10, "number of entries to show (0 for all)")
}
