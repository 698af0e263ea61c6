package main

import (
	"fmt"
	"os"

	"github.com/anwit-paul/encryption-conversion/cmd"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pixelock",
	Short: "Pixelock - Turn text into encrypted PNG images and back.",
	Long: `Pixelock seals text inside a freshly generated PNG image: the text is
encrypted under a passphrase with authenticated encryption, and the
resulting bytes become the image's pixels. Anyone with the image and the
passphrase can recover the text; anyone without the passphrase gets
nothing but noise.

Usage:
  pixelock <command> [flags]

Available Commands:
  encode     Encrypt text into a new PNG image
  decode     Recover the text from a pixelock image
  inspect    Show an image's geometry without decrypting
  log        Show recent operations

Run 'pixelock help <command>' for more details on a specific command.
`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewFigure("pixelock", "", true).Print()
		fmt.Println("Run 'pixelock --help' to see available commands.")
	},
}

func main() {
	cmd.RegisterCommands(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
