package cmd

import (
	logger "github.com/anwit-paul/encryption-conversion/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

// RegisterCommands attaches the pixelock commands and persistent flags to
// the root command.
func RegisterCommands(root *cobra.Command) {
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	root.SetGlobalNormalizationFunc(normalizeFlagName)

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing pixelock with verbose=%t, debug=%t", verbose, debug)
	}

	root.AddCommand(encodeCmd)
	root.AddCommand(decodeCmd)
	root.AddCommand(inspectCmd)
	root.AddCommand(logCmd)
}

// normalizeFlagName accepts the long spellings --input/--output as
// aliases for --in/--out.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "input":
		name = "in"
	case "output":
		name = "out"
	}
	return pflag.NormalizedName(name)
}

// Helper functions for testing

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}

	encodeText = ""
	encodeInPath = ""
	encodeOutPath = ""
	decodeInPath = ""
	decodeOutPath = ""
	inspectInPath = ""
	logLimit = 10
}
