// Package logger provides leveled logging for pixelock CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is prefixed with a colored semantic tag.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only critical warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()       // Shown with --verbose or --debug
//	Logger.Debugf()      // Shown only with --debug
//	Logger.Warnf()       // Shown with --verbose or --debug
//	Logger.WarnfAlways() // Always shown (critical warnings)
//	Logger.Errorf()      // Always shown
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Derived key in %s", elapsed)
//
// Commands typically create a logger in their PersistentPreRun.
//
// Note: internal logs may record that a decryption attempt failed, but must
// never record anything that discriminates between failure causes beyond
// what the generic error carries.
package logger
