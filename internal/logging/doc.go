// Package logger provides leveled logging for keez commands.
//
// Verbosity is controlled by the root command's flags:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows everything, including intermediate documents
//
// Without flags only user-facing warnings reach the terminal; command
// results are reported through spinner final messages instead.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose or --debug
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Shown with --verbose or --debug
//	Logger.WarnfUser()      // Always shown
//	Logger.Errorf()         // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// Parameter values are sensitive. Only log them at debug level.
package logger
