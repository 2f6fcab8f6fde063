package cmd

import (
	"fmt"

	"github.com/PolarWolf314/keez/internal/configs"
	logger "github.com/PolarWolf314/keez/internal/logging"
	"github.com/PolarWolf314/keez/internal/ui"
	"github.com/PolarWolf314/keez/internal/workflows"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	dryRun  bool
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "keez",
		Short: "Simple and interactive manipulation of AWS SSM Parameter Store values",
		Long: `keez copies, creates, edits, exports and imports whole trees of
AWS Systems Manager Parameter Store parameters.

Parameters are addressed by path prefix. Edits happen in your editor as
YAML; only what you change is written back.

Use --dry-run to see which parameters an operation would touch without
writing anything. Read-only access to AWS is still performed.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing keez with dry-run=%t, verbose=%t, debug=%t", dryRun, verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println()
			figure.NewColorFigure("keez", "alligator2", "green", true).Print()
			fmt.Println()
			fmt.Println("Run " + ui.Code.Sprint("keez --help") + " to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "avoid any write operations on the Parameter Store")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output (may print secret values)")

	RootCmd.AddCommand(copyCmd)
	RootCmd.AddCommand(createCmd)
	RootCmd.AddCommand(editCmd)
	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(importCmd)
	RootCmd.AddCommand(loginCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(configCmd)
}

// operationMode maps --dry-run onto the workflow mode.
func operationMode() workflows.OperationMode {
	if dryRun {
		return workflows.ReadOnly
	}
	return workflows.ReadWrite
}

// dryRunNote is appended to final messages of read-only runs.
func dryRunNote() string {
	return "\n" + ui.Warning.Sprint("[dry-run]") + " Nothing was written. Run again without " + ui.Flag.Sprint("--dry-run") + " to apply."
}

func loadConfig() (*configs.Config, error) {
	Logger.Debugf("Loading config from %s", configs.UserKeezSettings.ConfigPath())
	return configs.LoadConfig()
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	dryRun = false
	verbose = false
	debug = false
	resetCopyCommandState()
	resetExportCommandState()
	resetImportCommandState()
	resetLogCommandState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears Changed on every flag so one test's flags don't
// leak into the next.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) { flag.Changed = false }
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetCobraFlagState(child)
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
