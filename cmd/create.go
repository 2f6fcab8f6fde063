package cmd

import (
	"github.com/PolarWolf314/keez/internal/ui"
	"github.com/PolarWolf314/keez/internal/workflows"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Interactively create parameters in bulk",
	Long: `Opens your editor on an example YAML document. Replace the examples
with the parameters you want, save and quit, and keez creates them.

Existing parameters are never overwritten; see keez edit for changing them.

The editor is taken from editor.command in the keez config, then $EDITOR.
Quit without changing the file to abort.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting create command")
		spinner, cleanup := startSpinner("Creating parameters...", verbose)
		defer cleanup()

		svc, err := newServices(cmd.Context(), serviceNeeds{editor: true})
		if err != nil {
			return fail(spinner, err)
		}
		svc.Editor = pauseSpinnerWhileEditing(spinner, svc.Editor)

		result, err := workflows.Create(cmd.Context(), svc, workflows.CreateOptions{Mode: operationMode()})
		if err != nil {
			return fail(spinner, err)
		}
		Logger.Infof("Create finished, %d parameters", len(result.Written))

		verb := "Created"
		if result.DryRun {
			verb = "Would create"
		}
		finalMessage := ui.Success.Sprint("✓") + " " + verb + " " + plural(len(result.Written), "parameter") + ":\n" +
			formatKeys(result.Written)
		if result.DryRun {
			finalMessage += dryRunNote()
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
