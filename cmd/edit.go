package cmd

import (
	"github.com/PolarWolf314/keez/internal/ui"
	"github.com/PolarWolf314/keez/internal/workflows"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <prefix>",
	Short: "Interactively edit existing parameters under a prefix",
	Long: `Recursively reads every parameter under <prefix> and opens them in your
editor as YAML. Values and types you change are written back; everything
else is left alone. Removing a key from the document does not delete it.

Adding keys is not allowed here; use keez create for new parameters.

Examples:
  keez edit /prod/app
  keez --dry-run edit /prod/app   # show the diff without writing`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting edit command")
		prefix := args[0]

		spinner, cleanup := startSpinner("Fetching parameters...", verbose)
		defer cleanup()

		svc, err := newServices(cmd.Context(), serviceNeeds{editor: true})
		if err != nil {
			return fail(spinner, err)
		}
		svc.Editor = pauseSpinnerWhileEditing(spinner, svc.Editor)

		result, err := workflows.Edit(cmd.Context(), svc, workflows.EditOptions{
			Prefix: prefix,
			Mode:   operationMode(),
		})
		if err != nil {
			return fail(spinner, err)
		}
		Logger.Infof("Fetched %d parameters, %d changed", result.Fetched, len(result.Changes))

		if len(result.Changes) == 0 {
			spinner.FinalMSG = ui.Info.Sprint("ℹ") + " No values or types changed under " + ui.Highlight.Sprint(prefix) + ", nothing to write"
			return nil
		}

		finalMessage := ""
		if verbose || debug || result.DryRun {
			finalMessage += ui.ColorDiff(ui.UnifiedDiff(prefix, result.Before, result.After)) + "\n"
		}

		verb := "Updated"
		if result.DryRun {
			verb = "Would update"
		}
		finalMessage += ui.Success.Sprint("✓") + " " + verb + " " + plural(len(result.Written), "parameter") +
			" " + ui.Muted.Sprintf("of %d fetched", result.Fetched) + ":\n" +
			formatKeys(result.Written)
		if result.DryRun {
			finalMessage += dryRunNote()
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
