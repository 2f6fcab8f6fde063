package cmd

import (
	"github.com/PolarWolf314/keez/internal/ui"
	"github.com/PolarWolf314/keez/internal/workflows"
	"github.com/spf13/cobra"
)

var copyEdit bool

func init() {
	copyCmd.Flags().BoolVarP(&copyEdit, "edit", "e", false, "interactively edit values before writing")
}

func resetCopyCommandState() {
	copyEdit = false
}

var copyCmd = &cobra.Command{
	Use:   "copy <source> <destination>",
	Short: "Transplant all parameters under a prefix to another prefix",
	Long: `Recursively reads every parameter under <source> and writes it to the
equivalent key under <destination>.

For example, with these parameters:
  /preprod/foo
  /preprod/bar

running keez copy /preprod /prod-eu/baz creates:
  /prod-eu/baz/foo
  /prod-eu/baz/bar

Existing parameters are never overwritten: the copy stops at the first
destination key that already exists.

Examples:
  keez copy /preprod /prod-eu/baz
  keez copy --edit /preprod /prod
  keez --dry-run copy /preprod /prod`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting copy command")
		source, destination := args[0], args[1]
		Logger.Debugf("Source: %s, destination: %s, edit: %t", source, destination, copyEdit)

		spinner, cleanup := startSpinner("Copying parameters...", verbose)
		defer cleanup()

		svc, err := newServices(cmd.Context(), serviceNeeds{editor: copyEdit})
		if err != nil {
			return fail(spinner, err)
		}
		svc.Editor = pauseSpinnerWhileEditing(spinner, svc.Editor)

		result, err := workflows.Copy(cmd.Context(), svc, workflows.CopyOptions{
			Source:      source,
			Destination: destination,
			Edit:        copyEdit,
			Mode:        operationMode(),
		})
		if err != nil {
			return fail(spinner, err)
		}
		Logger.Infof("Copy finished, %d parameters", len(result.Written))

		verb := "Copied"
		if result.DryRun {
			verb = "Would copy"
		}
		finalMessage := ui.Success.Sprint("✓") + " " + verb + " " + plural(len(result.Written), "parameter") +
			" from " + ui.Highlight.Sprint(source) + " to " + ui.Highlight.Sprint(destination) + ":\n" +
			formatKeys(result.Written)
		if result.DryRun {
			finalMessage += dryRunNote()
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
