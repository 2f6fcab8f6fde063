package cmd

import (
	"github.com/PolarWolf314/keez/internal/ui"
	"github.com/PolarWolf314/keez/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	importFilename string
	importEdit     bool
)

func init() {
	importCmd.Flags().StringVar(&importFilename, "import-filename", "", "file written by keez export")
	importCmd.Flags().BoolVarP(&importEdit, "edit", "e", false, "interactively edit values before writing")
	_ = importCmd.MarkFlagRequired("import-filename")
}

func resetImportCommandState() {
	importFilename = ""
	importEdit = false
}

var importCmd = &cobra.Command{
	Use:   "import <destination>",
	Short: "Import parameters from a previous keez export",
	Long: `Opens a file written by keez export and writes its parameters under
<destination>, which replaces the prefix they were exported from.

If /foo was exported with parameters /foo/a and /foo/b, importing with a
destination of /baz/quux creates /baz/quux/a and /baz/quux/b. Use the
original prefix to recreate the same parameters.

The file must have been sealed with the export key in your keyring.
Existing parameters are never overwritten.

Examples:
  keez import --import-filename ./foo.yaml.enc /path/prefix/foo
  keez import --edit --import-filename ./foo.yaml.enc /baz/quux`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting import command")
		destination := args[0]
		Logger.Debugf("Destination: %s, file: %s, edit: %t", destination, importFilename, importEdit)

		spinner, cleanup := startSpinner("Importing parameters...", verbose)
		defer cleanup()

		svc, err := newServices(cmd.Context(), serviceNeeds{sealer: true, editor: importEdit})
		if err != nil {
			return fail(spinner, err)
		}
		svc.Editor = pauseSpinnerWhileEditing(spinner, svc.Editor)

		result, err := workflows.Import(cmd.Context(), svc, workflows.ImportOptions{
			Destination: destination,
			Filename:    importFilename,
			Edit:        importEdit,
			Mode:        operationMode(),
		})
		if err != nil {
			return fail(spinner, err)
		}
		Logger.Infof("Imported from prefix %s", result.SourcePrefix)

		verb := "Imported"
		if result.DryRun {
			verb = "Would import"
		}
		finalMessage := ui.Success.Sprint("✓") + " " + verb + " " + plural(len(result.Written), "parameter") +
			" exported from " + ui.Highlight.Sprint(result.SourcePrefix) + " to " + ui.Highlight.Sprint(destination) + ":\n" +
			formatKeys(result.Written)
		if result.DryRun {
			finalMessage += dryRunNote()
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
