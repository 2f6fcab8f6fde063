package cmd

import (
	"fmt"

	"github.com/PolarWolf314/keez/internal/ui"
	"github.com/PolarWolf314/keez/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	exportFilename       string
	exportInsecureOutput bool
)

func init() {
	exportCmd.Flags().StringVar(&exportFilename, "export-filename", "", "file to write the encrypted export to")
	exportCmd.Flags().BoolVarP(&exportInsecureOutput, "insecure-output", "I", false, "also print the decrypted export to stdout (exposes secrets)")
	_ = exportCmd.MarkFlagRequired("export-filename")
}

func resetExportCommandState() {
	exportFilename = ""
	exportInsecureOutput = false
}

var exportCmd = &cobra.Command{
	Use:   "export <source>",
	Short: "Export parameters under a prefix to an encrypted file",
	Long: `Recursively reads every parameter under <source> and writes them to an
encrypted file, for moving them to another AWS account or region where a
plain keez copy won't reach.

The file is encrypted with a key that keez generates on first use and
keeps in your system keyring, so no plaintext secrets are left lying
around. Import it on a machine with the same key using keez import.

An existing file is replaced without confirmation.

Examples:
  keez export --export-filename ./foo.yaml.enc /path/prefix/foo`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting export command")
		source := args[0]
		Logger.Debugf("Source: %s, file: %s", source, exportFilename)

		spinner, cleanup := startSpinner("Exporting parameters...", verbose)
		defer cleanup()

		svc, err := newServices(cmd.Context(), serviceNeeds{sealer: true})
		if err != nil {
			return fail(spinner, err)
		}

		result, err := workflows.Export(cmd.Context(), svc, workflows.ExportOptions{
			Source:         source,
			Filename:       exportFilename,
			InsecureOutput: exportInsecureOutput,
			Mode:           operationMode(),
		})
		if err != nil {
			return fail(spinner, err)
		}
		Logger.Infof("Sealed %d parameters into %d bytes", result.Parameters.Len(), result.Size)

		finalMessage := ""
		if result.Plaintext != "" {
			finalMessage += ui.Warning.Sprint("⚠") + " Insecure output requested, decrypted export follows:\n" +
				result.Plaintext + "\n"
		}

		verb := "Exported"
		if result.DryRun {
			verb = "Would export"
		}
		finalMessage += ui.Success.Sprint("✓") + " " + verb + " " + plural(result.Parameters.Len(), "parameter") +
			" under " + ui.Highlight.Sprint(source) + " to " + ui.Path.Sprint(result.Filename) + " " +
			ui.Muted.Sprint(fmt.Sprintf("%d bytes", result.Size)) + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprintf("keez import --import-filename %s <destination>", result.Filename) +
			" where you want them"
		if result.DryRun {
			finalMessage += dryRunNote()
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}
