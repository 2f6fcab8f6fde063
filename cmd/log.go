package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/keez/internal/audit"
	"github.com/PolarWolf314/keez/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logOperation string
	logSince     string
	logJSON      bool
)

func init() {
	logCmd.Flags().IntVar(&logLimit, "limit", 20, "number of most recent entries to show (0 for all)")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation (comma-separated)")
	logCmd.Flags().StringVar(&logSince, "since", "", "show entries on or after date (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

func resetLogCommandState() {
	logLimit = 20
	logReverse = false
	logOperation = ""
	logSince = ""
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the history of parameters keez has written",
	Long: `Displays the local audit log of keez operations that wrote parameters
or export files. Dry runs are not recorded.

Examples:
  keez log
  keez log --limit 0 --operation copy,import
  keez log --since 2024-01-01 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting log command")
		Logger.Debugf("Reading audit log from %s", audit.LogPath())

		result, err := workflows.Log(cmd.Context(), workflows.LogOptions{
			Limit:      logLimit,
			Reverse:    logReverse,
			Operations: logOperation,
			Since:      logSince,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read audit log: %v", err)
		}
		Logger.Debugf("Parsed %d entries, %d after filtering", result.TotalEntriesBeforeFilter, len(result.Entries))

		if len(result.Entries) == 0 {
			if result.TotalEntriesBeforeFilter == 0 {
				fmt.Println("No audit log entries found.")
			} else {
				fmt.Println("No audit log entries found matching the filters.")
			}
			return nil
		}

		if logJSON {
			data, err := json.MarshalIndent(result.Entries, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal entries to JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		for _, e := range result.Entries {
			fmt.Printf("%-19s  %-15s  %-7s  %s\n", workflows.FormatDateTime(e.Timestamp), e.User, e.Operation, workflows.FormatDetails(e))
		}
		return nil
	},
}
