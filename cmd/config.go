package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/PolarWolf314/keez/internal/configs"
	"github.com/PolarWolf314/keez/internal/secrets"
	"github.com/PolarWolf314/keez/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change keez settings",
	Long: `Reads and writes the keez config file.

Settings:
  aws.profile       shared config profile used for Parameter Store
  aws.region        region used for Parameter Store
  sso.start_url     AWS SSO start URL for keez login
  sso.region        AWS SSO region for keez login
  editor.command    editor for create and edit, e.g. "code --wait"
  keyring.backends  comma-separated keyring backends for the export key
  keyring.file_dir  directory for the file keyring backend`,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		cfg, err := loadConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return Logger.ErrorfAndReturn("failed to encode config: %v", err)
		}

		fmt.Println(ui.Muted.Sprint(configs.UserKeezSettings.ConfigPath()))
		if body := strings.TrimSpace(buf.String()); body != "" {
			fmt.Println(body)
		}
		fmt.Println()
		fmt.Println("Keyring backends available: " + strings.Join(secrets.AvailableBackends(), ", "))
		fmt.Println("Audit log: " + ui.Path.Sprint(configs.UserKeezSettings.AuditLogPath()))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config set command")
		key, value := args[0], args[1]

		cfg, err := loadConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		if err := cfg.Set(key, value); err != nil {
			fmt.Println(ui.Error.Sprint("✗") + " " + err.Error())
			return fmt.Errorf("%w: %w", ErrReported, err)
		}

		if err := configs.SaveConfig(cfg); err != nil {
			return Logger.ErrorfAndReturn("failed to save config: %v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Set " + ui.Code.Sprint(key) + " to " + ui.Highlight.Sprint(value))
		return nil
	},
}
