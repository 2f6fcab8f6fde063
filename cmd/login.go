package cmd

import (
	"errors"
	"fmt"

	"github.com/PolarWolf314/keez/internal/ui"
	"github.com/spf13/cobra"
	"github.com/synfinatic/aws-sso-cli/sso"
)

const defaultSSORegion = "us-east-1"

var errNoStartURL = errors.New("no AWS SSO start URL configured")

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with AWS IAM Identity Center (SSO)",
	Long: `Runs the AWS SSO device authorization flow in your browser using the
start URL from the keez config.

Examples:
  keez config set sso.start_url https://example.awsapps.com/start
  keez config set sso.region eu-west-1
  keez login`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting login command")

		cfg, err := loadConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}

		if cfg.SSO.StartURL == "" {
			fmt.Println(ui.Error.Sprint("✗") + " " + errNoStartURL.Error() + "\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("keez config set sso.start_url <url>") + " first")
			return fmt.Errorf("%w: %w", ErrReported, errNoStartURL)
		}

		ssoRegion := cfg.SSO.Region
		if ssoRegion == "" {
			ssoRegion = defaultSSORegion
		}
		region := cfg.AWS.Region
		if region == "" {
			region = ssoRegion
		}
		Logger.Debugf("SSO start URL: %s, SSO region: %s, default region: %s", cfg.SSO.StartURL, ssoRegion, region)

		awsSSO := sso.NewAWSSSO(&sso.SSOConfig{
			SSORegion:     ssoRegion,
			StartUrl:      cfg.SSO.StartURL,
			DefaultRegion: region,
			MaxBackoff:    30,
			MaxRetry:      3,
		}, nil)

		// Empty browser and exec path let the library pick the system browser.
		if err := awsSSO.Authenticate("", ""); err != nil {
			return Logger.ErrorfAndReturn("AWS SSO authentication failed: %v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Authenticated with " + ui.Highlight.Sprint(cfg.SSO.StartURL))
		return nil
	},
}
