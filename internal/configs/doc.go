// Package configs manages user configuration for keez.
//
// Configuration is stored in TOML format at $XDG_CONFIG_HOME/keez/config.toml
// (or the platform equivalent returned by os.UserConfigDir):
//
//	[aws]
//	profile = "prod-admin"
//	region = "eu-west-1"
//
//	[sso]
//	start_url = "https://example.awsapps.com/start"
//	region = "eu-west-1"
//
//	[editor]
//	command = "code --wait"
//
//	[keyring]
//	backends = ["keychain", "secret-service"]
//
// Every setting is optional. Empty AWS settings defer to the SDK's default
// credential chain and AWS_PROFILE/AWS_REGION; an empty editor defers to
// $EDITOR.
//
// # Settings
//
// UserKeezSettings is initialized at startup with the paths of the config
// file, the audit log, and the fallback directory for the file keyring.
package configs
