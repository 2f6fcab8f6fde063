package configs

import (
	"log"
	"os"
	"os/user"
	"path/filepath"
)

type UserSettings struct {
	UserConfigsPath string
	KeyringFilePath string
	Username        string
}

var UserKeezSettings *UserSettings

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	username := "unknown"
	if current, err := user.Current(); err == nil {
		username = current.Username
	}

	UserKeezSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "keez"),
		KeyringFilePath: filepath.Join(configDir, "keez", "keyring"),
		Username:        username,
	}
}

// ConfigPath returns the location of the user's config.toml.
func (s *UserSettings) ConfigPath() string {
	return filepath.Join(s.UserConfigsPath, "config.toml")
}

// AuditLogPath returns the location of the operation history.
func (s *UserSettings) AuditLogPath() string {
	return filepath.Join(s.UserConfigsPath, "audit.jsonl")
}
