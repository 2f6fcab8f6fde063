package configs

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

type Config struct {
	AWS     AWSConfig     `toml:"aws"`
	SSO     SSOConfig     `toml:"sso"`
	Editor  EditorConfig  `toml:"editor"`
	Keyring KeyringConfig `toml:"keyring"`
}

type AWSConfig struct {
	Profile string `toml:"profile,omitempty"`
	Region  string `toml:"region,omitempty"`
}

type SSOConfig struct {
	StartURL string `toml:"start_url,omitempty"`
	Region   string `toml:"region,omitempty"`
}

type EditorConfig struct {
	Command string `toml:"command,omitempty"`
}

type KeyringConfig struct {
	Backends []string `toml:"backends,omitempty"`
	FileDir  string   `toml:"file_dir,omitempty"`
}

// LoadConfig loads the user configuration. A missing file yields defaults.
func LoadConfig() (*Config, error) {
	config := &Config{}

	configPath := UserKeezSettings.ConfigPath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}

	return config, nil
}

// SaveConfig writes the user configuration.
func SaveConfig(config *Config) error {
	if err := SaveTOML(UserKeezSettings.ConfigPath(), config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// setters maps dotted keys to the field they update.
var setters = map[string]func(c *Config, value string){
	"aws.profile":      func(c *Config, v string) { c.AWS.Profile = v },
	"aws.region":       func(c *Config, v string) { c.AWS.Region = v },
	"sso.start_url":    func(c *Config, v string) { c.SSO.StartURL = v },
	"sso.region":       func(c *Config, v string) { c.SSO.Region = v },
	"editor.command":   func(c *Config, v string) { c.Editor.Command = v },
	"keyring.file_dir": func(c *Config, v string) { c.Keyring.FileDir = v },
	"keyring.backends": func(c *Config, v string) {
		c.Keyring.Backends = nil
		for _, backend := range strings.Split(v, ",") {
			if backend = strings.TrimSpace(backend); backend != "" {
				c.Keyring.Backends = append(c.Keyring.Backends, backend)
			}
		}
	},
}

// Set updates a single setting by its dotted key, e.g. "aws.region".
func (c *Config) Set(key, value string) error {
	setter, ok := setters[key]
	if !ok {
		return fmt.Errorf("unknown setting %q (known settings: %s)", key, strings.Join(SettingKeys(), ", "))
	}
	setter(c, value)
	return nil
}

// SettingKeys returns the keys accepted by Set.
func SettingKeys() []string {
	keys := make([]string, 0, len(setters))
	for key := range setters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// KeyringDir returns the file backend directory, defaulting under the
// user config directory.
func (c *Config) KeyringDir() string {
	if c.Keyring.FileDir != "" {
		return c.Keyring.FileDir
	}
	return UserKeezSettings.KeyringFilePath
}
