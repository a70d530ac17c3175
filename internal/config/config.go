// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"localescope/internal/issue"
	"localescope/pkg/cueutil"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "localescope"
	// ConfigFileName is the name of the config file including extension.
	ConfigFileName = "localescope.cue"
)

//go:embed config_schema.cue
var configSchema string

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// WorkspaceRoot, when set, is searched for a workspace-local config
	// file before the platform config directory.
	WorkspaceRoot string
}

// ConfigDir returns the localescope configuration directory using
// platform conventions: %APPDATA% on Windows, ~/Library/Application
// Support on macOS, $XDG_CONFIG_HOME (default ~/.config) elsewhere.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads configuration from defaults, an optional CUE file, and
// LOCALESCOPE_* environment variables, in ascending precedence of
// defaults < file < environment.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("disabled", defaults.Disabled)
	v.SetDefault("key_style", defaults.KeyStyle)
	v.SetDefault("dir_structure", defaults.DirStructure)
	v.SetDefault("reload_keys", defaults.ReloadKeys)
	v.SetDefault("refresh_keys", defaults.RefreshKeys)
	v.SetDefault("usage_refresh_keys", defaults.UsageRefreshKeys)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := resolveConfigPath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := mergeCUEFile(v, path); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the values against the configuration schema").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(path).
			WithSuggestion("key_style must be auto, nested, or flat").
			WithSuggestion("dir_structure must be auto, file, or dir").
			Wrap(err).
			BuildError()
	}

	return &cfg, nil
}

// resolveConfigPath picks the config file per the lookup order: explicit
// path, workspace root, platform config dir. An empty return with nil
// error means "use defaults only".
func resolveConfigPath(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	if opts.WorkspaceRoot != "" {
		workspacePath := filepath.Join(opts.WorkspaceRoot, ConfigFileName)
		if fileExists(workspacePath) {
			return workspacePath, nil
		}
	}

	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	dirPath := filepath.Join(cfgDir, ConfigFileName)
	if fileExists(dirPath) {
		return dirPath, nil
	}

	return "", nil
}

// mergeCUEFile parses a CUE file, validates it against the #Config
// schema, and merges its contents into Viper.
func mergeCUEFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	values, err := cueutil.ValidateToMap(configSchema, data, "#Config", path)
	if err != nil {
		return err
	}

	return v.MergeConfigMap(values)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
