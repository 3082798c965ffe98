// Package config loads and resolves scriptdeck configuration from the
// config file, environment variables, and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// LibraryConfig describes the browsable script library.
type LibraryConfig struct {
	Root      string            `mapstructure:"root"`
	ScriptExt string            `mapstructure:"script_ext"`
	Units     map[string]string `mapstructure:"units"`
}

// RunConfig configures script execution in a detached terminal.
type RunConfig struct {
	Interpreter  string `mapstructure:"interpreter"`
	Terminal     string `mapstructure:"terminal"`
	ConfirmToken string `mapstructure:"confirm_token"`
}

// LoggingConfig configures the daily session log.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	// Dir is the log directory. Empty resolves to <library root>/logs.
	Dir string `mapstructure:"dir"`
}

// Config represents the application configuration.
type Config struct {
	Library LibraryConfig `mapstructure:"library"`
	Run     RunConfig     `mapstructure:"run"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/scriptdeck/config.yaml
//   - $HOME/.config/scriptdeck/config.yaml
//
// Environment variables are prefixed with SCRIPTDECK_
// (e.g., SCRIPTDECK_LIBRARY_ROOT).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "scriptdeck"))
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	v.AddConfigPath(filepath.Join(homeDir, ".config", "scriptdeck"))

	v.SetEnvPrefix("SCRIPTDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Library.Root, err = ExpandPath(cfg.Library.Root)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SetDefaults registers all configuration defaults on the given viper
// instance. The root command shares these with Load.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("library.root", DefaultRoot)
	v.SetDefault("library.script_ext", DefaultScriptExt)
	v.SetDefault("library.units", DefaultUnits)
	v.SetDefault("run.interpreter", "")
	v.SetDefault("run.terminal", "")
	v.SetDefault("run.confirm_token", DefaultConfirmToken)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.dir", "")
}

// LogDir resolves the effective log directory for the given config.
func (c *Config) LogDir() string {
	if c.Logging.Dir != "" {
		return c.Logging.Dir
	}
	return filepath.Join(c.Library.Root, "logs")
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "scriptdeck"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "scriptdeck"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// WriteDefault writes a default config file if none exists.
// Returns nil if a config file already exists.
func WriteDefault() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	configDir, err := ConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	defaultConfig := fmt.Sprintf(`# Scriptdeck Configuration

library:
  # Root directory of the script library
  root: %s
  # Filename suffix that marks a file as a script
  script_ext: %s
  # Main menu catalog: key -> unit folder name
  units:
    "1": "Unidad 1 - Fundamentos POO"
    "2": "Unidad 2 - Herencia y Polimorfismo"
    "3": "Unidad 3 - Patrones de Diseño"
    "4": "Unidad 4 - Proyectos Prácticos"

run:
  # Interpreter used to run scripts (empty means python3, or python on Windows)
  interpreter: ""
  # Terminal emulator for launched scripts on Unix (empty means xterm)
  terminal: ""
  # Affirmative answer to the "run this script?" prompt (case-insensitive)
  confirm_token: %s

logging:
  # Log level: debug, info, warning, error
  level: %s
  # Log directory (empty means <library root>/logs)
  dir: ""
`, DefaultRoot, DefaultScriptExt, DefaultConfirmToken, DefaultLogLevel)

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	return nil
}

// ExpandPath expands ~ in a path to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}

// StateDir returns $XDG_STATE_HOME/scriptdeck/ for state files.
func StateDir() string {
	return filepath.Join(xdg.StateHome, "scriptdeck")
}
