package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage scriptdeck configuration settings.

Configuration is loaded from:
  1. $XDG_CONFIG_HOME/scriptdeck/config.yaml (if set)
  2. ~/.config/scriptdeck/config.yaml

Environment variables can override config file settings using the
SCRIPTDECK_ prefix:
  SCRIPTDECK_LIBRARY_ROOT=~/courses/poo
  SCRIPTDECK_RUN_INTERPRETER=python3.12`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration settings from all sources.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	Long:  `Create a default configuration file if one doesn't exist.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Long:  `Display the path to the configuration file.`,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// runConfigShow displays the current configuration.
func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Printf("Config file: %s\n\n", configFile)
	} else {
		fmt.Println("Config file: (using defaults, no file found)")
		fmt.Println()
	}

	fmt.Println("Current Configuration:")
	fmt.Println("----------------------")
	fmt.Printf("library.root:        %s\n", cfg.Library.Root)
	fmt.Printf("library.script_ext:  %s\n", cfg.Library.ScriptExt)
	fmt.Println("library.units:")
	for key, name := range cfg.Library.Units {
		fmt.Printf("  %s: %s\n", key, name)
	}
	fmt.Printf("run.interpreter:     %s\n", orDefault(cfg.Run.Interpreter, "(platform default)"))
	fmt.Printf("run.terminal:        %s\n", orDefault(cfg.Run.Terminal, "(platform default)"))
	fmt.Printf("run.confirm_token:   %s\n", cfg.Run.ConfirmToken)
	fmt.Printf("logging.level:       %s\n", cfg.Logging.Level)
	fmt.Printf("logging.dir:         %s\n", cfg.LogDir())

	fmt.Println("\nEnvironment Overrides:")
	fmt.Println("----------------------")
	envVars := []string{
		"SCRIPTDECK_LIBRARY_ROOT",
		"SCRIPTDECK_LIBRARY_SCRIPT_EXT",
		"SCRIPTDECK_RUN_INTERPRETER",
		"SCRIPTDECK_RUN_TERMINAL",
		"SCRIPTDECK_RUN_CONFIRM_TOKEN",
		"SCRIPTDECK_LOGGING_LEVEL",
		"SCRIPTDECK_LOGGING_DIR",
	}

	anyOverrides := false
	for _, name := range envVars {
		if val := os.Getenv(name); val != "" {
			fmt.Printf("%s=%s\n", name, val)
			anyOverrides = true
		}
	}
	if !anyOverrides {
		fmt.Println("(none)")
	}

	return nil
}

// orDefault returns val, or fallback when val is empty.
func orDefault(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}

// runConfigInit creates a default config file.
func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir, err := config.ConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config file already exists: %s\n", configPath)
		return nil
	}

	if err := config.WriteDefault(); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Printf("Created config file: %s\n", configPath)
	return nil
}

// runConfigPath prints the config file path.
func runConfigPath(cmd *cobra.Command, args []string) error {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Println(configFile)
		return nil
	}

	configDir, err := config.ConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	fmt.Println(filepath.Join(configDir, "config.yaml"))
	return nil
}
