package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scriptdeck/scriptdeck/cmd/scriptdeck/tui"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/catalog"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/config"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/launcher"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/library"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/logging"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/menu"
	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/viewer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "scriptdeck [path]",
		Short: "Browse, view, and run a library of practice scripts",
		Long: `Scriptdeck is an interactive console dashboard for a script library
organized as unit/topic/script directories. It renders numbered menus,
shows the source of a chosen script, and can launch it in a new
terminal window.

Examples:
  scriptdeck                       # Browse the library in the current directory
  scriptdeck ~/courses/poo         # Browse a specific library root
  scriptdeck --tui                 # Full-screen picker interface
  scriptdeck search herencia       # Find scripts by name across the library
  scriptdeck config show           # Show configuration`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBrowse,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/scriptdeck/config.yaml)")
	rootCmd.PersistentFlags().StringP("ext", "x", "", "script filename suffix (default: .py)")
	rootCmd.PersistentFlags().StringP("interpreter", "i", "", "interpreter used to run scripts")
	rootCmd.PersistentFlags().String("terminal", "", "terminal emulator for launched scripts")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output on stderr")
	rootCmd.Flags().BoolP("tui", "t", false, "full-screen picker interface")

	_ = viper.BindPFlag("library.script_ext", rootCmd.PersistentFlags().Lookup("ext"))
	_ = viper.BindPFlag("run.interpreter", rootCmd.PersistentFlags().Lookup("interpreter"))
	_ = viper.BindPFlag("run.terminal", rootCmd.PersistentFlags().Lookup("terminal"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "scriptdeck"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "scriptdeck"))
		}
	}

	viper.SetEnvPrefix("SCRIPTDECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves the effective configuration from file, environment,
// flags, and the optional positional library root.
func loadConfig(args []string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Library.Root = args[0]
	}

	// Flag overrides (bound to the global viper in init)
	if ext := viper.GetString("library.script_ext"); ext != "" {
		cfg.Library.ScriptExt = ext
	}
	if interp := viper.GetString("run.interpreter"); interp != "" {
		cfg.Run.Interpreter = interp
	}
	if term := viper.GetString("run.terminal"); term != "" {
		cfg.Run.Terminal = term
	}

	expanded, err := config.ExpandPath(cfg.Library.Root)
	if err != nil {
		return nil, err
	}

	absRoot, err := filepath.Abs(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	cfg.Library.Root = absRoot

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("library root does not exist: %s", absRoot)
		}
		return nil, fmt.Errorf("cannot access library root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("library root is not a directory: %s", absRoot)
	}

	return cfg, nil
}

// initLogging starts the daily session log under the configured directory.
// When no directory is configured and <root>/logs cannot be created (library
// on read-only media), the log falls back to the XDG state directory.
func initLogging(cfg *config.Config) error {
	consoleLevel := ""
	if viper.GetBool("verbose") {
		consoleLevel = "debug"
	}

	logCfg := logging.Config{
		Level:        cfg.Logging.Level,
		Dir:          cfg.LogDir(),
		FilePrefix:   config.DefaultLogPrefix,
		ConsoleLevel: consoleLevel,
	}

	err := logging.Init(logCfg)
	if err != nil && cfg.Logging.Dir == "" {
		logCfg.Dir = filepath.Join(config.StateDir(), "logs")
		return logging.Init(logCfg)
	}
	return err
}

// runBrowse is the root command handler: the interactive dashboard.
func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	if err := initLogging(cfg); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logging.Close() }()

	cat := catalog.New(cfg.Library.Units)
	lib := library.New(cfg.Library.Root, cfg.Library.ScriptExt)
	spawner := launcher.New(launcher.Config{
		Interpreter: cfg.Run.Interpreter,
		Terminal:    cfg.Run.Terminal,
	})

	useTUI, _ := cmd.Flags().GetBool("tui")
	if useTUI {
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			return fmt.Errorf("--tui requires a terminal")
		}
		return tui.Run(tui.Options{
			Catalog: cat,
			Library: lib,
			Spawner: spawner,
		})
	}

	ctrl := menu.New(menu.Options{
		Catalog:      cat,
		Library:      lib,
		Viewer:       viewer.New(os.Stdout),
		Spawner:      spawner,
		In:           os.Stdin,
		Out:          os.Stdout,
		ConfirmToken: cfg.Run.ConfirmToken,
	})

	return ctrl.Run()
}
