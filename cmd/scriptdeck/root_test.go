package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func writeTestFile(path string) error {
	return os.WriteFile(path, []byte("x"), 0o644)
}

func TestLoadConfig_PositionalRoot(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")

	root := t.TempDir()

	cfg, err := loadConfig([]string{root})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if cfg.Library.Root != root {
		t.Errorf("Library.Root = %q, want %q", cfg.Library.Root, root)
	}

	if cfg.Library.ScriptExt != ".py" {
		t.Errorf("Library.ScriptExt = %q, want %q", cfg.Library.ScriptExt, ".py")
	}
}

func TestLoadConfig_MissingRoot(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")

	_, err := loadConfig([]string{filepath.Join(t.TempDir(), "does-not-exist")})
	if err == nil {
		t.Fatal("loadConfig() expected error for missing root")
	}
}

func TestLoadConfig_RootIsFile(t *testing.T) {
	viper.Reset()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")

	path := filepath.Join(t.TempDir(), "not-a-dir")
	if err := writeTestFile(path); err != nil {
		t.Fatalf("creating file: %v", err)
	}

	_, err := loadConfig([]string{path})
	if err == nil {
		t.Fatal("loadConfig() expected error for non-directory root")
	}
}
