// Package launcher starts scripts in a new detached terminal window.
// The spawned process is fully independent: no output capture, no exit-code
// observation, no wait. Launching is best-effort; a failed spawn is logged
// and reported, never fatal.
package launcher

import (
	"fmt"

	"github.com/scriptdeck/scriptdeck/pkg/scriptdeck/logging"
)

// Spawner launches a script in a separate terminal window and returns
// without waiting for it to finish.
type Spawner interface {
	Launch(scriptPath string) error
}

// Config configures the terminal spawner. Zero values select the platform
// defaults (python3/xterm on Unix, python/cmd on Windows).
type Config struct {
	Interpreter string
	Terminal    string
}

// terminalSpawner runs scripts in the host platform's terminal convention.
type terminalSpawner struct {
	cfg    Config
	logger *logging.Logger
}

// New creates the Spawner for the current platform.
func New(cfg Config) Spawner {
	if cfg.Interpreter == "" {
		cfg.Interpreter = defaultInterpreter
	}
	if cfg.Terminal == "" {
		cfg.Terminal = defaultTerminal
	}
	return &terminalSpawner{cfg: cfg, logger: logging.Get("launcher")}
}

// Launch starts the script in a new terminal window and detaches from it.
func (s *terminalSpawner) Launch(scriptPath string) error {
	cmd := s.spawnCommand(scriptPath)
	detach(cmd)

	if err := cmd.Start(); err != nil {
		s.logger.Error("failed to launch script", "path", scriptPath, "error", err)
		return fmt.Errorf("launching %s: %w", scriptPath, err)
	}

	// Fire and forget: release the handle rather than waiting.
	_ = cmd.Process.Release()

	s.logger.Info("script launched", "path", scriptPath)
	return nil
}
