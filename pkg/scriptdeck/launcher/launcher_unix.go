//go:build !windows

package launcher

import (
	"os/exec"
	"syscall"
)

const (
	defaultInterpreter = "python3"
	defaultTerminal    = "xterm"
)

// spawnCommand builds the terminal invocation for Unix-like systems.
// -hold keeps the window open after the script exits.
func (s *terminalSpawner) spawnCommand(scriptPath string) *exec.Cmd {
	return exec.Command(s.cfg.Terminal, "-hold", "-e", s.cfg.Interpreter, scriptPath)
}

// detach configures cmd to run in its own session, independent of the
// controlling terminal.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
}
