//go:build windows

package launcher

import (
	"os/exec"
	"syscall"
)

const (
	defaultInterpreter = "python"
	defaultTerminal    = "cmd"
)

// spawnCommand builds the command-shell invocation for Windows.
// /k keeps the shell window open after the script exits.
func (s *terminalSpawner) spawnCommand(scriptPath string) *exec.Cmd {
	return exec.Command(s.cfg.Terminal, "/k", s.cfg.Interpreter, scriptPath)
}

// detach configures cmd to run in its own process group.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
}
