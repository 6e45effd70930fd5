package oscommand

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/aliasreg/internal/core/ports"
)

// OSCommandExecutor implements the CommandExecutor interface using the operating system's shell.
type OSCommandExecutor struct {
	defaultShell string
}

// NewOSCommandExecutor creates a new OSCommandExecutor. defaultShell is used
// when Execute is not asked for a specific shell; empty means $SHELL, then /bin/sh.
func NewOSCommandExecutor(defaultShell string) ports.CommandExecutor {
	return &OSCommandExecutor{defaultShell: defaultShell}
}

// Execute runs the given pipeline string with "<shell> -c" and returns its stdout, stderr, and any error.
func (e *OSCommandExecutor) Execute(shellName, pipeline string) (string, string, error) {
	shellExecPath := e.shellPath(shellName)

	cmd := exec.Command(shellExecPath, "-c", pipeline)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()

	if err != nil {
		return stdout, stderr, fmt.Errorf("executing pipeline with shell '%s': %w. Stderr: %s", shellExecPath, err, strings.TrimSpace(stderr))
	}
	return stdout, stderr, nil
}

func (e *OSCommandExecutor) shellPath(shellName string) string {
	switch shellName {
	case "bash":
		return "/bin/bash"
	case "zsh":
		return "/bin/zsh"
	case "sh":
		return "/bin/sh"
	}
	if e.defaultShell != "" {
		return e.defaultShell
	}
	if env := os.Getenv("SHELL"); env != "" {
		return env
	}
	return "/bin/sh"
}
