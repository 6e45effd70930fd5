package nativehost

import (
	"errors"
	"fmt"
	"os"
)

var errNoExecutor = errors.New("no command executor configured")

func (h *Host) installProcesses() {
	h.DefineOperation("shell-command-to-string", h.shellCommandToString)
	h.DefineOperation("getenv", getenv)
	h.DefineOperation("setenv", setenv)
}

// shellCommandToString returns the command's combined output whatever its
// exit status; it fails only when the shell could not produce any output.
func (h *Host) shellCommandToString(args ...any) (any, error) {
	if err := arity("shell-command-to-string", args, 1, 1); err != nil {
		return nil, err
	}
	command, err := stringArg("shell-command-to-string", args, 0)
	if err != nil {
		return nil, err
	}
	if h.executor == nil {
		return nil, fmt.Errorf("shell-command-to-string: %w", errNoExecutor)
	}
	stdout, stderr, err := h.executor.Execute("", command)
	if err != nil && stdout == "" && stderr == "" {
		return nil, fmt.Errorf("shell-command-to-string: %w", err)
	}
	return stdout + stderr, nil
}

func getenv(args ...any) (any, error) {
	if err := arity("getenv", args, 1, 1); err != nil {
		return nil, err
	}
	name, err := stringArg("getenv", args, 0)
	if err != nil {
		return nil, err
	}
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil, nil
	}
	return v, nil
}

// setenv takes (variable [value]); a nil value unsets the variable.
func setenv(args ...any) (any, error) {
	if err := arity("setenv", args, 1, 2); err != nil {
		return nil, err
	}
	name, err := stringArg("setenv", args, 0)
	if err != nil {
		return nil, err
	}
	if optional(args, 1) == nil {
		if err := os.Unsetenv(name); err != nil {
			return nil, fmt.Errorf("setenv: %w", err)
		}
		return nil, nil
	}
	value, err := stringArg("setenv", args, 1)
	if err != nil {
		return nil, err
	}
	if err := os.Setenv(name, value); err != nil {
		return nil, fmt.Errorf("setenv: %w", err)
	}
	return value, nil
}
