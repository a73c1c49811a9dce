package powercfg

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// Runner abstracts command execution for local vs remote hosts.
// Implementations must run the command line verbatim and return captured
// stdout; transport, auth and retry policy live behind this interface.
type Runner interface {
	Run(ctx context.Context, command string) ([]byte, error)
}

// DefaultTimeout bounds a single local powercfg invocation.
const DefaultTimeout = 30 * time.Second

// LocalRunner executes commands on the local host.
type LocalRunner struct {
	// Timeout per command; DefaultTimeout when zero.
	Timeout time.Duration
}

// Run executes a command via the platform shell.
func (r LocalRunner) Run(ctx context.Context, command string) ([]byte, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", command)
	} else {
		cmd = exec.CommandContext(ctx, "/bin/sh", "-c", command)
	}

	out, err := cmd.CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("command %q failed: %w (output: %s)", command, err, strings.TrimSpace(string(out)))
	}
	return out, nil
}
