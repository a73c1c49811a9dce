package powercfg

import (
	"context"
	"log/slog"
	"strings"
)

// Client issues powercfg invocations through a Runner and parses the
// results. It holds no state between calls beyond its collaborators.
type Client struct {
	// Descriptions optionally enriches plan tables with human
	// descriptions. Nil disables enrichment; failures are best-effort.
	Descriptions DescriptionSource

	runner Runner
	log    *slog.Logger
}

// NewClient creates a client over the given runner.
func NewClient(runner Runner) *Client {
	return &Client{
		runner: runner,
		log:    slog.Default().With("component", "powercfg"),
	}
}

// run executes one powercfg command line and returns its output lines.
// Runner failures come back as *ExecutionError.
func (c *Client) run(ctx context.Context, args ...string) ([]string, error) {
	command := commandLine(args...)
	c.log.Debug("running", "command", command)

	out, err := c.runner.Run(ctx, command)
	if err != nil {
		return nil, &ExecutionError{Command: command, Err: err}
	}
	return splitLines(out), nil
}

// commandLine joins arguments into the command line the runner executes
// verbatim. Arguments with spaces (rename names, descriptions) are quoted.
func commandLine(args ...string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if strings.ContainsAny(a, " \t") {
			quoted[i] = `"` + a + `"`
		} else {
			quoted[i] = a
		}
	}
	return strings.Join(quoted, " ")
}
