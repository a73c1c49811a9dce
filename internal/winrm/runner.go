// Package winrm runs powercfg command lines on a remote Windows host over
// WinRM, the native management transport for hosts without an SSH server.
package winrm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/masterzen/winrm"
)

// Options configure the WinRM endpoint and credentials.
type Options struct {
	User     string
	Password string
	// Domain switches authentication from basic to NTLM.
	Domain string
	// Port defaults to 5985 (HTTP) or 5986 (HTTPS).
	Port  int
	HTTPS bool
	// Timeout per command; 30s when zero.
	Timeout time.Duration
}

// Runner implements powercfg.Runner over WinRM. Connections are
// per-request; there is nothing to close.
type Runner struct {
	client *winrm.Client
	target string
}

// NewRunner creates a WinRM runner for the given host.
// With a domain set it authenticates via NTLM, otherwise basic auth.
func NewRunner(target string, opts Options) (*Runner, error) {
	port := opts.Port
	if port == 0 {
		if opts.HTTPS {
			port = 5986
		} else {
			port = 5985
		}
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	endpoint := winrm.NewEndpoint(
		target,
		port,
		opts.HTTPS,
		true, // insecure - skip certificate verification
		nil,  // CA certificate
		nil,  // client certificate
		nil,  // client key
		timeout,
	)

	var client *winrm.Client
	var err error

	if opts.Domain != "" {
		params := winrm.DefaultParameters
		params.TransportDecorator = func() winrm.Transporter {
			return &winrm.ClientNTLM{}
		}
		client, err = winrm.NewClientWithParameters(
			endpoint,
			fmt.Sprintf("%s\\%s", opts.Domain, opts.User),
			opts.Password,
			params,
		)
	} else {
		client, err = winrm.NewClient(endpoint, opts.User, opts.Password)
	}

	if err != nil {
		return nil, fmt.Errorf("winrm client for %s: %w", target, err)
	}

	return &Runner{client: client, target: target}, nil
}

// Run executes a command line on the remote host and returns its stdout.
func (r *Runner) Run(ctx context.Context, command string) ([]byte, error) {
	stdout, stderr, exitCode, err := r.client.RunWithContextWithString(ctx, command, "")
	if err != nil {
		return nil, fmt.Errorf("winrm execution on %s failed: %w", r.target, err)
	}
	if exitCode != 0 {
		return nil, fmt.Errorf("command %q failed on %s (exit code %d): %s",
			command, r.target, exitCode, strings.TrimSpace(stderr))
	}
	return []byte(stdout), nil
}

// Target returns the remote hostname or address.
func (r *Runner) Target() string {
	return r.target
}
