package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/opsforge-io/powerplan/internal/config"
	"github.com/opsforge-io/powerplan/internal/powercfg"
	"github.com/opsforge-io/powerplan/internal/ssh"
	"github.com/opsforge-io/powerplan/internal/winrm"
)

// buildClient resolves the target host from flags and inventory and
// returns a powercfg client plus a cleanup func for the transport.
func buildClient() (*powercfg.Client, func(), error) {
	runner, closer, err := buildRunner()
	if err != nil {
		return nil, nil, err
	}
	return powercfg.NewClient(runner), closer, nil
}

func buildRunner() (powercfg.Runner, func(), error) {
	noop := func() {}

	if flagHost == "" {
		return powercfg.LocalRunner{}, noop, nil
	}

	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	if host, ok := cfg.Lookup(flagHost); ok {
		return runnerForHost(host)
	}

	// Not an inventory name: user@host means SSH, a bare address needs an
	// explicit transport choice.
	switch {
	case flagTransport == "ssh" || (flagTransport == "" && strings.Contains(flagHost, "@")):
		target, err := ssh.ParseTarget(flagHost)
		if err != nil {
			return nil, nil, err
		}
		if flagPort != 0 {
			target.Port = strconv.Itoa(flagPort)
		}
		r, err := ssh.NewRunner(target)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil

	case flagTransport == "winrm":
		if flagUser == "" {
			return nil, nil, fmt.Errorf("winrm transport requires --user")
		}
		r, err := winrm.NewRunner(flagHost, winrm.Options{
			User:     flagUser,
			Password: os.Getenv("POWERPLAN_PASSWORD"),
			Domain:   flagDomain,
			Port:     flagPort,
			HTTPS:    flagHTTPS,
		})
		if err != nil {
			return nil, nil, err
		}
		return r, noop, nil

	default:
		return nil, nil, fmt.Errorf("host %q is not in the inventory; pass user@host for SSH or --transport winrm", flagHost)
	}
}

func runnerForHost(host config.Host) (powercfg.Runner, func(), error) {
	switch host.Transport {
	case "ssh":
		target := ssh.Target{User: host.User, Host: host.Address, Port: "22"}
		if target.User == "" {
			target.User = flagUser
		}
		if host.Port != 0 {
			target.Port = strconv.Itoa(host.Port)
		}
		r, err := ssh.NewRunner(target)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil

	case "winrm":
		password := host.Password()
		if password == "" {
			password = os.Getenv("POWERPLAN_PASSWORD")
		}
		r, err := winrm.NewRunner(host.Address, winrm.Options{
			User:     host.User,
			Password: password,
			Domain:   host.Domain,
			Port:     host.Port,
			HTTPS:    host.HTTPS,
		})
		if err != nil {
			return nil, nil, err
		}
		return r, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("host %q has unsupported transport %q", host.Name, host.Transport)
	}
}
