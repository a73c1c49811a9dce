// Package config handles the powerplan host inventory file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the parsed inventory file: defaults plus named remote hosts.
type Config struct {
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Hosts    []Host `yaml:"hosts" validate:"dive"`
}

// Host is one saved remote target. Passwords are never stored in the file;
// PasswordEnv names the environment variable to read at connect time.
type Host struct {
	Name      string `yaml:"name" validate:"required"`
	Address   string `yaml:"address" validate:"required,hostname|ip"`
	Transport string `yaml:"transport" validate:"required,oneof=ssh winrm"`
	User      string `yaml:"user" validate:"required_if=Transport winrm"`
	Port      int    `yaml:"port" validate:"omitempty,min=1,max=65535"`

	// WinRM only.
	PasswordEnv string `yaml:"password_env"`
	Domain      string `yaml:"domain"`
	HTTPS       bool   `yaml:"https"`
}

// DefaultPath returns the per-user inventory location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "powerplan.yaml"
	}
	return filepath.Join(home, ".config", "powerplan", "config.yaml")
}

// Load reads and validates an inventory file. A missing file at the
// default path is not an error: remote targets can be given entirely on
// the command line.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	seen := make(map[string]bool, len(cfg.Hosts))
	for _, h := range cfg.Hosts {
		if seen[h.Name] {
			return nil, fmt.Errorf("invalid config %s: duplicate host %q", path, h.Name)
		}
		seen[h.Name] = true
	}

	return &cfg, nil
}

// Lookup finds a saved host by name.
func (c *Config) Lookup(name string) (Host, bool) {
	for _, h := range c.Hosts {
		if h.Name == name {
			return h, true
		}
	}
	return Host{}, false
}

// Password resolves the host's password from its environment variable.
func (h Host) Password() string {
	if h.PasswordEnv == "" {
		return ""
	}
	return os.Getenv(h.PasswordEnv)
}
