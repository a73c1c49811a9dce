package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opsforge-io/powerplan/internal/logging"
)

var (
	// Flags
	flagHost      string
	flagTransport string
	flagUser      string
	flagPort      int
	flagDomain    string
	flagHTTPS     bool
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
	flagJSON      bool
)

var rootCmd = &cobra.Command{
	Use:   "powerplan",
	Short: "Inspect and change Windows power schemes via powercfg",
	Long: `powerplan drives the powercfg utility and presents power schemes, setting
subgroups, and individual AC/DC setting values as structured output. It runs
against the local machine by default, or against a remote host over SSH or
WinRM with --host.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(flagLogLevel, flagLogFormat)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "Remote host: inventory name, user@host[:port] for SSH, or address for WinRM")
	rootCmd.PersistentFlags().StringVar(&flagTransport, "transport", "", "Remote transport: ssh or winrm (inferred from --host when possible)")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "Remote user (WinRM; env: POWERPLAN_PASSWORD for the password)")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", 0, "Remote port (default: 22 ssh, 5985/5986 winrm)")
	rootCmd.PersistentFlags().StringVar(&flagDomain, "domain", "", "Windows domain for WinRM NTLM auth")
	rootCmd.PersistentFlags().BoolVar(&flagHTTPS, "https", false, "Use HTTPS for WinRM")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Host inventory file (default: ~/.config/powerplan/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print results as JSON")
}

// Execute runs the root command.
func Execute(version string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("powerplan %s\n", version))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
