package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cargo-configure",
		Short: "Generate clippy lint profiles for Rust projects",
		Long: "cargo-configure writes novice, expert and master clippy lint profiles from a built-in lint catalog " +
			"and scaffolds the zuu.toml group policy for a crate.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("config", "", "Config file (default: ./.cargo-configure.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error, disabled)")
	cmd.PersistentFlags().String("log-format", "", "Log format (console, json)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newLintsCmd())
	cmd.AddCommand(newPolicyCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
