package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zuucrates/cargo-configure/internal/adapters/outbound/tui"
)

func newInitCmd() *cobra.Command {
	var (
		force      bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Set up lint configuration for a crate",
		Long: "Create .cargo-configure.yaml, initialize a git repository when needed, " +
			"write zuu.toml and generate the profile files.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, args)
			if err != nil {
				return err
			}

			result, err := e.scaffoldService().Init(cmd.Context(), e.path, force)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created %s\n", result.ConfigPath)
			if result.GitInitialized {
				fmt.Fprintf(out, "Initialized git repository in %s\n", e.path)
			}
			fmt.Fprint(out, tui.RenderPolicy(result.PolicyPath, result.Policy))
			fmt.Fprint(out, tui.RenderGenerate(result.Generate))
			return nil
		},
	}

	cmd.Flags().StringSliceP("profile", "p", nil, "Profiles to generate (novice, expert, master)")
	cmd.Flags().StringP("out", "o", "", "Output directory for profile files (default: config)")
	cmd.Flags().String("vcs", "", "Version control to initialize (git, none)")
	addPolicyFlags(cmd)
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration files")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
