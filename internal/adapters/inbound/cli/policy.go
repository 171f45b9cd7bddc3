package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zuucrates/cargo-configure/internal/adapters/outbound/tui"
	"github.com/zuucrates/cargo-configure/internal/domain"
)

func newPolicyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Manage the zuu.toml group policy",
	}
	cmd.AddCommand(newPolicyCreateCmd())
	cmd.AddCommand(newPolicyShowCmd())
	return cmd
}

func newPolicyCreateCmd() *cobra.Command {
	var (
		force      bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "create [path]",
		Short: "Write zuu.toml from allowed and warned clippy groups",
		Long: "Split the clippy groups into allow, warn and deny lists and write them to zuu.toml. " +
			"Groups not allowed are warned unless --warn is given; everything left over is denied.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, args)
			if err != nil {
				return err
			}

			path, p, err := e.policyService().Create(e.path, force)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPolicy(path, p))
			return nil
		},
	}

	addPolicyFlags(cmd)
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing zuu.toml")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newPolicyShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show [path]",
		Short: "Show the groups in zuu.toml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, args)
			if err != nil {
				return err
			}

			path, p, err := e.policyService().Show(e.path)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPolicy(path, p))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func addPolicyFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("allow", nil, fmt.Sprintf("Allowed clippy groups (default: %v)", domain.DefaultAllowedGroups))
	cmd.Flags().StringSlice("warn", nil, "Warned clippy groups (default: every group not allowed)")
}
