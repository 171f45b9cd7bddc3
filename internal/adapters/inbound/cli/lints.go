package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zuucrates/cargo-configure/internal/adapters/outbound/tui"
	"github.com/zuucrates/cargo-configure/internal/domain"
	"github.com/zuucrates/cargo-configure/internal/domain/catalog"
	"gopkg.in/yaml.v3"
)

func newLintsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lints",
		Short: "Inspect the lint catalog",
	}
	cmd.AddCommand(newLintsListCmd())
	cmd.AddCommand(newLintsShowCmd())
	cmd.AddCommand(newLintsCheckCmd())
	return cmd
}

func newLintsListCmd() *cobra.Command {
	var (
		profileName string
		groupName   string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog lints for a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := domain.ParseProfile(profileName)
			if err != nil {
				return err
			}

			lints := catalog.For(profile)
			if groupName != "" {
				group, err := domain.ParseLintGroup(groupName)
				if err != nil {
					return err
				}
				lints = catalog.Filter(lints, group)
			}

			switch format {
			case "json":
				return writeJSON(cmd.OutOrStdout(), lints)
			case "yaml":
				data, err := yaml.Marshal(lints)
				if err != nil {
					return fmt.Errorf("encoding YAML: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			case "text":
				tui.RenderLintTable(cmd.OutOrStdout(), lints)
				return nil
			default:
				return fmt.Errorf("unknown format %q (valid: text, json, yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "novice", "Profile (novice, expert, master)")
	cmd.Flags().StringVarP(&groupName, "group", "g", "", "Only show lints of this group")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json, yaml)")

	return cmd
}

func newLintsShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <lint>",
		Short: "Show one lint across all profiles",
		Long: "Show a lint's rationale and severities. Accepts snake_case, kebab-case or CamelCase names. " +
			"The lint header uses the configured tool prefix.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, nil)
			if err != nil {
				return err
			}
			def, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				out := make(map[string]domain.Lint, 3)
				for _, p := range domain.AllProfiles() {
					out[p.String()] = def.For(p)
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderLintDetail(def, e.cfg.ToolPrefix))
			return nil
		},
	}

	cmd.Flags().String("prefix", "", "Tool prefix used in the lint header (default: clippy::)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newLintsCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate catalog invariants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := catalog.Definitions()
			if err := catalog.Validate(defs); err != nil {
				return fmt.Errorf("catalog invalid:\n%w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog ok: %d lints, %d profiles\n", len(defs), len(domain.AllProfiles()))
			return nil
		},
	}
}
