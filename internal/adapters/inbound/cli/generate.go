package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zuucrates/cargo-configure/internal/adapters/outbound/tui"
)

var errProfilesOutOfDate = errors.New("profile files are out of date")

func newGenerateCmd() *cobra.Command {
	var (
		jsonOutput bool
		check      bool
	)

	cmd := &cobra.Command{
		Use:   "generate [path]",
		Short: "Write the clippy lint profile files",
		Long: "Render the lint catalog once per profile and write novice.toml, expert.toml and master.toml " +
			"into the output directory. With --check nothing is written and stale files fail the command.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, args)
			if err != nil {
				return err
			}
			svc := e.generateService()

			if check {
				report, err := svc.Check(cmd.Context(), e.path)
				if err != nil {
					return fmt.Errorf("checking profiles: %w", err)
				}
				if jsonOutput {
					if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
						return err
					}
				} else {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderDrift(report))
				}
				if !report.Clean() {
					return errProfilesOutOfDate
				}
				return nil
			}

			report, err := svc.Generate(cmd.Context(), e.path)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderGenerate(report))
			return nil
		},
	}

	cmd.Flags().StringP("out", "o", "", "Output directory for profile files (default: config)")
	cmd.Flags().StringSliceP("profile", "p", nil, "Profiles to generate (novice, expert, master)")
	cmd.Flags().String("prefix", "", "Tool prefix used in lint headers (default: clippy::)")
	cmd.Flags().Int("wrap-width", 0, "Wrap comment text at this column (0 disables)")
	cmd.Flags().BoolVar(&check, "check", false, "Report stale or missing files without writing")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
