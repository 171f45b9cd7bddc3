package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/zuucrates/cargo-configure/internal/adapters/outbound/config"
	"github.com/zuucrates/cargo-configure/internal/adapters/outbound/emitter"
	"github.com/zuucrates/cargo-configure/internal/adapters/outbound/gitinfo"
	"github.com/zuucrates/cargo-configure/internal/adapters/outbound/logging"
	"github.com/zuucrates/cargo-configure/internal/adapters/outbound/policy"
	"github.com/zuucrates/cargo-configure/internal/application"
	"github.com/zuucrates/cargo-configure/internal/domain"
	"github.com/zuucrates/cargo-configure/internal/domain/catalog"
)

// env is the per-invocation wiring shared by project commands.
type env struct {
	path   string
	cfg    domain.ProjectConfig
	loader *config.Loader
	logger *zerolog.Logger
}

// setup resolves the project path, loads its configuration with the
// command's flags applied, and stores a logger in the command context.
func setup(cmd *cobra.Command, args []string) (*env, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	loader := config.New()
	loader.ConfigFile, _ = cmd.Flags().GetString("config")
	loader.Flags = cmd.Flags()

	cfg, err := loader.Load(absPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	cmd.SetContext(logger.WithContext(cmd.Context()))

	return &env{path: absPath, cfg: cfg, loader: loader, logger: logger}, nil
}

func (e *env) generateService() *application.GenerateService {
	return application.NewGenerateService(catalog.Source(), emitter.Factory, e.loader, e.logger)
}

func (e *env) policyService() *application.PolicyService {
	return application.NewPolicyService(policy.New(), e.loader, e.logger)
}

func (e *env) scaffoldService() *application.ScaffoldService {
	var vcs domain.VersionControl = gitinfo.NoVCS{}
	if e.cfg.VCS == domain.VCSGit {
		vcs = gitinfo.New()
	}
	return application.NewScaffoldService(
		e.loader,
		config.NewWriter(),
		vcs,
		e.policyService(),
		e.generateService(),
		e.logger,
	)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
