package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/zuucrates/cargo-configure/internal/domain"
)

// InitResult summarizes what Init created.
type InitResult struct {
	ConfigPath     string                 `json:"config_path"`
	PolicyPath     string                 `json:"policy_path"`
	Policy         domain.Policy          `json:"policy"`
	GitInitialized bool                   `json:"git_initialized"`
	Generate       *domain.GenerateReport `json:"generate"`
}

// ScaffoldService prepares a project for lint configuration:
// write config → init vcs → write zuu.toml → generate profiles.
type ScaffoldService struct {
	configLoader domain.ConfigLoader
	configWriter domain.ConfigWriter
	vcs          domain.VersionControl
	policies     *PolicyService
	generator    *GenerateService
	logger       *zerolog.Logger
}

func NewScaffoldService(
	configLoader domain.ConfigLoader,
	configWriter domain.ConfigWriter,
	vcs domain.VersionControl,
	policies *PolicyService,
	generator *GenerateService,
	logger *zerolog.Logger,
) *ScaffoldService {
	return &ScaffoldService{
		configLoader: configLoader,
		configWriter: configWriter,
		vcs:          vcs,
		policies:     policies,
		generator:    generator,
		logger:       logger,
	}
}

// Init scaffolds projectPath. Existing config or policy files are an error
// unless force is set.
func (s *ScaffoldService) Init(ctx context.Context, projectPath string, force bool) (*InitResult, error) {
	if err := os.MkdirAll(projectPath, 0755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if !force {
		path := filepath.Join(projectPath, domain.PolicyFileName)
		if _, err := os.Stat(path); err == nil {
			return nil, fmt.Errorf("%s already exists (use --force to overwrite)", domain.PolicyFileName)
		}
	}

	cfg, err = cfg.Resolved()
	if err != nil {
		return nil, fmt.Errorf("splitting groups: %w", err)
	}

	result := &InitResult{}
	result.ConfigPath, err = s.configWriter.Write(projectPath, cfg, force)
	if err != nil {
		return nil, err
	}

	if cfg.VCS == domain.VCSGit && !s.vcs.IsRepo(projectPath) {
		if err := s.vcs.Init(projectPath); err != nil {
			return nil, err
		}
		result.GitInitialized = true
		s.logger.Debug().Str("path", projectPath).Msg("initialized git repository")
	}

	result.PolicyPath, result.Policy, err = s.policies.Create(projectPath, force)
	if err != nil {
		return nil, err
	}

	result.Generate, err = s.generator.Generate(ctx, projectPath)
	if err != nil {
		return nil, err
	}
	return result, nil
}
