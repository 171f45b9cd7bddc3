package application

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/zuucrates/cargo-configure/internal/domain"
)

// PolicyService creates and reads the zuu.toml group policy.
type PolicyService struct {
	store        domain.PolicyStore
	configLoader domain.ConfigLoader
	logger       *zerolog.Logger
}

func NewPolicyService(store domain.PolicyStore, configLoader domain.ConfigLoader, logger *zerolog.Logger) *PolicyService {
	return &PolicyService{store: store, configLoader: configLoader, logger: logger}
}

// Create splits the clippy groups according to the configured allow and warn
// selections and writes the result to projectPath/zuu.toml.
func (s *PolicyService) Create(projectPath string, force bool) (string, domain.Policy, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return "", domain.Policy{}, fmt.Errorf("loading config: %w", err)
	}

	policy, err := cfg.Policy.Split()
	if err != nil {
		return "", domain.Policy{}, fmt.Errorf("splitting groups: %w", err)
	}

	path := filepath.Join(projectPath, domain.PolicyFileName)
	if err := s.store.Write(path, policy, force); err != nil {
		return "", domain.Policy{}, err
	}

	s.logger.Info().Str("path", path).
		Strs("allow", policy.Allow).
		Strs("warn", policy.Warn).
		Strs("deny", policy.Deny).
		Msg("wrote policy")
	return path, policy, nil
}

// Show reads projectPath/zuu.toml.
func (s *PolicyService) Show(projectPath string) (string, domain.Policy, error) {
	path := filepath.Join(projectPath, domain.PolicyFileName)
	policy, err := s.store.Read(path)
	if err != nil {
		return "", domain.Policy{}, err
	}
	return path, policy, nil
}
