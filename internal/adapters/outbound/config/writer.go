package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zuucrates/cargo-configure/internal/adapters/outbound/fsutil"
	"github.com/zuucrates/cargo-configure/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLWriter implements domain.ConfigWriter.
type YAMLWriter struct{}

// NewWriter creates a YAMLWriter.
func NewWriter() *YAMLWriter { return &YAMLWriter{} }

// Write stores cfg as projectPath/.cargo-configure.yaml. An existing file is
// left alone unless force is set. A nil policy.warn is resolved first, since
// the file cannot tell a nil list from an empty one.
func (w *YAMLWriter) Write(projectPath string, cfg domain.ProjectConfig, force bool) (string, error) {
	path := filepath.Join(projectPath, FileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", FileName)
		}
	}

	if cfg.Policy.Warn == nil {
		resolved, err := cfg.Resolved()
		if err != nil {
			return "", fmt.Errorf("resolving policy: %w", err)
		}
		cfg = resolved
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(projectPath, 0755); err != nil {
		return "", fmt.Errorf("creating project directory: %w", err)
	}
	if err := fsutil.WriteFileAtomic(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", FileName, err)
	}
	return path, nil
}
