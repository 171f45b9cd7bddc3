// Package policy persists the zuu.toml group policy.
package policy

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/zuucrates/cargo-configure/internal/adapters/outbound/fsutil"
	"github.com/zuucrates/cargo-configure/internal/domain"
)

// FileName is the policy file written at the project root.
const FileName = domain.PolicyFileName

// ErrExists is returned by Write when the target exists and force is unset.
var ErrExists = errors.New("policy file already exists")

// TOMLStore implements domain.PolicyStore.
type TOMLStore struct{}

func New() *TOMLStore {
	return &TOMLStore{}
}

// Path returns the policy file location for a project directory.
func Path(projectPath string) string {
	return filepath.Join(projectPath, FileName)
}

// Read decodes the policy at path. Missing keys decode as empty lists.
func (s *TOMLStore) Read(path string) (domain.Policy, error) {
	var p domain.Policy
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return domain.Policy{}, fmt.Errorf("reading policy %s: %w", path, err)
	}
	return normalize(p), nil
}

// Write encodes p to path atomically. An existing file is only replaced when
// force is set.
func (s *TOMLStore) Write(path string, p domain.Policy, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, path)
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(normalize(p)); err != nil {
		return fmt.Errorf("encoding policy: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating policy directory: %w", err)
	}
	if err := fsutil.WriteFileAtomic(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing policy: %w", err)
	}
	return nil
}

// normalize replaces nil lists so every key is always present in the file.
func normalize(p domain.Policy) domain.Policy {
	if p.Allow == nil {
		p.Allow = []string{}
	}
	if p.Warn == nil {
		p.Warn = []string{}
	}
	if p.Deny == nil {
		p.Deny = []string{}
	}
	return p
}
