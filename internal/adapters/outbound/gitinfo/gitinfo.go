package gitinfo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

const gitignore = "/target\n"

// GitAdapter implements domain.VersionControl using go-git.
type GitAdapter struct{}

func New() *GitAdapter {
	return &GitAdapter{}
}

// IsRepo reports whether projectPath or one of its parents is a git repository.
func (g *GitAdapter) IsRepo(projectPath string) bool {
	_, err := git.PlainOpenWithOptions(projectPath, &git.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// Init creates a repository at projectPath and a .gitignore ignoring the
// cargo build directory. An existing repository or .gitignore is kept.
func (g *GitAdapter) Init(projectPath string) error {
	if _, err := git.PlainInit(projectPath, false); err != nil && !errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return fmt.Errorf("initializing git repo: %w", err)
	}

	path := filepath.Join(projectPath, ".gitignore")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(gitignore), 0644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}

// NoVCS implements domain.VersionControl for projects without version control.
type NoVCS struct{}

func (NoVCS) IsRepo(string) bool { return false }
func (NoVCS) Init(string) error  { return nil }
