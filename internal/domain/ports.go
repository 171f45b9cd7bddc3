package domain

import "io"

// File names written into a project.
const (
	ConfigFileName = ".cargo-configure.yaml"
	PolicyFileName = "zuu.toml"
)

// CatalogSource returns the ordered lint list for a profile.
type CatalogSource interface {
	For(p Profile) []Lint
}

// CatalogFunc adapts a plain function to CatalogSource.
type CatalogFunc func(p Profile) []Lint

func (f CatalogFunc) For(p Profile) []Lint { return f(p) }

// ProfileWriter serializes lint lists to profile files.
type ProfileWriter interface {
	Render(w io.Writer, lints []Lint) error
	Emit(dir, filename string, lints []Lint) (string, error)
	EmitAll(dir string, src CatalogSource, profiles []Profile) ([]string, error)
}

// ProfileWriterFactory builds a ProfileWriter for a tool prefix and wrap width.
type ProfileWriterFactory func(prefix string, width int) ProfileWriter

// PolicyStore reads and writes the zuu.toml policy file.
type PolicyStore interface {
	Read(path string) (Policy, error)
	Write(path string, p Policy, force bool) error
}

// Policy is the per-group severity split written to zuu.toml.
type Policy struct {
	Allow []string `toml:"allow" json:"allow"`
	Warn  []string `toml:"warn"  json:"warn"`
	Deny  []string `toml:"deny"  json:"deny"`
}

// VersionControl initializes and detects repositories.
type VersionControl interface {
	IsRepo(path string) bool
	Init(path string) error
}

// ConfigLoader resolves the configuration for a project directory.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// ConfigWriter persists a project configuration file.
type ConfigWriter interface {
	Write(projectPath string, cfg ProjectConfig, force bool) (string, error)
}
