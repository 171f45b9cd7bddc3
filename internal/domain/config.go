package domain

import "fmt"

// VCS kinds accepted by the scaffolder.
const (
	VCSGit  = "git"
	VCSNone = "none"
)

// ValidVCS enumerates the supported version-control systems.
var ValidVCS = []string{VCSGit, VCSNone}

// ValidLogLevels enumerates accepted log levels.
var ValidLogLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

// ValidLogFormats enumerates accepted log formats.
var ValidLogFormats = []string{"console", "json"}

// ProjectConfig holds configuration loaded from .cargo-configure.yaml,
// the user config file, the environment and flags.
type ProjectConfig struct {
	OutputDir  string       `koanf:"output_dir"  yaml:"output_dir"  json:"output_dir"`
	Profiles   []string     `koanf:"profiles"    yaml:"profiles"    json:"profiles"`
	ToolPrefix string       `koanf:"tool_prefix" yaml:"tool_prefix" json:"tool_prefix"`
	WrapWidth  int          `koanf:"wrap_width"  yaml:"wrap_width"  json:"wrap_width"`
	VCS        string       `koanf:"vcs"         yaml:"vcs"         json:"vcs"`
	Log        LogConfig    `koanf:"log"         yaml:"log"         json:"log"`
	Policy     PolicyConfig `koanf:"policy"      yaml:"policy"      json:"policy"`
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string `koanf:"level"  yaml:"level"  json:"level"`
	Format string `koanf:"format" yaml:"format" json:"format"`
}

// PolicyConfig carries the clippy group selections written to zuu.toml.
// A nil Warn means "every group that is not allowed"; an empty Warn warns
// nothing and denies the rest.
type PolicyConfig struct {
	Allow []string `koanf:"allow" yaml:"allow" json:"allow"`
	Warn  []string `koanf:"warn"  yaml:"warn"  json:"warn"`
}

// Split resolves the selections into the allow/warn/deny policy.
func (p PolicyConfig) Split() (Policy, error) {
	return SplitGroups(p.Allow, p.Warn)
}

// Resolved returns a copy of c with Policy.Warn made explicit, so that a
// written config means the same thing when it is read back.
func (c ProjectConfig) Resolved() (ProjectConfig, error) {
	policy, err := c.Policy.Split()
	if err != nil {
		return ProjectConfig{}, err
	}
	c.Policy.Allow = policy.Allow
	c.Policy.Warn = policy.Warn
	return c, nil
}

// DefaultOutputDir is where profile files are written.
const DefaultOutputDir = "config"

// DefaultWrapWidth is the column at which rationale comments are wrapped.
const DefaultWrapWidth = 100

// DefaultConfig returns the built-in configuration.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		OutputDir:  DefaultOutputDir,
		Profiles:   []string{"novice", "expert", "master"},
		ToolPrefix: DefaultToolPrefix,
		WrapWidth:  DefaultWrapWidth,
		VCS:        VCSGit,
		Log:        LogConfig{Level: "info", Format: "console"},
		Policy: PolicyConfig{
			Allow: append([]string(nil), DefaultAllowedGroups...),
		},
	}
}

// SelectedProfiles parses the configured profile names.
func (c ProjectConfig) SelectedProfiles() ([]Profile, error) {
	return ParseProfiles(c.Profiles)
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}

	if _, err := ParseProfiles(c.Profiles); err != nil {
		return fmt.Errorf("profiles: %w", err)
	}

	if c.WrapWidth < 0 {
		return fmt.Errorf("wrap_width must be >= 0 (got %d)", c.WrapWidth)
	}

	if !contains(ValidVCS, c.VCS) {
		return fmt.Errorf("unknown vcs %q (valid: git, none)", c.VCS)
	}

	if c.Log.Level != "" && !contains(ValidLogLevels, c.Log.Level) {
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	if c.Log.Format != "" && !contains(ValidLogFormats, c.Log.Format) {
		return fmt.Errorf("unknown log.format %q (valid: console, json)", c.Log.Format)
	}

	for _, g := range c.Policy.Allow {
		if !IsClippyGroup(g) {
			return fmt.Errorf("%w %q in policy.allow", ErrUnknownGroup, g)
		}
	}
	for _, g := range c.Policy.Warn {
		if !IsClippyGroup(g) {
			return fmt.Errorf("%w %q in policy.warn", ErrUnknownGroup, g)
		}
	}

	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
