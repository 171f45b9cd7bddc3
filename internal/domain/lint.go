package domain

// DefaultToolPrefix qualifies lint ids in generated comments.
const DefaultToolPrefix = "clippy::"

// Lint is the configuration of one clippy lint for one profile.
type Lint struct {
	ID                string        `json:"id"                       yaml:"id"`
	Description       string        `json:"description"              yaml:"description"`
	WhatsBad          string        `json:"whats_bad"                yaml:"whats_bad"`
	KnownProblems     string        `json:"known_problems,omitempty" yaml:"known_problems,omitempty"`
	EnabledByDefault  bool          `json:"enabled"                  yaml:"enabled"`
	ClippySeverity    Severity      `json:"clippy_severity"          yaml:"clippy_severity"`
	UseClippySeverity bool          `json:"use_clippy_severity"      yaml:"use_clippy_severity"`
	Severity          Severity      `json:"config_severity"          yaml:"config_severity"`
	Group             LintGroup     `json:"group"                    yaml:"group"`
	Issue             string        `json:"issue,omitempty"          yaml:"issue,omitempty"`
	Applicability     Applicability `json:"applicability"            yaml:"applicability"`
}

// QualifiedID returns the lint id with the tool prefix, e.g. "clippy::absolute_paths".
func (l Lint) QualifiedID(prefix string) string {
	return prefix + l.ID
}

// IncreaseConfig lists the severities reachable by tightening the profile severity.
func (l Lint) IncreaseConfig() Increase { return Increase{Base: l.Severity} }

// DecreaseConfig lists the severities reachable by relaxing the profile severity.
func (l Lint) DecreaseConfig() Decrease { return Decrease{Base: l.Severity} }

// IncreaseClippy lists the severities reachable by tightening clippy's default.
func (l Lint) IncreaseClippy() Increase { return Increase{Base: l.ClippySeverity} }

// DecreaseClippy lists the severities reachable by relaxing clippy's default.
func (l Lint) DecreaseClippy() Decrease { return Decrease{Base: l.ClippySeverity} }

// EffectiveSeverity is the severity a consumer should apply: clippy's own
// default when UseClippySeverity is set, the profile severity otherwise.
func (l Lint) EffectiveSeverity() Severity {
	if l.UseClippySeverity {
		return l.ClippySeverity
	}
	return l.Severity
}
