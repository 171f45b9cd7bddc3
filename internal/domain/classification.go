package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownGroup         = errors.New("unknown lint group")
	ErrUnknownApplicability = errors.New("unknown applicability")
)

// LintGroup is the clippy category a lint belongs to.
type LintGroup int

const (
	GroupStyle LintGroup = iota
	GroupCorrectness
	GroupPerformance
	GroupComplexity
	GroupPedantic
	GroupRestriction
	GroupSuspicious
	GroupNursery
	GroupPerf
)

// ValidLintGroups enumerates all lint groups.
var ValidLintGroups = []LintGroup{
	GroupStyle, GroupCorrectness, GroupPerformance, GroupComplexity,
	GroupPedantic, GroupRestriction, GroupSuspicious, GroupNursery, GroupPerf,
}

var lintGroupNames = map[LintGroup]string{
	GroupStyle:       "style",
	GroupCorrectness: "correctness",
	GroupPerformance: "performance",
	GroupComplexity:  "complexity",
	GroupPedantic:    "pedantic",
	GroupRestriction: "restriction",
	GroupSuspicious:  "suspicious",
	GroupNursery:     "nursery",
	GroupPerf:        "perf",
}

func (g LintGroup) String() string {
	if name, ok := lintGroupNames[g]; ok {
		return name
	}
	return fmt.Sprintf("group(%d)", int(g))
}

// Valid reports whether g is a known lint group.
func (g LintGroup) Valid() bool {
	_, ok := lintGroupNames[g]
	return ok
}

// ParseLintGroup converts a lowercase group name to a LintGroup.
func ParseLintGroup(name string) (LintGroup, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, g := range ValidLintGroups {
		if lintGroupNames[g] == n {
			return g, nil
		}
	}
	return GroupStyle, fmt.Errorf("%w %q", ErrUnknownGroup, name)
}

// Applicability describes how safely a lint's suggested fix can be applied.
type Applicability int

const (
	ApplicabilityUnspecified Applicability = iota
	ApplicabilityExperimental
	ApplicabilityStable
	ApplicabilityDeprecated
	ApplicabilityMachineApplicable
	ApplicabilityMaybeIncorrect
	ApplicabilityHasPlaceholders
)

// ValidApplicabilities enumerates all applicability values.
var ValidApplicabilities = []Applicability{
	ApplicabilityUnspecified,
	ApplicabilityExperimental,
	ApplicabilityStable,
	ApplicabilityDeprecated,
	ApplicabilityMachineApplicable,
	ApplicabilityMaybeIncorrect,
	ApplicabilityHasPlaceholders,
}

var applicabilityNames = map[Applicability]string{
	ApplicabilityUnspecified:       "unspecified",
	ApplicabilityExperimental:      "experimental",
	ApplicabilityStable:            "stable",
	ApplicabilityDeprecated:        "deprecated",
	ApplicabilityMachineApplicable: "machine-applicable",
	ApplicabilityMaybeIncorrect:    "maybe-incorrect",
	ApplicabilityHasPlaceholders:   "has-placeholders",
}

func (a Applicability) String() string {
	if name, ok := applicabilityNames[a]; ok {
		return name
	}
	return fmt.Sprintf("applicability(%d)", int(a))
}

// Valid reports whether a is a known applicability.
func (a Applicability) Valid() bool {
	_, ok := applicabilityNames[a]
	return ok
}

// ParseApplicability converts a kebab-case name to an Applicability.
func ParseApplicability(name string) (Applicability, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, a := range ValidApplicabilities {
		if applicabilityNames[a] == n {
			return a, nil
		}
	}
	return ApplicabilityUnspecified, fmt.Errorf("%w %q", ErrUnknownApplicability, name)
}

// ClippyGroups lists the group names accepted in the zuu.toml policy file.
// Unlike LintGroup it includes "cargo" and uses "perf" only.
var ClippyGroups = []string{
	"cargo",
	"complexity",
	"restriction",
	"style",
	"nursery",
	"pedantic",
	"suspicious",
	"correctness",
	"perf",
}

// DefaultAllowedGroups are the clippy groups allowed by a fresh policy.
var DefaultAllowedGroups = []string{"cargo", "restriction", "nursery", "pedantic"}

// IsClippyGroup reports whether name is one of ClippyGroups.
func IsClippyGroup(name string) bool {
	for _, g := range ClippyGroups {
		if g == name {
			return true
		}
	}
	return false
}
