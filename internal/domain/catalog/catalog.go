// Package catalog holds the immutable table of clippy lints and builds the
// per-profile lint lists that the emitter serializes.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/zuucrates/cargo-configure/internal/domain"
)

// ErrLintNotFound is returned by Lookup for an id missing from the catalog.
var ErrLintNotFound = errors.New("lint not found")

const issueSearchURL = "https://github.com/rust-lang/rust-clippy/issues?q=is%3Aissue+"

// Definition is the authored record of one lint. Every field is shared by
// the three profiles except the profile severities.
type Definition struct {
	ID                string
	Description       string
	WhatsBad          string
	KnownProblems     string
	Disabled          bool
	ClippySeverity    domain.Severity
	UseClippySeverity bool
	Group             domain.LintGroup
	Applicability     domain.Applicability
	Issue             string

	Novice domain.Severity
	Expert domain.Severity
	Master domain.Severity
}

// Severity returns the configured severity of d for profile p.
func (d Definition) Severity(p domain.Profile) domain.Severity {
	switch p {
	case domain.ProfileExpert:
		return d.Expert
	case domain.ProfileMaster:
		return d.Master
	default:
		return d.Novice
	}
}

// For builds the lint record of d for profile p.
func (d Definition) For(p domain.Profile) domain.Lint {
	return domain.Lint{
		ID:                d.ID,
		Description:       d.Description,
		WhatsBad:          d.WhatsBad,
		KnownProblems:     d.KnownProblems,
		EnabledByDefault:  !d.Disabled,
		ClippySeverity:    d.ClippySeverity,
		UseClippySeverity: d.UseClippySeverity,
		Severity:          d.Severity(p),
		Group:             d.Group,
		Issue:             d.Issue,
		Applicability:     d.Applicability,
	}
}

// issues returns the clippy issue-tracker search URL for a lint id.
func issues(id string) string {
	return issueSearchURL + id
}

// Definitions returns a copy of the authored catalog in declaration order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// For returns the ordered lint list for profile p. The result is a fresh
// slice; callers may modify it freely.
func For(p domain.Profile) []domain.Lint {
	out := make([]domain.Lint, len(definitions))
	for i, d := range definitions {
		out[i] = d.For(p)
	}
	return out
}

// Filter returns the lints of lints that belong to group, in order. The
// input slice is not modified.
func Filter(lints []domain.Lint, group domain.LintGroup) []domain.Lint {
	var out []domain.Lint
	for _, l := range lints {
		if l.Group == group {
			out = append(out, l)
		}
	}
	return out
}

// Source exposes the catalog as a domain.CatalogSource.
func Source() domain.CatalogSource {
	return domain.CatalogFunc(For)
}

// Lookup finds a definition by id. Both "absolute_paths" and
// "AbsolutePaths" resolve to the same lint; a "clippy::" prefix is ignored.
func Lookup(id string) (Definition, error) {
	key := NormalizeID(id)
	for _, d := range definitions {
		if d.ID == key {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("%w: %q", ErrLintNotFound, id)
}

// NormalizeID converts a user-supplied lint name to catalog id form.
func NormalizeID(id string) string {
	id = strings.TrimSpace(id)
	id = strings.TrimPrefix(id, domain.DefaultToolPrefix)
	if strings.ContainsAny(id, "_-") || strings.ToLower(id) == id {
		return strings.ToLower(strings.ReplaceAll(id, "-", "_"))
	}
	parts := camelcase.Split(id)
	words := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			words = append(words, strings.ToLower(p))
		}
	}
	return strings.Join(words, "_")
}

// Validate checks catalog invariants: ids are present and unique, enums are
// in their closed sets and every severity is a base severity.
func Validate(defs []Definition) error {
	var errs []error
	seen := make(map[string]bool, len(defs))
	for i, d := range defs {
		if d.ID == "" {
			errs = append(errs, fmt.Errorf("definition %d: empty id", i))
			continue
		}
		if seen[d.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id", d.ID))
		}
		seen[d.ID] = true

		if d.Description == "" {
			errs = append(errs, fmt.Errorf("%s: empty description", d.ID))
		}
		if !d.Group.Valid() {
			errs = append(errs, fmt.Errorf("%s: invalid group %s", d.ID, d.Group))
		}
		if !d.Applicability.Valid() {
			errs = append(errs, fmt.Errorf("%s: invalid applicability %s", d.ID, d.Applicability))
		}
		severities := []struct {
			name  string
			value domain.Severity
		}{
			{"clippy", d.ClippySeverity},
			{"novice", d.Novice},
			{"expert", d.Expert},
			{"master", d.Master},
		}
		for _, s := range severities {
			if !s.value.Valid() {
				errs = append(errs, fmt.Errorf("%s: invalid %s severity %s", d.ID, s.name, s.value))
			}
		}
	}
	return errors.Join(errs...)
}
