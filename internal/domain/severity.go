package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSeverity is returned when a severity name cannot be parsed.
var ErrUnknownSeverity = errors.New("unknown severity")

// Severity is the enforcement level of a lint. Values are ordered from the
// most permissive to the strictest.
type Severity int

const (
	SeverityAllow Severity = iota
	SeverityWarn
	SeverityDeny
)

// ValidSeverities enumerates all severities in strictness order.
var ValidSeverities = []Severity{SeverityAllow, SeverityWarn, SeverityDeny}

func (s Severity) String() string {
	switch s {
	case SeverityAllow:
		return "allow"
	case SeverityWarn:
		return "warn"
	case SeverityDeny:
		return "deny"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Valid reports whether s is one of the three base severities.
func (s Severity) Valid() bool {
	return s >= SeverityAllow && s <= SeverityDeny
}

// ParseSeverity converts "allow", "warn" or "deny" (any case) to a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "allow":
		return SeverityAllow, nil
	case "warn":
		return SeverityWarn, nil
	case "deny":
		return SeverityDeny, nil
	default:
		return SeverityAllow, fmt.Errorf("%w %q (valid: allow, warn, deny)", ErrUnknownSeverity, name)
	}
}

// Stricter returns the severities above s, ascending.
func (s Severity) Stricter() []Severity {
	var out []Severity
	for _, v := range ValidSeverities {
		if v > s {
			out = append(out, v)
		}
	}
	return out
}

// Looser returns the severities below s, ascending.
func (s Severity) Looser() []Severity {
	var out []Severity
	for _, v := range ValidSeverities {
		if v < s {
			out = append(out, v)
		}
	}
	return out
}

// Increase describes the severities reachable by tightening Base.
// It is a display value and is never stored in generated files as a setting.
type Increase struct {
	Base Severity
}

func (i Increase) String() string { return joinSeverities(i.Base.Stricter()) }

// Decrease describes the severities reachable by relaxing Base.
type Decrease struct {
	Base Severity
}

func (d Decrease) String() string { return joinSeverities(d.Base.Looser()) }

func joinSeverities(values []Severity) string {
	if len(values) == 0 {
		return "none"
	}
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return strings.Join(names, ", ")
}
