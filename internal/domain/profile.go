package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownProfile is returned when a profile name cannot be parsed.
var ErrUnknownProfile = errors.New("unknown profile")

// Profile is a preset strictness bundle that assigns every lint a severity.
// Profiles are ordered by convention from the most lenient to the strictest.
type Profile int

const (
	ProfileNovice Profile = iota
	ProfileExpert
	ProfileMaster
)

// AllProfiles returns every profile in strictness order.
func AllProfiles() []Profile {
	return []Profile{ProfileNovice, ProfileExpert, ProfileMaster}
}

func (p Profile) String() string {
	switch p {
	case ProfileNovice:
		return "novice"
	case ProfileExpert:
		return "expert"
	case ProfileMaster:
		return "master"
	default:
		return fmt.Sprintf("profile(%d)", int(p))
	}
}

// Filename is the name of the generated configuration file for p.
func (p Profile) Filename() string {
	return p.String() + ".toml"
}

// ParseProfile converts "novice", "expert" or "master" (any case) to a Profile.
func ParseProfile(name string) (Profile, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, p := range AllProfiles() {
		if p.String() == n {
			return p, nil
		}
	}
	return ProfileNovice, fmt.Errorf("%w %q (valid: novice, expert, master)", ErrUnknownProfile, name)
}

// ParseProfiles parses a list of profile names, keeping their order and
// dropping duplicates. An empty list yields AllProfiles.
func ParseProfiles(names []string) ([]Profile, error) {
	if len(names) == 0 {
		return AllProfiles(), nil
	}
	seen := make(map[Profile]bool, len(names))
	var out []Profile
	for _, n := range names {
		p, err := ParseProfile(n)
		if err != nil {
			return nil, err
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out, nil
}
