package domain

import "fmt"

// SplitGroups distributes the clippy groups over allow, warn and deny.
// Allowed groups are taken first, then warned groups; deny receives the rest
// in ClippyGroups order. A nil warn slice warns every group not allowed.
func SplitGroups(allow, warn []string) (Policy, error) {
	allowed, err := normalizeGroups(allow, "allow")
	if err != nil {
		return Policy{}, err
	}

	remaining := without(ClippyGroups, allowed)

	var warned []string
	if warn == nil {
		warned = remaining
	} else {
		warned, err = normalizeGroups(warn, "warn")
		if err != nil {
			return Policy{}, err
		}
		for _, g := range warned {
			if containsGroup(allowed, g) {
				return Policy{}, fmt.Errorf("group %q is both allowed and warned", g)
			}
		}
	}

	return Policy{
		Allow: allowed,
		Warn:  warned,
		Deny:  without(remaining, warned),
	}, nil
}

// normalizeGroups validates names and returns them in ClippyGroups order
// without duplicates.
func normalizeGroups(names []string, field string) ([]string, error) {
	for _, n := range names {
		if !IsClippyGroup(n) {
			return nil, fmt.Errorf("%w %q in %s", ErrUnknownGroup, n, field)
		}
	}
	out := []string{}
	for _, g := range ClippyGroups {
		if containsGroup(names, g) {
			out = append(out, g)
		}
	}
	return out, nil
}

func without(groups, drop []string) []string {
	out := []string{}
	for _, g := range groups {
		if !containsGroup(drop, g) {
			out = append(out, g)
		}
	}
	return out
}

func containsGroup(list []string, g string) bool {
	for _, v := range list {
		if v == g {
			return true
		}
	}
	return false
}
