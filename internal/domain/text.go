package domain

// Text marshaling lets JSON, YAML and TOML encoders render the enums by name.

func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Severity) UnmarshalText(b []byte) error {
	v, err := ParseSeverity(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (g LintGroup) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

func (g *LintGroup) UnmarshalText(b []byte) error {
	v, err := ParseLintGroup(string(b))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

func (a Applicability) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Applicability) UnmarshalText(b []byte) error {
	v, err := ParseApplicability(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (p Profile) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Profile) UnmarshalText(b []byte) error {
	v, err := ParseProfile(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
