package domain

// GeneratedFile describes one emitted profile file.
type GeneratedFile struct {
	Profile string `json:"profile"`
	Path    string `json:"path"`
	Lints   int    `json:"lints"`
	Bytes   int    `json:"bytes"`
}

// GenerateReport is the outcome of a generate run.
type GenerateReport struct {
	OutputDir string          `json:"output_dir"`
	Files     []GeneratedFile `json:"files"`
}

// Drift states of a profile file compared with the catalog.
const (
	DriftNone    = "ok"
	DriftMissing = "missing"
	DriftStale   = "stale"
)

// FileDrift is the comparison result for one profile file.
type FileDrift struct {
	Profile string `json:"profile"`
	Path    string `json:"path"`
	Status  string `json:"status"`
}

// DriftReport lists the state of every checked profile file.
type DriftReport struct {
	OutputDir string      `json:"output_dir"`
	Files     []FileDrift `json:"files"`
}

// Clean reports whether every file matches the catalog.
func (r *DriftReport) Clean() bool {
	for _, f := range r.Files {
		if f.Status != DriftNone {
			return false
		}
	}
	return true
}
