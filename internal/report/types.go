package report

// Report is the top-level output of a batch generate run.
type Report struct {
	Version     int             `json:"version"`
	GeneratedAt string          `json:"generated_at"`
	Profile     string          `json:"profile"`
	Catalog     string          `json:"catalog"`
	TargetWidth int             `json:"target_width"`
	BuildInfo   *BuildInfo      `json:"build_info,omitempty"`
	Items       map[string]Item `json:"items"`
	Totals      Totals          `json:"totals"`
}

// BuildInfo captures build-time parameters for diagnostics.
type BuildInfo struct {
	Workers        int      `json:"workers"`
	ActiveColors   int      `json:"active_colors"`
	DisabledColors []string `json:"disabled_colors,omitempty"`
}

// Item describes one source image and the pattern built from it.
type Item struct {
	Source      SourceInfo `json:"source"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Fingerprint string     `json:"fingerprint"` // xxhash64 of the pattern grid
	Usage       []Usage    `json:"usage"`
	Beads       int        `json:"beads"`
	Dropped     int        `json:"dropped,omitempty"`
}

// SourceInfo holds metadata about the source image.
type SourceInfo struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
}

// Usage is the bead count of one colour.
type Usage struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	Name  string `json:"name"`
	Hex   string `json:"hex"`
	Count int    `json:"count"`
}

// Totals aggregates report metrics.
type Totals struct {
	Images   int            `json:"images"`
	Beads    int            `json:"beads"`
	Colors   int            `json:"colors"`
	PerColor map[string]int `json:"per_color,omitempty"`
}

// SupportedVersion is the current schema version.
const SupportedVersion = 1
