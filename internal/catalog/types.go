package catalog

import "github.com/LaplaceYoung/pixelcraft/internal/palette"

// File is a user-editable palette configuration.
type File struct {
	Version  int      `json:"version"`
	Name     string   `json:"name"`
	Colors   []Entry  `json:"colors"`
	Disabled []string `json:"disabled,omitempty"` // ids the user does not own
	Checksum string   `json:"-"`                  // xxhash64 of the file bytes, set by Load
}

// Entry is one colour of the catalog.
type Entry struct {
	ID    string        `json:"id"`
	Brand palette.Brand `json:"brand"`
	Name  string        `json:"name"`
	Hex   string        `json:"hex"`
}

// SupportedVersion is the current schema version.
const SupportedVersion = 1
