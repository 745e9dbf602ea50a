package report

import (
	"encoding/json"
	"os"
	"time"

	"github.com/LaplaceYoung/pixelcraft/internal/pattern"
	"github.com/LaplaceYoung/pixelcraft/internal/stats"
)

// New creates an empty report with defaults.
func New(profileName, catalogName string, targetWidth int) *Report {
	return &Report{
		Version:     SupportedVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Profile:     profileName,
		Catalog:     catalogName,
		TargetWidth: targetWidth,
		Items:       make(map[string]Item),
	}
}

// NewItem summarises a built pattern and its usage stats.
func NewItem(src SourceInfo, p *pattern.Pattern, s stats.Stats) Item {
	it := Item{
		Source:      src,
		Width:       p.Width,
		Height:      p.Height,
		Fingerprint: p.Fingerprint(),
		Usage:       make([]Usage, 0, s.Len()),
		Beads:       s.Total,
		Dropped:     s.Dropped,
	}
	for _, u := range s.Entries {
		it.Usage = append(it.Usage, Usage{
			ID:    u.Color.ID,
			Brand: u.Color.Brand.String(),
			Name:  u.Color.Name,
			Hex:   u.Color.Hex,
			Count: u.Count,
		})
	}
	return it
}

// ComputeTotals recalculates aggregate totals from items.
func (r *Report) ComputeTotals() {
	t := Totals{
		Images:   len(r.Items),
		PerColor: make(map[string]int),
	}
	for _, it := range r.Items {
		t.Beads += it.Beads
		for _, u := range it.Usage {
			t.PerColor[u.ID] += u.Count
		}
	}
	t.Colors = len(t.PerColor)
	r.Totals = t
}

// WriteJSON serializes the report to a JSON file with stable ordering.
func WriteJSON(r *Report, path string) error {
	r.ComputeTotals()

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads a report written by WriteJSON.
func ReadJSON(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
