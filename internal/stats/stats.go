// Package stats counts how many beads of each colour a pattern needs.
package stats

import (
	"sort"

	"github.com/LaplaceYoung/pixelcraft/internal/palette"
	"github.com/LaplaceYoung/pixelcraft/internal/pattern"
)

// Resolver maps a colour id back to its catalog entry.
// *palette.Palette satisfies it.
type Resolver interface {
	Lookup(id string) (palette.Color, bool)
}

// Usage is the bead count for one colour.
type Usage struct {
	Color palette.Color
	Count int
}

// Stats lists colour usage by descending count.
type Stats struct {
	Entries []Usage
	// Total is the sum of Entries' counts.
	Total int
	// Dropped counts cells whose id no longer resolves (stale or unknown).
	Dropped int
}

// Aggregate tallies every cell of p. Ids the resolver does not know are
// dropped silently. Equal counts keep the order in which the colours were
// first seen scanning rows top to bottom, left to right.
func Aggregate(p *pattern.Pattern, r Resolver) Stats {
	var s Stats
	if p == nil {
		return s
	}

	counts := make(map[string]int)
	var order []string
	p.Cells(func(c pattern.Cell) {
		if _, seen := counts[c.ColorID]; !seen {
			order = append(order, c.ColorID)
		}
		counts[c.ColorID]++
	})

	for _, id := range order {
		col, ok := r.Lookup(id)
		if !ok {
			s.Dropped += counts[id]
			continue
		}
		s.Entries = append(s.Entries, Usage{Color: col, Count: counts[id]})
		s.Total += counts[id]
	}

	sort.SliceStable(s.Entries, func(i, j int) bool {
		return s.Entries[i].Count > s.Entries[j].Count
	})
	return s
}

// Len returns the number of distinct colours used.
func (s Stats) Len() int { return len(s.Entries) }

// Count returns the usage of a colour id, 0 if unused.
func (s Stats) Count(id string) int {
	for _, u := range s.Entries {
		if u.Color.ID == id {
			return u.Count
		}
	}
	return 0
}
