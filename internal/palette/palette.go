// Package palette holds the bead colour catalog and the subset of it the
// user currently owns.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LaplaceYoung/pixelcraft/internal/colorspace"
)

// ErrDuplicateColorID is returned when two catalog entries share an id.
var ErrDuplicateColorID = errors.New("duplicate color id")

// Color is one bead colour. Lab is always derived from Hex by New.
type Color struct {
	ID    string
	Brand Brand
	Name  string
	Hex   string
	RGB   colorspace.RGB
	Lab   colorspace.Lab
}

// Palette is an ordered catalog plus a set of disabled ids.
// Catalog order is the matcher's tie-break order and never changes.
type Palette struct {
	colors   []Color
	index    map[string]int
	disabled map[string]bool
}

// New validates the catalog and precomputes Lab for every colour.
// Hex values are normalised to "#RRGGBB". Nothing is returned on error.
func New(colors []Color) (*Palette, error) {
	p := &Palette{
		colors:   make([]Color, 0, len(colors)),
		index:    make(map[string]int, len(colors)),
		disabled: make(map[string]bool),
	}
	for i, c := range colors {
		if c.ID == "" {
			return nil, fmt.Errorf("color[%d]: empty id", i)
		}
		if _, dup := p.index[c.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColorID, c.ID)
		}
		rgb, err := colorspace.ParseHex(c.Hex)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", c.ID, err)
		}
		c.RGB = rgb
		c.Hex = rgb.Hex()
		c.Lab = colorspace.RGBToLab(rgb)

		p.index[c.ID] = len(p.colors)
		p.colors = append(p.colors, c)
	}
	return p, nil
}

// MustNew is New for static catalogs; it panics on error.
func MustNew(colors []Color) *Palette {
	p, err := New(colors)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the catalog size, disabled colours included.
func (p *Palette) Len() int { return len(p.colors) }

// Colors returns a copy of the full catalog in order.
func (p *Palette) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// Active returns the enabled colours in catalog order.
func (p *Palette) Active() []Color {
	out := make([]Color, 0, len(p.colors))
	for _, c := range p.colors {
		if !p.disabled[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// Lookup resolves an id, whether or not the colour is disabled.
func (p *Palette) Lookup(id string) (Color, bool) {
	i, ok := p.index[id]
	if !ok {
		return Color{}, false
	}
	return p.colors[i], true
}

// SetDisabled marks a colour as not owned. Unknown ids are ignored.
func (p *Palette) SetDisabled(id string, disabled bool) {
	if _, ok := p.index[id]; !ok {
		return
	}
	if disabled {
		p.disabled[id] = true
	} else {
		delete(p.disabled, id)
	}
}

// Toggle flips the disabled state of id and reports the new state.
func (p *Palette) Toggle(id string) (disabled bool) {
	if _, ok := p.index[id]; !ok {
		return false
	}
	p.SetDisabled(id, !p.disabled[id])
	return p.disabled[id]
}

// IsDisabled reports whether id is currently disabled.
func (p *Palette) IsDisabled(id string) bool {
	return p.disabled[id]
}

// DisabledIDs returns disabled ids in catalog order.
func (p *Palette) DisabledIDs() []string {
	var ids []string
	for _, c := range p.colors {
		if p.disabled[c.ID] {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// Search returns colours whose id or name contains query, ignoring case.
// An empty query matches everything.
func (p *Palette) Search(query string) []Color {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Color
	for _, c := range p.colors {
		if q == "" ||
			strings.Contains(strings.ToLower(c.ID), q) ||
			strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

// FilterBrand returns a new palette restricted to one brand, carrying over
// the disabled state of the kept colours.
func (p *Palette) FilterBrand(b Brand) *Palette {
	out := &Palette{
		index:    make(map[string]int),
		disabled: make(map[string]bool),
	}
	for _, c := range p.colors {
		if c.Brand != b {
			continue
		}
		out.index[c.ID] = len(out.colors)
		out.colors = append(out.colors, c)
		if p.disabled[c.ID] {
			out.disabled[c.ID] = true
		}
	}
	return out
}
