// Package catalog reads and writes palette configuration files.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/LaplaceYoung/pixelcraft/internal/colorspace"
	"github.com/LaplaceYoung/pixelcraft/internal/hasher"
	"github.com/LaplaceYoung/pixelcraft/internal/palette"
)

// New creates a catalog file from a palette, recording its disabled ids.
func New(name string, p *palette.Palette) *File {
	f := &File{
		Version:  SupportedVersion,
		Name:     name,
		Disabled: p.DisabledIDs(),
	}
	for _, c := range p.Colors() {
		f.Colors = append(f.Colors, Entry{ID: c.ID, Brand: c.Brand, Name: c.Name, Hex: c.Hex})
	}
	return f
}

// Load reads and parses a catalog file. It does not validate colours;
// use Validate or Palette for that.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	f.Checksum = hasher.ContentHash(data, 16)
	return &f, nil
}

// Palette builds the palette described by f and applies its disabled list.
func (f *File) Palette() (*palette.Palette, error) {
	if f.Version != SupportedVersion {
		return nil, fmt.Errorf("unsupported catalog version: %d", f.Version)
	}
	colors := make([]palette.Color, len(f.Colors))
	for i, e := range f.Colors {
		colors[i] = palette.Color{ID: e.ID, Brand: e.Brand, Name: e.Name, Hex: e.Hex}
	}
	p, err := palette.New(colors)
	if err != nil {
		return nil, err
	}
	for _, id := range f.Disabled {
		p.SetDisabled(id, true)
	}
	return p, nil
}

// Validate returns every problem found in f, not just the first.
func Validate(f *File) []string {
	var errs []string

	if f.Version != SupportedVersion {
		errs = append(errs, fmt.Sprintf("unsupported catalog version: %d", f.Version))
	}
	if len(f.Colors) == 0 {
		errs = append(errs, "catalog has no colors")
	}

	seen := map[string]int{}
	for i, e := range f.Colors {
		if e.ID == "" {
			errs = append(errs, fmt.Sprintf("color[%d]: empty id", i))
		} else if first, dup := seen[e.ID]; dup {
			errs = append(errs, fmt.Sprintf("color[%d]: %v: %q (first at color[%d])",
				i, palette.ErrDuplicateColorID, e.ID, first))
		} else {
			seen[e.ID] = i
		}
		if _, err := colorspace.ParseHex(e.Hex); err != nil {
			errs = append(errs, fmt.Sprintf("color[%d] %q: %v", i, e.ID, err))
		}
		if e.Name == "" {
			errs = append(errs, fmt.Sprintf("color[%d] %q: empty name", i, e.ID))
		}
	}

	off := map[string]bool{}
	for _, id := range f.Disabled {
		if _, ok := seen[id]; !ok {
			errs = append(errs, fmt.Sprintf("disabled id %q is not in the catalog", id))
			continue
		}
		off[id] = true
	}
	if len(seen) > 0 && len(off) == len(seen) {
		errs = append(errs, "every color is disabled; patterns cannot be generated")
	}
	return errs
}

// WriteJSON serializes the catalog to path.
func WriteJSON(f *File, path string) error {
	if f == nil {
		return errors.New("nil catalog")
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
