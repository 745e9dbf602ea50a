package profile

// Grid width limits enforced by the interactive front end.
const (
	MinWidth = 10
	MaxWidth = 100
)

// Profile is a named pattern size preset.
type Profile struct {
	Name    string
	Width   int    // target grid width in beads
	Catalog string // built-in catalog name
	Brand   string // optional brand filter, empty = every brand in the catalog
}

// Built-in profiles. Widths follow common pegboard sizes.
var profiles = map[string]Profile{
	"default": {
		Name:    "default",
		Width:   40,
		Catalog: "perler",
	},
	"keychain": {
		Name:    "keychain",
		Width:   14,
		Catalog: "perler",
	},
	"pegboard": {
		Name:    "pegboard",
		Width:   29,
		Catalog: "perler",
		Brand:   "perler",
	},
	"midi": {
		Name:    "midi",
		Width:   29,
		Catalog: "hama",
		Brand:   "hama",
	},
	"poster": {
		Name:    "poster",
		Width:   100,
		Catalog: "all",
	},
}

// Get returns a profile by name. Falls back to default if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles["default"]
	p.Name = name // preserve requested name
	return p
}

// Exists reports whether name is a built-in profile.
func Exists(name string) bool {
	_, ok := profiles[name]
	return ok
}

// ClampWidth limits w to [MinWidth, MaxWidth].
func ClampWidth(w int) int {
	if w < MinWidth {
		return MinWidth
	}
	if w > MaxWidth {
		return MaxWidth
	}
	return w
}

// EffectiveWidth returns the width to build at: an explicit override when
// set, otherwise the profile width, clamped either way.
func (p Profile) EffectiveWidth(override int) int {
	if override > 0 {
		return ClampWidth(override)
	}
	return ClampWidth(p.Width)
}
