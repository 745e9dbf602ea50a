package palette

import (
	"sort"
	"strings"
)

var perler = []Color{
	{ID: "P01", Brand: BrandPerler, Name: "White", Hex: "#F1F1F1"},
	{ID: "P02", Brand: BrandPerler, Name: "Cream", Hex: "#E0DEA9"},
	{ID: "P03", Brand: BrandPerler, Name: "Yellow", Hex: "#ECD800"},
	{ID: "P04", Brand: BrandPerler, Name: "Orange", Hex: "#ED6120"},
	{ID: "P05", Brand: BrandPerler, Name: "Red", Hex: "#BF2633"},
	{ID: "P06", Brand: BrandPerler, Name: "Bubblegum", Hex: "#DD6696"},
	{ID: "P07", Brand: BrandPerler, Name: "Purple", Hex: "#604089"},
	{ID: "P08", Brand: BrandPerler, Name: "Dark Blue", Hex: "#2B3F87"},
	{ID: "P09", Brand: BrandPerler, Name: "Light Blue", Hex: "#3370C0"},
	{ID: "P10", Brand: BrandPerler, Name: "Dark Green", Hex: "#1C753E"},
	{ID: "P11", Brand: BrandPerler, Name: "Light Green", Hex: "#56BA9F"},
	{ID: "P12", Brand: BrandPerler, Name: "Brown", Hex: "#513931"},
	{ID: "P17", Brand: BrandPerler, Name: "Grey", Hex: "#8A8D91"},
	{ID: "P18", Brand: BrandPerler, Name: "Black", Hex: "#2E2F32"},
	{ID: "P20", Brand: BrandPerler, Name: "Rust", Hex: "#883D2D"},
	{ID: "P21", Brand: BrandPerler, Name: "Light Brown", Hex: "#A4764E"},
	{ID: "P33", Brand: BrandPerler, Name: "Peach", Hex: "#EEBAB2"},
	{ID: "P35", Brand: BrandPerler, Name: "Tan", Hex: "#CEA588"},
	{ID: "P38", Brand: BrandPerler, Name: "Magenta", Hex: "#F22E92"},
	{ID: "P52", Brand: BrandPerler, Name: "Pastel Blue", Hex: "#5A8FD0"},
	{ID: "P53", Brand: BrandPerler, Name: "Pastel Green", Hex: "#76C884"},
	{ID: "P54", Brand: BrandPerler, Name: "Pastel Lavender", Hex: "#8A72C1"},
	{ID: "P56", Brand: BrandPerler, Name: "Pastel Yellow", Hex: "#FEF98B"},
	{ID: "P57", Brand: BrandPerler, Name: "Cheddar", Hex: "#F1AA0C"},
	{ID: "P58", Brand: BrandPerler, Name: "Toothpaste", Hex: "#93C8D4"},
	{ID: "P59", Brand: BrandPerler, Name: "Hot Coral", Hex: "#FF3856"},
	{ID: "P60", Brand: BrandPerler, Name: "Plum", Hex: "#A24B9C"},
	{ID: "P61", Brand: BrandPerler, Name: "Kiwi Lime", Hex: "#6CBE13"},
	{ID: "P62", Brand: BrandPerler, Name: "Turquoise", Hex: "#2B89C6"},
	{ID: "P63", Brand: BrandPerler, Name: "Blush", Hex: "#FF8283"},
	{ID: "P70", Brand: BrandPerler, Name: "Periwinkle", Hex: "#6389CE"},
	{ID: "P79", Brand: BrandPerler, Name: "Light Pink", Hex: "#F5C2D7"},
	{ID: "P80", Brand: BrandPerler, Name: "Bright Green", Hex: "#4FAE35"},
	{ID: "P83", Brand: BrandPerler, Name: "Pink", Hex: "#E44993"},
	{ID: "P88", Brand: BrandPerler, Name: "Raspberry", Hex: "#A5175D"},
	{ID: "P90", Brand: BrandPerler, Name: "Butterscotch", Hex: "#D48437"},
	{ID: "P91", Brand: BrandPerler, Name: "Parrot Green", Hex: "#00814A"},
	{ID: "P92", Brand: BrandPerler, Name: "Dark Grey", Hex: "#54565C"},
}

var artkal = []Color{
	{ID: "S01", Brand: BrandArtkal, Name: "White", Hex: "#FFFFFF"},
	{ID: "S02", Brand: BrandArtkal, Name: "Black", Hex: "#000000"},
	{ID: "S03", Brand: BrandArtkal, Name: "Lemon", Hex: "#FFF200"},
	{ID: "S04", Brand: BrandArtkal, Name: "Tangerine", Hex: "#F7941D"},
	{ID: "S05", Brand: BrandArtkal, Name: "Scarlet", Hex: "#ED1C24"},
	{ID: "S06", Brand: BrandArtkal, Name: "Rose", Hex: "#F49AC1"},
	{ID: "S07", Brand: BrandArtkal, Name: "Violet", Hex: "#662D91"},
	{ID: "S08", Brand: BrandArtkal, Name: "Navy", Hex: "#1B1464"},
	{ID: "S09", Brand: BrandArtkal, Name: "Sky", Hex: "#00AEEF"},
	{ID: "S10", Brand: BrandArtkal, Name: "Forest", Hex: "#006837"},
	{ID: "S11", Brand: BrandArtkal, Name: "Mint", Hex: "#8DC63F"},
	{ID: "S12", Brand: BrandArtkal, Name: "Chocolate", Hex: "#603913"},
	{ID: "S13", Brand: BrandArtkal, Name: "Silver", Hex: "#BCBEC0"},
	{ID: "S14", Brand: BrandArtkal, Name: "Charcoal", Hex: "#414042"},
	{ID: "S15", Brand: BrandArtkal, Name: "Teal", Hex: "#00A79D"},
	{ID: "S16", Brand: BrandArtkal, Name: "Sand", Hex: "#E6CBA5"},
}

var hama = []Color{
	{ID: "H01", Brand: BrandHama, Name: "White", Hex: "#EDEDED"},
	{ID: "H02", Brand: BrandHama, Name: "Cream", Hex: "#F0E8B9"},
	{ID: "H03", Brand: BrandHama, Name: "Yellow", Hex: "#F0B901"},
	{ID: "H04", Brand: BrandHama, Name: "Orange", Hex: "#E64F27"},
	{ID: "H05", Brand: BrandHama, Name: "Red", Hex: "#B63136"},
	{ID: "H06", Brand: BrandHama, Name: "Pink", Hex: "#E1889F"},
	{ID: "H07", Brand: BrandHama, Name: "Purple", Hex: "#694A82"},
	{ID: "H08", Brand: BrandHama, Name: "Blue", Hex: "#2C4690"},
	{ID: "H09", Brand: BrandHama, Name: "Light Blue", Hex: "#305CB0"},
	{ID: "H10", Brand: BrandHama, Name: "Green", Hex: "#256D49"},
	{ID: "H11", Brand: BrandHama, Name: "Light Green", Hex: "#49AE89"},
	{ID: "H12", Brand: BrandHama, Name: "Brown", Hex: "#534137"},
	{ID: "H17", Brand: BrandHama, Name: "Grey", Hex: "#83888A"},
	{ID: "H18", Brand: BrandHama, Name: "Black", Hex: "#2E2F31"},
}

// builtins maps catalog names to their colours. "all" is every brand in
// brand order.
var builtins = map[string][]Color{
	"perler": perler,
	"artkal": artkal,
	"hama":   hama,
}

func init() {
	all := make([]Color, 0, len(perler)+len(artkal)+len(hama))
	all = append(all, perler...)
	all = append(all, artkal...)
	all = append(all, hama...)
	builtins["all"] = all
}

// Builtin returns a fresh palette for a built-in catalog name.
// Falls back to perler if the name is unknown.
func Builtin(name string) *Palette {
	colors, ok := builtins[strings.ToLower(name)]
	if !ok {
		colors = builtins["perler"]
	}
	return MustNew(colors)
}

// BuiltinNames lists the available built-in catalogs.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IsBuiltin reports whether name is a known built-in catalog.
func IsBuiltin(name string) bool {
	_, ok := builtins[strings.ToLower(name)]
	return ok
}
