package palette

import (
	"fmt"
	"strings"
)

// Brand identifies the bead manufacturer a colour belongs to.
type Brand int

const (
	BrandPerler Brand = iota
	BrandArtkal
	BrandHama
)

var brandNames = []string{"Perler", "Artkal", "Hama"}

func (b Brand) String() string {
	if b < 0 || int(b) >= len(brandNames) {
		return fmt.Sprintf("Brand(%d)", int(b))
	}
	return brandNames[b]
}

// ParseBrand accepts a brand name in any case.
func ParseBrand(s string) (Brand, error) {
	for i, n := range brandNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return Brand(i), nil
		}
	}
	return 0, fmt.Errorf("unknown brand %q (want one of %s)", s, strings.Join(brandNames, ", "))
}

// MarshalText encodes the brand by name.
func (b Brand) MarshalText() ([]byte, error) {
	if b < 0 || int(b) >= len(brandNames) {
		return nil, fmt.Errorf("invalid brand %d", int(b))
	}
	return []byte(brandNames[b]), nil
}

// UnmarshalText decodes a brand name.
func (b *Brand) UnmarshalText(text []byte) error {
	v, err := ParseBrand(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
