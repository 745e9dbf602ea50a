// Package colorspace converts between sRGB hex strings, RGB triples and
// CIE Lab, and measures perceptual distance between Lab points.
//
// The conversion is fixed: sRGB inverse gamma, the 4-digit sRGB→XYZ matrix
// and a D65 reference white with the 7.787 linear segment. Palette colours
// and sampled pixels go through the same RGBToLab so that an exact RGB match
// always lands on distance zero.
package colorspace

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned for anything that is not a 6-digit hex colour.
var ErrInvalidColorFormat = errors.New("invalid color format")

// D65 reference white, 2° observer.
const (
	refX = 95.047
	refY = 100.000
	refZ = 108.883
)

// RGB is an opaque 8-bit sRGB colour.
type RGB struct {
	R, G, B uint8
}

// Lab is a CIE L*a*b* colour.
type Lab struct {
	L, A, B float64
}

// FromColor converts any color.Color to RGB, discarding alpha.
func FromColor(c color.Color) RGB {
	if n, ok := c.(color.NRGBA); ok {
		return RGB{R: n.R, G: n.G, B: n.B}
	}
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Hex renders the colour as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer in the rgb(r,g,b) form.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// MarshalText encodes the colour as "#RRGGBB".
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a hex colour.
func (c *RGB) UnmarshalText(text []byte) error {
	v, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseHex parses "#RRGGBB" or "RRGGBB" (any case).
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q: want 6 hex digits", ErrInvalidColorFormat, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// HexToLab parses a hex colour and converts it to Lab.
func HexToLab(s string) (Lab, error) {
	c, err := ParseHex(s)
	if err != nil {
		return Lab{}, err
	}
	return RGBToLab(c), nil
}

// RGBToLab converts an sRGB colour to CIE Lab. No rounding is applied.
func RGBToLab(c RGB) Lab {
	x, y, z := rgbToXYZ(c)
	return xyzToLab(x, y, z)
}

// DeltaE76 is the Euclidean distance between two Lab points.
func DeltaE76(p, q Lab) float64 {
	dl := p.L - q.L
	da := p.A - q.A
	db := p.B - q.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

func rgbToXYZ(c RGB) (x, y, z float64) {
	r := linearize(float64(c.R)/255) * 100
	g := linearize(float64(c.G)/255) * 100
	b := linearize(float64(c.B)/255) * 100

	x = r*0.4124 + g*0.3576 + b*0.1805
	y = r*0.2126 + g*0.7152 + b*0.0722
	z = r*0.0193 + g*0.1192 + b*0.9505
	return x, y, z
}

// linearize applies the sRGB inverse gamma to a channel in [0,1].
func linearize(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

func xyzToLab(x, y, z float64) Lab {
	fx := labF(x / refX)
	fy := labF(y / refY)
	fz := labF(z / refZ)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Pow(t, 1.0/3.0)
	}
	return 7.787*t + 16.0/116.0
}
