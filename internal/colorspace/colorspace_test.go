package colorspace

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestHexToLab_KnownValues(t *testing.T) {
	cases := []struct {
		hex  string
		want Lab
	}{
		{"#FFFFFF", Lab{100.0, 0.00526049995830391, -0.010408184525267927}},
		{"#000000", Lab{0, 0, 0}},
		{"#FF0000", Lab{53.23288178584245, 80.10930952982204, 67.22006831026425}},
		{"#0000FF", Lab{32.302586667249486, 79.19666178930935, -107.86368104495168}},
		{"#00FF00", Lab{87.73703347354422, -86.18463649762525, 83.18116474777854}},
		{"808080", Lab{53.585013452169036, 0.003155620347972121, -0.006243566036245873}},
	}
	for _, tc := range cases {
		got, err := HexToLab(tc.hex)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.hex, err)
		}
		if !approx(got.L, tc.want.L) || !approx(got.A, tc.want.A) || !approx(got.B, tc.want.B) {
			t.Errorf("%s: got %+v, want %+v", tc.hex, got, tc.want)
		}
	}
}

func TestHexToLab_Deterministic(t *testing.T) {
	for _, hex := range []string{"#3A7BD5", "#C0FFEE", "#010203", "#FEFEFE"} {
		a, err := HexToLab(hex)
		if err != nil {
			t.Fatalf("%s: %v", hex, err)
		}
		b, _ := HexToLab(hex)
		if a != b {
			t.Errorf("%s: non-deterministic: %+v vs %+v", hex, a, b)
		}
	}
}

func TestHexToLab_MatchesRGBToLab(t *testing.T) {
	c := RGB{R: 0x3A, G: 0x7B, B: 0xD5}
	fromHex, err := HexToLab(c.Hex())
	if err != nil {
		t.Fatal(err)
	}
	if fromHex != RGBToLab(c) {
		t.Errorf("hex path %+v differs from rgb path %+v", fromHex, RGBToLab(c))
	}
}

func TestParseHex(t *testing.T) {
	good := map[string]RGB{
		"#FF0000": {255, 0, 0},
		"00ff00":  {0, 255, 0},
		"#0a0B0c": {10, 11, 12},
	}
	for in, want := range good {
		got, err := ParseHex(in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %+v, want %+v", in, got, want)
		}
	}

	for _, in := range []string{"", "#", "#FFF", "#GGGGGG", "#1234567", "+12345", "#-12345", "##FF0000"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidColorFormat) {
			t.Errorf("%q: got %v, want ErrInvalidColorFormat", in, err)
		}
	}
}

func TestDeltaE76(t *testing.T) {
	a := Lab{L: 50, A: 10, B: -10}
	if d := DeltaE76(a, a); d != 0 {
		t.Errorf("self distance: got %v", d)
	}
	b := Lab{L: 53, A: 14, B: -10}
	if d := DeltaE76(a, b); !approx(d, 5) {
		t.Errorf("distance: got %v, want 5", d)
	}
	if DeltaE76(a, b) != DeltaE76(b, a) {
		t.Error("distance not symmetric")
	}
}

func TestRGBHexAndFromColor(t *testing.T) {
	c := RGB{R: 1, G: 0xAB, B: 0xFF}
	if c.Hex() != "#01ABFF" {
		t.Errorf("hex: got %q", c.Hex())
	}
	if c.String() != "rgb(1,171,255)" {
		t.Errorf("string: got %q", c.String())
	}
	if got := FromColor(color.NRGBA{R: 9, G: 8, B: 7, A: 10}); got != (RGB{9, 8, 7}) {
		t.Errorf("nrgba: got %+v", got)
	}
	if got := FromColor(color.RGBA{R: 200, G: 100, B: 50, A: 255}); got != (RGB{200, 100, 50}) {
		t.Errorf("rgba: got %+v", got)
	}
	if got := FromColor(color.Gray{Y: 77}); got != (RGB{77, 77, 77}) {
		t.Errorf("gray: got %+v", got)
	}
}
