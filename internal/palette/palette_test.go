package palette

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/LaplaceYoung/pixelcraft/internal/colorspace"
)

func testColors() []Color {
	return []Color{
		{ID: "R1", Brand: BrandPerler, Name: "Red", Hex: "#FF0000"},
		{ID: "G1", Brand: BrandArtkal, Name: "Green", Hex: "00ff00"},
		{ID: "B1", Brand: BrandPerler, Name: "Blue", Hex: "#0000FF"},
	}
}

func ids(cs []Color) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNew_PrecomputesLab(t *testing.T) {
	p, err := New(testColors())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for _, c := range p.Colors() {
		want, err := colorspace.HexToLab(c.Hex)
		if err != nil {
			t.Fatalf("%s: %v", c.ID, err)
		}
		if c.Lab != want {
			t.Errorf("%s: lab %+v, want %+v", c.ID, c.Lab, want)
		}
	}
	g, _ := p.Lookup("G1")
	if g.Hex != "#00FF00" {
		t.Errorf("hex not normalised: %q", g.Hex)
	}
}

func TestNew_OverridesSuppliedLab(t *testing.T) {
	cs := testColors()
	cs[0].Lab = colorspace.Lab{L: 1, A: 2, B: 3}
	p, err := New(cs)
	if err != nil {
		t.Fatal(err)
	}
	r, _ := p.Lookup("R1")
	if r.Lab == (colorspace.Lab{L: 1, A: 2, B: 3}) {
		t.Error("stale lab kept instead of recomputed")
	}
}

func TestNew_DuplicateID(t *testing.T) {
	cs := append(testColors(), Color{ID: "R1", Hex: "#FE0000"})
	p, err := New(cs)
	if !errors.Is(err, ErrDuplicateColorID) {
		t.Fatalf("got %v, want ErrDuplicateColorID", err)
	}
	if p != nil {
		t.Error("partial palette returned")
	}
}

func TestNew_InvalidHex(t *testing.T) {
	cs := append(testColors(), Color{ID: "X1", Hex: "#12"})
	if _, err := New(cs); !errors.Is(err, colorspace.ErrInvalidColorFormat) {
		t.Fatalf("got %v, want ErrInvalidColorFormat", err)
	}
}

func TestNew_EmptyID(t *testing.T) {
	if _, err := New([]Color{{Hex: "#000000"}}); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestActive_PreservesOrder(t *testing.T) {
	p := MustNew(testColors())
	if got := ids(p.Active()); !equalIDs(got, []string{"R1", "G1", "B1"}) {
		t.Errorf("active: got %v", got)
	}

	p.SetDisabled("G1", true)
	if got := ids(p.Active()); !equalIDs(got, []string{"R1", "B1"}) {
		t.Errorf("active after disable: got %v", got)
	}
	if p.Len() != 3 {
		t.Errorf("len: got %d", p.Len())
	}

	p.SetDisabled("G1", false)
	if got := ids(p.Active()); !equalIDs(got, []string{"R1", "G1", "B1"}) {
		t.Errorf("active after enable: got %v", got)
	}
}

func TestSetDisabled_UnknownIDIsNoop(t *testing.T) {
	p := MustNew(testColors())
	p.SetDisabled("nope", true)
	if len(p.Active()) != 3 {
		t.Errorf("active: got %d colors", len(p.Active()))
	}
	if p.IsDisabled("nope") {
		t.Error("unknown id reported disabled")
	}
	if p.Toggle("nope") {
		t.Error("toggle of unknown id reported disabled")
	}
}

func TestToggle(t *testing.T) {
	p := MustNew(testColors())
	if !p.Toggle("B1") {
		t.Fatal("first toggle should disable")
	}
	if got := p.DisabledIDs(); !equalIDs(got, []string{"B1"}) {
		t.Errorf("disabled: got %v", got)
	}
	if p.Toggle("B1") {
		t.Fatal("second toggle should enable")
	}
	if len(p.DisabledIDs()) != 0 {
		t.Errorf("disabled: got %v", p.DisabledIDs())
	}
}

func TestSearch(t *testing.T) {
	p := MustNew(testColors())
	cases := map[string][]string{
		"":     {"R1", "G1", "B1"},
		"re":   {"R1", "G1"},
		"b1":   {"B1"},
		"BLUE": {"B1"},
		"zzz":  nil,
	}
	for q, want := range cases {
		if got := ids(p.Search(q)); !equalIDs(got, want) {
			t.Errorf("search %q: got %v, want %v", q, got, want)
		}
	}
}

func TestFilterBrand(t *testing.T) {
	p := MustNew(testColors())
	p.SetDisabled("B1", true)

	perlerOnly := p.FilterBrand(BrandPerler)
	if got := ids(perlerOnly.Colors()); !equalIDs(got, []string{"R1", "B1"}) {
		t.Errorf("colors: got %v", got)
	}
	if got := ids(perlerOnly.Active()); !equalIDs(got, []string{"R1"}) {
		t.Errorf("active: got %v", got)
	}
	if _, ok := perlerOnly.Lookup("G1"); ok {
		t.Error("other brand still resolvable")
	}
}

func TestBrandText(t *testing.T) {
	b, err := ParseBrand("hama")
	if err != nil || b != BrandHama {
		t.Fatalf("parse: got %v, %v", b, err)
	}
	if _, err := ParseBrand("lego"); err == nil {
		t.Error("expected error for unknown brand")
	}

	data, err := json.Marshal(struct {
		B Brand `json:"b"`
	}{BrandArtkal})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"b":"Artkal"}` {
		t.Errorf("marshal: got %s", data)
	}
	var back struct {
		B Brand `json:"b"`
	}
	if err := json.Unmarshal(data, &back); err != nil || back.B != BrandArtkal {
		t.Errorf("unmarshal: got %v, %v", back.B, err)
	}
}

func TestBuiltinCatalogs(t *testing.T) {
	for _, name := range BuiltinNames() {
		p := Builtin(name)
		if p.Len() == 0 {
			t.Errorf("%s: empty catalog", name)
		}
	}

	all := Builtin("all")
	want := Builtin("perler").Len() + Builtin("artkal").Len() + Builtin("hama").Len()
	if all.Len() != want {
		t.Errorf("all: got %d colors, want %d", all.Len(), want)
	}

	seen := map[string]string{}
	for _, c := range all.Colors() {
		if other, dup := seen[c.Hex]; dup {
			t.Errorf("hex %s shared by %s and %s", c.Hex, other, c.ID)
		}
		seen[c.Hex] = c.ID
	}

	if Builtin("unknown").Len() != Builtin("perler").Len() {
		t.Error("unknown catalog should fall back to perler")
	}
	if IsBuiltin("lego") || !IsBuiltin("HAMA") {
		t.Error("IsBuiltin mismatch")
	}
}
