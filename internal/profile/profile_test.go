package profile

import "testing"

func TestGet(t *testing.T) {
	p := Get("poster")
	if p.Width != 100 || p.Catalog != "all" {
		t.Errorf("poster: got %+v", p)
	}

	unknown := Get("giant")
	if unknown.Name != "giant" {
		t.Errorf("name: got %q", unknown.Name)
	}
	if unknown.Width != Get("default").Width {
		t.Errorf("fallback width: got %d", unknown.Width)
	}
	if Exists("giant") || !Exists("midi") {
		t.Error("Exists mismatch")
	}
}

func TestEffectiveWidth(t *testing.T) {
	p := Get("default")
	cases := []struct {
		override, want int
	}{
		{0, 40},
		{-5, 40},
		{25, 25},
		{3, MinWidth},
		{500, MaxWidth},
	}
	for _, tc := range cases {
		if got := p.EffectiveWidth(tc.override); got != tc.want {
			t.Errorf("override %d: got %d, want %d", tc.override, got, tc.want)
		}
	}
	if got := Get("keychain").EffectiveWidth(0); got != 14 {
		t.Errorf("keychain: got %d", got)
	}
}
