package report

import (
	"encoding/json"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/LaplaceYoung/pixelcraft/internal/palette"
	"github.com/LaplaceYoung/pixelcraft/internal/pattern"
	"github.com/LaplaceYoung/pixelcraft/internal/stats"
)

func sampleItem(t *testing.T) Item {
	t.Helper()
	pal := palette.MustNew([]palette.Color{
		{ID: "R1", Brand: palette.BrandPerler, Name: "Red", Hex: "#FF0000"},
		{ID: "B1", Brand: palette.BrandHama, Name: "Blue", Hex: "#0000FF"},
	})
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			c := color.NRGBA{255, 0, 0, 255}
			if x == 3 {
				c = color.NRGBA{0, 0, 255, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	p, err := pattern.Build(img, 4, pal.Active())
	if err != nil {
		t.Fatal(err)
	}
	return NewItem(SourceInfo{Path: "a.png", Width: 4, Height: 2, Format: "png", Size: 99}, p, stats.Aggregate(p, pal))
}

func TestNewItem(t *testing.T) {
	it := sampleItem(t)
	if it.Width != 4 || it.Height != 2 || it.Beads != 8 {
		t.Errorf("item: %+v", it)
	}
	if len(it.Usage) != 2 {
		t.Fatalf("usage: got %d entries", len(it.Usage))
	}
	if it.Usage[0].ID != "R1" || it.Usage[0].Count != 6 || it.Usage[0].Brand != "Perler" {
		t.Errorf("usage[0]: %+v", it.Usage[0])
	}
	if it.Usage[1].ID != "B1" || it.Usage[1].Count != 2 || it.Usage[1].Hex != "#0000FF" {
		t.Errorf("usage[1]: %+v", it.Usage[1])
	}
	if len(it.Fingerprint) != 16 {
		t.Errorf("fingerprint: %q", it.Fingerprint)
	}
}

func TestReportRoundtrip(t *testing.T) {
	r := New("default", "perler", 40)
	r.BuildInfo = &BuildInfo{Workers: 4, ActiveColors: 2, DisabledColors: []string{"P02"}}
	r.Items["a"] = sampleItem(t)
	r.Items["b"] = sampleItem(t)

	path := filepath.Join(t.TempDir(), "report.json")
	if err := WriteJSON(r, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if back.Version != SupportedVersion {
		t.Errorf("version: got %d", back.Version)
	}
	if back.TargetWidth != 40 || back.Catalog != "perler" {
		t.Errorf("header: %+v", back)
	}
	if back.BuildInfo == nil || back.BuildInfo.Workers != 4 || len(back.BuildInfo.DisabledColors) != 1 {
		t.Errorf("build_info: %+v", back.BuildInfo)
	}
	if back.Totals.Images != 2 || back.Totals.Beads != 16 || back.Totals.Colors != 2 {
		t.Errorf("totals: %+v", back.Totals)
	}
	if back.Totals.PerColor["R1"] != 12 {
		t.Errorf("per_color R1: got %d", back.Totals.PerColor["R1"])
	}
	if back.Items["a"].Fingerprint != r.Items["a"].Fingerprint {
		t.Error("fingerprint lost")
	}
}

func TestReportIgnoresUnknownFields(t *testing.T) {
	raw := `{
		"version": 1,
		"generated_at": "2025-01-01T00:00:00Z",
		"profile": "default",
		"future_field": true,
		"items": {},
		"totals": {"images": 0, "beads": 0, "colors": 0, "new_stat": 1}
	}`
	var r Report
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal with unknown fields: %v", err)
	}
	if r.Version != 1 || r.Profile != "default" {
		t.Errorf("parsed: %+v", r)
	}
}
