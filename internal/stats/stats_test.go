package stats

import (
	"image"
	"image/color"
	"testing"

	"github.com/LaplaceYoung/pixelcraft/internal/palette"
	"github.com/LaplaceYoung/pixelcraft/internal/pattern"
)

// gridOf builds a pattern straight from rows of colour ids.
func gridOf(rows ...[]string) *pattern.Pattern {
	p := &pattern.Pattern{Height: len(rows)}
	for y, r := range rows {
		p.Width = len(r)
		row := make([]pattern.Cell, len(r))
		for x, id := range r {
			row[x] = pattern.Cell{X: x, Y: y, ColorID: id}
		}
		p.Grid = append(p.Grid, row)
	}
	return p
}

func abc() *palette.Palette {
	return palette.MustNew([]palette.Color{
		{ID: "A", Hex: "#111111"},
		{ID: "B", Hex: "#222222"},
		{ID: "C", Hex: "#333333"},
	})
}

func TestAggregate_SortedByCount(t *testing.T) {
	p := gridOf(
		[]string{"A", "B", "B"},
		[]string{"C", "B", "A"},
	)
	s := Aggregate(p, abc())

	want := []struct {
		id    string
		count int
	}{{"B", 3}, {"A", 2}, {"C", 1}}
	if s.Len() != len(want) {
		t.Fatalf("entries: got %d, want %d", s.Len(), len(want))
	}
	for i, w := range want {
		if s.Entries[i].Color.ID != w.id || s.Entries[i].Count != w.count {
			t.Errorf("entry %d: got %s×%d, want %s×%d", i, s.Entries[i].Color.ID, s.Entries[i].Count, w.id, w.count)
		}
	}
	if s.Total != 6 {
		t.Errorf("total: got %d, want 6", s.Total)
	}
	if s.Count("C") != 1 || s.Count("Z") != 0 {
		t.Errorf("count lookup: C=%d Z=%d", s.Count("C"), s.Count("Z"))
	}
}

func TestAggregate_TiesKeepScanOrder(t *testing.T) {
	p := gridOf(
		[]string{"C", "A"},
		[]string{"B", "A"},
		[]string{"B", "C"},
	)
	s := Aggregate(p, abc())
	got := []string{s.Entries[0].Color.ID, s.Entries[1].Color.ID, s.Entries[2].Color.ID}
	want := []string{"C", "A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order: got %v, want %v", got, want)
		}
	}
}

func TestAggregate_DropsStaleIDs(t *testing.T) {
	p := gridOf(
		[]string{"A", "GONE", pattern.UnknownColorID},
		[]string{"A", "GONE", "B"},
	)
	s := Aggregate(p, abc())
	if s.Total != 3 {
		t.Errorf("total: got %d, want 3", s.Total)
	}
	if s.Dropped != 3 {
		t.Errorf("dropped: got %d, want 3", s.Dropped)
	}
	if s.Count("GONE") != 0 {
		t.Error("stale id counted")
	}
	if s.Total+s.Dropped != p.Width*p.Height {
		t.Errorf("total+dropped %d != %d cells", s.Total+s.Dropped, p.Width*p.Height)
	}
}

func TestAggregate_NilAndEmpty(t *testing.T) {
	if s := Aggregate(nil, abc()); s.Total != 0 || s.Len() != 0 {
		t.Errorf("nil pattern: %+v", s)
	}
	if s := Aggregate(&pattern.Pattern{}, abc()); s.Total != 0 || s.Len() != 0 {
		t.Errorf("empty pattern: %+v", s)
	}
}

func TestAggregate_TotalEqualsCells(t *testing.T) {
	pal := palette.Builtin("perler")
	img := image.NewNRGBA(image.Rect(0, 0, 90, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 90; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 2), uint8(y * 4), uint8(x + y), 255})
		}
	}
	p, err := pattern.Build(img, 30, pal.Active())
	if err != nil {
		t.Fatal(err)
	}
	s := Aggregate(p, pal)
	if s.Total != p.Width*p.Height {
		t.Errorf("total: got %d, want %d", s.Total, p.Width*p.Height)
	}
	if s.Dropped != 0 {
		t.Errorf("dropped: got %d", s.Dropped)
	}
	for i := 1; i < s.Len(); i++ {
		if s.Entries[i].Count > s.Entries[i-1].Count {
			t.Fatalf("not sorted at %d", i)
		}
	}
}

func TestAggregate_SolidRedScenario(t *testing.T) {
	pal := palette.MustNew([]palette.Color{
		{ID: "R1", Hex: "#FF0000"},
		{ID: "B1", Hex: "#0000FF"},
	})
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}
	p, err := pattern.Build(img, 2, pal.Active())
	if err != nil {
		t.Fatal(err)
	}
	s := Aggregate(p, pal)
	if s.Len() != 1 || s.Entries[0].Color.ID != "R1" || s.Entries[0].Count != 4 {
		t.Fatalf("stats: %+v", s.Entries)
	}
	if s.Total != 4 {
		t.Errorf("total: got %d, want 4", s.Total)
	}
}
