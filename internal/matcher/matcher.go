// Package matcher finds the palette colour perceptually closest to a pixel.
package matcher

import (
	"math"

	"github.com/LaplaceYoung/pixelcraft/internal/colorspace"
	"github.com/LaplaceYoung/pixelcraft/internal/palette"
)

// FindClosest returns the active colour with the smallest Delta-E76
// distance to px. The whole palette is scanned in order and only a strictly
// smaller distance replaces the current best, so ties go to the colour that
// comes first. ok is false when active is empty.
func FindClosest(px colorspace.RGB, active []palette.Color) (best palette.Color, ok bool) {
	if len(active) == 0 {
		return palette.Color{}, false
	}
	return FindClosestLab(colorspace.RGBToLab(px), active)
}

// FindClosestLab is FindClosest for a pixel already converted to Lab.
func FindClosestLab(target colorspace.Lab, active []palette.Color) (best palette.Color, ok bool) {
	if len(active) == 0 {
		return palette.Color{}, false
	}
	minDelta := math.Inf(1)
	best = active[0]
	for _, c := range active {
		if d := colorspace.DeltaE76(target, c.Lab); d < minDelta {
			minDelta = d
			best = c
		}
	}
	return best, true
}

// Distance is the Delta-E76 distance between px and c.
func Distance(px colorspace.RGB, c palette.Color) float64 {
	return colorspace.DeltaE76(colorspace.RGBToLab(px), c.Lab)
}
