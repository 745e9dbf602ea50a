// Package pattern turns an image into a grid of bead colour assignments.
//
// Build downsamples the image and matches every cell against the active
// palette. When the active palette is empty each cell gets the UnknownColorID
// sentinel instead of failing; refusing to regenerate in that case is the
// caller's decision (see pipeline.Session).
package pattern

import (
	"image"
	"runtime"
	"sync"

	"github.com/LaplaceYoung/pixelcraft/internal/colorspace"
	"github.com/LaplaceYoung/pixelcraft/internal/downsample"
	"github.com/LaplaceYoung/pixelcraft/internal/hasher"
	"github.com/LaplaceYoung/pixelcraft/internal/matcher"
	"github.com/LaplaceYoung/pixelcraft/internal/palette"
)

// UnknownColorID marks a cell that could not be matched.
const UnknownColorID = "unknown"

// Cell is one bead position.
type Cell struct {
	X        int            `json:"x"`
	Y        int            `json:"y"`
	ColorID  string         `json:"colorId"`
	Original colorspace.RGB `json:"originalColor"`
}

// Pattern is a Width×Height grid, row-major: Grid[y][x].
type Pattern struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Grid   [][]Cell `json:"grid"`
}

type options struct {
	workers int
}

// Option configures Build.
type Option func(*options)

// WithWorkers matches rows on up to n goroutines (0 = NumCPU, 1 = serial).
// The result is identical to a serial build.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.NumCPU()
		}
		o.workers = n
	}
}

// Build resizes img to targetWidth columns and assigns every cell the
// closest active colour.
func Build(img image.Image, targetWidth int, active []palette.Color, opts ...Option) (*Pattern, error) {
	small, err := downsample.Resize(img, targetWidth)
	if err != nil {
		return nil, err
	}
	return FromPixels(small, active, opts...), nil
}

// FromPixels matches an already-downsampled buffer cell by cell.
func FromPixels(buf *image.NRGBA, active []palette.Color, opts ...Option) *Pattern {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	b := buf.Bounds()
	p := &Pattern{
		Width:  b.Dx(),
		Height: b.Dy(),
		Grid:   make([][]Cell, b.Dy()),
	}

	if o.workers <= 1 || p.Height <= 1 {
		for y := 0; y < p.Height; y++ {
			p.Grid[y] = matchRow(buf, y, active)
		}
		return p
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, o.workers)
	for y := 0; y < p.Height; y++ {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			p.Grid[row] = matchRow(buf, row, active)
		}(y)
	}
	wg.Wait()
	return p
}

func matchRow(buf *image.NRGBA, y int, active []palette.Color) []Cell {
	b := buf.Bounds()
	row := make([]Cell, b.Dx())
	for x := range row {
		c := buf.NRGBAAt(b.Min.X+x, b.Min.Y+y)
		px := colorspace.RGB{R: c.R, G: c.G, B: c.B}

		id := UnknownColorID
		if best, ok := matcher.FindClosest(px, active); ok {
			id = best.ID
		}
		row[x] = Cell{X: x, Y: y, ColorID: id, Original: px}
	}
	return row
}

// Cell returns the cell at column x, row y.
func (p *Pattern) Cell(x, y int) Cell {
	return p.Grid[y][x]
}

// Cells calls fn for every cell in row-major order.
func (p *Pattern) Cells(fn func(Cell)) {
	for _, row := range p.Grid {
		for _, c := range row {
			fn(c)
		}
	}
}

// Fingerprint is an xxHash64 over the dimensions, colour ids and source
// colours. Equal inputs always give equal fingerprints.
func (p *Pattern) Fingerprint() string {
	d := hasher.New()
	d.WriteUint64(uint64(p.Width))
	d.WriteUint64(uint64(p.Height))
	p.Cells(func(c Cell) {
		d.WriteString(c.ColorID)
		d.WriteBytes(c.Original.R, c.Original.G, c.Original.B)
	})
	return d.Hex(16)
}
