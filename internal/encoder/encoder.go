package encoder

import (
	"io"
	"sort"

	"github.com/LaplaceYoung/pixelcraft/internal/pattern"
	"github.com/LaplaceYoung/pixelcraft/internal/report"
)

// Document is what an encoder writes: a report plus, optionally, the
// pattern grids it summarises.
type Document struct {
	Report   *report.Report
	Patterns map[string]*pattern.Pattern
	ShowGrid bool
}

// Keys returns the report item keys in sorted order.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d.Report.Items))
	for k := range d.Report.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Encoder writes a Document in one output format.
type Encoder interface {
	// Format returns the output format name (e.g. "text", "json", "csv").
	Format() string

	// Encode writes doc to w.
	Encode(w io.Writer, doc Document) error

	// Extension returns the file extension without dot.
	Extension() string
}
