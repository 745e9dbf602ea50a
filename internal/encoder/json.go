package encoder

import (
	"encoding/json"
	"io"

	"github.com/LaplaceYoung/pixelcraft/internal/pattern"
	"github.com/LaplaceYoung/pixelcraft/internal/report"
)

// JSONEncoder writes the report, with grids when requested.
type JSONEncoder struct{}

func (e *JSONEncoder) Format() string    { return "json" }
func (e *JSONEncoder) Extension() string { return "json" }

type jsonDocument struct {
	*report.Report
	Patterns map[string]*pattern.Pattern `json:"patterns,omitempty"`
}

func (e *JSONEncoder) Encode(w io.Writer, doc Document) error {
	out := jsonDocument{Report: doc.Report}
	if doc.ShowGrid {
		out.Patterns = doc.Patterns
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
