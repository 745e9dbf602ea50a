package encoder

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/LaplaceYoung/pixelcraft/internal/pattern"
)

// TextEncoder writes a human-readable shopping list per image.
type TextEncoder struct{}

func (e *TextEncoder) Format() string    { return "text" }
func (e *TextEncoder) Extension() string { return "txt" }

func (e *TextEncoder) Encode(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)

	for _, key := range doc.Keys() {
		it := doc.Report.Items[key]
		fmt.Fprintf(bw, "%s  %d×%d  %d beads  [%s]\n", key, it.Width, it.Height, it.Beads, it.Fingerprint)

		tw := tabwriter.NewWriter(bw, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  ID\tNAME\tBRAND\tHEX\tCOUNT")
		for _, u := range it.Usage {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%d\n", u.ID, u.Name, u.Brand, u.Hex, u.Count)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if it.Dropped > 0 {
			fmt.Fprintf(bw, "  (%d cells without a known color)\n", it.Dropped)
		}

		if doc.ShowGrid {
			if p := doc.Patterns[key]; p != nil {
				fmt.Fprintln(bw)
				writeGrid(bw, p)
			}
		}
		fmt.Fprintln(bw)
	}

	t := doc.Report.Totals
	fmt.Fprintf(bw, "Total: %d images, %d beads, %d colors\n", t.Images, t.Beads, t.Colors)
	return bw.Flush()
}

// writeGrid prints colour ids as a fixed-width matrix, one row per line.
func writeGrid(w io.Writer, p *pattern.Pattern) {
	width := 0
	p.Cells(func(c pattern.Cell) {
		if len(c.ColorID) > width {
			width = len(c.ColorID)
		}
	})
	for _, row := range p.Grid {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = fmt.Sprintf("%-*s", width, c.ColorID)
		}
		fmt.Fprintf(w, "  %s\n", strings.TrimRight(strings.Join(cells, " "), " "))
	}
}
