package encoder

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVEncoder writes one row per image and colour, for spreadsheets.
type CSVEncoder struct{}

func (e *CSVEncoder) Format() string    { return "csv" }
func (e *CSVEncoder) Extension() string { return "csv" }

func (e *CSVEncoder) Encode(w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"image", "id", "brand", "name", "hex", "count"}); err != nil {
		return err
	}
	for _, key := range doc.Keys() {
		for _, u := range doc.Report.Items[key].Usage {
			if err := cw.Write([]string{key, u.ID, u.Brand, u.Name, u.Hex, strconv.Itoa(u.Count)}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
