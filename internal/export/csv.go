package export

import (
	"encoding/csv"
	"io"

	"cattery/internal/domain"
)

// BOM is the UTF-8 byte order mark; Excel on Windows needs it to read
// Chinese text in a CSV correctly.
var BOM = []byte{0xEF, 0xBB, 0xBF}

func writeCSV(w io.Writer, cats []domain.Cat) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for i := range cats {
		if err := cw.Write(catToRow(&cats[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
