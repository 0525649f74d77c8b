package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"cattery/internal/domain"
)

const sheetName = "Cats"

func writeXLSX(w io.Writer, cats []domain.Cat) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("creating stream writer: %w", err)
	}
	if err := sw.SetColWidth(1, len(columns), 18); err != nil {
		return fmt.Errorf("setting column width: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header, excelize.RowOpts{StyleID: headerStyle}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := range cats {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, xlsxRow(&cats[i])); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flushing sheet: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// xlsxRow is catToRow with the price kept numeric.
func xlsxRow(cat *domain.Cat) []interface{} {
	strs := catToRow(cat)
	row := make([]interface{}, len(strs))
	for i, s := range strs {
		row[i] = s
	}
	if cat.Price != nil {
		row[5] = *cat.Price
	}
	return row
}
