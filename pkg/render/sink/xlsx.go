package sink

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/PeterMinin/grid-strategy/pkg/grid"
)

// Sheet names written by [RenderXLSX].
const (
	SheetGrid       = "Grid"
	SheetPlacements = "Placements"
)

// RenderXLSX writes the layout as a workbook. The Grid sheet merges one cell
// range per subplot (one spreadsheet column per column unit); the Placements
// sheet lists every placement as a table.
func RenderXLSX(l grid.Layout, labels []string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetGrid); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeGridSheet(f, l, labels); err != nil {
		return nil, err
	}
	if err := writePlacementSheet(f, l, labels); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeGridSheet(f *excelize.File, l grid.Layout, labels []string) error {
	lastCol, err := excelize.ColumnNumberToName(l.Dimensions.Cols)
	if err != nil {
		return fmt.Errorf("column name: %w", err)
	}
	if err := f.SetColWidth(SheetGrid, "A", lastCol, 6); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	for r := 1; r <= l.Dimensions.Rows; r++ {
		if err := f.SetRowHeight(SheetGrid, r, 40); err != nil {
			return fmt.Errorf("set row height: %w", err)
		}
	}

	for i, p := range l.Placements {
		from, err := excelize.CoordinatesToCellName(p.Span.Start+1, p.Row+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		to, err := excelize.CoordinatesToCellName(p.Span.End, p.Row+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if p.Span.Width() > 1 {
			if err := f.MergeCell(SheetGrid, from, to); err != nil {
				return fmt.Errorf("merge %s:%s: %w", from, to, err)
			}
		}
		if err := f.SetCellValue(SheetGrid, from, labelAt(labels, i)); err != nil {
			return fmt.Errorf("set %s: %w", from, err)
		}

		style, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{PaletteColor(i).Hex()}},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border: []excelize.Border{
				{Type: "left", Color: "333333", Style: 1},
				{Type: "right", Color: "333333", Style: 1},
				{Type: "top", Color: "333333", Style: 1},
				{Type: "bottom", Color: "333333", Style: 1},
			},
		})
		if err != nil {
			return fmt.Errorf("new style: %w", err)
		}
		if err := f.SetCellStyle(SheetGrid, from, to, style); err != nil {
			return fmt.Errorf("style %s:%s: %w", from, to, err)
		}
	}
	return nil
}

func writePlacementSheet(f *excelize.File, l grid.Layout, labels []string) error {
	if _, err := f.NewSheet(SheetPlacements); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	header := []any{"index", "label", "row", "start", "end"}
	if err := f.SetSheetRow(SheetPlacements, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, p := range l.Placements {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		row := []any{i, labelAt(labels, i), p.Row, p.Span.Start, p.Span.End}
		if err := f.SetSheetRow(SheetPlacements, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	return nil
}
