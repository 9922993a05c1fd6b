package httpapi

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jaym93/gtpower/internal/service"
)

const exportSheet = "Readings"

var exportHeaders = []string{"Timestamp", "Sensor", "Type", "Value", "Units"}

// buildReadingsWorkbook renders readings into an xlsx workbook with a
// frozen, bold header row. The caller owns closing the returned file.
func buildReadingsWorkbook(items []service.ReadingItem) (*excelize.File, error) {
	book := excelize.NewFile()

	index, err := book.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	book.SetActiveSheet(index)
	if err := book.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headerStyle, err := book.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := book.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		if err := book.SetCellStyle(exportSheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header: %w", err)
		}
	}
	if err := book.SetPanes(exportSheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header row: %w", err)
	}

	for i, item := range items {
		row := []any{item.Timestamp, item.SourceName, item.SourceType, item.ValueRead, item.Units}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to address row: %w", err)
		}
		if err := book.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	if err := book.SetColWidth(exportSheet, "A", "B", 24); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}

	return book, nil
}
