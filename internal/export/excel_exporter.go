package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	audit "ecotrack/audit-portal/audit-portal-backend/internal/audit/model"
)

// ExcelExporter renders an audit as a two-sheet workbook: data points
// and quick wins.
type ExcelExporter struct {
	file *excelize.File
}

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{file: excelize.NewFile()}
}

// Render fills the workbook from the audit.
func (e *ExcelExporter) Render(result *audit.AuditResult) error {
	if err := e.writeDataPoints(result); err != nil {
		return err
	}
	if err := e.writeQuickWins(result); err != nil {
		return err
	}
	return nil
}

func (e *ExcelExporter) headerStyle() (int, error) {
	return e.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{"059669"},
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
}

func (e *ExcelExporter) writeDataPoints(result *audit.AuditResult) error {
	sheet := "Data Points"
	e.file.SetSheetName("Sheet1", sheet)

	styleID, err := e.headerStyle()
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{"Source", "Value", "Unit", "Scope", "Description"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		e.file.SetCellValue(sheet, cell, h)
		e.file.SetCellStyle(sheet, cell, cell, styleID)
	}

	for rowIdx, p := range result.DataPoints {
		values := []interface{}{p.Source, p.Value, p.Unit, string(p.Scope), p.Description}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := e.file.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to set cell value: %w", err)
			}
		}
	}

	e.file.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	e.file.SetColWidth(sheet, "A", "A", 24)
	e.file.SetColWidth(sheet, "E", "E", 48)

	return nil
}

func (e *ExcelExporter) writeQuickWins(result *audit.AuditResult) error {
	sheet := "Quick Wins"
	if _, err := e.file.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	styleID, err := e.headerStyle()
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{"Title", "Category", "Impact", "Difficulty", "Financial Saving", "Tax Benefit"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		e.file.SetCellValue(sheet, cell, h)
		e.file.SetCellStyle(sheet, cell, cell, styleID)
	}

	for rowIdx, w := range result.QuickWins {
		values := []interface{}{w.Title, w.Category, w.Impact, w.Difficulty, w.FinancialSave, w.TaxBenefit}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := e.file.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to set cell value: %w", err)
			}
		}
	}

	e.file.SetColWidth(sheet, "A", "A", 32)
	e.file.SetColWidth(sheet, "E", "F", 20)

	return nil
}

// WriteTo writes the workbook to w.
func (e *ExcelExporter) WriteTo(w io.Writer) error {
	return e.file.Write(w)
}

// Close releases the workbook.
func (e *ExcelExporter) Close() error {
	return e.file.Close()
}
