package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"ropboard/internal/domain"
)

const shortlistSheet = "Shortlist"

// WriteShortlistXLSX writes the same columns as the CSV export into a styled
// workbook for program staff who work in Excel.
func WriteShortlistXLSX(path string, courses []domain.Course) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", shortlistSheet); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("export: header style: %w", err)
	}

	for i, h := range shortlistHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("export: header cell: %w", err)
		}
		if err := f.SetCellValue(shortlistSheet, cell, h); err != nil {
			return fmt.Errorf("export: header cell: %w", err)
		}
		if err := f.SetCellStyle(shortlistSheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("export: header style: %w", err)
		}
	}

	for row, c := range courses {
		values := xlsxRow(c)
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("export: cell name: %w", err)
			}
			if err := f.SetCellValue(shortlistSheet, cell, v); err != nil {
				return fmt.Errorf("export: set cell: %w", err)
			}
		}
	}

	// Wide columns for the long text fields, narrow for dates and codes.
	f.SetColWidth(shortlistSheet, "A", "D", 14)
	f.SetColWidth(shortlistSheet, "E", "J", 22)
	f.SetColWidth(shortlistSheet, "K", "P", 48)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	return nil
}

// xlsxRow mirrors shortlistRow but leaves cells unquoted; Excel handles the
// escaping itself.
func xlsxRow(c domain.Course) []any {
	sups := make([]string, 0, len(c.FacultySupervisors))
	for _, s := range c.FacultySupervisors {
		sups = append(sups, s.Name)
	}

	var openings any = ""
	if c.OpeningsPerTerm > 0 {
		openings = c.OpeningsPerTerm
	}

	return []any{
		c.ID,
		c.Title,
		c.Posted,
		c.Expires,
		strings.Join(c.Terms, ", "),
		c.DeliveryMethod,
		c.Department,
		c.DPTCode,
		openings,
		strings.Join(sups, ", "),
		c.Description,
		c.StudentRoles,
		c.AcademicOutcomes,
		c.TrainingMentorship,
		c.SelectionCriteria,
		strings.Join(c.RequiredDocuments, ", "),
	}
}
