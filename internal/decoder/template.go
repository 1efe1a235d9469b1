package decoder

import (
	"fmt"
	"io"
	"time"

	"github.com/hance08/kea-import/internal/constants"
	"github.com/xuri/excelize/v2"
)

const TemplateSheet = "Entries"

// templateRows is a balanced purchase invoice showing every column.
var templateRows = [][]any{
	{time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "AC", "FA-2025-001", "607100", "Achat marchandises", 1000.00, nil},
	{time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "AC", "FA-2025-001", "445660", "TVA déductible", 200.00, nil},
	{time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "AC", "FA-2025-001", "401000", "Fournisseur", nil, 1200.00},
}

// WriteTemplate writes an example import workbook to w.
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), TemplateSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(constants.TemplateHeaders))
	for i, h := range constants.TemplateHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(TemplateSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(TemplateSheet, "A1", "G1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	dateFormat := "dd/mm/yyyy"
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFormat})
	if err != nil {
		return fmt.Errorf("failed to create date style: %w", err)
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return fmt.Errorf("failed to create amount style: %w", err)
	}

	for i, row := range templateRows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(TemplateSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	last := len(templateRows) + 1
	if err := f.SetCellStyle(TemplateSheet, "A2", fmt.Sprintf("A%d", last), dateStyle); err != nil {
		return err
	}
	if err := f.SetCellStyle(TemplateSheet, "F2", fmt.Sprintf("G%d", last), amountStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(TemplateSheet, "A", "G", 18); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
