package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/woodshop-tools/panelforge/internal/model"
)

// xlsxHeaders is the fixed column layout of the cut-list sheet.
var xlsxHeaders = []string{"Panel", "Role", "Width (mm)", "Height (mm)", "Thickness (mm)", "Trimmed", "X", "Y", "Z"}

// ExportXLSX writes one cut-list row per panel to an Excel workbook.
func ExportXLSX(path string, body model.Body, panels []model.Panel) error {
	if len(panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Cut List"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	for col, h := range xlsxHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for i, p := range panels {
		w, h, t := PanelDims(p)
		values := []any{
			p.ID,
			p.Role.String(),
			w,
			h,
			t,
			p.JointTrimmed,
			p.Position.X,
			p.Position.Y,
			p.Position.Z,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
