package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/woodshop-tools/panelforge/internal/model"
)

// panelColor represents an RGB color for a drawn panel.
type panelColor struct {
	R, G, B int
}

// panelColors cycles per panel in the drawing.
var panelColors = []panelColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	tableRowH    = 6.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF for a resolved body: a front-view drawing of
// all panel footprints followed by a cut-list table.
func ExportPDF(path string, body model.Body, panels []model.Panel) error {
	if len(panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderFrontView(pdf, body, panels)

	pdf.AddPage()
	renderCutList(pdf, body, panels)

	return pdf.OutputFileAndClose(path)
}

// renderFrontView draws the X/Y projection of every panel footprint, scaled
// to fit the page.
func renderFrontView(pdf *fpdf.Fpdf, body model.Body, panels []model.Panel) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	size := body.Bounds.Size()
	title := fmt.Sprintf("Body %s - front view (%.0f x %.0f x %.0f mm)", body.ID, size.X, size.Y, size.Z)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Projection extents include the plinth zone below the body.
	minY := body.Bounds.Min.Y
	for _, p := range panels {
		if p.Bounds.Min.Y < minY {
			minY = p.Bounds.Min.Y
		}
	}
	projH := body.Bounds.Max.Y - minY
	if size.X <= 0 || projH <= 0 {
		return
	}

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom
	scale := math.Min(drawWidth/size.X, drawHeight/projH)

	offsetX := marginLeft + (drawWidth-size.X*scale)/2
	offsetY := drawAreaTop

	// Body outline.
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, size.X*scale, size.Y*scale, "D")

	for i, p := range panels {
		col := panelColors[i%len(panelColors)]
		ps := p.Bounds.Size()
		px := offsetX + (p.Bounds.Min.X-body.Bounds.Min.X)*scale
		// PDF Y axis grows downward; mm Y grows upward.
		py := offsetY + (body.Bounds.Max.Y-p.Bounds.Max.Y)*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.SetAlpha(0.55, "Normal")
		pdf.Rect(px, py, ps.X*scale, ps.Y*scale, "FD")
		pdf.SetAlpha(1.0, "Normal")

		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(px+1, py+1)
		pdf.CellFormat(ps.X*scale-2, 3, p.Role.String(), "", 0, "L", false, 0, "")
	}
}

// renderCutList draws the tabular cut list.
func renderCutList(pdf *fpdf.Fpdf, body model.Body, panels []model.Panel) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight,
		fmt.Sprintf("Body %s - cut list (%d panels)", body.ID, len(panels)), "", 0, "L", false, 0, "")

	cols := []struct {
		label string
		width float64
	}{
		{"Panel", 30},
		{"Role", 35},
		{"Width", 30},
		{"Height", 30},
		{"Thickness", 30},
		{"Trimmed", 25},
	}

	y := drawAreaTop
	x := marginLeft
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range cols {
		pdf.SetXY(x, y)
		pdf.CellFormat(c.width, tableRowH, c.label, "1", 0, "L", true, 0, "")
		x += c.width
	}

	pdf.SetFont("Helvetica", "", 9)
	for i, p := range panels {
		w, h, t := PanelDims(p)
		trimmed := ""
		if p.JointTrimmed {
			trimmed = "yes"
		}
		values := []string{
			p.ID,
			p.Role.String(),
			fmt.Sprintf("%.1f", w),
			fmt.Sprintf("%.1f", h),
			fmt.Sprintf("%.1f", t),
			trimmed,
		}
		rowY := y + float64(i+1)*tableRowH
		x = marginLeft
		for c, v := range values {
			pdf.SetXY(x, rowY)
			pdf.CellFormat(cols[c].width, tableRowH, v, "1", 0, "L", false, 0, "")
			x += cols[c].width
		}
	}
}
