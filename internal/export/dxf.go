package export

import (
	"fmt"

	"github.com/yofu/dxf"

	"github.com/woodshop-tools/panelforge/internal/model"
)

// ExportDXF writes a front-view (X/Y) outline drawing of every panel
// footprint as LINE entities, one rectangle per panel, for import into CAD
// or CAM tooling.
func ExportDXF(path string, panels []model.Panel) error {
	if len(panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer("PANELS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}

	for _, p := range panels {
		minX, maxX := p.Bounds.Min.X, p.Bounds.Max.X
		minY, maxY := p.Bounds.Min.Y, p.Bounds.Max.Y
		corners := [4][2]float64{
			{minX, minY},
			{maxX, minY},
			{maxX, maxY},
			{minX, maxY},
		}
		for i := range corners {
			a := corners[i]
			b := corners[(i+1)%4]
			if _, err := d.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
				return fmt.Errorf("panel %s: %w", p.ID, err)
			}
		}
	}

	return d.SaveAs(path)
}
