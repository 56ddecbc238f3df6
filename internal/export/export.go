// Package export writes panel sets to shop-floor formats: XLSX cut lists,
// PDF sheets with footprint drawings, QR-coded part labels, and DXF
// outline drawings.
package export

import (
	"sort"

	"github.com/woodshop-tools/panelforge/internal/model"
)

// PanelDims returns a panel's cut-list dimensions: the two largest bounding
// extents as width x height, and the smallest as thickness.
func PanelDims(p model.Panel) (width, height, thickness float64) {
	s := p.Bounds.Size()
	d := []float64{s.X, s.Y, s.Z}
	sort.Float64s(d)
	return d[2], d[1], d[0]
}
