package engine

import (
	"github.com/woodshop-tools/panelforge/internal/geom"
	"github.com/woodshop-tools/panelforge/internal/kernel"
	"github.com/woodshop-tools/panelforge/internal/model"
)

// GeneratePlinth emits the front and back plinth support panels for a
// floor-standing body. It is a pure function of the body's outer footprint
// and plinth configuration: the panels span the body width minus both side
// panels, sit at the configured front/back insets, and are vertically
// centered at bodyBottom - plinthHeight/2.
//
// The support panels are always fully regenerated, never mutated;
// deterministic ids let the resolver delete and recreate them without
// churn.
func GeneratePlinth(body model.Body, sideThickness float64) []model.Panel {
	cfg := body.Plinth
	if cfg.Height <= 0 {
		return nil
	}

	width := body.Bounds.Size().X - 2*sideThickness
	if width <= 0 {
		return nil
	}

	bottom := body.Bounds.Min.Y
	minX := body.Bounds.Min.X + sideThickness

	support := func(role model.Role, id string, zFront float64) model.Panel {
		// zFront is the front (max Z) face of the support panel.
		min := geom.Vec3{X: minX, Y: bottom - cfg.Height, Z: zFront - cfg.PanelThickness}
		max := geom.Vec3{X: minX + width, Y: bottom, Z: zFront}
		p := model.Panel{
			ID:        id,
			ParentID:  body.ID,
			Role:      role,
			Thickness: cfg.PanelThickness,
		}
		p.SetGeometry(kernel.NewBox(min, max))
		return p
	}

	front := support(model.RolePlinthFront, body.ID+"-plinth-front",
		body.Bounds.Max.Z-cfg.FrontInset)
	back := support(model.RolePlinthBack, body.ID+"-plinth-back",
		body.Bounds.Min.Z+cfg.BackInset+cfg.PanelThickness)

	return []model.Panel{front, back}
}
