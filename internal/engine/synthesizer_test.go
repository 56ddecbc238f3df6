package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodshop-tools/panelforge/internal/geom"
	"github.com/woodshop-tools/panelforge/internal/kernel"
	"github.com/woodshop-tools/panelforge/internal/mesh"
	"github.com/woodshop-tools/panelforge/internal/model"
)

// demoBody returns a hanging (plinth-free) body and its triangulated box
// mesh.
func demoBody(t *testing.T, w, h, d float64) (model.Body, mesh.TriangleMesh) {
	t.Helper()
	box := kernel.NewBox(geom.Vec3{}, geom.Vec3{X: w, Y: h, Z: d})
	m, err := kernel.BoxKernel{}.ToMesh(box)
	require.NoError(t, err)
	return model.Body{
		ID:     "body-1",
		Type:   model.BodyHanging,
		Bounds: box.Bounds(),
		Plinth: model.DefaultPlinthConfig(),
	}, m
}

// assignRoles maps face groups to roles by their outward normal.
func assignRoles(t *testing.T, m mesh.TriangleMesh, want map[model.Role]geom.Vec3) map[int]model.Role {
	t.Helper()
	groups := mesh.GroupCoplanar(mesh.ExtractFaces(m), mesh.DefaultGroupTolerance())
	roles := make(map[int]model.Role)
	for role, n := range want {
		found := false
		for _, g := range groups {
			if g.Normal.Dot(n) > 0.999 {
				roles[g.Index] = role
				found = true
				break
			}
		}
		require.True(t, found, "no face group with normal %+v for role %s", n, role)
	}
	return roles
}

func sideRoles() map[model.Role]geom.Vec3 {
	return map[model.Role]geom.Vec3{
		model.RoleLeft:   {X: -1},
		model.RoleRight:  {X: 1},
		model.RoleTop:    {Y: 1},
		model.RoleBottom: {Y: -1},
	}
}

func panelByRole(panels []model.Panel, r model.Role) *model.Panel {
	for i := range panels {
		if panels[i].Role == r {
			return &panels[i]
		}
	}
	return nil
}

func TestSynthesizePanels600Box(t *testing.T) {
	body, m := demoBody(t, 600, 600, 600)
	roles := assignRoles(t, m, sideRoles())

	syn := NewSynthesizer()
	panels, err := syn.SynthesizePanels(body, m, roles, 18,
		model.DefaultJointConfig(), model.DefaultBackPanelConfig())
	require.NoError(t, err)
	require.Len(t, panels, 4)

	// Both top corner flags unset: the top panel loses a side thickness
	// per side while the sides keep full height.
	top := panelByRole(panels, model.RoleTop)
	require.NotNil(t, top)
	assert.InDelta(t, 564, top.Bounds.Size().X, 1e-9, "top panel width")
	assert.InDelta(t, 18, top.Bounds.Size().Y, 1e-9, "top panel thickness extent")

	for _, r := range []model.Role{model.RoleLeft, model.RoleRight} {
		side := panelByRole(panels, r)
		require.NotNil(t, side)
		assert.InDelta(t, 600, side.Bounds.Size().Y, 1e-9, "%s panel height", r)
		assert.InDelta(t, 18, side.Bounds.Size().X, 1e-9, "%s panel thickness extent", r)
	}
}

func TestSynthesizePanelsExpandedCorners(t *testing.T) {
	body, m := demoBody(t, 600, 600, 600)
	roles := assignRoles(t, m, sideRoles())

	cfg := model.DefaultJointConfig()
	cfg.TopLeftExpanded = true
	cfg.TopRightExpanded = true

	syn := NewSynthesizer()
	panels, err := syn.SynthesizePanels(body, m, roles, 18, cfg, model.DefaultBackPanelConfig())
	require.NoError(t, err)

	// Expanded corners: the top keeps full width and the sides are
	// shortened by the top panel's thickness instead.
	top := panelByRole(panels, model.RoleTop)
	assert.InDelta(t, 600, top.Bounds.Size().X, 1e-9)

	left := panelByRole(panels, model.RoleLeft)
	assert.InDelta(t, 582, left.Bounds.Size().Y, 1e-9)
	assert.InDelta(t, 582, left.Bounds.Max.Y, 1e-9, "side shortened at the top end")
}

func TestSynthesizePanelsPlinthShortensSides(t *testing.T) {
	body, m := demoBody(t, 600, 720, 560)
	body.Type = model.BodyBase
	roles := assignRoles(t, m, sideRoles())

	syn := NewSynthesizer()
	panels, err := syn.SynthesizePanels(body, m, roles, 18,
		model.DefaultJointConfig(), model.DefaultBackPanelConfig())
	require.NoError(t, err)

	left := panelByRole(panels, model.RoleLeft)
	assert.InDelta(t, 720-body.Plinth.Height, left.Bounds.Size().Y, 1e-9)
	assert.InDelta(t, body.Plinth.Height, left.Bounds.Min.Y, 1e-9, "side starts at plinth top")
}

func TestSynthesizePanelsBackGroove(t *testing.T) {
	body, m := demoBody(t, 600, 600, 560)
	want := sideRoles()
	want[model.RoleBack] = geom.Vec3{Z: -1}
	roles := assignRoles(t, m, want)

	bc := model.DefaultBackPanelConfig()
	syn := NewSynthesizer()
	panels, err := syn.SynthesizePanels(body, m, roles, 18, model.DefaultJointConfig(), bc)
	require.NoError(t, err)

	back := panelByRole(panels, model.RoleBack)
	require.NotNil(t, back)
	// Enlarged by groove depth, reduced by clearance, per side.
	wantW := 600 + 2*(bc.GrooveDepth-bc.Clearance)
	assert.InDelta(t, wantW, back.Bounds.Size().X, 1e-9, "back panel width")
	assert.InDelta(t, bc.Thickness, back.Bounds.Size().Z, 1e-9, "back panel thickness")
	// Inset from the rear face (min Z) by the groove offset.
	assert.InDelta(t, bc.GrooveOffset, back.Bounds.Min.Z, 1e-9, "groove offset inset")
}

func TestSynthesizePanelsDuplicateRoleRejected(t *testing.T) {
	body, m := demoBody(t, 600, 600, 600)
	roles := map[int]model.Role{0: model.RoleLeft, 1: model.RoleLeft}

	_, err := NewSynthesizer().SynthesizePanels(body, m, roles, 18,
		model.DefaultJointConfig(), model.DefaultBackPanelConfig())
	assert.Error(t, err)
}

func TestSynthesizePanelsStaleIndexRejected(t *testing.T) {
	body, m := demoBody(t, 600, 600, 600)
	roles := map[int]model.Role{42: model.RoleLeft}

	_, err := NewSynthesizer().SynthesizePanels(body, m, roles, 18,
		model.DefaultJointConfig(), model.DefaultBackPanelConfig())
	assert.Error(t, err)
}

func TestSynthesizeShellClosedVolume(t *testing.T) {
	body, m := demoBody(t, 600, 600, 600)
	roles := assignRoles(t, m, map[model.Role]geom.Vec3{model.RoleTop: {Y: 1}})

	panels, err := NewSynthesizer().SynthesizePanels(body, m, roles, 18,
		model.DefaultJointConfig(), model.DefaultBackPanelConfig())
	require.NoError(t, err)
	require.Len(t, panels, 1)

	// A closed shell has no boundary edges at all.
	faces := mesh.ExtractFaces(panels[0].Shell)
	assert.Empty(t, mesh.BoundaryEdgesOf(faces), "shell should be watertight")
}
