package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodshop-tools/panelforge/internal/geom"
	"github.com/woodshop-tools/panelforge/internal/kernel"
	"github.com/woodshop-tools/panelforge/internal/model"
)

// buildTestPanels returns a body with a small resolved panel set.
func buildTestPanels() (model.Body, []model.Panel) {
	body := model.Body{
		ID:     "body-1",
		Type:   model.BodyBase,
		Bounds: geom.NewBox3(geom.Vec3{}, geom.Vec3{X: 600, Y: 720, Z: 560}),
		Plinth: model.DefaultPlinthConfig(),
	}

	left := model.NewPanel(body.ID, model.RoleLeft, 18)
	left.SetGeometry(kernel.NewBox(geom.Vec3{}, geom.Vec3{X: 18, Y: 720, Z: 560}))

	top := model.NewPanel(body.ID, model.RoleTop, 18)
	top.SetGeometry(kernel.NewBox(geom.Vec3{Y: 702}, geom.Vec3{X: 600, Y: 720, Z: 560}))
	top.JointTrimmed = true

	return body, []model.Panel{left, top}
}

func TestPanelDims(t *testing.T) {
	_, panels := buildTestPanels()

	w, h, th := PanelDims(panels[0])
	assert.Equal(t, 720.0, w)
	assert.Equal(t, 560.0, h)
	assert.Equal(t, 18.0, th)
}

func TestExportXLSX(t *testing.T) {
	body, panels := buildTestPanels()
	path := filepath.Join(t.TempDir(), "cutlist.xlsx")

	require.NoError(t, ExportXLSX(path, body, panels))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportXLSXEmpty(t *testing.T) {
	body, _ := buildTestPanels()
	err := ExportXLSX(filepath.Join(t.TempDir(), "empty.xlsx"), body, nil)
	assert.Error(t, err)
}

func TestExportPDF(t *testing.T) {
	body, panels := buildTestPanels()
	path := filepath.Join(t.TempDir(), "cutlist.pdf")

	require.NoError(t, ExportPDF(path, body, panels))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF")
}

func TestExportLabels(t *testing.T) {
	body, panels := buildTestPanels()
	path := filepath.Join(t.TempDir(), "labels.pdf")

	require.NoError(t, ExportLabels(path, body, panels))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF")
}

func TestCollectLabelInfos(t *testing.T) {
	body, panels := buildTestPanels()

	labels := CollectLabelInfos(body, panels)
	require.Len(t, labels, 2)

	assert.Equal(t, panels[0].ID, labels[0].PanelID)
	assert.Equal(t, "body-1", labels[0].BodyID)
	assert.Equal(t, "Left", labels[0].Role)
	assert.False(t, labels[0].Trimmed)
	assert.True(t, labels[1].Trimmed)
}

func TestExportDXF(t *testing.T) {
	_, panels := buildTestPanels()
	path := filepath.Join(t.TempDir(), "panels.dxf")

	require.NoError(t, ExportDXF(path, panels))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportDXFEmpty(t *testing.T) {
	err := ExportDXF(filepath.Join(t.TempDir(), "empty.dxf"), nil)
	assert.Error(t, err)
}
