// Package mesh decomposes triangle meshes into planar face groups and
// derives the per-group data the panel synthesizer works from: boundary
// edges, aggregate normals, and relocatable face descriptors.
package mesh

import "github.com/woodshop-tools/panelforge/internal/geom"

// TriangleMesh is the raw triangle buffer handed over by the solid kernel.
// When Indices is nil the mesh is treated as a non-indexed triangle soup:
// every consecutive run of three positions forms one triangle.
type TriangleMesh struct {
	Positions []geom.Vec3 `json:"positions"`
	Indices   []int       `json:"indices,omitempty"`
}

// TriangleCount returns the number of whole triangles in the buffer.
// Trailing positions or indices that do not complete a triangle are ignored.
func (m TriangleMesh) TriangleCount() int {
	if m.Indices != nil {
		return len(m.Indices) / 3
	}
	return len(m.Positions) / 3
}

// Triangle returns the three vertices of triangle i.
func (m TriangleMesh) Triangle(i int) (a, b, c geom.Vec3) {
	if m.Indices != nil {
		return m.Positions[m.Indices[3*i]], m.Positions[m.Indices[3*i+1]], m.Positions[m.Indices[3*i+2]]
	}
	return m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]
}

// Bounds returns the bounding box of all referenced vertices.
func (m TriangleMesh) Bounds() geom.Box3 {
	b := geom.EmptyBox3()
	for i := 0; i < m.TriangleCount(); i++ {
		va, vb, vc := m.Triangle(i)
		b = b.ExpandByPoint(va).ExpandByPoint(vb).ExpandByPoint(vc)
	}
	return b
}

// FaceRecord holds the per-triangle data used by the coplanar grouper.
// Degenerate triangles keep Area == 0 and a zero Normal.
type FaceRecord struct {
	Index    int          `json:"index"`
	Verts    [3]geom.Vec3 `json:"verts"`
	Normal   geom.Vec3    `json:"normal"`
	Area     float64      `json:"area"`
	Centroid geom.Vec3    `json:"centroid"`
}

// degenerateEps is the cross-product length below which a triangle is
// treated as degenerate.
const degenerateEps = 1e-9

// ExtractFaces converts a triangle buffer into one FaceRecord per triangle.
// No vertex welding is performed. Extraction never fails: an empty mesh
// yields an empty slice and degenerate triangles are kept with zero area so
// downstream clustering can ignore them.
func ExtractFaces(m TriangleMesh) []FaceRecord {
	n := m.TriangleCount()
	faces := make([]FaceRecord, 0, n)
	for i := 0; i < n; i++ {
		a, b, c := m.Triangle(i)
		cross := b.Sub(a).Cross(c.Sub(a))
		rec := FaceRecord{
			Index:    i,
			Verts:    [3]geom.Vec3{a, b, c},
			Centroid: a.Add(b).Add(c).Scale(1.0 / 3.0),
		}
		if l := cross.Length(); l >= degenerateEps {
			rec.Normal = cross.Scale(1 / l)
			rec.Area = l / 2
		}
		faces = append(faces, rec)
	}
	return faces
}
