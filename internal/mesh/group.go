package mesh

import (
	"math"

	"github.com/woodshop-tools/panelforge/internal/geom"
)

// FaceGroup is a maximal set of triangles judged coplanar within tolerance.
// Index is the group's position in discovery order; persisted role
// assignments reference this index, so the order must stay stable for a
// given triangle enumeration.
type FaceGroup struct {
	Index     int       `json:"index"`
	Triangles []int     `json:"triangles"`
	Normal    geom.Vec3 `json:"normal"` // unit aggregate normal
	Offset    float64   `json:"offset"` // mean of centroid·normal
	Center    geom.Vec3 `json:"center"` // mean triangle centroid
	Bounds    geom.Box3 `json:"bounds"`

	normalSum geom.Vec3
	centerSum geom.Vec3
	offsetSum float64
}

// GroupTolerance controls the coplanarity test of the grouper.
type GroupTolerance struct {
	CosAngle float64 // minimum dot(triNormal, groupNormal)
	Distance float64 // maximum |centroid·normal - offset| in mm
}

// DefaultGroupTolerance admits normals within 1 degree and plane distances
// within half a millimeter.
func DefaultGroupTolerance() GroupTolerance {
	return GroupTolerance{
		CosAngle: math.Cos(1.0 * math.Pi / 180.0),
		Distance: 0.5,
	}
}

// accepts reports whether the face fits this group's plane within tol.
func (g *FaceGroup) accepts(f FaceRecord, tol GroupTolerance) bool {
	if f.Normal.Dot(g.Normal) <= tol.CosAngle {
		return false
	}
	return math.Abs(f.Centroid.Dot(g.Normal)-g.Offset) < tol.Distance
}

// add folds a face into the group's running aggregates.
func (g *FaceGroup) add(f FaceRecord) {
	g.Triangles = append(g.Triangles, f.Index)
	n := float64(len(g.Triangles))

	g.normalSum = g.normalSum.Add(f.Normal)
	g.Normal = g.normalSum.Normalized()

	g.centerSum = g.centerSum.Add(f.Centroid)
	g.Center = g.centerSum.Scale(1 / n)

	g.offsetSum += f.Centroid.Dot(g.Normal)
	g.Offset = g.offsetSum / n

	for _, v := range f.Verts {
		g.Bounds = g.Bounds.ExpandByPoint(v)
	}
}

// GroupCoplanar clusters face records into planar groups with a single
// linear pass. Each triangle joins the first open group whose plane it fits
// ("first match wins"; the result is order-dependent for near-degenerate
// multi-plane meshes, see matcher notes), otherwise it opens a new group.
// Degenerate triangles carry a zero normal, never match any group, and are
// skipped entirely so they carry no clustering weight.
func GroupCoplanar(faces []FaceRecord, tol GroupTolerance) []FaceGroup {
	var groups []*FaceGroup
	for _, f := range faces {
		if f.Area == 0 {
			continue
		}
		matched := false
		for _, g := range groups {
			if g.accepts(f, tol) {
				g.add(f)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		g := &FaceGroup{
			Index:  len(groups),
			Normal: f.Normal,
			Offset: f.Centroid.Dot(f.Normal),
			Bounds: geom.EmptyBox3(),
		}
		g.add(f)
		groups = append(groups, g)
	}

	out := make([]FaceGroup, len(groups))
	for i, g := range groups {
		out[i] = *g
	}
	return out
}
