package mesh

import (
	"math"

	"github.com/woodshop-tools/panelforge/internal/geom"
)

// Edge is a line segment between two mesh vertices.
type Edge struct {
	A geom.Vec3 `json:"a"`
	B geom.Vec3 `json:"b"`
}

// edgeQuantum is the coordinate rounding applied when keying edges, so that
// unwelded vertices that agree to within a tenth of a micron share a key.
const edgeQuantum = 1e-4

type vertKey struct {
	x, y, z int64
}

func quantize(v geom.Vec3) vertKey {
	return vertKey{
		x: int64(math.Round(v.X / edgeQuantum)),
		y: int64(math.Round(v.Y / edgeQuantum)),
		z: int64(math.Round(v.Z / edgeQuantum)),
	}
}

type edgeKey struct {
	lo, hi vertKey
}

func (k vertKey) less(o vertKey) bool {
	if k.x != o.x {
		return k.x < o.x
	}
	if k.y != o.y {
		return k.y < o.y
	}
	return k.z < o.z
}

// makeEdgeKey builds an order-independent key for the segment a-b.
func makeEdgeKey(a, b geom.Vec3) edgeKey {
	ka, kb := quantize(a), quantize(b)
	if kb.less(ka) {
		ka, kb = kb, ka
	}
	return edgeKey{lo: ka, hi: kb}
}

// BoundaryEdges returns the outer border of a face group: the edges that
// appear in exactly one member triangle. Edges shared by two or more
// triangles are interior and discarded. Output order is first-seen order,
// which is stable for a fixed triangle enumeration.
func BoundaryEdges(g FaceGroup, faces []FaceRecord) []Edge {
	type entry struct {
		edge  Edge
		count int
	}
	counts := make(map[edgeKey]*entry)
	var order []edgeKey

	for _, ti := range g.Triangles {
		f := faces[ti]
		for i := 0; i < 3; i++ {
			a := f.Verts[i]
			b := f.Verts[(i+1)%3]
			k := makeEdgeKey(a, b)
			if e, ok := counts[k]; ok {
				e.count++
				continue
			}
			counts[k] = &entry{edge: Edge{A: a, B: b}, count: 1}
			order = append(order, k)
		}
	}

	var boundary []Edge
	for _, k := range order {
		if counts[k].count == 1 {
			boundary = append(boundary, counts[k].edge)
		}
	}
	return boundary
}

// BoundaryEdgesOf is a convenience for callers that hold triangles directly
// rather than indices into a shared face slice.
func BoundaryEdgesOf(faces []FaceRecord) []Edge {
	g := FaceGroup{}
	for i := range faces {
		g.Triangles = append(g.Triangles, i)
	}
	return BoundaryEdges(g, faces)
}
