package morph

import "fmt"

// FillRule determines which areas enclosed by a geometry's figures are
// considered inside.
type FillRule uint8

const (
	// EvenOdd treats a point as inside if a ray from it crosses the outline
	// an odd number of times.
	EvenOdd FillRule = iota
	// NonZero treats a point as inside if its winding number is non-zero.
	NonZero
)

func (r FillRule) String() string {
	switch r {
	case EvenOdd:
		return "evenodd"
	case NonZero:
		return "nonzero"
	default:
		return fmt.Sprintf("FillRule(%d)", r)
	}
}

func (r FillRule) inside(winding int) bool {
	if r == NonZero {
		return winding != 0
	}
	return winding%2 != 0
}

// Geometry is an ordered list of figures sharing a fill rule.
type Geometry struct {
	FillRule FillRule
	Figures  []Figure
}

// Clone returns a deep copy of g.
func (g Geometry) Clone() Geometry {
	figs := make([]Figure, len(g.Figures))
	for i, f := range g.Figures {
		figs[i] = f.Clone()
	}
	g.Figures = figs
	return g
}

// IsFlat reports whether all figures are flat.
func (g Geometry) IsFlat() bool {
	for _, f := range g.Figures {
		if !f.IsFlat() {
			return false
		}
	}
	return true
}

// PointCount returns the number of points stored in segments, summed over all
// figures. Start points are not counted.
func (g Geometry) PointCount() int {
	var n int
	for _, f := range g.Figures {
		n += f.pointCount()
	}
	return n
}

// BoundingBox returns the union of the figures' bounding boxes. The result
// is empty if g has no figures.
func (g Geometry) BoundingBox() Rect {
	r := emptyRect
	for _, f := range g.Figures {
		r = r.Union(f.BoundingBox())
	}
	return r
}

// Transform returns a copy of g with aff applied to every figure.
func (g Geometry) Transform(aff Affine) Geometry {
	figs := make([]Figure, len(g.Figures))
	for i, f := range g.Figures {
		figs[i] = f.Transform(aff)
	}
	g.Figures = figs
	return g
}
