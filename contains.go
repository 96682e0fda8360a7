package morph

import "fmt"

// Containment describes how the filled areas of two figures relate.
type Containment uint8

const (
	Disjoint Containment = iota
	Intersects
	// FullyInside means the first figure lies inside the second.
	FullyInside
	// FullyContains means the first figure contains the second.
	FullyContains
)

func (c Containment) String() string {
	switch c {
	case Disjoint:
		return "disjoint"
	case Intersects:
		return "intersects"
	case FullyInside:
		return "fully inside"
	case FullyContains:
		return "fully contains"
	default:
		return fmt.Sprintf("Containment(%d)", c)
	}
}

// Nested reports whether one figure lies entirely within the other.
func (c Containment) Nested() bool {
	return c == FullyInside || c == FullyContains
}

// FillContains relates the filled areas of a and b, each treated as a closed
// outline filled according to rule.
//
// This is a vertex test, not an exact area intersection: a contains b if every
// vertex of b lies inside a. Edges crossing without a vertex on the other side
// go unnoticed. That is good enough to detect holes and counters of glyph-like
// shapes, which is what figure padding needs. Curve segments are reduced to
// their end points, so flatten figures first for meaningful results.
func FillContains(a, b Figure, rule FillRule) Containment {
	ra, rb := a.ring(), b.ring()
	if !a.BoundingBox().Overlaps(b.BoundingBox()) {
		return Disjoint
	}
	inA := countInside(a, rb, rule)
	inB := countInside(b, ra, rule)
	switch {
	case inA == len(rb):
		return FullyContains
	case inB == len(ra):
		return FullyInside
	case inA > 0 || inB > 0:
		return Intersects
	default:
		return Disjoint
	}
}

func countInside(f Figure, pts []Point, rule FillRule) int {
	var n int
	for _, pt := range pts {
		if f.Contains(pt, rule) {
			n++
		}
	}
	return n
}
