package morph

import "fmt"

// Figure is a single contiguous outline: a start point followed by segments.
//
// A figure is flat if it consists only of line and polyline segments. Flat
// figures are what [Flatten] produces and what the morph and collapse
// operations consume. Their outline is Start followed by [Figure.Points].
type Figure struct {
	Start  Point
	Closed bool
	Filled bool

	Segments []Segment
}

// NewFigure returns an empty, open, filled figure starting at start.
func NewFigure(start Point) *Figure {
	return &Figure{Start: start, Filled: true}
}

func (f *Figure) LineTo(p Point) { f.push(LineTo(p)) }
func (f *Figure) QuadTo(c, p Point) { f.push(QuadTo(c, p)) }
func (f *Figure) CubicTo(c1, c2, p Point) { f.push(CubicTo(c1, c2, p)) }
func (f *Figure) ConicTo(c, p Point, w float64) { f.push(ConicTo(c, p, w)) }
func (f *Figure) PolyLineTo(pts ...Point) { f.push(PolyLineTo(pts...)) }
func (f *Figure) ArcTo(p Point, arc ArcParams) { f.push(ArcTo(p, arc)) }

// Close marks the figure as closed. The outline implicitly returns to the
// start point.
func (f *Figure) Close() { f.Closed = true }

func (f *Figure) push(seg Segment) {
	f.Segments = append(f.Segments, seg)
}

// Clone returns a deep copy of the figure. Mutating the clone's segments or
// points never affects f.
func (f Figure) Clone() Figure {
	segs := make([]Segment, len(f.Segments))
	for i, seg := range f.Segments {
		segs[i] = seg.Clone()
	}
	f.Segments = segs
	return f
}

// IsFlat reports whether the figure consists only of line and polyline
// segments.
func (f Figure) IsFlat() bool {
	for _, seg := range f.Segments {
		if seg.Kind != LineKind && seg.Kind != PolyLineKind {
			return false
		}
	}
	return true
}

// Points returns the figure's vertices after its start point, in order. Line
// segments contribute their end point and polylines all of their points. Other
// segments contribute only their end point, so the result is only an
// approximation of figures that aren't flat.
func (f Figure) Points() []Point {
	var out []Point
	for _, seg := range f.Segments {
		if seg.Kind == PolyLineKind {
			out = append(out, seg.Points...)
			continue
		}
		if p, ok := seg.End(); ok {
			out = append(out, p)
		}
	}
	return out
}

// polyline rewrites a flat figure to hold exactly one polyline segment and
// returns a pointer to it. Figures without segments receive an empty polyline.
func (f *Figure) polyline() (*Segment, error) {
	if len(f.Segments) == 1 && f.Segments[0].Kind == PolyLineKind {
		return &f.Segments[0], nil
	}
	for i, seg := range f.Segments {
		if seg.Kind != LineKind && seg.Kind != PolyLineKind {
			return nil, fmt.Errorf("segment %d is a %s: %w", i, seg.Kind, ErrNotFlat)
		}
	}
	f.Segments = []Segment{PolyLineTo(f.Points()...)}
	return &f.Segments[0], nil
}

// ring returns the closed outline used for containment tests.
func (f Figure) ring() []Point {
	return append([]Point{f.Start}, f.Points()...)
}

// BoundingBox returns the smallest rectangle containing the start point and
// every point stored in the figure's segments, control points included.
func (f Figure) BoundingBox() Rect {
	r := emptyRect.UnionPoint(f.Start)
	for _, seg := range f.Segments {
		switch seg.Kind {
		case PolyLineKind:
			for _, pt := range seg.Points {
				r = r.UnionPoint(pt)
			}
		case QuadKind, ConicKind:
			r = r.UnionPoint(seg.P0).UnionPoint(seg.P1)
		case CubicKind:
			r = r.UnionPoint(seg.P0).UnionPoint(seg.P1).UnionPoint(seg.P2)
		default:
			r = r.UnionPoint(seg.P0)
		}
	}
	return r
}

// Winding returns the winding number of pt with respect to the figure's
// outline, treating the figure as closed. Curve segments are approximated by
// the chord to their end point.
func (f Figure) Winding(pt Point) int {
	ring := f.ring()
	var w int
	for i := range ring {
		j := i + 1
		if j == len(ring) {
			j = 0
		}
		w += Line{ring[i], ring[j]}.winding(pt)
	}
	return w
}

// Contains reports whether pt is inside the figure's filled area under rule.
func (f Figure) Contains(pt Point, rule FillRule) bool {
	return rule.inside(f.Winding(pt))
}

// Transform returns a copy of f with aff applied to all of its points.
func (f Figure) Transform(aff Affine) Figure {
	segs := make([]Segment, len(f.Segments))
	for i, seg := range f.Segments {
		segs[i] = seg.Transform(aff)
	}
	f.Start = f.Start.Transform(aff)
	f.Segments = segs
	return f
}

// Translate moves the figure in place by v.
func (f *Figure) Translate(v Vec2) {
	*f = f.Transform(Translate(v))
}

func (f Figure) pointCount() int {
	var n int
	for _, seg := range f.Segments {
		if seg.Kind == PolyLineKind {
			n += len(seg.Points)
		} else {
			n++
		}
	}
	return n
}
