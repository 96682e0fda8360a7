package morph

import (
	"fmt"
	"slices"
)

type SegmentKind uint8

const (
	LineKind SegmentKind = iota + 1
	QuadKind
	CubicKind
	ConicKind
	PolyLineKind
	ArcKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case QuadKind:
		return "quad"
	case CubicKind:
		return "cubic"
	case ConicKind:
		return "conic"
	case PolyLineKind:
		return "polyline"
	case ArcKind:
		return "arc"
	default:
		return fmt.Sprintf("SegmentKind(%d)", k)
	}
}

// Segment is one piece of a [Figure]'s outline. A segment doesn't store its
// start point; that is the end point of the previous segment, or the figure's
// start point for the first segment.
//
// Which fields are used depends on Kind:
//
//   - LineKind: P0 is the end point.
//   - QuadKind: P0 is the control point, P1 the end point.
//   - CubicKind: P0 and P1 are the control points, P2 the end point.
//   - ConicKind: P0 is the control point, P1 the end point and Weight the
//     weight of the control point.
//   - PolyLineKind: Points holds the vertices, in order.
//   - ArcKind: P0 is the end point and Arc describes the elliptical arc.
//
// Arcs are carried through unchanged by cloning and transforms, but they are
// not flattened. Callers wanting arcs to participate in a morph have to
// convert them to Béziers first.
type Segment struct {
	Kind   SegmentKind
	P0     Point
	P1     Point
	P2     Point
	Weight float64
	Points []Point
	Arc    ArcParams
}

// ArcParams describes an elliptical arc the way SVG path data does.
type ArcParams struct {
	Radii Vec2
	// Rotation of the ellipse's x axis, in radians.
	Rotation float64
	LargeArc bool
	Sweep    bool
}

func LineTo(p Point) Segment {
	return Segment{Kind: LineKind, P0: p}
}

func QuadTo(c, p Point) Segment {
	return Segment{Kind: QuadKind, P0: c, P1: p}
}

func CubicTo(c1, c2, p Point) Segment {
	return Segment{Kind: CubicKind, P0: c1, P1: c2, P2: p}
}

func ConicTo(c, p Point, weight float64) Segment {
	return Segment{Kind: ConicKind, P0: c, P1: p, Weight: weight}
}

// PolyLineTo returns a polyline segment through pts. The slice is retained.
func PolyLineTo(pts ...Point) Segment {
	return Segment{Kind: PolyLineKind, Points: pts}
}

func ArcTo(p Point, arc ArcParams) Segment {
	return Segment{Kind: ArcKind, P0: p, Arc: arc}
}

// End returns the segment's end point. It returns false for empty polylines
// and segments of unknown kind.
func (seg Segment) End() (Point, bool) {
	switch seg.Kind {
	case LineKind, ArcKind:
		return seg.P0, true
	case QuadKind, ConicKind:
		return seg.P1, true
	case CubicKind:
		return seg.P2, true
	case PolyLineKind:
		if len(seg.Points) == 0 {
			return Point{}, false
		}
		return seg.Points[len(seg.Points)-1], true
	default:
		return Point{}, false
	}
}

// Clone returns a deep copy of the segment.
func (seg Segment) Clone() Segment {
	seg.Points = slices.Clone(seg.Points)
	return seg
}

// Transform applies aff to the segment's points. Arc radii are scaled by the
// transform's mean scale factor, which is only exact for similarity
// transforms.
func (seg Segment) Transform(aff Affine) Segment {
	switch seg.Kind {
	case LineKind:
		seg.P0 = seg.P0.Transform(aff)
	case QuadKind, ConicKind:
		seg.P0 = seg.P0.Transform(aff)
		seg.P1 = seg.P1.Transform(aff)
	case CubicKind:
		seg.P0 = seg.P0.Transform(aff)
		seg.P1 = seg.P1.Transform(aff)
		seg.P2 = seg.P2.Transform(aff)
	case PolyLineKind:
		pts := make([]Point, len(seg.Points))
		for i, pt := range seg.Points {
			pts[i] = pt.Transform(aff)
		}
		seg.Points = pts
	case ArcKind:
		seg.P0 = seg.P0.Transform(aff)
		seg.Arc.Radii = seg.Arc.Radii.Mul(aff.uniformScale())
	}
	return seg
}

func (seg Segment) String() string {
	switch seg.Kind {
	case LineKind:
		return fmt.Sprintf("LineTo(%s)", seg.P0)
	case QuadKind:
		return fmt.Sprintf("QuadTo(%s, %s)", seg.P0, seg.P1)
	case CubicKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", seg.P0, seg.P1, seg.P2)
	case ConicKind:
		return fmt.Sprintf("ConicTo(%s, %s, %g)", seg.P0, seg.P1, seg.Weight)
	case PolyLineKind:
		return fmt.Sprintf("PolyLineTo(%d points)", len(seg.Points))
	case ArcKind:
		return fmt.Sprintf("ArcTo(%s, %s)", seg.P0, seg.Arc.Radii)
	default:
		return fmt.Sprintf("Segment(%s)", seg.Kind)
	}
}
