package morph

import (
	"fmt"
	"log/slog"
	"math"
)

// FlattenMode selects how [Flatten] represents the sampled points.
type FlattenMode uint8

const (
	// FlattenLines emits one line segment per sampled point.
	FlattenLines FlattenMode = iota
	// FlattenPolyLines emits a single polyline segment per figure holding
	// all sampled points.
	FlattenPolyLines
)

func (m FlattenMode) String() string {
	switch m {
	case FlattenLines:
		return "lines"
	case FlattenPolyLines:
		return "polylines"
	default:
		return fmt.Sprintf("FlattenMode(%d)", m)
	}
}

// SampleCount returns the number of points a segment whose control polygon
// has the given length is sampled with: the length rounded to the nearest
// integer, but at least one.
//
// The sample density is therefore about one point per unit of length in the
// geometry's coordinate space. Geometries drawn in tiny coordinate systems
// should be scaled up before flattening.
func SampleCount(length float64) int {
	if math.IsNaN(length) || math.IsInf(length, 0) {
		return 1
	}
	return max(1, int(math.Round(length)))
}

// Flatten converts every figure of g into a flat figure by sampling its
// segments at uniform parameter steps.
//
// A segment with control polygon length L is sampled at t = i/N for i = 1…N,
// with N = [SampleCount](L). The segment's start point is not emitted, as it
// is the end point of the previous segment, or the figure's start point. The
// last sample of every segment is exactly the segment's end point. Polyline
// segments are sampled edge by edge. Closed figures get an additional run
// from the last point back to the start point.
//
// Arcs and segments of unknown kind are skipped without emitting points; a
// debug message is logged for each. Use [FlattenStrict] to treat them as
// errors instead.
//
// The result has as many figures as g, with the same start points and closed
// and filled flags, and the same fill rule. g is not modified.
func Flatten(g Geometry, mode FlattenMode) Geometry {
	out, _ := flatten(g, mode, false)
	return out
}

// FlattenStrict is like [Flatten] but fails with a [*SegmentError] wrapping
// [ErrUnsupportedSegment] on the first segment it cannot sample.
func FlattenStrict(g Geometry, mode FlattenMode) (Geometry, error) {
	return flatten(g, mode, true)
}

func flatten(g Geometry, mode FlattenMode, strict bool) (Geometry, error) {
	out := Geometry{
		FillRule: g.FillRule,
		Figures:  make([]Figure, len(g.Figures)),
	}
	for fi, f := range g.Figures {
		pts, err := flattenFigure(fi, f, strict)
		if err != nil {
			return Geometry{}, err
		}
		nf := Figure{
			Start:  f.Start,
			Closed: f.Closed,
			Filled: f.Filled,
		}
		switch mode {
		case FlattenLines:
			nf.Segments = make([]Segment, len(pts))
			for i, pt := range pts {
				nf.Segments[i] = LineTo(pt)
			}
		case FlattenPolyLines:
			if len(pts) > 0 {
				nf.Segments = []Segment{PolyLineTo(pts...)}
			}
		default:
			panic(fmt.Sprintf("invalid flatten mode %d", mode))
		}
		out.Figures[fi] = nf
	}
	return out, nil
}

func flattenFigure(fi int, f Figure, strict bool) ([]Point, error) {
	var pts []Point
	sample := func(length float64, end Point, eval func(t float64) Point) {
		n := SampleCount(length)
		for i := 1; i < n; i++ {
			pts = append(pts, eval(float64(i)/float64(n)))
		}
		pts = append(pts, end)
	}

	last := f.Start
	for si, seg := range f.Segments {
		switch seg.Kind {
		case LineKind:
			l := Line{last, seg.P0}
			sample(l.ControlLength(), l.P1, l.Eval)
			last = l.P1
		case QuadKind:
			q := QuadBez{last, seg.P0, seg.P1}
			sample(q.ControlLength(), q.P2, q.Eval)
			last = q.P2
		case CubicKind:
			c := CubicBez{last, seg.P0, seg.P1, seg.P2}
			sample(c.ControlLength(), c.P3, c.Eval)
			last = c.P3
		case ConicKind:
			c := Conic{last, seg.P0, seg.P1, seg.Weight}
			sample(c.ControlLength(), c.P2, c.Eval)
			last = c.P2
		case PolyLineKind:
			for _, pt := range seg.Points {
				l := Line{last, pt}
				sample(l.ControlLength(), l.P1, l.Eval)
				last = pt
			}
		default:
			if strict {
				return nil, &SegmentError{
					Figure:  fi,
					Segment: si,
					Kind:    seg.Kind,
					Err:     ErrUnsupportedSegment,
				}
			}
			slog.Debug("skipping segment while flattening",
				"figure", fi, "segment", si, "kind", seg.Kind)
		}
	}
	if f.Closed {
		l := Line{last, f.Start}
		sample(l.ControlLength(), l.P1, l.Eval)
	}
	return pts, nil
}
