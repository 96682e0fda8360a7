package morph

import (
	"errors"
	"testing"
)

func wave(ys ...float64) Geometry {
	pts := make([]Point, len(ys))
	for i, y := range ys {
		pts[i] = Pt(float64(i+1), y)
	}
	return geometry(Figure{Start: Pt(0, 0), Segments: []Segment{PolyLineTo(pts...)}})
}

func TestStepPolyLine(t *testing.T) {
	src := wave(0, 0, 0, 0)
	dst := wave(2, 4)
	if err := StepPolyLine(&src, &dst, 0.5); err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{Pt(1, 1), Pt(2, 2), Pt(1.5, 0), Pt(2, 0)}, src.Figures[0].Points())
	// The target was padded with its start point.
	diff(t, []Point{Pt(1, 2), Pt(2, 4), Pt(0, 0), Pt(0, 0)}, dst.Figures[0].Points())
}

func TestStepPolyLineErrors(t *testing.T) {
	two := geometry(flatSquare(0, 0, 1), flatSquare(2, 0, 1))
	lines := Flatten(geometry(Rect{0, 0, 1, 1}.Figure()), FlattenLines)
	for _, g := range []Geometry{two, lines, {}} {
		src, dst := g.Clone(), wave(1)
		if err := StepPolyLine(&src, &dst, 0.5); !errors.Is(err, ErrNotPolyLine) {
			t.Errorf("got error %v, want ErrNotPolyLine", err)
		}
		src, dst = wave(1), g.Clone()
		if err := StepPolyLine(&src, &dst, 0.5); !errors.Is(err, ErrNotPolyLine) {
			t.Errorf("got error %v, want ErrNotPolyLine", err)
		}
	}
}
