package morph

import (
	"errors"
	"testing"
)

func TestReconcileEqualizesFigures(t *testing.T) {
	src := geometry(flatSquare(0, 0, 10), flatSquare(20, 0, 5), flatSquare(40, 0, 3))
	dst := geometry(flatSquare(0, 30, 8))

	rs, rd, m, err := Reconcile(src, dst)
	if err != nil {
		t.Fatal(err)
	}
	if len(rs.Figures) != 3 || len(rd.Figures) != 3 {
		t.Fatalf("got %d and %d figures, want 3 and 3", len(rs.Figures), len(rd.Figures))
	}
	seen := map[int]bool{}
	for i, j := range m {
		if seen[j] {
			t.Errorf("target figure %d is matched twice", j)
		}
		seen[j] = true
		if a, b := len(rs.Figures[i].Points()), len(rd.Figures[j].Points()); a != b {
			t.Errorf("pair (%d, %d) has %d and %d points", i, j, a, b)
		}
	}

	// The inputs are untouched.
	if len(src.Figures) != 3 || len(dst.Figures) != 1 {
		t.Error("Reconcile modified its inputs")
	}
	diff(t, flatSquare(0, 30, 8), dst.Figures[0])
}

func TestReconcilePadsSourceWithLastFigure(t *testing.T) {
	src := geometry(flatSquare(0, 0, 10))
	dst := geometry(flatSquare(0, 0, 10), flatSquare(30, 0, 10))
	rs, _, _, err := Reconcile(src, dst)
	if err != nil {
		t.Fatal(err)
	}
	if len(rs.Figures) != 2 {
		t.Fatalf("got %d source figures, want 2", len(rs.Figures))
	}
	diff(t, rs.Figures[0], rs.Figures[1])
}

func TestMatchFigures(t *testing.T) {
	src := []Figure{{Start: Pt(0, 0)}, {Start: Pt(10, 0)}, {Start: Pt(10, 0)}}
	dst := []Figure{{Start: Pt(11, 0)}, {Start: Pt(1, 0)}, {Start: Pt(100, 0)}}
	m, err := matchFigures(src, dst)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Correspondence{1, 0, 2}, m)

	// Ties go to the lower index.
	m, err = matchFigures([]Figure{{Start: Pt(0, 0)}}, []Figure{{Start: Pt(1, 0)}, {Start: Pt(-1, 0)}})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Correspondence{0}, m)

	_, err = matchFigures(src, dst[:2])
	if !errors.Is(err, ErrCorrespondenceExhausted) {
		t.Errorf("got error %v, want ErrCorrespondenceExhausted", err)
	}
}

func TestPaddingFigure(t *testing.T) {
	centroidOf := func(f Figure) Point { return Centroid(f.Points()) }

	t.Run("single figure collapses", func(t *testing.T) {
		g := geometry(flatSquare(0, 0, 10))
		pad := paddingFigure(g)
		diff(t, Pt(5, 5), pad.Start, approx)
		for _, pt := range pad.Points() {
			diff(t, Pt(5, 5), pt, approx)
		}
	})

	t.Run("disjoint figures copy the last", func(t *testing.T) {
		g := geometry(flatSquare(0, 0, 10), flatSquare(20, 0, 10))
		diff(t, g.Figures[1], paddingFigure(g))
	})

	t.Run("hole collapses", func(t *testing.T) {
		g := geometry(flatSquare(0, 0, 10), flatSquare(3, 3, 4))
		pad := paddingFigure(g)
		c := centroidOf(g.Figures[1])
		diff(t, c, pad.Start, approx)
		diff(t, Pt(5, 5), c, approx)
	})

	t.Run("hole after other figures", func(t *testing.T) {
		g := geometry(flatSquare(50, 50, 10), flatSquare(0, 0, 10), flatSquare(20, 0, 10), flatSquare(23, 3, 4))
		// The last figure is nested in the one before it, the figure before
		// that is unrelated: copy it.
		diff(t, g.Figures[1], paddingFigure(g))
	})

	t.Run("three nested figures", func(t *testing.T) {
		g := geometry(flatSquare(100, 100, 10), flatSquare(0, 0, 30), flatSquare(5, 5, 20), flatSquare(10, 10, 10))
		diff(t, g.Figures[0], paddingFigure(g))
	})

	t.Run("three nested figures without a fourth", func(t *testing.T) {
		g := geometry(flatSquare(0, 0, 30), flatSquare(5, 5, 20), flatSquare(10, 10, 10))
		pad := paddingFigure(g)
		diff(t, Pt(15, 15), pad.Start, approx)
	})
}

func TestStepEndpoints(t *testing.T) {
	src := geometry(flatSquare(0, 0, 10), flatSquare(20, 20, 4))
	dst := geometry(flatSquare(5, 5, 20))

	at0 := src.Clone()
	target := dst.Clone()
	if err := Step(&at0, &target, 0); err != nil {
		t.Fatal(err)
	}
	for i, f := range src.Figures {
		got := at0.Figures[i]
		diff(t, f.Start, got.Start)
		diff(t, f.Points(), got.Points()[:len(f.Points())])
	}
	if len(target.Figures) != 2 {
		t.Errorf("Step didn't pad the target: got %d figures", len(target.Figures))
	}

	at1 := src.Clone()
	target = dst.Clone()
	if err := Step(&at1, &target, 1); err != nil {
		t.Fatal(err)
	}
	m, err := matchFigures(src.Figures, target.Figures)
	if err != nil {
		t.Fatal(err)
	}
	for i, j := range m {
		diff(t, target.Figures[j], at1.Figures[i])
	}
}

func TestStepInterpolates(t *testing.T) {
	src := geometry(Figure{Start: Pt(0, 0), Segments: []Segment{PolyLineTo(Pt(1, 0), Pt(2, 0))}})
	dst := geometry(Figure{Start: Pt(0, 10), Segments: []Segment{PolyLineTo(Pt(1, 10), Pt(2, 20), Pt(4, 10))}})
	if err := Step(&src, &dst, 0.5); err != nil {
		t.Fatal(err)
	}
	want := Figure{
		Start: Pt(0, 5),
		// The third source point is a copy of the start point.
		Segments: []Segment{PolyLineTo(Pt(1, 5), Pt(2, 10), Pt(2, 5))},
	}
	diff(t, want, src.Figures[0])
}

func TestStepErrors(t *testing.T) {
	sq := geometry(flatSquare(0, 0, 1))
	empty := Geometry{}
	curved := geometry(Circle{Pt(0, 0), 1}.Figure())

	for _, tt := range []struct {
		name     string
		src, dst Geometry
		want     error
	}{
		{"empty source", empty, sq, ErrEmptyGeometry},
		{"empty target", sq, empty, ErrEmptyGeometry},
		{"curved source", curved, sq, ErrNotFlat},
		{"curved target", sq, curved, ErrNotFlat},
	} {
		src, dst := tt.src.Clone(), tt.dst.Clone()
		if err := Step(&src, &dst, 0.5); !errors.Is(err, tt.want) {
			t.Errorf("%s: got error %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestStepAcceptsLines(t *testing.T) {
	lines := Flatten(geometry(Rect{0, 0, 4, 4}.Figure()), FlattenLines)
	polys := Flatten(geometry(Rect{0, 0, 4, 4}.Figure()), FlattenPolyLines)
	dst := geometry(flatSquare(10, 10, 4))

	a, b := lines.Clone(), dst.Clone()
	if err := Step(&a, &b, 0.25); err != nil {
		t.Fatal(err)
	}
	c, d := polys.Clone(), dst.Clone()
	if err := Step(&c, &d, 0.25); err != nil {
		t.Fatal(err)
	}
	diff(t, c, a)
}

func TestMorphFigure(t *testing.T) {
	src := Figure{Start: Pt(0, 0), Segments: []Segment{PolyLineTo(Pt(1, 0), Pt(2, 0), Pt(3, 0))}}
	dst := Figure{Start: Pt(0, 10), Segments: []Segment{PolyLineTo(Pt(1, 10))}}
	if err := MorphFigure(&src, &dst, 1); err != nil {
		t.Fatal(err)
	}
	// The target is padded with its start point.
	diff(t, []Point{Pt(1, 10), Pt(0, 10), Pt(0, 10)}, dst.Points())
	diff(t, dst, src)
}

func TestStepRange(t *testing.T) {
	src := geometry(flatSquare(0, 0, 2), flatSquare(10, 0, 2), flatSquare(20, 0, 2))
	dst := geometry(flatSquare(10, 10, 2), flatSquare(20, 10, 2))
	if err := StepRange(&src, &dst, 1, 3, 1); err != nil {
		t.Fatal(err)
	}
	diff(t, flatSquare(0, 0, 2), src.Figures[0])
	diff(t, dst.Figures[0], src.Figures[1])
	diff(t, dst.Figures[1], src.Figures[2])

	for _, r := range [][2]int{{-1, 1}, {2, 1}, {0, 4}, {0, 3}} {
		if err := StepRange(&src, &dst, r[0], r[1], 0.5); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("range %v: got error %v, want ErrInvalidRange", r, err)
		}
	}
}

func TestMorpherMatchesStep(t *testing.T) {
	src := geometry(flatSquare(0, 0, 10), flatSquare(3, 3, 4))
	dst := geometry(Flatten(geometry(Circle{Pt(30, 30), 6}.Figure()), FlattenPolyLines).Figures[0])

	mo, err := NewMorpher(src, dst)
	if err != nil {
		t.Fatal(err)
	}
	target := dst.Clone()
	for _, p := range []float64{0, 0.3, 0.75, 1} {
		want := src.Clone()
		if err := Step(&want, &target, p); err != nil {
			t.Fatal(err)
		}
		diff(t, want, mo.At(p))
	}
	diff(t, target, mo.Target())
	if len(mo.Correspondence()) != len(mo.Source().Figures) {
		t.Errorf("correspondence has %d entries for %d figures", len(mo.Correspondence()), len(mo.Source().Figures))
	}
}
