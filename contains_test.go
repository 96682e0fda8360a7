package morph

import (
	"testing"
)

func TestFigureWinding(t *testing.T) {
	sq := Rect{0, 0, 10, 10}.Figure()
	if w := sq.Winding(Pt(5, 5)); w != 1 && w != -1 {
		t.Errorf("got winding %d inside square, want ±1", w)
	}
	if w := sq.Winding(Pt(15, 5)); w != 0 {
		t.Errorf("got winding %d outside square, want 0", w)
	}
	// Flattening adds collinear points but doesn't change the outline.
	flat := flatSquare(0, 0, 10)
	if got, want := flat.Winding(Pt(5, 5)), sq.Winding(Pt(5, 5)); got != want {
		t.Errorf("got winding %d for flattened square, want %d", got, want)
	}
}

func TestFigureContainsFillRule(t *testing.T) {
	// A figure that runs around the same square twice has winding number 2
	// at its center.
	f := NewFigure(Pt(0, 0))
	f.PolyLineTo(Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	f.Close()
	if !f.Contains(Pt(5, 5), NonZero) {
		t.Error("center not inside with nonzero rule")
	}
	if f.Contains(Pt(5, 5), EvenOdd) {
		t.Error("center inside with even-odd rule")
	}
}

func TestFillContains(t *testing.T) {
	outer := flatSquare(0, 0, 10)
	inner := flatSquare(3, 3, 4)
	overlapping := flatSquare(5, 5, 10)
	far := flatSquare(50, 50, 10)

	tests := []struct {
		a, b Figure
		want Containment
	}{
		{outer, inner, FullyContains},
		{inner, outer, FullyInside},
		{outer, overlapping, Intersects},
		{outer, far, Disjoint},
	}
	for i, tt := range tests {
		if got := FillContains(tt.a, tt.b, EvenOdd); got != tt.want {
			t.Errorf("%d: got %s, want %s", i, got, tt.want)
		}
	}
	if !FullyInside.Nested() || !FullyContains.Nested() || Intersects.Nested() {
		t.Error("Nested reports wrong values")
	}
}
