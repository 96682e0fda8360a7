package morph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with a tolerance suitable for sampled coordinates.
var approx = cmpopts.EquateApprox(0, 1e-9)

// flatSquare returns the flattened outline of the axis-aligned square with
// the given origin and size.
func flatSquare(x, y, size float64) Figure {
	g := Geometry{Figures: []Figure{Rect{x, y, x + size, y + size}.Figure()}}
	return Flatten(g, FlattenPolyLines).Figures[0]
}

func geometry(figs ...Figure) Geometry {
	return Geometry{Figures: figs}
}
