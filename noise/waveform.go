package noise

import (
	"math"

	"honnef.co/go/morph"
)

// Waveform returns a geometry with a single open, unfilled figure through the
// points (i*dx, values[i]). The figure starts at the first value and holds
// the remaining ones in one polyline, which is the shape [morph.StepPolyLine]
// expects. An empty slice yields an empty geometry.
func Waveform(values []float64, dx float64) morph.Geometry {
	if len(values) == 0 {
		return morph.Geometry{}
	}
	pts := make([]morph.Point, len(values)-1)
	for i := range pts {
		pts[i] = morph.Pt(float64(i+1)*dx, values[i+1])
	}
	f := morph.NewFigure(morph.Pt(0, values[0]))
	f.Filled = false
	f.PolyLineTo(pts...)
	return morph.Geometry{Figures: []morph.Figure{*f}}
}

// SampleFunc evaluates fn at x = 0, dx, 2*dx and so on up to and including
// x1.
func SampleFunc(fn func(x float64) float64, x1, dx float64) []float64 {
	if !(dx > 0) || x1 < 0 {
		return nil
	}
	n := int(math.Floor(x1/dx+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = fn(float64(i) * dx)
	}
	return out
}

// Sine is sin(x)+1, a sine wave shifted into [0, 2].
func Sine(x float64) float64 { return math.Sin(x) + 1 }

// Cosine is cos(x)+1.
func Cosine(x float64) float64 { return math.Cos(x) + 1 }
