package morph

// Conic is a rational quadratic Bézier curve. The weight of the control point
// P1 determines the kind of conic section: a weight below 1 yields an ellipse
// segment, exactly 1 a parabola (identical to a [QuadBez]), and above 1 a
// hyperbola.
type Conic struct {
	P0     Point
	P1     Point
	P2     Point
	Weight float64
}

// Eval evaluates the conic at t using its rational form
//
//	((1-t)²·P0 + 2t(1-t)·w·P1 + t²·P2) / ((1-t)² + 2t(1-t)·w + t²)
func (c Conic) Eval(t float64) Point {
	mt := 1.0 - t
	b0 := mt * mt
	b1 := 2 * t * mt * c.Weight
	b2 := t * t
	den := b0 + b1 + b2
	v := Vec2(c.P0).Mul(b0).
		Add(Vec2(c.P1).Mul(b1)).
		Add(Vec2(c.P2).Mul(b2)).
		Div(den)
	return Point(v)
}

// ControlLength returns the length of the control polygon, P0 → P1 → P2.
func (c Conic) ControlLength() float64 {
	return polygonLength(c.P0, c.P1, c.P2)
}

func (c Conic) Transform(aff Affine) Conic {
	return Conic{
		P0:     c.P0.Transform(aff),
		P1:     c.P1.Transform(aff),
		P2:     c.P2.Transform(aff),
		Weight: c.Weight,
	}
}
