package morph

// CubicBez is a cubic Bézier curve.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	v := Vec2(c.P0).Mul(mt * mt * mt).
		Add(Vec2(c.P1).Mul(mt * mt * 3.0).
			Add(Vec2(c.P2).Mul(mt * 3.0).
				Add(Vec2(c.P3).Mul(t)).
				Mul(t)).
			Mul(t))
	return Point(v)
}

// ControlLength returns the length of the control polygon, P0 → P1 → P2 → P3.
func (c CubicBez) ControlLength() float64 {
	return polygonLength(c.P0, c.P1, c.P2, c.P3)
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}
