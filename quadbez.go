package morph

// QuadBez is a quadratic Bézier curve.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	v := Vec2(q.P0).Mul(mt * mt).
		Add(Vec2(q.P1).Mul(mt * 2.0).
			Add(Vec2(q.P2).Mul(t)).
			Mul(t))
	return Point(v)
}

// ControlLength returns the length of the control polygon, P0 → P1 → P2.
func (q QuadBez) ControlLength() float64 {
	return polygonLength(q.P0, q.P1, q.P2)
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}
