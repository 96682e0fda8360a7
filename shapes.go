package morph

import "math"

// circleArm is the control arm length, relative to the radius, of a cubic
// Bézier approximating a quarter circle.
//
// Solution from http://spencermortensen.com/articles/bezier-circle/
const circleArm = 0.551915024494

type Circle struct {
	Center Point
	Radius float64
}

// Figure returns the circle's outline as a closed figure of four cubic
// Béziers, starting at the rightmost point and running in the direction of
// increasing angle.
func (c Circle) Figure() Figure {
	x, y := c.Center.Splat()
	r := c.Radius
	f := NewFigure(Pt(x+r, y))
	const n = 4
	deltaTh := 2.0 * math.Pi / n
	for ix := 1; ix <= n; ix++ {
		a := circleArm
		th1 := deltaTh * float64(ix)
		th0 := th1 - deltaTh
		s0, c0 := math.Sincos(th0)
		var s1, c1 float64
		if ix == n {
			s1 = 0.0
			c1 = 1.0
		} else {
			s1, c1 = math.Sincos(th1)
		}
		f.CubicTo(
			Pt(x+r*(c0-a*s0), y+r*(s0+a*c0)),
			Pt(x+r*(c1+a*s1), y+r*(s1-a*c1)),
			Pt(x+r*c1, y+r*s1),
		)
	}
	f.Close()
	return *f
}

// Figure returns the rectangle's outline as a closed figure of four lines.
func (r Rect) Figure() Figure {
	f := NewFigure(Pt(r.X0, r.Y0))
	f.LineTo(Pt(r.X1, r.Y0))
	f.LineTo(Pt(r.X1, r.Y1))
	f.LineTo(Pt(r.X0, r.Y1))
	f.Close()
	return *f
}

// RoundedRect is a rectangle with uniformly rounded corners.
type RoundedRect struct {
	Rect   Rect
	Radius float64
}

func NewRoundedRect(x0, y0, x1, y1, radius float64) RoundedRect {
	return RoundedRect{
		Rect:   Rect{x0, y0, x1, y1},
		Radius: radius,
	}
}

// Figure returns the outline as a closed figure of lines and cubic Béziers,
// starting at the end of the top left corner and running clockwise in a y-down
// space. The radius is clamped to half of the shorter side.
func (rr RoundedRect) Figure() Figure {
	r := rr.Rect.Abs()
	rad := min(math.Abs(rr.Radius), r.Width()/2, r.Height()/2)
	if rad == 0 {
		return r.Figure()
	}
	a := rad * circleArm
	x0, y0, x1, y1 := r.X0, r.Y0, r.X1, r.Y1

	f := NewFigure(Pt(x0+rad, y0))
	f.LineTo(Pt(x1-rad, y0))
	f.CubicTo(Pt(x1-rad+a, y0), Pt(x1, y0+rad-a), Pt(x1, y0+rad))
	f.LineTo(Pt(x1, y1-rad))
	f.CubicTo(Pt(x1, y1-rad+a), Pt(x1-rad+a, y1), Pt(x1-rad, y1))
	f.LineTo(Pt(x0+rad, y1))
	f.CubicTo(Pt(x0+rad-a, y1), Pt(x0, y1-rad+a), Pt(x0, y1-rad))
	f.LineTo(Pt(x0, y0+rad))
	f.CubicTo(Pt(x0, y0+rad-a), Pt(x0+rad-a, y0), Pt(x0+rad, y0))
	f.Close()
	return *f
}
