package morph

import "math"

// Ellipse is an ellipse, stored as the affine map of the unit circle onto it.
type Ellipse struct {
	inner Affine
}

// NewEllipse returns the ellipse that results from stretching a circle by
// radii along the x and y axes, rotating it from the x axis by xRotation
// radians and moving its center to center.
func NewEllipse(center Point, radii Vec2, xRotation float64) Ellipse {
	return Ellipse{
		inner: Scale(radii.X, radii.Y).
			ThenRotate(xRotation).
			ThenTranslate(Vec2(center)),
	}
}

// NewEllipseFromRect returns the largest axis-aligned ellipse that fits
// inside rect.
func NewEllipseFromRect(rect Rect) Ellipse {
	r := rect.Abs()
	return NewEllipse(r.Center(), Vec(r.Width()/2, r.Height()/2), 0)
}

func (e Ellipse) Center() Point {
	return Point(e.inner.Translation())
}

// BoundingBox returns the ellipse's tight bounding box.
func (e Ellipse) BoundingBox() Rect {
	// The images of (1, 0) and (0, 1) are the ellipse's radius vectors.
	// See https://www.iquilezles.org/www/articles/ellipses/ellipses.htm.
	a := e.inner
	rangeX := math.Hypot(a.N0, a.N2)
	rangeY := math.Hypot(a.N1, a.N3)
	return Rect{
		X0: a.N4 - rangeX,
		Y0: a.N5 - rangeY,
		X1: a.N4 + rangeX,
		Y1: a.N5 + rangeY,
	}
}

// Figure returns the ellipse's outline: the four cubic Béziers of the unit
// circle's [Circle.Figure], mapped onto the ellipse.
func (e Ellipse) Figure() Figure {
	return Circle{Radius: 1}.Figure().Transform(e.inner)
}

func (e Ellipse) Transform(aff Affine) Ellipse {
	return Ellipse{inner: aff.Mul(e.inner)}
}
