package morph

import (
	"fmt"
	"math"
)

// collapseEpsilon is the distance below which a collapsing figure's start
// point counts as having reached the centroid.
const collapseEpsilon = 0.005

// Centroid returns the area centroid of the closed polygon through pts,
// computed with the shoelace formula. The polygon is closed implicitly from
// the last point back to the first.
//
// Polygons with zero signed area, including empty and single-point ones, have
// no centroid; for them Centroid returns the origin, not the vertex average.
// Collapsing such a figure therefore moves it towards (0, 0).
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var x, y, area float64
	b := pts[len(pts)-1]
	for _, a := range pts {
		k := a.Y*b.X - a.X*b.Y
		area += k
		x += (a.X + b.X) * k
		y += (a.Y + b.Y) * k
		b = a
	}
	area *= 3
	if area == 0 {
		return Point{}
	}
	return Point{X: x / area, Y: y / area}
}

// CollapseFigure replaces every point of a flat figure, and its start point,
// with the centroid of its points.
func CollapseFigure(f *Figure) error {
	if _, err := f.polyline(); err != nil {
		return err
	}
	collapseFigure(f)
	return nil
}

// collapseFigure is CollapseFigure for figures already holding a single
// polyline.
func collapseFigure(f *Figure) {
	pts := f.Segments[0].Points
	c := Centroid(pts)
	for i := range pts {
		pts[i] = c
	}
	f.Start = c
}

// MorphCollapse moves every point of a flat figure, and its start point,
// towards the centroid of its points by progress. It reports whether the
// figure has arrived, that is whether its start point is within 0.005 of the
// centroid on both axes.
//
// The centroid is recomputed from the current points on every call, so
// repeated calls with the same progress converge geometrically.
func MorphCollapse(f *Figure, progress float64) (bool, error) {
	seg, err := f.polyline()
	if err != nil {
		return false, err
	}
	pts := seg.Points
	c := Centroid(pts)
	for i := range pts {
		pts[i] = pts[i].Lerp(c, progress)
	}
	f.Start = f.Start.Lerp(c, progress)
	return math.Abs(c.X-f.Start.X) < collapseEpsilon && math.Abs(c.Y-f.Start.Y) < collapseEpsilon, nil
}

// Collapse applies [MorphCollapse] to every figure of g and reports whether
// all of them have arrived at their centroids.
func Collapse(g *Geometry, progress float64) (bool, error) {
	done := true
	for i := range g.Figures {
		ok, err := MorphCollapse(&g.Figures[i], progress)
		if err != nil {
			return false, fmt.Errorf("figure %d: %w", i, err)
		}
		done = done && ok
	}
	return done, nil
}
