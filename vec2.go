package morph

import (
	"fmt"
	"math"
)

// Vec2 is a displacement. Points convert to and from it for the weighted
// sums used by curve evaluation.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 { return math.Hypot(v.X, v.Y) }

// Lerp returns v + t·(o - v). t == 0 yields v exactly.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return v.Add(o.Sub(v).Mul(t))
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Mul scales v by f.
func (v Vec2) Mul(f float64) Vec2 { return Vec2{X: v.X * f, Y: v.Y * f} }

// Negate returns -v.
func (v Vec2) Negate() Vec2 { return Vec2{X: -v.X, Y: -v.Y} }

// Div scales v by 1/f.
func (v Vec2) Div(f float64) Vec2 { return Vec2{X: v.X / f, Y: v.Y / f} }
