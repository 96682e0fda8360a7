// Package svgpath converts between SVG path data and [morph.Geometry].
//
// Every subpath becomes a figure. Elliptical arcs are kept as arc segments,
// which [morph.Flatten] does not sample; convert them before morphing if they
// matter.
package svgpath

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"

	"honnef.co/go/morph"
)

// Parse parses SVG path data. Figures are filled and the geometry uses the
// even-odd fill rule.
func Parse(d string) (morph.Geometry, error) {
	return ParseWithRule(d, morph.EvenOdd)
}

var cmdLens = [256]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

// ParseWithRule is like [Parse] but uses the given fill rule.
func ParseWithRule(d string, rule morph.FillRule) (morph.Geometry, error) {
	g := morph.Geometry{FillRule: rule}
	path := []byte(d)
	i := skipCommaWhitespace(path)
	if i == len(path) {
		return g, nil
	}
	if c := path[i]; c != 'M' && c != 'm' {
		return morph.Geometry{}, fmt.Errorf("bad path: path should start with a move command, not '%c'", c)
	}

	var fig *morph.Figure
	var p0, p1 morph.Point       // current point before and after a command
	var ctrlC, ctrlQ morph.Point // last control points, for S and T
	var f [7]float64
	prevCmd := byte('z')
	flush := func() {
		if fig != nil {
			g.Figures = append(g.Figures, *fig)
			fig = nil
		}
	}
	// figure returns the figure drawing commands append to, starting a new one
	// at the current point after a close.
	figure := func() *morph.Figure {
		if fig == nil || fig.Closed {
			flush()
			fig = morph.NewFigure(p0)
		}
		return fig
	}

	for {
		i += skipCommaWhitespace(path[i:])
		if i >= len(path) {
			break
		}

		cmd := prevCmd
		repeat := true
		if c := path[i]; cmd == 'z' || cmd == 'Z' || !(c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+') {
			cmd = c
			repeat = false
			i++
			i += skipCommaWhitespace(path[i:])
		}

		upper := cmd
		if 'a' <= cmd && cmd <= 'z' {
			upper -= 'a' - 'A'
		}
		if upper != 'Z' && cmdLens[upper] == 0 {
			return morph.Geometry{}, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, i)
		}
		for j := range cmdLens[upper] {
			if upper == 'A' && (j == 3 || j == 4) {
				if i < len(path) && (path[i] == '0' || path[i] == '1') {
					f[j] = float64(path[i] - '0')
					i++
				} else {
					return morph.Geometry{}, fmt.Errorf("bad path: arc flags should be 0 or 1 in command '%c' at position %d", cmd, i+1)
				}
			} else {
				num, n := strconv.ParseFloat(path[i:])
				if n == 0 {
					if repeat && j == 0 {
						return morph.Geometry{}, fmt.Errorf("bad path: unknown command '%c' at position %d", path[i], i+1)
					}
					return morph.Geometry{}, fmt.Errorf("bad path: %d numbers should follow command '%c' at position %d", cmdLens[upper], cmd, i+1)
				}
				f[j] = num
				i += n
			}
			i += skipCommaWhitespace(path[i:])
		}

		rel := cmd != upper
		abs := func(x, y float64) morph.Point {
			if rel {
				return morph.Pt(p0.X+x, p0.Y+y)
			}
			return morph.Pt(x, y)
		}
		switch upper {
		case 'M':
			p1 = abs(f[0], f[1])
			flush()
			fig = morph.NewFigure(p1)
			// Further coordinate pairs are implicit line commands.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			if fig != nil {
				fig.Close()
				p1 = fig.Start
			}
		case 'L':
			p1 = abs(f[0], f[1])
			figure().LineTo(p1)
		case 'H':
			p1 = morph.Pt(f[0], p0.Y)
			if rel {
				p1.X += p0.X
			}
			figure().LineTo(p1)
		case 'V':
			p1 = morph.Pt(p0.X, f[0])
			if rel {
				p1.Y += p0.Y
			}
			figure().LineTo(p1)
		case 'C':
			c1, c2 := abs(f[0], f[1]), abs(f[2], f[3])
			p1 = abs(f[4], f[5])
			figure().CubicTo(c1, c2, p1)
			ctrlC = c2
		case 'S':
			c1 := p0
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				c1 = reflect(ctrlC, p0)
			}
			c2 := abs(f[0], f[1])
			p1 = abs(f[2], f[3])
			figure().CubicTo(c1, c2, p1)
			ctrlC = c2
		case 'Q':
			c := abs(f[0], f[1])
			p1 = abs(f[2], f[3])
			figure().QuadTo(c, p1)
			ctrlQ = c
		case 'T':
			c := p0
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				c = reflect(ctrlQ, p0)
			}
			p1 = abs(f[0], f[1])
			figure().QuadTo(c, p1)
			ctrlQ = c
		case 'A':
			p1 = abs(f[5], f[6])
			figure().ArcTo(p1, morph.ArcParams{
				Radii:    morph.Vec(math.Abs(f[0]), math.Abs(f[1])),
				Rotation: f[2] * math.Pi / 180,
				LargeArc: f[3] == 1,
				Sweep:    f[4] == 1,
			})
		}
		prevCmd = cmd
		p0 = p1
	}
	flush()
	return g, nil
}

// reflect returns the reflection of ctrl about p.
func reflect(ctrl, p morph.Point) morph.Point {
	return morph.Pt(2*p.X-ctrl.X, 2*p.Y-ctrl.Y)
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ',' || parse.IsWhitespace(path[i])) {
		i++
	}
	return i
}
