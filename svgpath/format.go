package svgpath

import (
	"errors"
	"fmt"
	"io"
	"math"
	stdstrconv "strconv"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"

	"honnef.co/go/morph"
)

// ErrNonFinite is returned when a coordinate is NaN or infinite.
var ErrNonFinite = errors.New("non-finite coordinate")

// MaxPrecision is the largest useful value of [Options.MaxPrecision].
const MaxPrecision = 17

// Beyond this magnitude, scaled coordinates no longer fit AppendDecimal's int64.
const decimalLimit = 1e18

// Options specifies optional settings for [SVG] and [WriteSVG].
type Options struct {
	// The maximum number of decimals with which to format coordinates. A
	// value of 0 chooses the highest precision necessary to unambiguously
	// represent any given coordinate.
	MaxPrecision int
}

// SVG converts a geometry to a string of SVG path commands. Coordinates that
// aren't finite are written as they are formatted by the standard library.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(g morph.Geometry, opts Options) string {
	sb := &strings.Builder{}
	w := writer{w: sb, opts: opts, lenient: true}
	w.geometry(g)
	return sb.String()
}

// WriteSVG converts a geometry to a string of SVG path commands and writes it
// to w.
//
// Polylines are written as runs of line commands. Conics have no SVG
// equivalent and are written as the points they flatten to.
func WriteSVG(w io.Writer, g morph.Geometry, opts Options) error {
	sw := writer{w: w, opts: opts}
	sw.geometry(g)
	return sw.err
}

type writer struct {
	w       io.Writer
	opts    Options
	lenient bool
	err     error
	buf     []byte
	first   bool
}

func (w *writer) write(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *writer) format(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		if !w.lenient && w.err == nil {
			w.err = fmt.Errorf("formatting %v: %w", n, ErrNonFinite)
		}
		return stdstrconv.FormatFloat(n, 'f', -1, 64)
	}
	if w.opts.MaxPrecision <= 0 {
		return stdstrconv.FormatFloat(n, 'f', -1, 64)
	}
	prec := min(w.opts.MaxPrecision, MaxPrecision)
	if math.Abs(n)*math.Pow10(prec) >= decimalLimit {
		s := stdstrconv.FormatFloat(n, 'f', prec, 64)
		return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	}
	w.buf = strconv.AppendDecimal(w.buf[:0], n, prec)
	return string(w.buf)
}

// cmd writes a command letter followed by coordinate pairs.
func (w *writer) cmd(c string, pts ...morph.Point) {
	if !w.first {
		w.write(" ")
	}
	w.first = false
	w.write(c)
	for i, pt := range pts {
		if i > 0 {
			w.write(" ")
		}
		w.write(w.format(pt.X))
		w.write(",")
		w.write(w.format(pt.Y))
	}
}

func (w *writer) geometry(g morph.Geometry) {
	w.first = true
	for _, f := range g.Figures {
		w.figure(f)
	}
}

func (w *writer) figure(f morph.Figure) {
	w.cmd("M", f.Start)
	last := f.Start
	for _, seg := range f.Segments {
		switch seg.Kind {
		case morph.LineKind:
			w.cmd("L", seg.P0)
		case morph.QuadKind:
			w.cmd("Q", seg.P0, seg.P1)
		case morph.CubicKind:
			w.cmd("C", seg.P0, seg.P1, seg.P2)
		case morph.ConicKind:
			c := morph.Conic{P0: last, P1: seg.P0, P2: seg.P1, Weight: seg.Weight}
			n := morph.SampleCount(c.ControlLength())
			pts := make([]morph.Point, 0, n)
			for i := 1; i < n; i++ {
				pts = append(pts, c.Eval(float64(i)/float64(n)))
			}
			w.cmd("L", append(pts, seg.P1)...)
		case morph.PolyLineKind:
			if len(seg.Points) > 0 {
				w.cmd("L", seg.Points...)
			}
		case morph.ArcKind:
			a := seg.Arc
			w.cmd("A")
			w.write(w.format(a.Radii.X))
			w.write(",")
			w.write(w.format(a.Radii.Y))
			w.write(" ")
			w.write(w.format(a.Rotation * 180 / math.Pi))
			w.write(" ")
			w.write(flag(a.LargeArc))
			w.write(" ")
			w.write(flag(a.Sweep))
			w.write(" ")
			w.write(w.format(seg.P0.X))
			w.write(",")
			w.write(w.format(seg.P0.Y))
		default:
			if w.err == nil {
				w.err = fmt.Errorf("writing %s segment: %w", seg.Kind, morph.ErrUnsupportedSegment)
			}
			continue
		}
		if end, ok := seg.End(); ok {
			last = end
		}
	}
	if f.Closed {
		w.cmd("Z")
	}
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
