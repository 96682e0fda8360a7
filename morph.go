package morph

import (
	"fmt"
	"math"
)

// Correspondence maps every source figure, by index, to the index of the
// target figure it morphs into. It is injective.
type Correspondence []int

// Reconcile prepares two flat geometries for morphing. It returns deep copies
// of source and target that have the same number of figures, together with
// the correspondence between them; every figure pair in the correspondence
// holds the same number of points. source and target are not modified.
//
// Reconciliation happens in three steps.
//
// If the target has fewer figures, it is padded with copies of its last
// figure. When that figure is nested in the one before it, like the counter of
// an "O", an earlier figure is copied instead so that the hole doesn't grow a
// duplicate; if no suitable earlier figure exists, the copies are collapsed to
// the last figure's centroid. If the source has fewer figures, it is padded
// with copies of its last figure.
//
// Each source figure is then greedily matched, in order, to the unmatched
// target figure whose start point is closest.
//
// Finally, the point lists of each matched pair are equalized by appending
// copies of the shorter figure's own start point.
func Reconcile(source, target Geometry) (src, dst Geometry, m Correspondence, err error) {
	src, dst = source.Clone(), target.Clone()
	m, err = reconcile(&src, &dst)
	if err != nil {
		return Geometry{}, Geometry{}, nil, err
	}
	return src, dst, m, nil
}

func reconcile(src, dst *Geometry) (Correspondence, error) {
	if len(src.Figures) == 0 {
		return nil, fmt.Errorf("source: %w", ErrEmptyGeometry)
	}
	if len(dst.Figures) == 0 {
		return nil, fmt.Errorf("target: %w", ErrEmptyGeometry)
	}
	for i := range src.Figures {
		if _, err := src.Figures[i].polyline(); err != nil {
			return nil, fmt.Errorf("source figure %d: %w", i, err)
		}
	}
	for i := range dst.Figures {
		if _, err := dst.Figures[i].polyline(); err != nil {
			return nil, fmt.Errorf("target figure %d: %w", i, err)
		}
	}

	padFigures(src, dst)
	m, err := matchFigures(src.Figures, dst.Figures)
	if err != nil {
		return nil, err
	}
	for i, j := range m {
		padPoints(&src.Figures[i], &dst.Figures[j])
	}
	return m, nil
}

func padFigures(src, dst *Geometry) {
	ns, nd := len(src.Figures), len(dst.Figures)
	switch {
	case ns < nd:
		last := src.Figures[ns-1]
		for range nd - ns {
			src.Figures = append(src.Figures, last.Clone())
		}
	case ns > nd:
		pad := paddingFigure(*dst)
		for range ns - nd {
			dst.Figures = append(dst.Figures, pad.Clone())
		}
	}
}

// paddingFigure picks the figure that a target with too few figures is padded
// with. All figures of g must be flat.
func paddingFigure(g Geometry) Figure {
	last := len(g.Figures) - 1
	nested := func(i, j int) bool {
		return FillContains(g.Figures[i], g.Figures[j], g.FillRule).Nested()
	}

	pad := g.Figures[last].Clone()
	if last == 0 {
		collapseFigure(&pad)
		return pad
	}
	if !nested(last, last-1) {
		return pad
	}
	switch {
	case last >= 2 && nested(last, last-2):
		// The last three figures nest; go back one more.
		if last >= 3 {
			return g.Figures[last-3].Clone()
		}
		collapseFigure(&pad)
	case last-2 > 0:
		return g.Figures[last-2].Clone()
	default:
		collapseFigure(&pad)
	}
	return pad
}

// matchFigures greedily assigns every source figure, in order, the unused
// target figure with the nearest start point. Ties go to the lower target
// index.
func matchFigures(src, dst []Figure) (Correspondence, error) {
	used := make([]bool, len(dst))
	m := make(Correspondence, len(src))
	for i, sf := range src {
		best := -1
		bestDist := math.Inf(1)
		for j, df := range dst {
			if used[j] {
				continue
			}
			if d := sf.Start.DistanceSquared(df.Start); best == -1 || d < bestDist {
				best = j
				bestDist = d
			}
		}
		if best == -1 {
			return nil, fmt.Errorf("source figure %d: %w", i, ErrCorrespondenceExhausted)
		}
		used[best] = true
		m[i] = best
	}
	return m, nil
}

// padPoints equalizes the point counts of two flat figures holding a single
// polyline each, appending copies of the shorter figure's start point.
func padPoints(src, dst *Figure) {
	sp, dp := &src.Segments[0].Points, &dst.Segments[0].Points
	for len(*sp) < len(*dp) {
		*sp = append(*sp, src.Start)
	}
	for len(*dp) < len(*sp) {
		*dp = append(*dp, dst.Start)
	}
}

// lerpFigure moves src towards dst. Both must hold a single polyline of equal
// length. At progress >= 1, src becomes an exact copy of dst's points.
func lerpFigure(src *Figure, dst Figure, progress float64) {
	sp, dp := src.Segments[0].Points, dst.Segments[0].Points
	if progress >= 1 {
		copy(sp, dp)
		src.Start = dst.Start
		return
	}
	for i := range sp {
		if sp[i] != dp[i] {
			sp[i] = sp[i].Lerp(dp[i], progress)
		}
	}
	if src.Start != dst.Start {
		src.Start = src.Start.Lerp(dst.Start, progress)
	}
}

// Step morphs source towards target in place, by progress in [0, 1].
//
// Both geometries are reconciled as described in [Reconcile], but in place:
// figures and points are appended to source and to target, and their figures
// are rewritten to hold a single polyline each. Passing the same target to
// repeated calls, each with a fresh copy of the original source, therefore
// yields consistent frames. At progress 0, source keeps its points; at
// progress >= 1, every source figure is an exact copy of its target figure.
func Step(source, target *Geometry, progress float64) error {
	m, err := reconcile(source, target)
	if err != nil {
		return err
	}
	for i, j := range m {
		lerpFigure(&source.Figures[i], target.Figures[j], progress)
	}
	return nil
}

// MorphFigure morphs a single flat figure towards another, in place. Point
// counts are equalized first by padding the shorter figure with its own start
// point, which may modify target.
func MorphFigure(source, target *Figure, progress float64) error {
	if _, err := source.polyline(); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if _, err := target.polyline(); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	padPoints(source, target)
	lerpFigure(source, *target, progress)
	return nil
}

// StepRange morphs the source figures with indices in [start, end) onto the
// target figures 0, 1, … in order, without any figure padding or matching.
// This serves staged animations where parts of one geometry morph into
// successive targets.
func StepRange(source, target *Geometry, start, end int, progress float64) error {
	if start < 0 || end < start || end > len(source.Figures) || end-start > len(target.Figures) {
		return fmt.Errorf("figures [%d, %d) of %d onto %d: %w",
			start, end, len(source.Figures), len(target.Figures), ErrInvalidRange)
	}
	for i := start; i < end; i++ {
		if err := MorphFigure(&source.Figures[i], &target.Figures[i-start], progress); err != nil {
			return fmt.Errorf("figure %d: %w", i, err)
		}
	}
	return nil
}

// Morpher produces frames of a morph between two geometries. It reconciles
// the geometries once; each frame is computed on a fresh copy.
type Morpher struct {
	src, dst Geometry
	m        Correspondence
}

// NewMorpher reconciles source and target, which must be flat.
func NewMorpher(source, target Geometry) (*Morpher, error) {
	src, dst, m, err := Reconcile(source, target)
	if err != nil {
		return nil, err
	}
	return &Morpher{src: src, dst: dst, m: m}, nil
}

// At returns the frame at the given progress. The returned geometry is owned by
// the caller.
func (mo *Morpher) At(progress float64) Geometry {
	g := mo.src.Clone()
	for i, j := range mo.m {
		lerpFigure(&g.Figures[i], mo.dst.Figures[j], progress)
	}
	return g
}

// Source returns the reconciled source geometry. It must not be modified.
func (mo *Morpher) Source() Geometry { return mo.src }

// Target returns the reconciled target geometry. It must not be modified.
func (mo *Morpher) Target() Geometry { return mo.dst }

func (mo *Morpher) Correspondence() Correspondence { return mo.m }
