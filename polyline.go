package morph

import "fmt"

// StepPolyLine is the single-figure form of [Step], used for inputs such as
// waveforms. Both geometries must consist of exactly one figure holding a
// single polyline segment. There is no figure padding or matching; point
// counts are equalized as in [MorphFigure] and source is moved towards target
// in place.
func StepPolyLine(source, target *Geometry, progress float64) error {
	if err := checkPolyLine(*source); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := checkPolyLine(*target); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	src, dst := &source.Figures[0], &target.Figures[0]
	padPoints(src, dst)
	lerpFigure(src, *dst, progress)
	return nil
}

func checkPolyLine(g Geometry) error {
	if len(g.Figures) != 1 {
		return fmt.Errorf("%d figures: %w", len(g.Figures), ErrNotPolyLine)
	}
	segs := g.Figures[0].Segments
	if len(segs) != 1 || segs[0].Kind != PolyLineKind {
		return ErrNotPolyLine
	}
	return nil
}
