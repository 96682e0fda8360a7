package morph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGeometry is returned when a morph operand has no figures.
	ErrEmptyGeometry = errors.New("geometry has no figures")
	// ErrNotFlat is returned when an operation that needs polylines
	// encounters a curve segment. Use [Flatten] first.
	ErrNotFlat = errors.New("figure is not flat")
	// ErrNotPolyLine is returned by the single-figure operations when their
	// input isn't exactly one figure holding one polyline.
	ErrNotPolyLine = errors.New("geometry is not a single polyline figure")
	// ErrUnsupportedSegment is returned by [FlattenStrict] for segments it
	// cannot sample, such as arcs.
	ErrUnsupportedSegment = errors.New("unsupported segment")
	// ErrCorrespondenceExhausted indicates that figure matching ran out of
	// target figures. This cannot happen when figure counts were equalized
	// and signals a bug.
	ErrCorrespondenceExhausted = errors.New("no unmatched target figure left")
	// ErrInvalidStep is returned by the cache builders for steps outside (0, 1].
	ErrInvalidStep = errors.New("step must be in (0, 1]")
	// ErrInvalidRange is returned by [StepRange] for figure ranges that don't
	// fit the source or the target.
	ErrInvalidRange = errors.New("invalid figure range")
)

// SegmentError describes a segment that could not be processed.
type SegmentError struct {
	Figure  int
	Segment int
	Kind    SegmentKind
	Err     error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("figure %d, segment %d (%s): %s", e.Figure, e.Segment, e.Kind, e.Err)
}

func (e *SegmentError) Unwrap() error { return e.Err }
