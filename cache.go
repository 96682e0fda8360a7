package morph

import (
	"context"
	"math"
)

// A frame cache is the sequence of geometries an animation plays back.
//
// All cache builders in this package use the same bracketing convention: the
// first frame is an exact copy of the input the animation starts from, and the
// last frame is an exact copy of the geometry it ends at. In between are the
// interior frames, one for each progress value p = i·step, i = 1…⌊1/step⌋,
// passed through the easing function. For step 0.01 that makes 102 frames.
// When step divides 1, the last interior frame is computed at progress 1
// and repeats the final geometry in reconciled form.
//
// Each frame is computed on a fresh copy of the start geometry. The context
// is checked once per interior frame; on cancellation the builder returns
// the context's error and no frames.

// BuildCache returns the frames of a morph from source to target. Both
// geometries must be flat. A nil easing function is the identity.
func BuildCache(ctx context.Context, source, target Geometry, step float64, easing func(float64) float64) ([]Geometry, error) {
	if err := checkStep(step); err != nil {
		return nil, err
	}
	mo, err := NewMorpher(source, target)
	if err != nil {
		return nil, err
	}
	return buildFrames(ctx, source, target, step, easing, func(p float64) (Geometry, error) {
		return mo.At(p), nil
	})
}

// BuildPolyLineCache is the single-figure form of [BuildCache]; see
// [StepPolyLine].
func BuildPolyLineCache(ctx context.Context, source, target Geometry, step float64, easing func(float64) float64) ([]Geometry, error) {
	if err := checkStep(step); err != nil {
		return nil, err
	}
	return buildFrames(ctx, source, target, step, easing, func(p float64) (Geometry, error) {
		src, dst := source.Clone(), target.Clone()
		err := StepPolyLine(&src, &dst, p)
		return src, err
	})
}

// BuildCollapseCache returns the frames of g collapsing onto the centroids of
// its figures. Unlike the morph caches, it stops early at the first frame in
// which [Collapse] reports that all figures have arrived, and its last frame
// is that collapsed geometry rather than a copy of a target.
func BuildCollapseCache(ctx context.Context, g Geometry, step float64, easing func(float64) float64) ([]Geometry, error) {
	if err := checkStep(step); err != nil {
		return nil, err
	}
	if easing == nil {
		easing = linear
	}
	n := int(math.Floor(1 / step))
	cache := make([]Geometry, 0, n+1)
	cache = append(cache, g.Clone())
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		frame := g.Clone()
		done, err := Collapse(&frame, easing(float64(i)*step))
		if err != nil {
			return nil, err
		}
		cache = append(cache, frame)
		if done {
			break
		}
	}
	return cache, nil
}

func linear(p float64) float64 { return p }

func checkStep(step float64) error {
	if !(step > 0 && step <= 1) {
		return ErrInvalidStep
	}
	return nil
}

func buildFrames(
	ctx context.Context,
	first, last Geometry,
	step float64,
	easing func(float64) float64,
	at func(p float64) (Geometry, error),
) ([]Geometry, error) {
	if easing == nil {
		easing = linear
	}
	n := int(math.Floor(1 / step))
	cache := make([]Geometry, 0, n+2)
	cache = append(cache, first.Clone())
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g, err := at(easing(float64(i) * step))
		if err != nil {
			return nil, err
		}
		cache = append(cache, g)
	}
	return append(cache, last.Clone()), nil
}
