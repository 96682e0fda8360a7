// Package morph animates one 2D path geometry into another.
//
// A [Geometry] is an ordered list of [Figure]s sharing a [FillRule]. A figure is
// a start point followed by [Segment]s: lines, quadratic, cubic and conic
// Béziers, polylines and elliptical arcs. Shapes such as [Circle] and
// [RoundedRect] produce figures, and [Affine] transforms them.
//
// # Flattening
//
// Morphing works on point lists, not curves. [Flatten] samples every curve at
// uniform parameter steps, using about one point per unit of control polygon
// length (see [SampleCount]), and produces flat figures made of lines or of a
// single polyline each. Arcs are not flattened.
//
// # Morphing
//
// Two flat geometries rarely have the same structure. [Reconcile] pads the
// geometry with fewer figures, matches source figures to target figures by
// the distance of their start points, and pads point lists so that matched
// figures have equal lengths. After that, every frame is a simple linear
// interpolation of corresponding points, see [Morpher] and [Step]. Figures
// the target cannot supply are typically collapsed to their centroid, see
// [Centroid] and [Collapse].
//
// Single-figure inputs, such as waveforms, can skip reconciliation with
// [StepPolyLine].
//
// # Frame caches
//
// Animations usually precompute all frames: [BuildCache],
// [BuildPolyLineCache] and [BuildCollapseCache] return slices of geometries,
// bracketed by exact copies of the start and end geometries. Building a cache
// can be cancelled through its context.
//
// # Concurrency
//
// Geometries are plain values with slices inside. Operations that take
// pointers modify their arguments; everything else returns new values. None of
// the types are safe for concurrent mutation, but distinct geometries can be
// processed concurrently, and a [Morpher] may be used by multiple goroutines
// at once.
package morph
