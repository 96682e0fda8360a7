// Package easing provides easing functions for morph progress values.
//
// An easing function maps linear progress in [0, 1] to eased progress. All
// functions in this package return exactly 0 for inputs at or below 0 and
// exactly 1 for inputs at or above 1, so that eased animations start and end
// on their key frames. In between, some functions overshoot: elastic and back
// easings leave [0, 1] on purpose.
//
// Most functions wrap the easing equations of [github.com/tanema/gween/ease].
package easing

import (
	"maps"
	"math"
	"slices"

	"github.com/tanema/gween/ease"
)

// Func is an easing function.
type Func func(p float64) float64

// Linear is the identity.
func Linear(p float64) float64 {
	return clampUnit(p)
}

// FromTween adapts a gween easing equation, evaluating it over a unit
// duration and change.
func FromTween(f ease.TweenFunc) Func {
	return func(p float64) float64 {
		switch {
		case p <= 0:
			return 0
		case p >= 1:
			return 1
		default:
			return float64(f(float32(p), 0, 1, 1))
		}
	}
}

// Mode selects which end of the animation an easing function affects.
type Mode uint8

const (
	In Mode = iota
	Out
	InOut
)

// Power returns an easing function that follows p raised to the given power.
// With mode Out, the animation starts fast and slows down; that is the default
// behavior of morph animations, using a power of 2.
func Power(power float64, mode Mode) Func {
	in := func(p float64) float64 { return math.Pow(p, power) }
	var f Func
	switch mode {
	case In:
		f = in
	case Out:
		f = func(p float64) float64 { return 1 - in(1-p) }
	case InOut:
		f = func(p float64) float64 {
			if p < 0.5 {
				return in(2*p) / 2
			}
			return 1 - in(2*(1-p))/2
		}
	default:
		panic("invalid easing mode")
	}
	return func(p float64) float64 {
		switch {
		case p <= 0:
			return 0
		case p >= 1:
			return 1
		default:
			return f(p)
		}
	}
}

// Default is the easing used when none is configured.
var Default = Power(2, Out)

// Clamp limits the output of f to [0, 1].
func Clamp(f Func) Func {
	return func(p float64) float64 {
		return clampUnit(f(p))
	}
}

func clampUnit(p float64) float64 {
	return min(max(p, 0), 1)
}

var tweens = map[string]ease.TweenFunc{
	"in-quad":        ease.InQuad,
	"out-quad":       ease.OutQuad,
	"in-out-quad":    ease.InOutQuad,
	"in-cubic":       ease.InCubic,
	"out-cubic":      ease.OutCubic,
	"in-out-cubic":   ease.InOutCubic,
	"in-quart":       ease.InQuart,
	"out-quart":      ease.OutQuart,
	"in-out-quart":   ease.InOutQuart,
	"in-quint":       ease.InQuint,
	"out-quint":      ease.OutQuint,
	"in-out-quint":   ease.InOutQuint,
	"in-sine":        ease.InSine,
	"out-sine":       ease.OutSine,
	"in-out-sine":    ease.InOutSine,
	"in-expo":        ease.InExpo,
	"out-expo":       ease.OutExpo,
	"in-out-expo":    ease.InOutExpo,
	"in-circ":        ease.InCirc,
	"out-circ":       ease.OutCirc,
	"in-out-circ":    ease.InOutCirc,
	"in-elastic":     ease.InElastic,
	"out-elastic":    ease.OutElastic,
	"in-out-elastic": ease.InOutElastic,
	"in-back":        ease.InBack,
	"out-back":       ease.OutBack,
	"in-out-back":    ease.InOutBack,
	"in-bounce":      ease.InBounce,
	"out-bounce":     ease.OutBounce,
	"in-out-bounce":  ease.InOutBounce,
}

// Lookup returns the easing function with the given name. Names are the
// kebab-case names of the gween equations, such as "out-quad" or
// "in-out-elastic", plus "linear" and the power easings "in-power",
// "out-power" and "in-out-power" with a power of 2. The empty name selects
// [Default].
func Lookup(name string) (Func, bool) {
	switch name {
	case "":
		return Default, true
	case "linear":
		return Linear, true
	case "in-power":
		return Power(2, In), true
	case "out-power":
		return Power(2, Out), true
	case "in-out-power":
		return Power(2, InOut), true
	}
	f, ok := tweens[name]
	if !ok {
		return nil, false
	}
	return FromTween(f), true
}

// Names returns the names accepted by [Lookup], sorted.
func Names() []string {
	names := append(slices.Collect(maps.Keys(tweens)), "linear", "in-power", "out-power", "in-out-power")
	slices.Sort(names)
	return names
}
