// Package anim plays precomputed morph frame caches over time.
//
// Frames are expected to carry their easing already, as produced by
// [morph.BuildCache], so playback advances through them linearly. Callers
// drive playback by passing elapsed time to Update, typically once per
// rendered frame.
package anim

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"honnef.co/go/morph"
)

var (
	ErrNoFrames        = errors.New("no frames")
	ErrInvalidDuration = errors.New("duration must be positive")
)

// Player plays a frame cache over a fixed duration.
type Player struct {
	// Delay is the number of calls to Update, counted from the start or the
	// last Reset, that show the first frame without advancing.
	Delay int

	frames []morph.Geometry
	tween  *gween.Tween
	wait   int
	cur    int
}

// NewPlayer returns a player that shows all of frames over duration, in the
// same unit of time that is later passed to Update.
func NewPlayer(frames []morph.Geometry, duration float32) (*Player, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if !(duration > 0) {
		return nil, ErrInvalidDuration
	}
	return &Player{
		frames: frames,
		tween:  gween.New(0, float32(len(frames)-1), duration, ease.Linear),
	}, nil
}

// frameIndex maps a tween value to a frame, clamped to [0, n).
func frameIndex(v float32, n int) int {
	return int(math32.Max(0, math32.Min(math32.Floor(v), float32(n-1))))
}

// Update advances playback by dt and returns the frame to show and whether
// playback has finished.
func (p *Player) Update(dt float32) (morph.Geometry, bool) {
	if p.wait < p.Delay {
		p.wait++
		return p.frames[p.cur], false
	}
	v, done := p.tween.Update(dt)
	p.cur = frameIndex(v, len(p.frames))
	return p.frames[p.cur], done
}

// Seek moves playback to time t and returns the frame shown there. Seeking
// doesn't consume the delay.
func (p *Player) Seek(t float32) morph.Geometry {
	v, _ := p.tween.Set(t)
	p.cur = frameIndex(v, len(p.frames))
	return p.frames[p.cur]
}

// Reset rewinds playback to the first frame and restarts the delay.
func (p *Player) Reset() {
	p.tween.Reset()
	p.wait = 0
	p.cur = 0
}

// Frame returns the i'th frame of the cache.
func (p *Player) Frame(i int) morph.Geometry { return p.frames[i] }

// Current returns the index of the frame last returned by Update or Seek.
func (p *Player) Current() int { return p.cur }

// Len returns the number of frames.
func (p *Player) Len() int { return len(p.frames) }
