package anim

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"honnef.co/go/morph"
)

// Stage is one morph of a timeline.
type Stage struct {
	Frames   []morph.Geometry
	Duration float32
}

// Timeline plays several frame caches one after the other, such as a word
// morphing into a second word and then into a third. Time left over at the
// end of a stage carries into the next.
type Timeline struct {
	stages []Stage
	seq    *gween.Sequence
	stage  int
	frame  int
}

func NewTimeline(stages ...Stage) (*Timeline, error) {
	if len(stages) == 0 {
		return nil, ErrNoFrames
	}
	seq := gween.NewSequence()
	for i, st := range stages {
		if len(st.Frames) == 0 {
			return nil, fmt.Errorf("stage %d: %w", i, ErrNoFrames)
		}
		if !(st.Duration > 0) {
			return nil, fmt.Errorf("stage %d: %w", i, ErrInvalidDuration)
		}
		seq.Add(gween.New(0, float32(len(st.Frames)-1), st.Duration, ease.Linear))
	}
	return &Timeline{stages: stages, seq: seq}, nil
}

// SetLoop sets how many times the timeline plays before Update reports it
// as finished. A value of -1 loops forever.
func (tl *Timeline) SetLoop(n int) { tl.seq.SetLoop(n) }

// Update advances the timeline by dt and returns the frame to show and
// whether the timeline has finished.
func (tl *Timeline) Update(dt float32) (morph.Geometry, bool) {
	v, _, done := tl.seq.Update(dt)
	tl.stage = min(max(tl.seq.Index(), 0), len(tl.stages)-1)
	frames := tl.stages[tl.stage].Frames
	tl.frame = frameIndex(v, len(frames))
	return frames[tl.frame], done
}

// Stage returns the index of the current stage.
func (tl *Timeline) Stage() int { return tl.stage }

// Frame returns the index of the current frame within the current stage.
func (tl *Timeline) Frame() int { return tl.frame }

// Len returns the number of stages.
func (tl *Timeline) Len() int { return len(tl.stages) }

func (tl *Timeline) Reset() {
	tl.seq.Reset()
	tl.stage = 0
	tl.frame = 0
}
