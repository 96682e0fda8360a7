package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/morph"
)

// frames returns n geometries whose only figure starts at (i, tag).
func frames(n int, tag float64) []morph.Geometry {
	out := make([]morph.Geometry, n)
	for i := range out {
		out[i] = morph.Geometry{Figures: []morph.Figure{*morph.NewFigure(morph.Pt(float64(i), tag))}}
	}
	return out
}

func start(g morph.Geometry) morph.Point { return g.Figures[0].Start }

func TestPlayer(t *testing.T) {
	p, err := NewPlayer(frames(5, 0), 1)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Len())

	g, done := p.Update(0.5)
	assert.False(t, done)
	assert.Equal(t, morph.Pt(2, 0), start(g))
	assert.Equal(t, 2, p.Current())

	g, done = p.Update(0.5)
	assert.True(t, done)
	assert.Equal(t, morph.Pt(4, 0), start(g))

	// stays on the last frame
	g, done = p.Update(0.5)
	assert.True(t, done)
	assert.Equal(t, morph.Pt(4, 0), start(g))

	p.Reset()
	assert.Equal(t, 0, p.Current())
	g, _ = p.Update(0.1)
	assert.Equal(t, morph.Pt(0, 0), start(g))
}

func TestPlayerDelay(t *testing.T) {
	p, err := NewPlayer(frames(3, 0), 1)
	require.NoError(t, err)
	p.Delay = 2
	for range 2 {
		g, done := p.Update(1)
		assert.False(t, done)
		assert.Equal(t, morph.Pt(0, 0), start(g))
	}
	g, done := p.Update(1)
	assert.True(t, done)
	assert.Equal(t, morph.Pt(2, 0), start(g))

	p.Reset()
	g, _ = p.Update(1)
	assert.Equal(t, morph.Pt(0, 0), start(g), "delay restarts after Reset")
}

func TestPlayerSeek(t *testing.T) {
	p, err := NewPlayer(frames(5, 0), 2)
	require.NoError(t, err)
	assert.Equal(t, morph.Pt(1, 0), start(p.Seek(0.5)))
	assert.Equal(t, morph.Pt(4, 0), start(p.Seek(10)))
	assert.Equal(t, morph.Pt(0, 0), start(p.Seek(-1)))
	assert.Equal(t, morph.Pt(3, 0), start(p.Frame(3)))
}

func TestPlayerSingleFrame(t *testing.T) {
	p, err := NewPlayer(frames(1, 0), 1)
	require.NoError(t, err)
	g, _ := p.Update(0.3)
	assert.Equal(t, morph.Pt(0, 0), start(g))
}

func TestNewPlayerErrors(t *testing.T) {
	_, err := NewPlayer(nil, 1)
	assert.ErrorIs(t, err, ErrNoFrames)
	_, err = NewPlayer(frames(2, 0), 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestTimeline(t *testing.T) {
	tl, err := NewTimeline(
		Stage{Frames: frames(3, 0), Duration: 1},
		Stage{Frames: frames(5, 1), Duration: 2},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, tl.Len())

	g, done := tl.Update(0.5)
	assert.False(t, done)
	assert.Equal(t, 0, tl.Stage())
	assert.Equal(t, 1, tl.Frame())
	assert.Equal(t, morph.Pt(1, 0), start(g))

	// the 0.25 left over from the first stage carries into the second
	g, done = tl.Update(0.75)
	assert.False(t, done)
	assert.Equal(t, 1, tl.Stage())
	assert.Equal(t, 0, tl.Frame())
	assert.Equal(t, morph.Pt(0, 1), start(g))

	g, done = tl.Update(2)
	assert.True(t, done)
	assert.Equal(t, 1, tl.Stage())
	assert.Equal(t, morph.Pt(4, 1), start(g))

	tl.Reset()
	assert.Equal(t, 0, tl.Stage())
	g, _ = tl.Update(0)
	assert.Equal(t, morph.Pt(0, 0), start(g))
}

func TestNewTimelineErrors(t *testing.T) {
	_, err := NewTimeline()
	assert.ErrorIs(t, err, ErrNoFrames)
	_, err = NewTimeline(Stage{Frames: frames(2, 0), Duration: 1}, Stage{Duration: 1})
	assert.ErrorIs(t, err, ErrNoFrames)
	_, err = NewTimeline(Stage{Frames: frames(2, 0)})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
