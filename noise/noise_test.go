package noise

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/morph"
)

func TestPinkRange(t *testing.T) {
	p := NewPink(rand.New(rand.NewPCG(1, 2)), 128)
	for range 1000 {
		v := p.Next()
		assert.GreaterOrEqual(t, v, 0)
		// six sources of at most 128/6-1 each
		assert.Less(t, v, 6*(128/6))
	}
}

func TestPinkDeterministic(t *testing.T) {
	a := NewPink(rand.New(rand.NewPCG(7, 7)), 60)
	b := NewPink(rand.New(rand.NewPCG(7, 7)), 60)
	assert.Equal(t, a.Values(100, 1), b.Values(100, 1))

	c := NewPink(rand.New(rand.NewPCG(8, 8)), 60)
	assert.NotEqual(t, a.Values(100, 1), c.Values(100, 1))
}

func TestPinkKeyWraps(t *testing.T) {
	p := NewPink(rand.New(rand.NewPCG(3, 4)), 12)
	for range maxKey {
		p.Next()
	}
	assert.Equal(t, maxKey, p.key)
	p.Next()
	assert.Equal(t, 0, p.key)
}

func TestPinkValuesScale(t *testing.T) {
	p := NewPink(rand.New(rand.NewPCG(1, 1)), 6)
	// a span of 1 only ever draws zero
	assert.Equal(t, []float64{0, 0, 0}, p.Values(3, 0.5))
}

func TestNewPinkPanics(t *testing.T) {
	assert.Panics(t, func() { NewPink(rand.New(rand.NewPCG(1, 1)), 5) })
}

func TestWaveform(t *testing.T) {
	g := Waveform([]float64{1, 2, 3}, 0.5)
	require.Len(t, g.Figures, 1)
	f := g.Figures[0]
	assert.False(t, f.Closed)
	assert.False(t, f.Filled)
	assert.Equal(t, morph.Pt(0, 1), f.Start)
	require.Len(t, f.Segments, 1)
	assert.Equal(t, morph.PolyLineKind, f.Segments[0].Kind)
	assert.Equal(t, []morph.Point{{X: 0.5, Y: 2}, {X: 1, Y: 3}}, f.Segments[0].Points)

	assert.Empty(t, Waveform(nil, 1).Figures)
}

func TestWaveformMorph(t *testing.T) {
	src := Waveform(SampleFunc(Sine, 4*math.Pi, 0.01), 0.01)
	dst := Waveform(SampleFunc(Cosine, 4*math.Pi, 0.01), 0.01)
	require.NoError(t, morph.StepPolyLine(&src, &dst, 1))
	assert.Equal(t, dst, src)
}

func TestSampleFunc(t *testing.T) {
	got := SampleFunc(func(x float64) float64 { return 2 * x }, 1, 0.25)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, got)
	// 0.1 doesn't divide 0.3 exactly in floating point
	assert.Len(t, SampleFunc(Sine, 0.3, 0.1), 4)
	assert.Nil(t, SampleFunc(Sine, 1, 0))
	assert.Nil(t, SampleFunc(Sine, -1, 0.1))
}
