// Package noise generates synthetic input for morphs: pink noise and sampled
// functions turned into single-figure waveforms.
package noise

import (
	"math/rand/v2"
)

const (
	octaves = 5
	maxKey  = 1<<octaves - 1
)

// Pink generates pink noise using the Voss algorithm, which sums white noise
// sources at successively lower octaves. The source for octave i is redrawn
// every 2^i values.
//
// See https://www.firstpr.com.au/dsp/pink-noise/.
type Pink struct {
	r     *rand.Rand
	key   int
	span  uint32
	white [octaves]uint32
}

// NewPink returns a generator whose values lie in [0, rng). Each of the six
// summed sources contributes up to rng/6. NewPink panics if rng < 6.
func NewPink(r *rand.Rand, rng uint32) *Pink {
	if rng < 6 {
		panic("noise: range must be at least 6")
	}
	p := &Pink{r: r, span: rng / 6}
	for i := range p.white {
		p.white[i] = p.draw()
	}
	return p
}

func (p *Pink) draw() uint32 { return p.r.Uint32N(p.span) }

// Next returns the next value.
func (p *Pink) Next() int {
	last := p.key
	p.key++
	if p.key > maxKey {
		p.key = 0
	}
	// bits that changed select the octaves to redraw
	diff := last ^ p.key
	sum := p.draw()
	for i := range p.white {
		if diff&(1<<i) != 0 {
			p.white[i] = p.draw()
		}
		sum += p.white[i]
	}
	return int(sum)
}

// Values returns the next n values, scaled by scale.
func (p *Pink) Values(n int, scale float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(p.Next()) * scale
	}
	return out
}
