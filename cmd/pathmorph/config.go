package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"gopkg.in/yaml.v3"

	"honnef.co/go/morph"
	"honnef.co/go/morph/easing"
	"honnef.co/go/morph/noise"
	"honnef.co/go/morph/svgpath"
)

// Config is the contents of a job file.
type Config struct {
	// Output is the directory frames are written to. It defaults to the
	// current directory and may start with ~.
	Output string `toml:"output" yaml:"output"`
	// Precision limits the number of decimals in written coordinates; 0
	// writes them exactly.
	Precision int   `toml:"precision" yaml:"precision"`
	Jobs      []Job `toml:"job" yaml:"jobs"`
}

// Job describes one animation.
type Job struct {
	Name string `toml:"name" yaml:"name"`
	// Source and Target are SVG path data or shapes, see parseShape.
	Source string `toml:"source" yaml:"source"`
	Target string `toml:"target" yaml:"target"`
	// Step is the progress increment between frames.
	Step float64 `toml:"step" yaml:"step"`
	// Easing names an easing function known to easing.Lookup.
	Easing string `toml:"easing" yaml:"easing"`
	// Mode is "lines", "polylines" or "polyline". The last one morphs
	// single-figure inputs such as waveforms without figure matching.
	Mode string `toml:"mode" yaml:"mode"`
	// FillRule is "evenodd" or "nonzero".
	FillRule string `toml:"fill-rule" yaml:"fill-rule"`
	// Duration of the preview, in seconds.
	Duration float64 `toml:"duration" yaml:"duration"`
}

const (
	defaultStep     = 0.01
	defaultDuration = 2
)

var (
	errNoJobs   = errors.New("no jobs")
	errNoTarget = errors.New("no target")
)

// loadConfig reads a job file. The format follows the file extension.
func loadConfig(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := new(Config)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return nil, fmt.Errorf("%s: unknown job file format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// normalize fills in defaults and validates every job.
func (cfg *Config) normalize() error {
	if len(cfg.Jobs) == 0 {
		return errNoJobs
	}
	out, err := homedir.Expand(cfg.Output)
	if err != nil {
		return err
	}
	cfg.Output = out
	if cfg.Precision < 0 || cfg.Precision > svgpath.MaxPrecision {
		return fmt.Errorf("precision %d out of range [0, %d]", cfg.Precision, svgpath.MaxPrecision)
	}
	seen := make(map[string]bool, len(cfg.Jobs))
	for i := range cfg.Jobs {
		job := &cfg.Jobs[i]
		if job.Name == "" {
			return fmt.Errorf("job %d has no name", i)
		}
		if seen[job.Name] {
			return fmt.Errorf("duplicate job %q", job.Name)
		}
		seen[job.Name] = true
		if err := job.normalize(); err != nil {
			return fmt.Errorf("job %q: %w", job.Name, err)
		}
	}
	return nil
}

func (job *Job) normalize() error {
	if job.Step == 0 {
		job.Step = defaultStep
	}
	if !(job.Step > 0 && job.Step <= 1) {
		return fmt.Errorf("step %v: %w", job.Step, morph.ErrInvalidStep)
	}
	if job.Duration == 0 {
		job.Duration = defaultDuration
	}
	if !(job.Duration > 0) {
		return fmt.Errorf("invalid duration %v", job.Duration)
	}
	if _, ok := easing.Lookup(job.Easing); !ok {
		return fmt.Errorf("unknown easing %q", job.Easing)
	}
	switch job.Mode {
	case "":
		job.Mode = "lines"
	case "lines", "polylines", "polyline":
	default:
		return fmt.Errorf("unknown mode %q", job.Mode)
	}
	switch job.FillRule {
	case "", "evenodd", "nonzero":
	default:
		return fmt.Errorf("unknown fill rule %q", job.FillRule)
	}
	if job.Source == "" {
		return errors.New("no source")
	}
	return nil
}

func (job *Job) fillRule() morph.FillRule {
	if job.FillRule == "nonzero" {
		return morph.NonZero
	}
	return morph.EvenOdd
}

func (job *Job) flattenMode() morph.FlattenMode {
	if job.Mode == "lines" {
		return morph.FlattenLines
	}
	return morph.FlattenPolyLines
}

// waveSpan and waveDX describe the x range of waveform shapes.
const (
	waveSpan = 4 * math.Pi
	waveDX   = 0.01
)

// parseShape parses a shape or SVG path data. Shapes are a name followed by
// numbers:
//
//	circle cx cy r
//	ellipse cx cy rx ry
//	rect x0 y0 x1 y1
//	rounded-rect x0 y0 x1 y1 r
//	sine
//	cosine
//	pink seed
//
// The last three are waveforms over [0, 4π].
func parseShape(s string, rule morph.FillRule) (morph.Geometry, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' || r == '\n' })
	if len(fields) == 0 {
		return morph.Geometry{}, errors.New("empty shape")
	}
	args := func(n int) ([]float64, error) {
		if len(fields)-1 != n {
			return nil, fmt.Errorf("%s takes %d arguments, got %d", fields[0], n, len(fields)-1)
		}
		out := make([]float64, n)
		for i, f := range fields[1:] {
			v, m := strconv.ParseFloat([]byte(f))
			if m != len(f) {
				return nil, fmt.Errorf("%s: bad number %q", fields[0], f)
			}
			out[i] = v
		}
		return out, nil
	}
	geometry := func(f morph.Figure) morph.Geometry {
		return morph.Geometry{FillRule: rule, Figures: []morph.Figure{f}}
	}

	switch fields[0] {
	case "circle":
		a, err := args(3)
		if err != nil {
			return morph.Geometry{}, err
		}
		return geometry(morph.Circle{Center: morph.Pt(a[0], a[1]), Radius: a[2]}.Figure()), nil
	case "ellipse":
		a, err := args(4)
		if err != nil {
			return morph.Geometry{}, err
		}
		return geometry(morph.NewEllipse(morph.Pt(a[0], a[1]), morph.Vec(a[2], a[3]), 0).Figure()), nil
	case "rect":
		a, err := args(4)
		if err != nil {
			return morph.Geometry{}, err
		}
		return geometry(morph.NewRectFromPoints(morph.Pt(a[0], a[1]), morph.Pt(a[2], a[3])).Figure()), nil
	case "rounded-rect":
		a, err := args(5)
		if err != nil {
			return morph.Geometry{}, err
		}
		return geometry(morph.NewRoundedRect(a[0], a[1], a[2], a[3], a[4]).Figure()), nil
	case "sine", "cosine":
		if _, err := args(0); err != nil {
			return morph.Geometry{}, err
		}
		fn := noise.Sine
		if fields[0] == "cosine" {
			fn = noise.Cosine
		}
		return noise.Waveform(noise.SampleFunc(fn, waveSpan, waveDX), waveDX), nil
	case "pink":
		if len(fields) != 2 {
			return morph.Geometry{}, fmt.Errorf("pink takes 1 argument, got %d", len(fields)-1)
		}
		seed, m := strconv.ParseUint([]byte(fields[1]))
		if m == 0 || m != len(fields[1]) {
			return morph.Geometry{}, fmt.Errorf("pink: bad seed %q", fields[1])
		}
		p := noise.NewPink(rand.New(rand.NewPCG(seed, seed)), 128)
		n := len(noise.SampleFunc(noise.Sine, waveSpan, waveDX))
		return noise.Waveform(p.Values(n, 2.0/128), waveDX), nil
	default:
		return svgpath.ParseWithRule(s, rule)
	}
}
