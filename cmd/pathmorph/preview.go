package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"honnef.co/go/morph"
	"honnef.co/go/morph/anim"
)

func newPreviewCmd(gf *globalFlags) *cobra.Command {
	var (
		name     string
		collapse bool
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Play a job's animation in the terminal",
		Long: `Preview plays a job's frames in the terminal. Press space to restart and
q or Esc to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(gf.config)
			if err != nil {
				return err
			}
			if name == "" {
				name = cfg.Jobs[0].Name
			}
			jobs, err := selectJobs(cfg.Jobs, []string{name})
			if err != nil {
				return err
			}
			job := jobs[0]
			frames, err := job.frames(cmd.Context(), collapse)
			if err != nil {
				return fmt.Errorf("job %q: %w", job.Name, err)
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()
			pv, err := newPreview(screen, frames, float32(job.Duration))
			if err != nil {
				return err
			}
			return pv.run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "job to play, defaulting to the first")
	cmd.Flags().BoolVar(&collapse, "collapse", false, "play the collapse of the job's source")
	return cmd
}

const frameInterval = 16 * time.Millisecond

type preview struct {
	screen tcell.Screen
	player *anim.Player
	// bounds encloses every frame, so the view doesn't jump while playing.
	bounds morph.Rect
	style  tcell.Style
}

func newPreview(screen tcell.Screen, frames []morph.Geometry, duration float32) (*preview, error) {
	player, err := anim.NewPlayer(frames, duration)
	if err != nil {
		return nil, err
	}
	bounds := frames[0].BoundingBox()
	for _, g := range frames[1:] {
		bounds = bounds.Union(g.BoundingBox())
	}
	return &preview{
		screen: screen,
		player: player,
		bounds: bounds,
		style:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}, nil
}

// run plays the animation until the user quits or ctx is canceled.
func (pv *preview) run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go pv.screen.ChannelEvents(events, quit)

	pv.draw(pv.player.Frame(0))
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !pv.handle(ev) {
				return nil
			}
		case now := <-ticker.C:
			g, _ := pv.player.Update(float32(now.Sub(last).Seconds()))
			last = now
			pv.draw(g)
		}
	}
}

// handle reacts to an input event and reports whether to keep running.
func (pv *preview) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			pv.player.Reset()
		}
	case *tcell.EventResize:
		pv.screen.Sync()
	case nil:
		// the screen was finalized
		return false
	}
	return true
}

// draw renders g's outlines, scaled to fit the screen.
func (pv *preview) draw(g morph.Geometry) {
	pv.screen.Clear()
	defer pv.screen.Show()
	w, h := pv.screen.Size()
	if w < 1 || h < 1 || pv.bounds.IsEmpty() {
		return
	}
	// Cells are about twice as tall as they are wide, so map onto a grid of
	// half-cell rows and halve y afterwards. Geometry has y pointing down, as
	// does the screen.
	dst := morph.Rect{X1: float64(w - 1), Y1: float64(2 * (h - 1))}
	aff := morph.MapRect(pv.bounds, dst).ThenScale(1, 0.5)
	for _, f := range g.Transform(aff).Figures {
		pts := append([]morph.Point{f.Start}, f.Points()...)
		if f.Closed {
			pts = append(pts, f.Start)
		}
		for i := 1; i < len(pts); i++ {
			pv.line(pts[i-1], pts[i])
		}
		if len(pts) == 1 {
			pv.plot(pts[0])
		}
	}
}

// line plots the cells along the segment from p0 to p1.
func (pv *preview) line(p0, p1 morph.Point) {
	n := int(math.Ceil(max(math.Abs(p1.X-p0.X), math.Abs(p1.Y-p0.Y))))
	for i := 0; i <= n; i++ {
		t := 1.0
		if n > 0 {
			t = float64(i) / float64(n)
		}
		pv.plot(p0.Lerp(p1, t))
	}
}

func (pv *preview) plot(pt morph.Point) {
	if pt.IsNaN() || pt.IsInf() {
		return
	}
	pt = pt.Round()
	pv.screen.SetContent(int(pt.X), int(pt.Y), '•', nil, pv.style)
}
