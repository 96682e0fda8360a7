package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"honnef.co/go/morph"
	"honnef.co/go/morph/easing"
	"honnef.co/go/morph/svgpath"
)

func newBuildCmd(gf *globalFlags, collapse bool) *cobra.Command {
	var (
		out      string
		parallel int
	)
	cmd := &cobra.Command{
		Use:   "build [job...]",
		Short: "Write the frames of every job",
		Long: `Build writes the frames of every job, or of the named jobs, to <name>.txt
in the output directory. Each line of the file is one frame in SVG path data.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(gf.config)
			if err != nil {
				return err
			}
			if out != "" {
				cfg.Output = out
			}
			jobs, err := selectJobs(cfg.Jobs, args)
			if err != nil {
				return err
			}
			return build(cmd.Context(), cfg, jobs, parallel, collapse)
		},
	}
	if collapse {
		cmd.Use = "collapse [job...]"
		cmd.Short = "Write the frames of every job's source collapsing"
		cmd.Long = `Collapse writes the frames of each job's source shrinking onto the centroids
of its figures to <name>.collapse.txt in the output directory.`
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output directory, overriding the job file")
	cmd.Flags().IntVarP(&parallel, "jobs", "j", runtime.GOMAXPROCS(0), "number of jobs to build in parallel")
	return cmd
}

func selectJobs(jobs []Job, names []string) ([]Job, error) {
	if len(names) == 0 {
		return jobs, nil
	}
	byName := make(map[string]Job, len(jobs))
	for _, job := range jobs {
		byName[job.Name] = job
	}
	out := make([]Job, 0, len(names))
	for _, name := range names {
		job, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("no job named %q", name)
		}
		out = append(out, job)
	}
	return out, nil
}

// build computes and writes the frames of jobs, at most parallel at a time.
// The first failure cancels the remaining jobs.
func build(ctx context.Context, cfg *Config, jobs []Job, parallel int, collapse bool) error {
	if cfg.Output != "" {
		if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
			return err
		}
	}
	suffix := ".txt"
	if collapse {
		suffix = ".collapse.txt"
	}
	opts := svgpath.Options{MaxPrecision: cfg.Precision}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(parallel, 1))
	for _, job := range jobs {
		g.Go(func() error {
			slog.Debug("building", "job", job.Name, "collapse", collapse)
			frames, err := job.frames(ctx, collapse)
			if err != nil {
				return fmt.Errorf("job %q: %w", job.Name, err)
			}
			path := filepath.Join(cfg.Output, job.Name+suffix)
			if err := writeFramesFile(path, frames, opts); err != nil {
				return fmt.Errorf("job %q: %w", job.Name, err)
			}
			slog.Info("wrote frames", "job", job.Name, "frames", len(frames), "points", frames[0].PointCount(), "path", path)
			return nil
		})
	}
	return g.Wait()
}

// inputs parses and flattens the job's source and target. Jobs without a
// target only have a source.
func (job *Job) inputs() (src, dst morph.Geometry, err error) {
	rule := job.fillRule()
	src, err = parseShape(job.Source, rule)
	if err != nil {
		return src, dst, fmt.Errorf("source: %w", err)
	}
	src = morph.Flatten(src, job.flattenMode())
	if job.Target == "" {
		return src, dst, nil
	}
	dst, err = parseShape(job.Target, rule)
	if err != nil {
		return src, dst, fmt.Errorf("target: %w", err)
	}
	dst = morph.Flatten(dst, job.flattenMode())
	return src, dst, nil
}

// frames builds the job's frame cache.
func (job *Job) frames(ctx context.Context, collapse bool) ([]morph.Geometry, error) {
	ease, _ := easing.Lookup(job.Easing)
	src, dst, err := job.inputs()
	if err != nil {
		return nil, err
	}
	switch {
	case collapse:
		return morph.BuildCollapseCache(ctx, src, job.Step, ease)
	case job.Target == "":
		return nil, errNoTarget
	case job.Mode == "polyline":
		return morph.BuildPolyLineCache(ctx, src, dst, job.Step, ease)
	default:
		return morph.BuildCache(ctx, src, dst, job.Step, ease)
	}
}

func writeFramesFile(path string, frames []morph.Geometry, opts svgpath.Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return writeFrames(f, frames, opts)
}

// writeFrames writes one line of path data per frame.
func writeFrames(w io.Writer, frames []morph.Geometry, opts svgpath.Options) error {
	bw := bufio.NewWriter(w)
	for i, g := range frames {
		if err := svgpath.WriteSVG(bw, g, opts); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
