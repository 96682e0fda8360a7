// Command pathmorph builds morph animations from job files and previews them
// in the terminal.
//
// A job file lists jobs, each naming a source and a target outline as SVG
// path data or as a shape such as "circle 50 50 50". The build command writes
// one text file per job, holding one line of SVG path data per frame.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	config string
	vv     bool
	v      bool
	q      bool
}

func newRootCmd() *cobra.Command {
	var gf globalFlags
	root := &cobra.Command{
		Use:          "pathmorph",
		Short:        "Build and preview path morph animations",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: levelFromFlags(gf.vv, gf.v, gf.q),
			})
			slog.SetDefault(slog.New(h))
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&gf.config, "config", "c", "pathmorph.toml", "job file, TOML or YAML")
	pf.BoolVar(&gf.vv, "vv", false, "log debug messages")
	pf.BoolVarP(&gf.v, "verbose", "v", false, "log informational messages")
	pf.BoolVarP(&gf.q, "quiet", "q", false, "only log errors")

	root.AddCommand(
		newBuildCmd(&gf, false),
		newBuildCmd(&gf, true),
		newPreviewCmd(&gf),
	)
	return root
}

// levelFromFlags returns the log level selected by the verbosity flags. The
// more verbose flag wins.
func levelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
