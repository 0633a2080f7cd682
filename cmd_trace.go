package main

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/spf13/cobra"

	"glyph-motion/page"
)

func newTraceCmd(opts *options) *cobra.Command {
	var (
		target   string
		duration time.Duration
		every    time.Duration
		ratio    float64
	)

	cmd := &cobra.Command{
		Use:   "trace [block ids...]",
		Short: "Play a scripted pointer and scroll session without a window",
		Long: `trace runs the page on a simulated clock, feeds it a fixed sequence of
pointer and scroll events and prints the state of the chosen blocks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			sc, err := opts.loadScene()
			if err != nil {
				return err
			}
			mock := clock.NewMock()
			p, err := page.New(sc, page.Fixed{Ratio: ratio}, mock, logger)
			if err != nil {
				return err
			}
			defer p.Close()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			p.Start(ctx)

			ids := args
			if len(ids) == 0 {
				for _, b := range p.Blocks {
					ids = append(ids, b.Spec.ID)
				}
			}
			t := &tracer{page: p, mock: mock, out: cmd.OutOrStdout(), every: every, ids: ids}
			steps, err := t.script(target)
			if err != nil {
				return err
			}
			logger.Debug("tracing", "target", target, "blocks", ids, "duration", duration)
			t.Run(steps, duration)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "title", "block the pointer hovers")
	cmd.Flags().DurationVar(&duration, "duration", 5*time.Second, "simulated time to run")
	cmd.Flags().DurationVar(&every, "every", 100*time.Millisecond, "interval between state lines")
	cmd.Flags().Float64Var(&ratio, "advance", 0.6, "glyph advance as a fraction of font size")
	return cmd
}
