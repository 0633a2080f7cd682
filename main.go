package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"glyph-motion/scene"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options are the flags shared by every command.
type options struct {
	verbose bool
	scene   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "glyph-motion",
		Short:        "Animated typography page",
		Long:         `glyph-motion renders a page of text blocks whose glyphs react to the pointer and reveal themselves on scroll.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.scene, "scene", "s", "", "scene file (default: built-in page)")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newTraceCmd(opts))
	root.AddCommand(newSceneCmd(opts))

	return root
}

// loadScene reads the scene named by --scene, or the built-in one.
func (o *options) loadScene() (*scene.Scene, error) {
	if o.scene == "" {
		return scene.Default(), nil
	}
	return scene.Load(o.scene)
}
