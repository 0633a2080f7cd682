package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"glyph-motion/page"
)

func newRunCmd(opts *options) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the page in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			sc, err := opts.loadScene()
			if err != nil {
				return err
			}
			fonts, err := LoadFonts()
			if err != nil {
				return err
			}
			p, err := page.New(sc, fonts, nil, logger)
			if err != nil {
				return err
			}
			defer p.Close()
			p.Start(cmd.Context())

			g := NewGame(cmd.Context(), p, fonts)
			g.showDebug = debug

			ebiten.SetWindowSize(sc.Window.Width, sc.Window.Height)
			ebiten.SetWindowTitle(sc.Window.Title)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			logger.Info("opening window", "width", sc.Window.Width, "height", sc.Window.Height, "blocks", len(p.Blocks))
			if err := ebiten.RunGame(g); err != nil {
				return errors.Wrap(err, "run game")
			}
			return cmd.Context().Err()
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "show the debug panel (toggle with F3)")
	return cmd
}
