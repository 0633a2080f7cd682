package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glyph-motion/scene"
)

func newSceneCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Inspect and write scene files",
	}
	cmd.AddCommand(newSceneDefaultCmd())
	cmd.AddCommand(newSceneCheckCmd(opts))
	return cmd
}

func newSceneDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default [path]",
		Short: "Write the built-in scene to path, or to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return scene.Write(cmd.OutOrStdout(), scene.Default())
			}
			if err := scene.Save(scene.Default(), args[0]); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("wrote scene", "path", args[0])
			return nil
		},
	}
}

func newSceneCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the scene given by --scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := opts.loadScene()
			if err != nil {
				return err
			}
			if err := sc.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d blocks, %d easings\n", len(sc.Blocks), len(sc.Easings))
			return nil
		},
	}
}
