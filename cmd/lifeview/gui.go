package main

import (
	"github.com/spf13/cobra"

	"lifeview/internal/app"
)

func guiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "open a desktop window (needs the ebiten build tag)",
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := app.NewGame(cfg, cfg.Logger())
			if err != nil {
				return err
			}
			return game.Run(cfg.Paused)
		},
	}
}
