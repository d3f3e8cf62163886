package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"lifeview/internal/app"
	"lifeview/internal/render"
)

func framesCommand() *cobra.Command {
	var (
		count  int
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "frames",
		Short: "render generations to PNG files without a display",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("--count must be positive")
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			bar := pb.New(count + 1).SetWriter(cmd.ErrOrStderr()).Start()
			defer bar.Finish()
			return exportFrames(cfg, count, outDir, func() { bar.Increment() })
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 50, "number of generations to render")
	cmd.Flags().StringVarP(&outDir, "out", "o", "frames", "output directory")
	return cmd
}

// exportFrames renders the initial grid and count further generations,
// driving the scheduler with simulated time one frame interval apart.
func exportFrames(cfg *app.Config, count int, outDir string, progress func()) error {
	w, h := cfg.CanvasSize()
	raster := render.NewRaster(w, h)
	host := app.NewManualHost(time.Unix(0, 0))
	ctrl, err := cfg.NewController(host, raster, nil, cfg.Logger())
	if err != nil {
		return err
	}
	if err := ctrl.Start(false); err != nil {
		return err
	}

	write := func(i int) error {
		path := filepath.Join(outDir, fmt.Sprintf("frame-%05d.png", i))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(f, raster.Image()); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", path, err)
		}
		progress()
		return f.Close()
	}

	if err := write(0); err != nil {
		return err
	}
	interval := ctrl.Scheduler().Interval()
	for i := 1; i <= count; i++ {
		if err := host.Advance(interval); err != nil {
			return err
		}
		if err := write(i); err != nil {
			return err
		}
	}
	return nil
}
