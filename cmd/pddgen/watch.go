package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/pdd-flow/internal/config"
	"github.com/nguyentantai21042004/pdd-flow/internal/pipeline"
	"github.com/nguyentantai21042004/pdd-flow/internal/watcher"
)

func newWatchCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the input directory for <name>.mp4 + <name>.txt pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			for _, dir := range []string{cfg.Watch.Input, cfg.Watch.Output} {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("create directory %s: %w", dir, err)
				}
			}

			p, err := app.newPipeline(ctx, cfg)
			if err != nil {
				return err
			}

			handler := func(ctx context.Context, job watcher.Job) error {
				res, err := p.Run(ctx, pipeline.Input{
					VideoPath:      job.VideoPath,
					TranscriptPath: job.TranscriptPath,
					OutputDir:      job.OutputDir,
				})
				if err != nil {
					return err
				}
				app.log.Info(ctx, "%s done: %s (%d/%d thumbnails)",
					job.Name, res.DocxPath, res.Thumbnails.Extracted, res.Thumbnails.Total)
				return nil
			}

			w, err := watcher.New(cfg.Watch, handler, app.log)
			if err != nil {
				return err
			}
			defer w.Stop()

			app.log.Info(ctx, "Press Ctrl+C to stop")
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
