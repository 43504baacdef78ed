package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/pdd-flow/internal/config"
	"github.com/nguyentantai21042004/pdd-flow/internal/docgen"
	"github.com/nguyentantai21042004/pdd-flow/internal/extractor"
	"github.com/nguyentantai21042004/pdd-flow/internal/logger"
	"github.com/nguyentantai21042004/pdd-flow/internal/pipeline"
	"github.com/nguyentantai21042004/pdd-flow/internal/thumbnail"
	"github.com/nguyentantai21042004/pdd-flow/pkg/executor"
)

type application struct {
	configFlag string
	outputFlag string
	layoutFlag string
	verbose    bool

	log logger.Logger
}

// setup loads .env and the config file, applies flag overrides and stores
// the result on the command context.
func (a *application) setup(cmd *cobra.Command) error {
	if err := config.LoadEnvFiles(); err != nil {
		return err
	}

	cfg, err := config.Load(a.configFlag)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if a.outputFlag != "" {
		cfg.Paths.Output = a.outputFlag
		cfg.Watch.Output = a.outputFlag
	}
	if a.layoutFlag != "" {
		cfg.Document.Layout = a.layoutFlag
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.log = logger.NewWithOptions(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	cmd.SetContext(config.WithConfig(cmd.Context(), cfg))
	return nil
}

// newPipeline builds every stage. ffmpeg and the API key are checked up
// front so a run fails before the upload starts.
func (a *application) newPipeline(ctx context.Context, cfg *config.Config) (pipeline.Pipeline, error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}

	thumbs := thumbnail.New(cfg.FFmpeg, executor.New(), a.log)
	if err := thumbs.Check(); err != nil {
		return nil, fmt.Errorf("ffmpeg: %w", err)
	}

	renderer, err := docgen.New(cfg.Document, a.log)
	if err != nil {
		return nil, err
	}

	ext, err := extractor.New(ctx, cfg.Gemini, a.log)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}

	return pipeline.New(cfg.Paths, ext, thumbs, renderer, a.log), nil
}

func (a *application) generate(cmd *cobra.Command, videoPath, transcriptPath string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)

	p, err := a.newPipeline(ctx, cfg)
	if err != nil {
		return err
	}

	res, err := p.Run(ctx, pipeline.Input{
		VideoPath:      videoPath,
		TranscriptPath: transcriptPath,
		OutputDir:      cfg.Paths.Output,
	})
	if err != nil {
		return err
	}

	if !res.Thumbnails.OK() {
		a.log.Warn(ctx, "%d of %d thumbnails are missing from the document",
			res.Thumbnails.Skipped+res.Thumbnails.Failed, res.Thumbnails.Total)
	}
	fmt.Fprintln(cmd.OutOrStdout(), pipeline.Summary(res))
	fmt.Fprintf(cmd.OutOrStdout(), "JSON:     %s\nDocument: %s\n", res.JSONPath, res.DocxPath)
	return nil
}
