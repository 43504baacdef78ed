package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Run executes the stages in order. A failing stage stops the run; files
// written by earlier stages are left on disk.
func (p *implPipeline) Run(ctx context.Context, in Input) (Result, error) {
	startTime := time.Now()
	res := Result{RunID: uuid.NewString()}
	log := p.logger.With("run_id", res.RunID)

	log.Info(ctx, "========================================")
	log.Info(ctx, "Starting PDD generation: %s", in.VideoPath)
	log.Info(ctx, "========================================")

	if _, err := os.Stat(in.VideoPath); err != nil {
		return res, fmt.Errorf("video: %w", err)
	}

	transcript, err := os.ReadFile(in.TranscriptPath)
	if err != nil {
		return res, fmt.Errorf("read transcript: %w", err)
	}
	if strings.TrimSpace(string(transcript)) == "" {
		log.Warn(ctx, "Transcript %s is empty, steps will be inferred from the video only", in.TranscriptPath)
	}

	outputDir := in.OutputDir
	if outputDir == "" {
		outputDir = p.paths.Output
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return res, fmt.Errorf("create output dir: %w", err)
	}

	// Step 1: Ask the model for the process structure
	doc, err := p.extractor.Extract(ctx, in.VideoPath, string(transcript))
	if err != nil {
		return res, fmt.Errorf("extract: %w", err)
	}
	res.Document = doc
	log.Info(ctx, "Extracted %q: %d steps, %d targets", doc.ProcessName, len(doc.Steps), doc.CountTargets())

	res.Issues = doc.Validate()
	for _, issue := range res.Issues {
		log.Warn(ctx, "Model output: %s", issue)
	}

	// Step 2: Grab a frame per step and sub-step
	res.ThumbnailDir = p.resolve(outputDir, p.paths.Thumbnails)
	res.Thumbnails, err = p.thumbnails.ExtractAll(ctx, in.VideoPath, doc, res.ThumbnailDir)
	if err != nil {
		return res, fmt.Errorf("extract thumbnails: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("canceled before writing output: %w", err)
	}

	// Step 3: Persist the enriched structure
	res.JSONPath = filepath.Join(outputDir, p.paths.JSONName)
	if err := doc.Save(res.JSONPath); err != nil {
		return res, fmt.Errorf("write json: %w", err)
	}
	log.Info(ctx, "Process data written: %s", res.JSONPath)

	// Step 4: Render the Word document
	res.DocxPath = filepath.Join(outputDir, p.paths.DocxName)
	if err := p.renderer.Render(ctx, doc, res.DocxPath); err != nil {
		return res, fmt.Errorf("render document: %w", err)
	}

	res.Duration = time.Since(startTime)
	log.Info(ctx, "========================================")
	log.Info(ctx, "PDD generation completed successfully!")
	log.Info(ctx, "Output document: %s", res.DocxPath)
	log.Info(ctx, "Processing time: %s", res.Duration)
	log.Info(ctx, "========================================")

	return res, nil
}

func (p *implPipeline) resolve(outputDir, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(outputDir, dir)
}
