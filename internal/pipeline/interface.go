package pipeline

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/pdd-flow/internal/pdd"
	"github.com/nguyentantai21042004/pdd-flow/internal/thumbnail"
)

// Pipeline turns a recording and its transcript into a PDD.
type Pipeline interface {
	Run(ctx context.Context, in Input) (Result, error)
}

// Input names the source files. OutputDir falls back to paths.output.
type Input struct {
	VideoPath      string
	TranscriptPath string
	OutputDir      string
}

// Result describes what a run produced.
type Result struct {
	RunID        string
	Document     *pdd.Document
	Issues       []pdd.Issue
	Thumbnails   thumbnail.Report
	ThumbnailDir string
	JSONPath     string
	DocxPath     string
	Duration     time.Duration
}
