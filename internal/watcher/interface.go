package watcher

import "context"

// Watcher monitors an input directory for recording/transcript pairs.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Job is a complete input pair found in the watched directory.
type Job struct {
	Name           string
	VideoPath      string
	TranscriptPath string
	OutputDir      string
}

// Handler processes one job.
type Handler func(ctx context.Context, job Job) error
