package thumbnail

import (
	"github.com/nguyentantai21042004/pdd-flow/internal/config"
	"github.com/nguyentantai21042004/pdd-flow/internal/logger"
	"github.com/nguyentantai21042004/pdd-flow/pkg/executor"
)

type implExtractor struct {
	executor      executor.Executor
	logger        logger.Logger
	ffmpegPath    string
	ffprobePath   string
	width         int
	quality       int
	maxConcurrent int
}

// New creates a frame Extractor driven by the ffmpeg binary.
func New(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Extractor {
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	return &implExtractor{
		executor:      exec,
		logger:        log.With("component", "thumbnail"),
		ffmpegPath:    cfg.BinaryPath,
		ffprobePath:   cfg.ProbePath,
		width:         cfg.ThumbnailWidth,
		quality:       cfg.Quality,
		maxConcurrent: maxConcurrent,
	}
}
