package pipeline

import (
	"github.com/nguyentantai21042004/pdd-flow/internal/config"
	"github.com/nguyentantai21042004/pdd-flow/internal/docgen"
	"github.com/nguyentantai21042004/pdd-flow/internal/extractor"
	"github.com/nguyentantai21042004/pdd-flow/internal/logger"
	"github.com/nguyentantai21042004/pdd-flow/internal/thumbnail"
)

type implPipeline struct {
	paths      config.PathsConfig
	extractor  extractor.Extractor
	thumbnails thumbnail.Extractor
	renderer   docgen.Renderer
	logger     logger.Logger
}

// New wires the pipeline stages together.
func New(paths config.PathsConfig, ext extractor.Extractor, thumbs thumbnail.Extractor, renderer docgen.Renderer, log logger.Logger) Pipeline {
	return &implPipeline{
		paths:      paths,
		extractor:  ext,
		thumbnails: thumbs,
		renderer:   renderer,
		logger:     log,
	}
}
