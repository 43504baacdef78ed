package docgen

import (
	"errors"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/pdd-flow/internal/config"
	"github.com/nguyentantai21042004/pdd-flow/internal/logger"
)

var ErrInvalidLayout = errors.New("unknown document layout")

const (
	LayoutPDD    = "pdd"
	LayoutSimple = "simple"

	defaultFont       = "Calibri"
	defaultFontSize   = 11
	defaultPreparedBy = "Automated Process Generator"
)

type implRenderer struct {
	logger     logger.Logger
	layout     layoutFunc
	style      style
	preparedBy string
	now        func() time.Time
}

// New creates a Renderer for the configured layout.
func New(cfg config.DocumentConfig, log logger.Logger) (Renderer, error) {
	return newRenderer(cfg, log, time.Now)
}

func newRenderer(cfg config.DocumentConfig, log logger.Logger, now func() time.Time) (*implRenderer, error) {
	name := cfg.Layout
	if name == "" {
		name = LayoutPDD
	}
	layout, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLayout, cfg.Layout)
	}

	st := style{font: cfg.Font, size: uint64(cfg.FontSize)}
	if st.font == "" {
		st.font = defaultFont
	}
	if st.size == 0 {
		st.size = defaultFontSize
	}

	preparedBy := cfg.PreparedBy
	if preparedBy == "" {
		preparedBy = defaultPreparedBy
	}

	return &implRenderer{
		logger:     log.With("component", "docgen"),
		layout:     layout,
		style:      st,
		preparedBy: preparedBy,
		now:        now,
	}, nil
}
