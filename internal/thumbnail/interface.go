package thumbnail

import (
	"context"

	"github.com/nguyentantai21042004/pdd-flow/internal/pdd"
)

// Extractor grabs one frame per step and sub-step of a process document.
type Extractor interface {
	// ExtractAll records a thumbnail path on every step before extraction and
	// clears it again for items whose frame could not be produced. Per-item
	// failures are reported, never returned; a canceled ctx is.
	ExtractAll(ctx context.Context, videoPath string, doc *pdd.Document, dir string) (Report, error)
	// Check verifies the ffmpeg binaries are reachable.
	Check() error
}
