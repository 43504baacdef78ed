package extractor

import (
	"context"

	"github.com/nguyentantai21042004/pdd-flow/internal/pdd"
)

// Extractor turns a screen recording and its transcript into a process document.
type Extractor interface {
	Extract(ctx context.Context, videoPath, transcript string) (*pdd.Document, error)
}
