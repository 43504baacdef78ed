package docgen

import (
	"context"

	"github.com/nguyentantai21042004/pdd-flow/internal/pdd"
)

// Renderer writes a process document to a Word file.
type Renderer interface {
	Render(ctx context.Context, doc *pdd.Document, outputPath string) error
}
