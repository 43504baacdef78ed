package docgen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/pdd-flow/internal/pdd"
)

// Render lays out doc and writes it to outputPath. Thumbnails that are
// missing on disk are skipped with a warning.
func (r *implRenderer) Render(ctx context.Context, doc *pdd.Document, outputPath string) error {
	if doc == nil {
		return errors.New("render: nil document")
	}

	r.logger.Info(ctx, "Generating Word document...")

	blocks := r.blocks(ctx, doc)

	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	if err := writeDocx(ctx, r.logger, blocks, r.style, outputPath); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}

	r.logger.Info(ctx, "Word document generated: %s", outputPath)
	return nil
}

func (r *implRenderer) blocks(ctx context.Context, doc *pdd.Document) []Block {
	blocks := r.layout(doc, meta{PreparedBy: r.preparedBy, Date: r.now()})
	return r.dropMissingImages(ctx, blocks)
}

func (r *implRenderer) dropMissingImages(ctx context.Context, blocks []Block) []Block {
	kept := blocks[:0]
	for _, b := range blocks {
		if b.Kind == KindImage {
			if _, err := os.Stat(b.Image.Path); err != nil {
				r.logger.Warn(ctx, "Warning: could not read thumbnail for %s: %s. %v", b.Image.Owner, b.Image.Path, err)
				continue
			}
		}
		kept = append(kept, b)
	}
	return kept
}
