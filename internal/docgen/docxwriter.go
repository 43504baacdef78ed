package docgen

import (
	"context"
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/common/units"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/pdd-flow/internal/logger"
)

const (
	textColor  = "000000"
	tableStyle = "TableGrid"
	listStyle  = "List Bullet"
)

type style struct {
	font string
	size uint64
}

// writeDocx emits blocks in order and saves the file. A picture godocx
// cannot embed is logged and left out.
func writeDocx(ctx context.Context, log logger.Logger, blocks []Block, st style, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	for _, b := range blocks {
		if b.Kind == KindImage {
			if _, err := doc.AddPicture(b.Image.Path, units.Inch(b.Image.Width), units.Inch(b.Image.Height)); err != nil {
				log.Warn(ctx, "Warning: could not embed thumbnail for %s: %s. %v", b.Image.Owner, b.Image.Path, err)
			}
			continue
		}
		if err := st.write(doc, b); err != nil {
			return fmt.Errorf("write %q: %w", b.Text, err)
		}
	}

	return doc.SaveTo(outputPath)
}

func (s style) write(doc *docx.RootDoc, b Block) error {
	switch b.Kind {
	case KindTitle:
		_, err := doc.AddHeading(b.Text, 0)
		return err
	case KindHeading:
		_, err := doc.AddHeading(b.Text, b.Level)
		return err
	case KindParagraph:
		s.run(doc.AddParagraph(""), b.Text, false)
	case KindLabelled:
		p := doc.AddParagraph("")
		s.run(p, b.Label, true)
		s.run(p, b.Text, false)
	case KindBullet:
		p := doc.AddParagraph("")
		p.Style(listStyle)
		s.run(p, b.Text, false)
	case KindTable:
		s.table(doc, b)
	case KindSpacer:
		doc.AddParagraph("")
	}
	return nil
}

func (s style) table(doc *docx.RootDoc, b Block) {
	tbl := doc.AddTable()
	tbl.Style(tableStyle)

	for i, cells := range b.Rows {
		row := tbl.AddRow()
		for j, text := range cells {
			bold := (b.HeaderRow && i == 0) || (b.FirstColumnBold && j == 0)
			s.run(row.AddCell().AddParagraph(""), text, bold)
		}
	}
}

func (s style) run(p *docx.Paragraph, text string, bold bool) {
	if text == "" {
		return
	}
	r := p.AddText(text).Font(s.font).Size(s.size).Color(textColor)
	if bold {
		r.Bold(true)
	}
}
