package docgen

import (
	"fmt"
	"time"

	"github.com/nguyentantai21042004/pdd-flow/internal/pdd"
)

const (
	stepImageWidth     = 5.2
	stepImageHeight    = 2.93
	subStepImageWidth  = 4.17
	subStepImageHeight = 2.34

	purposeFallback = "Purpose not specified."
	dateLayout      = "1/2/2006"
)

type meta struct {
	PreparedBy string
	Date       time.Time
}

type layoutFunc func(doc *pdd.Document, m meta) []Block

var layouts = map[string]layoutFunc{
	LayoutPDD:    pddLayout,
	LayoutSimple: simpleLayout,
}

// pddLayout follows the PDD template: metadata, applications, steps,
// exceptions and open clarifications.
func pddLayout(doc *pdd.Document, m meta) []Block {
	blocks := []Block{
		title("Process Definition Document"),
		spacer(),
		{
			Kind:            KindTable,
			FirstColumnBold: true,
			Rows: [][]string{
				{"Project:", doc.ProcessName},
				{"Process:", doc.ShortDescription},
				{"Prepared by:", m.PreparedBy},
				{"Date:", m.Date.Format(dateLayout)},
			},
		},
		spacer(),
		heading("2.2 Applications Utilized", 1),
	}

	apps := [][]string{{"Name", "Description / Purpose", "Application Type"}}
	for _, app := range doc.Applications {
		purpose := app.URL
		if purpose == "" {
			purpose = purposeFallback
		}
		apps = append(apps, []string{app.Name, purpose, app.Type})
	}
	blocks = append(blocks,
		Block{Kind: KindTable, HeaderRow: true, Rows: apps},
		spacer(),
		heading("5.0 Detailed Process Steps", 1),
	)
	blocks = append(blocks, stepBlocks(doc.Steps)...)
	blocks = append(blocks, spacer(), heading("6.0 Business Exceptions", 1))

	exceptions := [][]string{{"Exception", "Handling"}}
	for _, ex := range doc.Exceptions {
		exceptions = append(exceptions, []string{ex.Exception, ex.Description})
	}
	blocks = append(blocks, Block{Kind: KindTable, HeaderRow: true, Rows: exceptions})

	if len(doc.Clarifications) > 0 {
		blocks = append(blocks, spacer(), heading("7.0 Requires Clarification", 1))
		for _, c := range doc.Clarifications {
			blocks = append(blocks, bullet(c))
		}
	}

	return blocks
}

func simpleLayout(doc *pdd.Document, _ meta) []Block {
	blocks := []Block{
		title(doc.ProcessName),
		spacer(),
		labelled("Process Description: ", doc.ShortDescription),
		spacer(),
	}
	return append(blocks, stepBlocks(doc.Steps)...)
}

func stepBlocks(steps []pdd.Step) []Block {
	var blocks []Block
	for _, step := range steps {
		blocks = append(blocks, heading(fmt.Sprintf("%s %s", step.Numbering, step.GroupName), 2))
		if step.Thumbnail != "" {
			blocks = append(blocks, image(step.Thumbnail, stepImageWidth, stepImageHeight, "step "+step.Numbering))
		}

		for _, sub := range step.SubSteps {
			blocks = append(blocks, bullet(fmt.Sprintf("%s %s (Timestamp: %s)", sub.Numbering, sub.Step, sub.TimeStamp)))
			if sub.Thumbnail != "" {
				blocks = append(blocks, image(sub.Thumbnail, subStepImageWidth, subStepImageHeight, "sub-step "+sub.Numbering))
			}
		}
		blocks = append(blocks, spacer())
	}
	return blocks
}
