package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Summary renders the steps of a finished run with their thumbnail status.
func Summary(res Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Step", "Time", "Thumbnail"})

	if res.Document != nil {
		for _, step := range res.Document.Steps {
			tw.AppendRow(table.Row{step.Numbering, step.GroupName, step.TimeStamp, thumbStatus(step.Thumbnail)})
			for _, sub := range step.SubSteps {
				tw.AppendRow(table.Row{sub.Numbering, "  " + sub.Step, sub.TimeStamp, thumbStatus(sub.Thumbnail)})
			}
		}
	}

	thumbs := fmt.Sprintf("%d/%d", res.Thumbnails.Extracted, res.Thumbnails.Total)
	if !res.Thumbnails.OK() {
		thumbs += fmt.Sprintf(" (%d missing)", res.Thumbnails.Skipped+res.Thumbnails.Failed)
	}
	tw.AppendFooter(table.Row{"", "Thumbnails", "", thumbs})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, WidthMax: 60},
	})
	tw.SetTitle(title(res))

	return tw.Render()
}

func title(res Result) string {
	if res.Document == nil || res.Document.ProcessName == "" {
		return "Process"
	}
	return res.Document.ProcessName
}

func thumbStatus(path string) string {
	if path == "" {
		return "-"
	}
	return filepath.Base(path)
}
