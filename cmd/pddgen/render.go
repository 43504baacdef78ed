package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/pdd-flow/internal/config"
	"github.com/nguyentantai21042004/pdd-flow/internal/docgen"
	"github.com/nguyentantai21042004/pdd-flow/internal/pdd"
)

func newRenderCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "render <input.json> <output.docx>",
		Short: "Render a Word document from an existing JSON sidecar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			app.log.Info(ctx, "Reading data from: %s", args[0])
			doc, err := pdd.Load(args[0])
			if err != nil {
				return err
			}
			for _, issue := range doc.Validate() {
				app.log.Warn(ctx, "Input data: %s", issue)
			}

			renderer, err := docgen.New(cfg.Document, app.log)
			if err != nil {
				return err
			}
			if err := renderer.Render(ctx, doc, args[1]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Document: %s\n", args[1])
			return nil
		},
	}
}
