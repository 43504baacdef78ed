package main

import "github.com/spf13/cobra"

func newGenerateCommand(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <video> <transcript>",
		Short: "Run the full pipeline on one recording",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.generate(cmd, args[0], args[1])
		},
	}
}
