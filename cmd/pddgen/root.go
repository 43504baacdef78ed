package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	app := &application{}

	rootCmd := &cobra.Command{
		Use:   "pddgen <video> <transcript>",
		Short: "Generate a Process Definition Document from a screen recording",
		Long: "pddgen uploads a screen recording to Gemini together with its transcript,\n" +
			"extracts the process steps, grabs a thumbnail per step with ffmpeg and\n" +
			"writes a JSON sidecar plus a Word document.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected <video> <transcript>, got %d argument(s)", len(args))
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return app.generate(cmd, args[0], args[1])
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&app.configFlag, "config", "c", "", "Configuration file path")
	flags.StringVarP(&app.outputFlag, "output", "o", "", "Output directory")
	flags.StringVar(&app.layoutFlag, "layout", "", "Document layout (pdd or simple)")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newGenerateCommand(app))
	rootCmd.AddCommand(newRenderCommand(app))
	rootCmd.AddCommand(newWatchCommand(app))

	return rootCmd
}
