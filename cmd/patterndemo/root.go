package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/paint"
)

var rootCmd = &cobra.Command{
	Use:           "patterndemo",
	Short:         "Render and inspect paint pattern scenes",
	Long:          "patterndemo builds solid, gradient and surface patterns from a YAML scene and paints them onto an image.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = paint.Version
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log pattern lifecycle to stderr")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		if verbose {
			paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
		return nil
	}
}
