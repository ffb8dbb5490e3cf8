// forkplot is the headless companion to forkviewer: it writes the standard
// fork charts to files (PNG or SVG), lists the built-in datasets, and
// prints the per-threshold mean table. It can also chart a two-column CSV
// produced by a fresh simulation run.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AdnanAhmed12/Multiverse/src/results"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "forkplot",
		Short:         "Render multiverse fork-count charts without a display",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			results.SetLogLevel(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.AddCommand(newListCmd(), newMeansCmd(), newRenderCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeList(cmd.OutOrStdout())
		},
	}
}

func newMeansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "means",
		Short: "Print the mean fork count of each threshold sweep",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeMeans(cmd.OutOrStdout())
		},
	}
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render charts to files",
		Long: "Render the standard charts (or one selected with --chart, or a\n" +
			"two-column x,y CSV given with --input) into the output directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatPNG && opts.format != formatSVG {
				return fmt.Errorf("unsupported format %q (want %s or %s)", opts.format, formatPNG, formatSVG)
			}
			if opts.input != "" {
				return renderCSV(opts)
			}
			if opts.chart != "" {
				return renderOne(opts)
			}
			return renderAll(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "charts", "output directory")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatPNG, "output format: png or svg")
	cmd.Flags().StringVarP(&opts.chart, "chart", "c", "", "render only the named chart")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "render a two-column x,y CSV file instead of the built-ins")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title for --input (default: file name)")
	return cmd
}
