package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	source    string
	url       string
	path      string
	bandWidth float64
	markdown  bool
}

var rootCmd = &cobra.Command{
	Use:   "launchreport",
	Short: "Summarise SpaceX launch outcomes by site, booster and payload",
	Long: "launchreport loads the launch dataset the dashboard serves and prints\n" +
		"success tallies as terminal or Markdown tables.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.source, "source", "", "Dataset source: http, file or postgres (default from DATASET_SOURCE)")
	f.StringVar(&rootFlags.url, "url", "", "CSV dataset URL for --source=http")
	f.StringVar(&rootFlags.path, "path", "", "CSV dataset file for --source=file")
	f.Float64Var(&rootFlags.bandWidth, "band-width", 0, "Payload band width in kg (default from REPORT_BAND_WIDTH)")
	f.BoolVar(&rootFlags.markdown, "markdown", false, "Render Markdown tables instead of terminal tables")

	rootCmd.AddCommand(sitesCmd)
	rootCmd.AddCommand(boostersCmd)
	rootCmd.AddCommand(payloadCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
