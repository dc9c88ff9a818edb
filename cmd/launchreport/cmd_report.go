package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"launch-dashboard-service/internal/core/domain"
	"launch-dashboard-service/internal/format"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Success tally per launch site",
	Args:  cobra.NoArgs,
	RunE:  reportRunner(printSites),
}

var boostersCmd = &cobra.Command{
	Use:   "boosters",
	Short: "Success tally per booster version category",
	Args:  cobra.NoArgs,
	RunE:  reportRunner(printBoosters),
}

var payloadCmd = &cobra.Command{
	Use:   "payload",
	Short: "Success tally per payload mass band",
	Args:  cobra.NoArgs,
	RunE:  reportRunner(printPayload),
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Headline findings followed by every tally",
	Args:  cobra.NoArgs,
	RunE: reportRunner(func(out io.Writer, r domain.Report) {
		section(out, "Findings", format.Highlights(outputMode(), r))
		printSites(out, r)
		printBoosters(out, r)
		printPayload(out, r)
	}),
}

func reportRunner(print func(io.Writer, domain.Report)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		report, err := loadReport(cmd)
		if err != nil {
			return err
		}
		print(cmd.OutOrStdout(), report)
		return nil
	}
}

func printSites(out io.Writer, r domain.Report) {
	section(out, "Launch sites", format.RateTable(outputMode(), "Launch site", r.Sites, r.Total))
}

func printBoosters(out io.Writer, r domain.Report) {
	section(out, "Booster versions", format.RateTable(outputMode(), "Booster version", r.Boosters, r.Total))
}

func printPayload(out io.Writer, r domain.Report) {
	title := fmt.Sprintf("Payload bands (%.0f kg)", r.BandWidth)
	section(out, title, format.BandTable(outputMode(), r.PayloadBands))
}

func section(out io.Writer, title, body string) {
	if rootFlags.markdown {
		fmt.Fprintf(out, "## %s\n\n%s\n\n", title, body)
		return
	}
	fmt.Fprintf(out, "%s\n%s\n\n", title, body)
}
