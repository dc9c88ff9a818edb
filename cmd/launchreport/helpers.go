package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"launch-dashboard-service/internal/adapters/secondary/datasource"
	"launch-dashboard-service/internal/config"
	"launch-dashboard-service/internal/core/domain"
	"launch-dashboard-service/internal/core/services"
	"launch-dashboard-service/internal/format"
)

// loadReport loads the dataset named by the environment and the root flags
// and builds the findings report over it.
func loadReport(cmd *cobra.Command) (domain.Report, error) {
	cfg, err := config.Load()
	if err != nil {
		return domain.Report{}, fmt.Errorf("load config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return domain.Report{}, err
	}

	// Tables go to stdout; keep the loader's logs out of the way.
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(log.WarnLevel)

	ctx := cmd.Context()
	source, release, err := datasource.New(ctx, cfg.Dataset, cfg.Database)
	if err != nil {
		return domain.Report{}, err
	}
	defer release()

	dataset, err := services.NewDatasetService(source, cfg.Dataset.Timeout).Load(ctx)
	if err != nil {
		return domain.Report{}, err
	}
	return services.NewReportService(dataset).Build(cfg.Dashboard.ReportBandWidth)
}

// applyFlags layers explicitly set root flags over the loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Dataset.Source = rootFlags.source
	}
	if flags.Changed("url") {
		cfg.Dataset.URL = rootFlags.url
	}
	if flags.Changed("path") {
		cfg.Dataset.Path = rootFlags.path
		if !flags.Changed("source") {
			cfg.Dataset.Source = config.SourceFile
		}
	}
	if flags.Changed("band-width") {
		cfg.Dashboard.ReportBandWidth = rootFlags.bandWidth
	}
	return cfg.Validate()
}

func outputMode() format.Mode {
	if rootFlags.markdown {
		return format.Markdown
	}
	return format.ASCII
}
