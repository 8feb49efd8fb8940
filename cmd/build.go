package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/0xb0b1/portfolio/config"
	"github.com/0xb0b1/portfolio/export"
	"github.com/0xb0b1/portfolio/pages"
)

var outputDir string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Exports the site as static files",
	Long: `The build command renders every page in every locale, the project pages,
a 404 page and the static assets into the output directory. Links use the
static path scheme regardless of DEPLOY_TARGET.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg := *appConfig
		cfg.DeployTarget = config.DeployStatic
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}

		_, err := newExporter(&cfg).Export(ctx)
		return err
	},
}

func newExporter(cfg *config.Config) *export.Exporter {
	return &export.Exporter{
		Site:      pages.New(cfg, logger),
		StaticDir: cfg.StaticDir,
		OutputDir: cfg.OutputDir,
		Log:       logger,
	}
}

func exportOnce(ctx context.Context, e *export.Exporter) error {
	stats, err := e.Export(ctx)
	if err != nil {
		return err
	}
	logger.Debugf("Rebuilt %d pages", stats.Pages+stats.Projects)
	return nil
}

func init() {
	buildCmd.Flags().StringVarP(&outputDir, "out", "o", "", "output directory (default from config)")
	rootCmd.AddCommand(buildCmd)
}
