package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0xb0b1/portfolio/config"
	"github.com/0xb0b1/portfolio/logging"
)

var (
	cfgFile   string
	appConfig *config.Config
	logger    *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Multilingual portfolio site",
	Long: `portfolio serves a multilingual developer portfolio built from markdown
pages and per-locale project catalogs, or exports it as static files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initialize()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./portfolio.yaml)")
}

func initialize() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	base, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = base.Sugar()
	return nil
}
