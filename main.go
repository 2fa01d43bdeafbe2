package main

import (
	"fmt"
	"log/slog"
	"os"

	"comic-collector/comics"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		catalogPath string
		reportDir   string
	)

	cmd := &cobra.Command{
		Use:           "comic-collector",
		Short:         "Interactive catalog for a comic-book shop",
		Long:          "comic-collector runs an interactive text menu for registering users,\nbrowsing the comic catalog, reserving and purchasing comics, and\nexporting a users-and-sales report.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("catalog") {
				cfg.CatalogPath = catalogPath
			}
			if cmd.Flags().Changed("report-dir") {
				cfg.ReportDir = reportDir
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			store := comics.NewCatalogStore(cfg.CatalogPath)
			session := comics.NewSession(store, cfg.ReportDir, logger)

			runMenu(session)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "settings.yaml", "path to the settings file")
	cmd.Flags().StringVar(&catalogPath, "catalog", "comic.csv", "path to the catalog CSV file")
	cmd.Flags().StringVar(&reportDir, "report-dir", ".", "directory for exported reports")
	return cmd
}
