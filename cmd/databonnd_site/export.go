package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/databonnd/site/internal/animation"
	"github.com/databonnd/site/internal/companies"
	"github.com/databonnd/site/internal/export"
	"github.com/databonnd/site/internal/observability"
	"github.com/databonnd/site/internal/paths"
	"github.com/databonnd/site/internal/viewport"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the site as static files",
	Long:  "Renders the landing page, companies page, both backgrounds and all assets into a directory that any static file host can serve.",
	RunE:  runExport,
}

var (
	exportOut   string
	exportMode  string
	exportFlags siteFlags
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output directory (required)")
	exportCmd.Flags().StringVar(&exportMode, "mode", "desktop", "Background baked into the pages: mobile or desktop")
	exportFlags.register(exportCmd.Flags())

	if err := exportCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	mode, err := viewport.ParseMode(exportMode)
	if err != nil {
		return err
	}

	cfg, err := exportFlags.resolve(cmd.Flags())
	if err != nil {
		return err
	}

	catalog, err := companies.Load(cfg.CompaniesFile)
	if err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}

	result, err := export.Run(cmd.Context(), export.Options{
		OutDir:    exportOut,
		Mode:      mode,
		Seed:      cfg.DefaultSeed,
		Site:      siteFromConfig(cfg),
		Companies: catalog,
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		layout := paths.ForMode(mode)
		profile := animation.ProfileFor(mode)
		printer.PrintLayout(layout, animation.Plan(layout.Strokes, profile, animation.NewSource(result.Seed)))
		printer.PrintCatalog(catalog)
		printer.PrintWrittenFiles(result.OutDir, result.Files)
	}
	fmt.Printf("Successfully exported %d files to %s\n", len(result.Files), result.OutDir)
	return nil
}
