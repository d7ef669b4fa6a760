package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/databonnd/site/internal/companies"
	"github.com/databonnd/site/internal/observability"
	"github.com/databonnd/site/internal/server"
	"github.com/databonnd/site/internal/server/ratelimit"
)

var (
	servePort  int
	serveFlags siteFlags
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the site server",
	Long:  `Start an HTTP server for the landing and companies pages, the standalone background and the viewport websocket.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveFlags.register(serveCmd.Flags())
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := serveFlags.resolve(cmd.Flags())
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	catalog, err := companies.Load(cfg.CompaniesFile)
	if err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}
	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintCatalog(catalog)
	}

	rl := ratelimit.LoadConfig()
	if cfg.RateLimitEnabled != nil && !*cfg.RateLimitEnabled {
		rl = &ratelimit.Config{Enabled: false}
	}

	srv, err := server.New(server.Config{
		Port:      cfg.Port,
		Site:      siteFromConfig(cfg),
		Companies: catalog,
		Seed:      cfg.DefaultSeed,
		RateLimit: rl,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
