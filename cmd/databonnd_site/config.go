package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/databonnd/site/internal/config"
	"github.com/databonnd/site/internal/rendering"
)

// siteFlags are the flags shared by serve and export.
type siteFlags struct {
	configPath string
	companies  string
	seed       int64
	verbose    bool
}

func (f *siteFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.configPath, "config", "c", "", "Path to JSON config file (optional)")
	fs.StringVar(&f.companies, "companies", "", "Path to company catalog JSON (defaults to the embedded catalog)")
	fs.Int64Var(&f.seed, "seed", 0, "Animation seed (0 = fresh seed per server render or per export run)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Print layout and catalog summaries")
}

// resolve loads the config file, fills defaults and lets explicitly set
// flags win.
func (f *siteFlags) resolve(fs *pflag.FlagSet) (config.Config, error) {
	cfg := config.Defaults()
	if f.configPath != "" {
		fileCfg, err := config.LoadConfig(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if fs.Changed("companies") {
		cfg.CompaniesFile = f.companies
	}
	if fs.Changed("seed") {
		cfg.DefaultSeed = f.seed
	}
	if fs.Changed("verbose") {
		cfg.Verbose = f.verbose
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func siteFromConfig(cfg config.Config) rendering.Site {
	return rendering.Site{Title: cfg.SiteTitle, Description: cfg.SiteDescription}
}
