package config

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

type AppConfig struct {
	DogsFile string
	Check    bool
	NoColor  bool
	Quiet    bool
}

// loads configuration from cli flags
func Load() AppConfig {
	cfg := AppConfig{}
	flag.StringVarP(&cfg.DogsFile, "file", "f", "", "Path to JSON file containing dogs (required)")
	flag.BoolVar(&cfg.Check, "check", false, "Diff the file against its canonical re-encoding instead of printing the table")
	flag.BoolVar(&cfg.NoColor, "no-color", false, "Disable coloring")
	flag.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Suppress informational logging")
	helpRequested := flag.BoolP("help", "h", false, "Show this menu")

	flag.Parse()

	if *helpRequested {
		fmt.Println("Usage of dogdex:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if cfg.DogsFile == "" {
		log.Panic().Msg("Dogs file path (-f or --file) is required.")
	}

	if cfg.NoColor {
		text.DisableColors()
	}

	return cfg
}
