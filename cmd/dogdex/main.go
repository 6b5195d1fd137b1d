package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gitlab.com/kennelworks/dogdex/internal/config"
	"gitlab.com/kennelworks/dogdex/internal/dogs"
	apperrors "gitlab.com/kennelworks/dogdex/internal/errors"
	"gitlab.com/kennelworks/dogdex/internal/report/console"
	"gitlab.com/kennelworks/dogdex/internal/types"
)

// classify maps a load error onto its terminal status. The service only
// produces the two typed kinds; anything decode-side counts as format.
func classify(err error) types.LoadStatus {
	if err == nil {
		return types.StatusSuccess
	}
	var readErr *apperrors.FileReadError
	if errors.As(err, &readErr) {
		return types.StatusAccessError
	}
	return types.StatusFormatError
}

func run(cfg config.AppConfig, service dogs.Service) int {
	loaded, err := service.LoadFile(cfg.DogsFile)
	if err != nil {
		status := classify(err)
		log.Error().Err(err).Str("file", cfg.DogsFile).Msg("Failed to load dogs file")
		console.PrintLoadError(status, err)
		return status.ExitCode()
	}

	log.Info().
		Int("dogs", len(loaded)).
		Str("file", cfg.DogsFile).
		Msg("Loaded dogs file")

	if cfg.Check {
		canonical, err := service.CanonicalJSON(loaded)
		if err != nil {
			log.Error().Err(err).Msg("Failed to re-encode dogs")
			console.PrintLoadError(types.StatusFormatError, err)
			return types.StatusFormatError.ExitCode()
		}
		original, err := os.ReadFile(cfg.DogsFile)
		if err != nil {
			readErr := &apperrors.FileReadError{Path: cfg.DogsFile, Err: err}
			log.Error().Err(readErr).Msg("Failed to re-read dogs file for check")
			console.PrintLoadError(types.StatusAccessError, readErr)
			return types.StatusAccessError.ExitCode()
		}
		console.PrintCheck(string(original), canonical, cfg.NoColor)
		return 0
	}

	console.PrintDogs(loaded)
	return 0
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	if cfg.Quiet {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	os.Exit(run(cfg, dogs.NewDefaultService()))
}
