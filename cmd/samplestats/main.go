// Command samplestats draws values from every sampling operation and logs
// statistics describing their distributions.
//
// It is configured through environment variables:
//
//	SAMPLESTATS_SAMPLES       number of samples per operation (default 100000)
//	SAMPLESTATS_SEED          seed for a reproducible run, 0 uses the shared sampler
//	SAMPLESTATS_BINS          number of histogram bins (default 10)
//	SAMPLESTATS_PROFILE       "cpu" or "mem" to write a profile
//	SAMPLESTATS_PROFILE_PATH  directory for the profile (default ".")
//	SAMPLESTATS_LOG_LEVEL     debug, info, warn or error
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/oliverbestmann/gmrand"
	"github.com/pkg/profile"
)

func main() {
	config, err := ParseConfig(nil)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel})))

	switch config.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(config.ProfilePath), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(config.ProfilePath), profile.Quiet).Stop()
	}

	sampler := gmrand.Shared()
	if config.Seed != 0 {
		sampler = gmrand.NewSeeded(config.Seed)
	}

	slog.Debug("Start sampling",
		slog.Int("samples", config.Samples),
		slog.Int("bins", config.Bins),
		slog.Uint64("seed", config.Seed))

	startTime := time.Now()

	for _, report := range Measure(sampler, config.Samples, config.Bins) {
		slog.Info(report.Name,
			slog.Float64("mean", report.Summary.Mean),
			slog.Float64("stddev", report.Summary.StdDev),
			slog.Float64("min", report.Summary.Min),
			slog.Float64("max", report.Summary.Max),
			slog.Float64("chiSquare", report.ChiSquare))
	}

	slog.Debug("Finished sampling", slog.Duration("duration", time.Since(startTime)))
}
