// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command extbench runs the self-check suite of extended values and compares
// aggregation of extended values with aggregation of primitives.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/avdva/extended/internal/bench"
	"github.com/avdva/extended/internal/selfcheck"
)

const usage = `extbench runs the extended values self-check and benchmark

Usage:

  extbench [flags]

The flags are:

  -config <file>       toml config file, flags override its values
  -size <n>            number of samples
  -min <n>             minimal sample value
  -max <n>             maximal sample value
  -seed <n>            random seed
  -skip-checks         don't run the self-check suite
  -skip-bench          don't run the benchmark
  -log-level <level>   one of trace, debug, info, warn, error

Config file example:

  log_level = "debug"

  [bench]
  size = 1000000
  min = -100
  max = 100
  seed = 42
`

type config struct {
	LogLevel   string       `toml:"log_level"`
	SkipChecks bool         `toml:"skip_checks"`
	SkipBench  bool         `toml:"skip_bench"`
	Bench      bench.Config `toml:"bench"`
}

func defaultConfig() config {
	return config{
		LogLevel: zerolog.InfoLevel.String(),
		Bench:    bench.DefaultConfig(),
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run returns the exit code: 0 on success, 1 if a check or the benchmark failed, 2 on bad usage.
func run(args []string, out io.Writer) int {
	cfg, err := parseConfig(args, out)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
	if err != nil {
		logger.Error().Err(err).Msg("bad configuration")
		return 2
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Error().Err(err).Msg("bad log level")
		return 2
	}
	logger = logger.Level(level)
	logger.Debug().Interface("config", cfg).Msg("starting")

	code := 0
	if !cfg.SkipChecks && !runChecks(logger) {
		code = 1
	}
	if !cfg.SkipBench && !runBench(logger, cfg.Bench) {
		code = 1
	}
	return code
}

func parseConfig(args []string, out io.Writer) (config, error) {
	cfg := defaultConfig()
	fs := flag.NewFlagSet("extbench", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { fmt.Fprint(out, usage) }
	var (
		path       = fs.String("config", "", "toml config file")
		size       = fs.Int("size", cfg.Bench.Size, "number of samples")
		low        = fs.Int64("min", cfg.Bench.Min, "minimal sample value")
		high       = fs.Int64("max", cfg.Bench.Max, "maximal sample value")
		seed       = fs.Int64("seed", cfg.Bench.Seed, "random seed")
		skipChecks = fs.Bool("skip-checks", cfg.SkipChecks, "don't run the self-check suite")
		skipBench  = fs.Bool("skip-bench", cfg.SkipBench, "don't run the benchmark")
		logLevel   = fs.String("log-level", cfg.LogLevel, "log level")
	)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments %v", fs.Args())
	}
	if len(*path) > 0 {
		md, err := toml.DecodeFile(*path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("config %s: %w", *path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("config %s: unknown key %s", *path, undecoded[0])
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Bench.Size = *size
		case "min":
			cfg.Bench.Min = *low
		case "max":
			cfg.Bench.Max = *high
		case "seed":
			cfg.Bench.Seed = *seed
		case "skip-checks":
			cfg.SkipChecks = *skipChecks
		case "skip-bench":
			cfg.SkipBench = *skipBench
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	return cfg, nil
}

func runChecks(logger zerolog.Logger) bool {
	report := selfcheck.Run(selfcheck.Suite())
	for _, res := range report.Results {
		if res.Err == nil {
			logger.Info().Str("check", res.Name).Msg("succeeded")
		} else {
			logger.Error().Str("check", res.Name).Err(res.Err).Msg("failed")
		}
	}
	if report.OK() {
		logger.Info().Msg(report.String())
	} else {
		logger.Error().Msg(report.String())
	}
	return report.OK()
}

func runBench(logger zerolog.Logger, cfg bench.Config) bool {
	logger.Info().Int("size", cfg.Size).Int64("min", cfg.Min).Int64("max", cfg.Max).Msg("running benchmark")
	res, err := bench.Run(cfg)
	if errors.Is(err, bench.ErrInvalidConfig) {
		logger.Error().Err(err).Msg("benchmark not started")
		return false
	}
	logger.Info().
		Str("primitive", res.PrimitiveTime.String()).
		Str("extended", res.ExtendedTime.String()).
		Str("decimal", res.DecimalTime.String()).
		Float64("overhead", res.Overhead()).
		Msg("benchmark finished")
	if err != nil {
		logger.Error().Err(err).Msg("sanity check failed")
		return false
	}
	logger.Info().Int64("sum", res.PrimitiveSum).Int64("product", res.PrimitiveProduct).Msg("sanity check succeeded")
	return true
}
