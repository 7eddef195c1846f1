// Package main provides the normalizer command-line tool: it reads JSON records
// from stdin, runs them through the selected transform and writes one canonical
// record per line to stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"procnorm/internal/config"
	"procnorm/internal/formatter"
	"procnorm/internal/logger"
	"procnorm/internal/normalizer"
	"procnorm/internal/stream"
)

// Process exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitConfig  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// cliFlags holds the raw flag values before they are merged over the config file.
type cliFlags struct {
	configPath string
	inputPath  string
	outputPath string
	values     config.Config
}

func newFlagSet(stderr io.Writer, registry normalizer.Registry) (*flag.FlagSet, *cliFlags) {
	fs := flag.NewFlagSet("normalizer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &cliFlags{}
	v := &f.values

	fs.StringVar(&v.Transform, "transform", "", "Transform name; empty or unknown passes records through")
	fs.StringVar(&v.Transform, "t", "", "Shorthand for -transform")
	fs.StringVar(&v.Country, "country", "", "Country code override (e.g. MX, GT, HU)")
	fs.StringVar(&v.Country, "c", "", "Shorthand for -country")
	fs.StringVar(&v.ExtraData, "extra-data", "", "Extra fields merged into every record (e.g. folder=contratos|year=2021)")
	fs.StringVar(&v.ExtraData, "d", "", "Shorthand for -extra-data")
	fs.StringVar(&v.FieldDelimiter, "field-delimiter", config.DefaultFieldDelimiter, "Separator between extra data pairs")
	fs.StringVar(&v.ValueDelimiter, "value-delimiter", config.DefaultValueDelimiter, "Separator between key and value of a pair")
	fs.StringVar(&v.Logging.Level, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.StringVar(&v.Logging.Format, "log-format", "console", "Log format (console, json)")
	fs.BoolVar(&v.Summary, "summary", false, "Print a run summary table to stderr")
	fs.StringVar(&f.configPath, "config", "", "Path to a YAML config file; flags override its values")
	fs.StringVar(&f.inputPath, "input", "", "Input file (default stdin)")
	fs.StringVar(&f.outputPath, "output", "", "Output file (default stdout)")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, "Usage: normalizer [flags] < records.json > normalized.json")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Flags:")
		fs.PrintDefaults()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Transforms:")

		for _, name := range registry.Names() {
			fmt.Fprintf(out, "  %s\n", name)
		}
	}

	return fs, f
}

// resolveConfig loads the config file when given and applies every flag that was
// set explicitly on top of it.
func resolveConfig(fs *flag.FlagSet, f *cliFlags) (*config.Config, error) {
	cfg := config.Default()

	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "transform", "t":
			cfg.Transform = f.values.Transform
		case "country", "c":
			cfg.Country = f.values.Country
		case "extra-data", "d":
			cfg.ExtraData = f.values.ExtraData
		case "field-delimiter":
			cfg.FieldDelimiter = f.values.FieldDelimiter
		case "value-delimiter":
			cfg.ValueDelimiter = f.values.ValueDelimiter
		case "log-level":
			cfg.Logging.Level = f.values.Logging.Level
		case "log-format":
			cfg.Logging.Format = f.values.Logging.Format
		case "summary":
			cfg.Summary = f.values.Summary
		}
	})

	cfg.Transform = strings.TrimSpace(cfg.Transform)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	registry := normalizer.DefaultRegistry()

	fs, f := newFlagSet(stderr, registry)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitConfig
	}

	cfg, err := resolveConfig(fs, f)
	if err != nil {
		fmt.Fprintf(stderr, "normalizer: %v\n", err)
		return exitConfig
	}

	opts, err := cfg.Options()
	if err != nil {
		fmt.Fprintf(stderr, "normalizer: invalid extra data: %v\n", err)
		return exitConfig
	}

	base, err := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Output: stderr})
	if err != nil {
		fmt.Fprintf(stderr, "normalizer: %v\n", err)
		return exitConfig
	}

	log := base.With(zap.String("run_id", uuid.NewString()), zap.String("transform", cfg.Transform))
	defer func() { _ = log.Sync() }()

	proc := normalizer.NewProcessor(cfg.Transform, registry, opts)
	if cfg.Transform != "" && proc.Passthrough() {
		log.Warn("unknown transform, passing records through")
	}

	in := stdin
	if f.inputPath != "" && f.inputPath != "-" {
		file, err := os.Open(f.inputPath)
		if err != nil {
			log.Error("failed to open input", zap.String("path", f.inputPath), zap.Error(err))
			return exitFailure
		}
		defer file.Close()

		in = file
	}

	out := stdout
	var outFile *os.File

	if f.outputPath != "" && f.outputPath != "-" {
		outFile, err = os.Create(f.outputPath)
		if err != nil {
			log.Error("failed to create output", zap.String("path", f.outputPath), zap.Error(err))
			return exitFailure
		}

		out = outFile
	}

	log.Debug("starting run", zap.Int("overlay_keys", len(opts.Overlay)), zap.String("country", opts.Country))

	stats, runErr := stream.Run(ctx, in, out, proc, log)

	if outFile != nil {
		if err := outFile.Close(); err != nil && runErr == nil {
			runErr = fmt.Errorf("close output: %w", err)
		}
	}

	log.Info("run finished",
		zap.Int("read", stats.Read),
		zap.Int("emitted", stats.Emitted),
		zap.Int("dropped", stats.Dropped),
		zap.Int("failed", stats.Failed),
	)

	if cfg.Summary {
		fmt.Fprint(stderr, formatter.FormatSummary(cfg.Transform, stats))
	}

	if runErr != nil {
		log.Error("run aborted", zap.Error(runErr))
		return exitFailure
	}

	return exitOK
}
