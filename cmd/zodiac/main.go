package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xtding233/zodiac-calc/internal/profile"
	"github.com/xtding233/zodiac-calc/internal/shell"
	"github.com/xtding233/zodiac-calc/internal/zodiac"
)

var version = "0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run holds everything main does so deferred cleanup runs before exit.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	config, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fs := flag.NewFlagSet("zodiac", flag.ContinueOnError)
	configDir := fs.String("config", config.ConfigDir, "Directory holding profiles/<name>.yaml")
	profileName := fs.String("profile", config.Profile, "Formula profile layered on profiles/default.yaml")
	format := fs.String("format", config.Format, "Number format: scientific|comma|si")
	relic := fs.Float64("relic", 0, "Show sale price multiplied by this relic factor (0 = off)")
	simulate := fs.Int("simulate", config.Simulate, "Run enhance and rarity roll simulations with N trials")
	seed := fs.Uint64("seed", 0, "Seed for simulations (0 = random)")
	bars := fs.Bool("bars", false, "Draw bars next to rarity chances")
	rarity := fs.String("rarity", "", "Zodiac rarity (one-shot mode)")
	quality := fs.String("quality", "", "Zodiac quality (one-shot mode)")
	level := fs.String("level", "", "Zodiac level (one-shot mode)")
	luck := fs.String("luck", "", "Luck (one-shot mode)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "zodiac [flags] | version\n\nWith any of -rarity/-quality/-level/-luck it prints one result and exits;\notherwise it prompts interactively.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if rest := fs.Args(); len(rest) > 0 && rest[0] == "version" {
		fmt.Fprintln(stdout, "zodiac", version)
		return nil
	}

	logger, closeLog, err := openLogger(config.LogPath, config.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closeLog()
	slog.SetDefault(logger)

	var overrides profile.Overrides
	if *format != "" {
		overrides.Format = format
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "relic" {
			overrides.RelicMultiplier = relic
		}
	})

	sh := shell.New(shell.Config{
		Loader:    profile.NewLoader(*configDir),
		Profile:   *profileName,
		Overrides: overrides,
		ShowBars:  *bars,
		Simulate:  *simulate,
		Seed:      *seed,
	}, stdin, stdout, logger)

	in, oneShot, err := statsFromFlags(*rarity, *quality, *level, *luck)
	if err != nil {
		return err
	}
	if oneShot {
		return sh.Calculate(in)
	}
	return sh.Run()
}

// openLogger logs to stderr and to path, creating its directory.
func openLogger(path string, level slog.Level) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(io.MultiWriter(os.Stderr, f), &slog.HandlerOptions{
		Level: level,
	}))
	return logger, func() { _ = f.Close() }, nil
}

func statsFromFlags(rarity, quality, level, luck string) (zodiac.StatInput, bool, error) {
	var in zodiac.StatInput
	for _, f := range []struct {
		name string
		text string
		dst  **float64
	}{
		{"rarity", rarity, &in.Rarity},
		{"quality", quality, &in.Quality},
		{"level", level, &in.Level},
		{"luck", luck, &in.Luck},
	} {
		v, err := zodiac.ParseStat(f.text)
		if err != nil {
			return zodiac.StatInput{}, false, fmt.Errorf("-%s: %w", f.name, err)
		}
		*f.dst = v
	}
	return in, in.Provided() > 0, nil
}
