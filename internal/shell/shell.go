package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/xtding233/zodiac-calc/internal/display"
	"github.com/xtding233/zodiac-calc/internal/profile"
	"github.com/xtding233/zodiac-calc/internal/zodiac"
)

// Config wires a Shell to its profile and presentation choices.
type Config struct {
	Loader    *profile.Loader
	Profile   string
	Overrides profile.Overrides
	ShowBars  bool
	// Simulate > 0 adds enhance and roll simulations with that many trials.
	Simulate int
	Seed     uint64 // 0 means crypto randomness
}

// Shell is the interactive prompt loop around the engine.
type Shell struct {
	cfg     Config
	in      *bufio.Scanner
	out     io.Writer
	log     *slog.Logger
	watcher *profile.Watcher

	// last profile that resolved cleanly; used while the file on disk is broken
	good *resolved
}

type resolved struct {
	params zodiac.Params
	set    profile.Settings
}

// New builds a Shell reading answers from r and printing to w.
func New(cfg Config, r io.Reader, w io.Writer, log *slog.Logger) *Shell {
	if cfg.Loader == nil {
		cfg.Loader = profile.NewLoader(".")
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	name := cfg.Profile
	if name == "" {
		name = profile.DefaultName
	}
	paths := cfg.Loader.Paths()
	return &Shell{
		cfg:     cfg,
		in:      bufio.NewScanner(r),
		out:     w,
		log:     log,
		watcher: profile.NewWatcher(paths.DefaultPath(), paths.ProfilePath(name)),
	}
}

var errEOF = errors.New("input closed")

// Run loops until the user declines another calculation or input ends.
func (s *Shell) Run() error {
	s.log.Debug("starting zodiac calculator")
	defer s.log.Debug("calculator stopped")

	for {
		in, err := s.readInputs()
		switch {
		case errors.Is(err, errEOF):
			s.goodbye()
			return nil
		case err != nil:
			fmt.Fprintln(s.out, "Please try again with valid inputs.")
		default:
			if err := s.Calculate(in); err != nil {
				fmt.Fprintf(s.out, "Error: %v\n", err)
			}
		}

		fmt.Fprintln(s.out, "\n"+strings.Repeat("=", 50))
		again, err := s.prompt("Calculate again? (y/n): ")
		if err != nil {
			s.goodbye()
			return nil
		}
		switch strings.ToLower(again) {
		case "y", "yes":
		default:
			s.goodbye()
			return nil
		}
	}
}

// Calculate resolves the current profile, computes everything and prints it.
// A profile that breaks after a successful round is reported and the last
// good one is used; it is only an error when no profile ever resolved.
func (s *Shell) Calculate(in zodiac.StatInput) error {
	r, err := s.resolve()
	if err != nil {
		return err
	}
	params, set := r.params, r.set

	calc := zodiac.New(params, s.log)
	b, err := calc.Calculate(in, zodiac.OutAll)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}
	display.Render(s.out, b, display.Options{
		Format:          set.Format,
		RelicMultiplier: set.RelicMultiplier,
		ShowBars:        s.cfg.ShowBars,
	})
	if s.cfg.Simulate > 0 {
		s.simulate(b, set.Format)
	}
	s.log.Debug("results displayed", "profile_version", set.Version)
	return nil
}

func (s *Shell) resolve() (*resolved, error) {
	if changed := s.watcher.Poll(); len(changed) > 0 {
		s.log.Info("profile changed on disk, reloading", "paths", changed)
		s.cfg.Loader.Invalidate()
	}
	_, params, set, err := s.cfg.Loader.Resolve(s.cfg.Profile, s.cfg.Overrides)
	if err != nil {
		s.log.Error("failed to resolve profile", "profile", s.cfg.Profile, "error", err)
		if s.good == nil {
			return nil, err
		}
		fmt.Fprintf(s.out, "Warning: %v\nUsing the last valid profile.\n", err)
		return s.good, nil
	}
	s.good = &resolved{params: params, set: set}
	return s.good, nil
}

func (s *Shell) simulate(b zodiac.Bundle, format string) {
	var rng zodiac.RandomSource
	if s.cfg.Seed != 0 {
		rng = zodiac.NewSeededRNG(s.cfg.Seed)
	}
	if b.EnhancePrice.OK() && b.EnhanceChance.OK() {
		sim, err := zodiac.SimulateEnhance(zodiac.EnhanceSimParams{
			Chance: b.EnhanceChance.Value,
			Price:  b.EnhancePrice.Value,
			Trials: s.cfg.Simulate,
		}, rng)
		if err != nil {
			s.log.Warn("enhance simulation skipped", "error", err)
		} else {
			display.RenderEnhanceSim(s.out, s.cfg.Simulate, sim, format)
		}
	}
	if b.RarityErr == nil {
		sim, err := zodiac.SimulateRolls(b.Chances, s.cfg.Simulate, rng)
		if err != nil {
			s.log.Warn("roll simulation skipped", "error", err)
		} else {
			display.RenderRollSim(s.out, sim, b.Chances)
		}
	}
}

func (s *Shell) goodbye() {
	fmt.Fprintln(s.out, "Thank you for using the Revolution Idle Zodiac Calculator!")
}
