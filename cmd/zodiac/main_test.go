package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xtding233/zodiac-calc/internal/profile"

	"github.com/xtding233/zodiac-calc/internal/zodiac"
)

func TestStatsFromFlags(t *testing.T) {
	in, oneShot, err := statsFromFlags("10", "", "50", " 25 ")
	if err != nil {
		t.Fatal(err)
	}
	if !oneShot || in.Quality != nil || *in.Rarity != 10 || *in.Level != 50 || *in.Luck != 25 {
		t.Fatalf("unexpected input %+v oneShot=%v", in, oneShot)
	}
	if _, oneShot, _ := statsFromFlags("", "", "", ""); oneShot {
		t.Fatalf("no flags should mean interactive mode")
	}
	if _, _, err := statsFromFlags("x", "", "", ""); !errors.Is(err, zodiac.ErrNonNumericInput) {
		t.Fatalf("expected ErrNonNumericInput, got %v", err)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ZODIAC_CONFIG_DIR", "/etc/zodiac")
	t.Setenv("ZODIAC_PROFILE", "patch")
	t.Setenv("ZODIAC_LOG_LEVEL", "debug")
	t.Setenv("ZODIAC_SIMULATE", "500")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ConfigDir != "/etc/zodiac" || cfg.Profile != "patch" || cfg.LogLevel != slog.LevelDebug || cfg.Simulate != 500 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.LogPath != "logs/zodiac_calculator.log" {
		t.Fatalf("default log path: %q", cfg.LogPath)
	}

	t.Setenv("ZODIAC_SIMULATE", "lots")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("non-numeric ZODIAC_SIMULATE must error")
	}
}

func TestRunOneShot(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "zodiac.log")
	t.Setenv("ZODIAC_LOG_PATH", logPath)
	t.Setenv("ZODIAC_CONFIG_DIR", filepath.Join(dir, "config"))
	t.Setenv("ZODIAC_PROFILE", "")

	var out bytes.Buffer
	if err := run([]string{"-rarity", "10", "-quality", "1000", "-level", "50"}, strings.NewReader(""), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Zodiac Sale Price: 118295.65") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("log file should exist: %v", err)
	}
}

func TestRunReturnsErrors(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ZODIAC_LOG_PATH", filepath.Join(dir, "zodiac.log"))
	t.Setenv("ZODIAC_CONFIG_DIR", dir)
	t.Setenv("ZODIAC_PROFILE", "")

	var out bytes.Buffer
	err := run([]string{"-profile", "missing", "-luck", "5"}, strings.NewReader(""), &out)
	if !errors.Is(err, profile.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if err := run([]string{"-luck", "five"}, strings.NewReader(""), &out); !errors.Is(err, zodiac.ErrNonNumericInput) {
		t.Fatalf("expected ErrNonNumericInput, got %v", err)
	}

	t.Setenv("ZODIAC_SIMULATE", "lots")
	if err := run(nil, strings.NewReader(""), &out); err == nil {
		t.Fatalf("bad environment must surface as an error")
	}
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"version"}, strings.NewReader(""), &out); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != "zodiac "+version {
		t.Fatalf("unexpected version output %q", out.String())
	}
}
