package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xtding233/zodiac-calc/internal/zodiac"
)

var errNoInputs = errors.New("no inputs provided")

func (s *Shell) banner() {
	fmt.Fprintln(s.out, "=== Revolution Idle Zodiac Calculator ===")
	fmt.Fprintln(s.out, "Note: All inputs are optional. Press Enter to skip any field.")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "DISCLAIMER: All calculations are approximate and based on formulas from:")
	fmt.Fprintln(s.out, "- https://revolutionidle.wiki.gg/wiki/Zodiacs")
	fmt.Fprintln(s.out, "- https://revolutionidle.wiki.gg/wiki/Planet_Shop")
	fmt.Fprintln(s.out, "Results may not exactly match in-game values due to potential formula changes")
	fmt.Fprintln(s.out, "or undocumented game mechanics.")
	fmt.Fprintln(s.out)
}

// readInputs asks for every optional stat. Immo+ is accepted for
// parity with the game's screen but no formula uses it.
func (s *Shell) readInputs() (zodiac.StatInput, error) {
	s.banner()

	var in zodiac.StatInput
	fields := []struct {
		label string
		dst   **float64
		name  string
	}{
		{"Zodiac Rarity", &in.Rarity, "rarity"},
		{"Zodiac Quality", &in.Quality, "quality"},
		{"Zodiac Level", &in.Level, "level"},
		{"Luck", &in.Luck, "luck"},
		{"Immo+ Number", new(*float64), "immo"},
	}
	provided := 0
	for _, f := range fields {
		text, err := s.prompt("Enter " + f.label + " (or press Enter to skip): ")
		if err != nil {
			return zodiac.StatInput{}, err
		}
		v, err := zodiac.ParseStat(text)
		if err != nil {
			s.log.Error("invalid input provided", "field", f.name, "error", err)
			fmt.Fprintln(s.out, "Error: Please enter valid numbers.")
			return zodiac.StatInput{}, err
		}
		if v != nil {
			*f.dst = v
			provided++
			s.log.Debug("stat set", "field", f.name, "value", *v)
		}
	}

	if provided == 0 {
		s.log.Debug("no inputs provided by user")
		fmt.Fprintln(s.out, "No inputs provided. Please provide at least one value to perform calculations.")
		return zodiac.StatInput{}, errNoInputs
	}
	s.log.Debug("collected inputs", "count", provided)
	return in, nil
}

// prompt writes label and reads one trimmed line.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errEOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}
