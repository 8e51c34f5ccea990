package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultName is the base profile every other profile is layered on.
const DefaultName = "default"

// ErrProfileNotFound is returned when a named profile has no file.
// Only the default profile may be absent.
var ErrProfileNotFound = errors.New("profile not found")

// Paths locates profile files under a config directory.
type Paths struct {
	BaseDir string // e.g. ./config
}

func (p Paths) DefaultPath() string {
	return p.ProfilePath(DefaultName)
}

func (p Paths) ProfilePath(name string) string {
	return filepath.Join(p.BaseDir, "profiles", name+".yaml")
}

// Loader reads YAML profiles and merges default → named profile.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawProfile
}

// NewLoader creates a profile loader rooted at baseDir.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawProfile),
	}
}

// Paths returns the locations the loader reads from.
func (l *Loader) Paths() Paths { return l.paths }

// LoadMerged loads default and, if name is set, the named profile on top.
// A missing default file yields an empty layer; a missing named profile
// is ErrProfileNotFound.
func (l *Loader) LoadMerged(name string) (RawProfile, error) {
	if name == "" {
		name = DefaultName
	}
	l.mu.RLock()
	if cfg, ok := l.cache[name]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawProfile{}, fmt.Errorf("read default profile: %w", err)
	}
	merged := defCfg
	if name != DefaultName {
		path := l.paths.ProfilePath(name)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return RawProfile{}, fmt.Errorf("%w: %q (%s)", ErrProfileNotFound, name, path)
		}
		named, err := readYAML(path)
		if err != nil {
			return RawProfile{}, fmt.Errorf("read profile %q: %w", name, err)
		}
		merged = mergeRaw(named, defCfg)
	}

	l.mu.Lock()
	l.cache[DefaultName] = defCfg
	l.cache[name] = merged
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears the cache. Call after the watcher reports a change.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawProfile)
}

// readYAML loads one profile file. A missing file is an empty profile.
func readYAML(path string) (RawProfile, error) {
	var cfg RawProfile
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawProfile{}, nil
		}
		return RawProfile{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawProfile{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// mergeRaw fills every unset field of a from b. a wins where both are set.
func mergeRaw(a, b RawProfile) RawProfile {
	out := a
	if out.Version == "" {
		out.Version = b.Version
	}
	if out.Notes == "" {
		out.Notes = b.Notes
	}

	// luck
	switch {
	case out.Luck.SoftCap == nil && b.Luck.SoftCap != nil:
		c := *b.Luck.SoftCap
		out.Luck.SoftCap = &c
	case out.Luck.SoftCap != nil && b.Luck.SoftCap != nil:
		c := *out.Luck.SoftCap
		fill(&c.Threshold, b.Luck.SoftCap.Threshold)
		fill(&c.Exponent, b.Luck.SoftCap.Exponent)
		fill(&c.Scale, b.Luck.SoftCap.Scale)
		out.Luck.SoftCap = &c
	}

	// score
	fill(&out.Score.RarityBase, b.Score.RarityBase)
	fill(&out.Score.RarityBonusAbove, b.Score.RarityBonusAbove)
	fill(&out.Score.RarityBonus, b.Score.RarityBonus)
	fill(&out.Score.LevelBase, b.Score.LevelBase)
	fill(&out.Score.LevelBonusFrom, b.Score.LevelBonusFrom)
	fill(&out.Score.LevelBonusOffset, b.Score.LevelBonusOffset)
	fill(&out.Score.LevelBonusDivisor, b.Score.LevelBonusDivisor)
	fill(&out.Score.LevelBonusExponent, b.Score.LevelBonusExponent)

	// sale
	fill(&out.Sale.Divisor, b.Sale.Divisor)
	fill(&out.Sale.Exponent, b.Sale.Exponent)
	fill(&out.Sale.RarityGrowth, b.Sale.RarityGrowth)

	// enhance
	fill(&out.Enhance.PriceFactor, b.Enhance.PriceFactor)
	fill(&out.Enhance.PriceGrowth, b.Enhance.PriceGrowth)
	fill(&out.Enhance.ChanceBase, b.Enhance.ChanceBase)

	// display
	switch {
	case out.Display == nil && b.Display != nil:
		c := *b.Display
		out.Display = &c
	case out.Display != nil && b.Display != nil:
		c := *out.Display
		if c.Format == "" {
			c.Format = b.Display.Format
		}
		fill(&c.RelicMultiplier, b.Display.RelicMultiplier)
		out.Display = &c
	}

	return out
}

func fill(dst **float64, src *float64) {
	if *dst == nil && src != nil {
		*dst = src
	}
}
