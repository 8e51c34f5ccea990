package profile

import (
	"os"
	"time"
)

// Watcher tracks profile file modification times. The caller polls it
// between calculations; it starts no goroutines.
type Watcher struct {
	Paths     []string
	lastMTime map[string]time.Time
	primed    bool
}

// NewWatcher primes mtimes for paths so the first Poll reports nothing.
func NewWatcher(paths ...string) *Watcher {
	w := &Watcher{Paths: paths, lastMTime: make(map[string]time.Time)}
	w.Poll()
	return w
}

// Poll returns the paths whose mtime moved since the last call.
// A file that appears after priming counts as changed.
func (w *Watcher) Poll() []string {
	var changed []string
	for _, p := range w.Paths {
		fi, err := os.Stat(p)
		if err != nil {
			// missing files are skipped until they show up
			continue
		}
		mt := fi.ModTime()
		last, seen := w.lastMTime[p]
		w.lastMTime[p] = mt
		switch {
		case !seen && w.primed:
			changed = append(changed, p)
		case seen && mt.After(last):
			changed = append(changed, p)
		}
	}
	w.primed = true
	return changed
}
