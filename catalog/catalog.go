package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/alchy/PianoChord-sub000/model"
)

type State int

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
	StateTranspositionsBuilt
)

// CatalogLoadError means no source survived and the embedded fallback
// could not be constructed either. The fallback is compiled in, so in
// practice this never fires.
type CatalogLoadError struct {
	Sources []string
}

func (e *CatalogLoadError) Error() string {
	return fmt.Sprintf("no catalog entries could be loaded from %v", e.Sources)
}

// Catalog owns every progression entry, the derived transpositions and
// the lookup indices. Entries are immutable once loaded; reload swaps
// in fresh maps under the write lock, so readers either see the prior
// generation or block briefly.
type Catalog struct {
	mu      sync.RWMutex
	state   State
	sources []string

	entries    map[string]model.ProgressionEntry
	transposed map[string]model.TransposedEntry

	byGenre    map[string][]string
	byComposer map[string][]string
	byKey      map[string][]string

	searchCache map[string][]model.SearchMatch
	diagnostics []string
	observers   []func()
}

func New() *Catalog {
	return &Catalog{state: StateUnloaded}
}

// Subscribe registers a callback fired after every successful load or
// reload, outside the catalog lock.
func (c *Catalog) Subscribe(fn func()) {
	c.mu.Lock()
	c.observers = append(c.observers, fn)
	c.mu.Unlock()
}

func (c *Catalog) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Diagnostics answers the load warnings retained from the last load.
func (c *Catalog) Diagnostics() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.diagnostics))
	copy(out, c.diagnostics)
	return out
}

// Load reads the sources in the given fixed order, merges them into one
// namespace and builds the indices. A second call is a no-op unless
// forceReload is set, which drops every piece of derived state first.
// The answer reports whether a (re)load actually happened.
func (c *Catalog) Load(sources []string, forceReload bool) (bool, error) {
	c.mu.Lock()

	if c.state != StateUnloaded && !forceReload {
		c.mu.Unlock()
		return false, nil
	}

	c.state = StateLoading
	c.sources = append([]string(nil), sources...)
	c.entries = make(map[string]model.ProgressionEntry)
	c.transposed = nil
	c.searchCache = nil
	c.diagnostics = nil

	for _, source := range sources {
		c.mergeSource(source)
	}

	if len(c.entries) == 0 {
		c.warnf("No entries survived loading %v, substituting built-in catalog", sources)
		for name, entry := range fallbackEntries() {
			c.entries[name] = entry
		}
	}

	if len(c.entries) == 0 {
		c.state = StateUnloaded
		c.mu.Unlock()
		return false, &CatalogLoadError{Sources: sources}
	}

	c.buildIndices()
	c.state = StateLoaded
	observers := append([]func(){}, c.observers...)
	c.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
	return true, nil
}

// mergeSource decodes one JSON file into the shared namespace. Every
// failure mode here is per-source or per-entry and non-fatal.
func (c *Catalog) mergeSource(source string) {
	data, err := os.ReadFile(source)
	if err != nil {
		c.warnf("Skipping source %v because: %v", source, err)
		return
	}

	var decoded map[string]model.ProgressionEntry
	if err := json.Unmarshal(data, &decoded); err != nil {
		c.warnf("Skipping source %v because: %v", source, err)
		return
	}

	for name, entry := range decoded {
		if reason, ok := validateEntry(entry); !ok {
			c.warnf("Dropping %q from %v because: %v", name, source, reason)
			continue
		}
		if _, exists := c.entries[name]; exists {
			c.warnf("Overwriting %q with the copy from %v", name, source)
		}
		entry.Name = name
		c.entries[name] = entry
	}
}

// validateEntry enforces the structural minimum: a non-empty
// progressions array whose fragments each carry non-empty chords made
// of non-empty strings.
func validateEntry(entry model.ProgressionEntry) (string, bool) {
	if len(entry.Progressions) == 0 {
		return "no progressions", false
	}
	for i, p := range entry.Progressions {
		if len(p.Chords) == 0 {
			return fmt.Sprintf("progression %v has no chords", i), false
		}
		for _, chordName := range p.Chords {
			if chordName == "" {
				return fmt.Sprintf("progression %v has an empty chord", i), false
			}
		}
	}
	return "", true
}

func (c *Catalog) warnf(format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	fmt.Println(message)
	c.diagnostics = append(c.diagnostics, message)
}
