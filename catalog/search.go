package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alchy/PianoChord-sub000/chord"
	"github.com/alchy/PianoChord-sub000/constants"
	"github.com/alchy/PianoChord-sub000/model"
	"github.com/alchy/PianoChord-sub000/pitch"
	"github.com/alchy/PianoChord-sub000/transpose"
	"github.com/alchy/PianoChord-sub000/util"
)

func transposedKey(name string, semitones int) string {
	return fmt.Sprintf("%v_trans_%v", name, semitones)
}

// ensureTranspositions derives the 11 shifted copies of every entry.
// Built once per catalog generation, on first search.
func (c *Catalog) ensureTranspositions() {
	if c.transposed != nil || c.state < StateLoaded {
		return
	}
	c.transposed = make(map[string]model.TransposedEntry, len(c.entries)*constants.MaxTransposition)
	for name, entry := range c.entries {
		for semitones := 1; semitones <= constants.MaxTransposition; semitones++ {
			c.transposed[transposedKey(name, semitones)] = transpose.Entry(entry, semitones)
		}
	}
	c.state = StateTranspositionsBuilt
}

// fragmentMatches compares chords as parsed symbols, so "Ebm7" in a
// source file and a D#m7 query find each other. Strings that do not
// parse can still match verbatim.
func fragmentMatches(p model.Progression, symbol model.ChordSymbol) bool {
	for _, chordName := range p.Chords {
		parsed, err := chord.Parse(chordName)
		if err == nil {
			if parsed.Root == symbol.Root && strings.EqualFold(parsed.Type, symbol.Type) {
				return true
			}
			continue
		}
		if strings.EqualFold(chordName, symbol.String()) {
			return true
		}
	}
	return false
}

// FindByChord answers every progression fragment containing the chord,
// originals first, then the transposed variants in ascending semitone
// order. Results are memoized per query until the next reload.
func (c *Catalog) FindByChord(root string, typeToken string) []model.SearchMatch {
	canonical, ok := pitch.Normalize(root)
	if !ok {
		return nil
	}
	symbol := model.ChordSymbol{Root: canonical, Type: typeToken}

	cacheKey := strings.ToLower(symbol.String())
	c.mu.RLock()
	if cached, hit := c.searchCache[cacheKey]; hit {
		c.mu.RUnlock()
		return cached
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, hit := c.searchCache[cacheKey]; hit {
		return cached
	}

	c.ensureTranspositions()

	var matches []model.SearchMatch
	names := util.GetKeysSorted(c.entries)

	for _, name := range names {
		entry := c.entries[name]
		for _, p := range entry.Progressions {
			if !fragmentMatches(p, symbol) {
				continue
			}
			matches = append(matches, model.SearchMatch{
				Song:         name,
				Chords:       p.Chords,
				Description:  p.Description,
				Genre:        entry.Genre,
				TransposedBy: 0,
				OriginalKey:  entry.Key,
			})
		}
	}

	for _, name := range names {
		for semitones := 1; semitones <= constants.MaxTransposition; semitones++ {
			derived := c.transposed[transposedKey(name, semitones)]
			// a variant matches either on its own content or as the
			// key-shifted rendering of an original hit
			shifted := transpose.Symbol(symbol, semitones)
			for _, p := range derived.Progressions {
				if !fragmentMatches(p, symbol) && !fragmentMatches(p, shifted) {
					continue
				}
				matches = append(matches, model.SearchMatch{
					Song:          name,
					Chords:        p.Chords,
					Description:   p.Description,
					Genre:         derived.Genre,
					TransposedBy:  semitones,
					OriginalKey:   derived.OriginalKey,
					TransposedKey: derived.Key,
				})
			}
		}
	}

	if c.searchCache == nil {
		c.searchCache = make(map[string][]model.SearchMatch)
	}
	c.searchCache[cacheKey] = matches
	return matches
}

// canonicalKey collapses enharmonic key spellings ("Ab" and "G#") onto
// one index slot; unparseable keys index as written.
func canonicalKey(key string) string {
	parsed, err := chord.Parse(key)
	if err != nil {
		return key
	}
	return parsed.String()
}

func (c *Catalog) buildIndices() {
	c.byGenre = make(map[string][]string)
	c.byComposer = make(map[string][]string)
	c.byKey = make(map[string][]string)
	for name, entry := range c.entries {
		if entry.Genre != "" {
			c.byGenre[entry.Genre] = append(c.byGenre[entry.Genre], name)
		}
		if entry.Composer != "" {
			c.byComposer[entry.Composer] = append(c.byComposer[entry.Composer], name)
		}
		if entry.Key != "" {
			key := canonicalKey(entry.Key)
			c.byKey[key] = append(c.byKey[key], name)
		}
	}
	for _, index := range []map[string][]string{c.byGenre, c.byComposer, c.byKey} {
		for k := range index {
			sort.Strings(index[k])
		}
	}
}

func (c *Catalog) Genres() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return util.GetKeysSorted(c.byGenre)
}

func (c *Catalog) SongsByGenre(genre string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.byGenre[genre]...)
}

func (c *Catalog) Composers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return util.GetKeysSorted(c.byComposer)
}

func (c *Catalog) SongsByComposer(composer string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.byComposer[composer]...)
}

func (c *Catalog) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return util.GetKeysSorted(c.byKey)
}

func (c *Catalog) SongsInKey(key string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.byKey[canonicalKey(key)]...)
}

func (c *Catalog) SongInfo(name string) (model.ProgressionEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[name]
	return entry, ok
}

// SongNames answers every loaded song, sorted.
func (c *Catalog) SongNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return util.GetKeysSorted(c.entries)
}

// Size reports loaded originals and derived transpositions, the latter
// zero until the first search forces the build.
func (c *Catalog) Size() (originals int, transposed int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries), len(c.transposed)
}
