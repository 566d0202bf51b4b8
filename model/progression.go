package model

type Progression struct {
	Chords      []string `json:"chords"`
	Description string   `json:"description"`
}

// ProgressionEntry is one song row from a catalog source. Entries are
// built once at load and never mutated afterwards.
type ProgressionEntry struct {
	Name         string        `json:"-"`
	Key          string        `json:"key"`
	Genre        string        `json:"genre"`
	Composer     string        `json:"composer,omitempty"`
	Year         int           `json:"year,omitempty"`
	Difficulty   string        `json:"difficulty,omitempty"`
	Progressions []Progression `json:"progressions"`
}

// TransposedEntry is a derived copy of a ProgressionEntry shifted by
// Semitones (1..11), stamped with the key it came from.
type TransposedEntry struct {
	ProgressionEntry
	OriginalKey string
	Semitones   int
}
