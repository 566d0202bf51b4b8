package transpose

import (
	"fmt"

	"github.com/alchy/PianoChord-sub000/chord"
	"github.com/alchy/PianoChord-sub000/model"
	"github.com/alchy/PianoChord-sub000/pitch"
)

// TranspositionError wraps a parse failure hit while shifting a chord.
type TranspositionError struct {
	Chord string
	Err   error
}

func (e *TranspositionError) Error() string {
	return fmt.Sprintf("cannot transpose %q: %v", e.Chord, e.Err)
}

func (e *TranspositionError) Unwrap() error {
	return e.Err
}

// Note shifts a note name by semitones, answering the canonical sharp
// spelling.
func Note(name string, semitones int) (string, error) {
	index, ok := pitch.Index(name)
	if !ok {
		return "", &TranspositionError{Chord: name, Err: &chord.ParseError{Input: name}}
	}
	return pitch.Name(index + semitones), nil
}

// Symbol shifts only the root of an already-parsed chord symbol.
func Symbol(s model.ChordSymbol, semitones int) model.ChordSymbol {
	index, ok := pitch.Index(s.Root)
	if !ok {
		return s
	}
	return model.ChordSymbol{Root: pitch.Name(index + semitones), Type: s.Type}
}

// Chord reparses a chord string, shifts the root and reattaches the
// original type token untouched.
func Chord(symbol string, semitones int) (string, error) {
	parsed, err := chord.Parse(symbol)
	if err != nil {
		return "", &TranspositionError{Chord: symbol, Err: err}
	}
	return Symbol(parsed, semitones).String(), nil
}

// Progression shifts every chord it can. Chords that fail to parse are
// kept verbatim and their indices returned, so one bad row never sinks
// a catalog build.
func Progression(chords []string, semitones int) ([]string, []int) {
	transposed := make([]string, 0, len(chords))
	var flagged []int
	for i, c := range chords {
		shifted, err := Chord(c, semitones)
		if err != nil {
			fmt.Printf("Keeping %q as-is: %v\n", c, err)
			transposed = append(transposed, c)
			flagged = append(flagged, i)
			continue
		}
		transposed = append(transposed, shifted)
	}
	return transposed, flagged
}

// Entry derives the transposed copy of a catalog entry: every fragment
// shifted best-effort, the nominal key recomputed, and the copy stamped
// with where it came from.
func Entry(e model.ProgressionEntry, semitones int) model.TransposedEntry {
	derived := e
	derived.Progressions = make([]model.Progression, 0, len(e.Progressions))
	for _, p := range e.Progressions {
		chords, _ := Progression(p.Chords, semitones)
		derived.Progressions = append(derived.Progressions, model.Progression{
			Chords:      chords,
			Description: p.Description,
		})
	}
	if key, err := Chord(e.Key, semitones); err == nil {
		derived.Key = key
	}
	return model.TransposedEntry{
		ProgressionEntry: derived,
		OriginalKey:      e.Key,
		Semitones:        semitones,
	}
}
