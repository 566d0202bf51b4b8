package pitch

import "strings"

// Names holds the canonical sharp spelling for each of the 12 classes.
// All enharmonic input collapses onto these before any computation.
var Names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var indexByName = map[string]int{
	"C": 0, "C#": 1, "D": 2, "D#": 3, "E": 4, "F": 5,
	"F#": 6, "G": 7, "G#": 8, "A": 9, "A#": 10, "B": 11,
}

// flats maps the five flat spellings onto their canonical sharp names.
var flats = map[string]string{
	"DB": "C#",
	"EB": "D#",
	"GB": "F#",
	"AB": "G#",
	"BB": "A#",
}

// Normalize resolves any accepted note spelling (case-insensitive,
// sharps or flats) to its canonical sharp name.
func Normalize(name string) (string, bool) {
	upper := strings.ToUpper(name)
	if canonical, ok := flats[upper]; ok {
		return canonical, true
	}
	if _, ok := indexByName[upper]; ok {
		return upper, true
	}
	return "", false
}

// Index returns the 0..11 class number for any accepted spelling.
func Index(name string) (int, bool) {
	canonical, ok := Normalize(name)
	if !ok {
		return 0, false
	}
	return indexByName[canonical], true
}

// Name returns the canonical spelling for a class number, mod 12.
func Name(index int) string {
	return Names[((index%12)+12)%12]
}

// Midi places a pitch class in an octave: MIDI = 12*octave + class.
func Midi(index int, octave int) int {
	return 12*octave + index
}
