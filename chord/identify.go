package chord

import (
	"github.com/alchy/PianoChord-sub000/model"
	"github.com/alchy/PianoChord-sub000/pitch"
)

// identifyOrder lists candidate qualities from plain to extended so
// that a C-E-G press answers "C", not some enharmonic oddity.
var identifyOrder = []string{
	"", "m", "dim", "aug", "sus2", "sus4",
	"6", "m6", "7", "maj7", "m7", "m7b5", "dim7", "mmaj7",
	"add9", "9", "maj9", "m9", "7b5", "7#5", "7b9", "7#9", "13",
}

func classSet(notes model.Notes) map[int]bool {
	classes := make(map[int]bool)
	for _, note := range notes {
		classes[int(note)%12] = true
	}
	return classes
}

func matchesRoot(classes map[int]bool, root int, intervals model.IntervalSet) bool {
	want := make(map[int]bool)
	for _, interval := range intervals {
		want[(root+interval)%12] = true
	}
	if len(want) != len(classes) {
		return false
	}
	for class := range want {
		if !classes[class] {
			return false
		}
	}
	return true
}

// Identify names the chord formed by a set of pressed MIDI notes, if
// its pitch classes match a table quality exactly. The lowest sounding
// note is tried as root first, then the remaining classes ascending.
func Identify(notes model.Notes) (model.ChordSymbol, bool) {
	if len(notes) < 2 {
		return model.ChordSymbol{}, false
	}

	classes := classSet(notes)

	lowest := notes[0]
	for _, note := range notes {
		if note < lowest {
			lowest = note
		}
	}

	roots := []int{int(lowest) % 12}
	for class := 0; class < 12; class++ {
		if class != roots[0] && classes[class] {
			roots = append(roots, class)
		}
	}

	// the lowest sounding class gets first claim on being the root, so
	// a D-F-A-C press answers Dm7 rather than its relative F6
	for _, root := range roots {
		for _, quality := range identifyOrder {
			if matchesRoot(classes, root, intervalTable[quality]) {
				return model.ChordSymbol{Root: pitch.Name(root), Type: quality}, true
			}
		}
	}

	return model.ChordSymbol{}, false
}
