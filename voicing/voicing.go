package voicing

import (
	"fmt"
	"math"
	"sort"

	"github.com/alchy/PianoChord-sub000/chord"
	"github.com/alchy/PianoChord-sub000/model"
	"github.com/alchy/PianoChord-sub000/pitch"
)

type Strategy string

const (
	StrategyRoot   Strategy = "root"
	StrategySmooth Strategy = "smooth"
	StrategyDrop2  Strategy = "drop2"
)

// VoicingError means the chord symbol was valid but no notes survived
// the [0,127] MIDI range filter.
type VoicingError struct {
	Symbol model.ChordSymbol
	Octave int
}

func (e *VoicingError) Error() string {
	return fmt.Sprintf("no playable notes for %v in octave %v", e.Symbol, e.Octave)
}

// Compute realizes a chord symbol as MIDI notes. previous carries the
// caller's last voicing and only matters to the smooth strategy; the
// caller keeps the returned notes as the next call's previous.
func Compute(root string, typeToken string, octave int, strategy Strategy, previous model.Notes) (model.Notes, error) {
	rootIndex, ok := pitch.Index(root)
	if !ok {
		return nil, &chord.ParseError{Input: root}
	}

	intervals := chord.ResolveIntervals(typeToken)

	switch strategy {
	case StrategySmooth:
		return smoothVoicing(rootIndex, typeToken, intervals, octave, previous)
	case StrategyDrop2:
		return drop2Voicing(rootIndex, typeToken, intervals, octave)
	default:
		return rootVoicing(rootIndex, typeToken, intervals, octave)
	}
}

// rawNotes builds the unfiltered close-position notes; they can run
// past the MIDI range and get filtered later.
func rawNotes(rootIndex int, intervals model.IntervalSet, octave int) []int {
	notes := make([]int, 0, len(intervals))
	for _, interval := range intervals {
		notes = append(notes, pitch.Midi(rootIndex, octave)+interval)
	}
	return notes
}

func filterToRange(candidate []int, rootIndex int, typeToken string, octave int) (model.Notes, error) {
	var notes model.Notes
	for _, n := range candidate {
		if n >= 0 && n <= 127 {
			notes = append(notes, uint8(n))
		}
	}
	if len(notes) == 0 {
		symbol := model.ChordSymbol{Root: pitch.Name(rootIndex), Type: typeToken}
		return nil, &VoicingError{Symbol: symbol, Octave: octave}
	}
	return notes, nil
}

func rootVoicing(rootIndex int, typeToken string, intervals model.IntervalSet, octave int) (model.Notes, error) {
	return filterToRange(rawNotes(rootIndex, intervals, octave), rootIndex, typeToken, octave)
}

// invert rotates the close-position notes left by k, adding an octave
// to each rotated-out note.
func invert(notes []int, k int) []int {
	inverted := make([]int, 0, len(notes))
	inverted = append(inverted, notes[k:]...)
	for _, n := range notes[:k] {
		inverted = append(inverted, n+12)
	}
	return inverted
}

func mean(notes []int) float64 {
	var total int
	for _, n := range notes {
		total += n
	}
	return float64(total) / float64(len(notes))
}

func meanNotes(notes model.Notes) float64 {
	var total int
	for _, n := range notes {
		total += int(n)
	}
	return float64(total) / float64(len(notes))
}

// smoothVoicing picks, among every inversion shifted across octaves
// -2..+2, the candidate whose mean pitch lands closest to the mean of
// the previous voicing. Ties keep the first candidate found, octave
// shift ascending outer, inversion ascending inner, which makes the
// choice deterministic.
func smoothVoicing(rootIndex int, typeToken string, intervals model.IntervalSet, octave int, previous model.Notes) (model.Notes, error) {
	if len(previous) == 0 {
		return rootVoicing(rootIndex, typeToken, intervals, octave)
	}

	base := rawNotes(rootIndex, intervals, octave)
	target := meanNotes(previous)

	var best []int
	bestDistance := math.Inf(1)

	for shift := -2; shift <= 2; shift++ {
		for k := 0; k < len(base); k++ {
			candidate := invert(base, k)
			for i := range candidate {
				candidate[i] += shift * 12
			}
			distance := math.Abs(mean(candidate) - target)
			if distance < bestDistance {
				bestDistance = distance
				best = candidate
			}
		}
	}

	return filterToRange(best, rootIndex, typeToken, octave)
}

// drop2Voicing lowers the second-highest note of the root voicing by an
// octave. Chords under four notes have nothing to drop and come back as
// plain root voicings.
func drop2Voicing(rootIndex int, typeToken string, intervals model.IntervalSet, octave int) (model.Notes, error) {
	notes, err := rootVoicing(rootIndex, typeToken, intervals, octave)
	if err != nil || len(notes) < 4 {
		return notes, err
	}

	dropped := make([]int, len(notes))
	for i, n := range notes {
		dropped[i] = int(n)
	}
	sort.Ints(dropped)
	dropped[len(dropped)-2] -= 12
	sort.Ints(dropped)
	return filterToRange(dropped, rootIndex, typeToken, octave)
}
