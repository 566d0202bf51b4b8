package model

type Notes = []uint8

// IntervalSet is an ordered list of semitone offsets from a chord root.
// The first element is always 0; extended chords reach past the octave
// (a 13th goes up to 21).
type IntervalSet = []int

type ChordSymbol struct {
	Root string
	Type string
}

// String reassembles the symbol the way it appears in catalog data,
// e.g. {D m7} -> "Dm7".
func (c ChordSymbol) String() string {
	return c.Root + c.Type
}
