package chord

import (
	"fmt"

	"github.com/alchy/PianoChord-sub000/model"
	"github.com/alchy/PianoChord-sub000/pitch"
)

// ParseError means the leading note token of a chord name did not
// resolve to any of the 12 pitch classes. Type tokens never fail;
// they fall back (see Resolve).
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse chord root in %q", e.Input)
}

// Parse splits a chord name like "Dm7" or "bb13" into its root pitch
// class and raw type token. The root is 1 character, or 2 when the
// second is '#' or 'b'. An empty type token means a major triad.
func Parse(text string) (model.ChordSymbol, error) {
	if len(text) == 0 {
		return model.ChordSymbol{}, &ParseError{Input: text}
	}

	rootLen := 1
	if len(text) > 1 && (text[1] == '#' || text[1] == 'b') {
		rootLen = 2
	}

	root, ok := pitch.Normalize(text[:rootLen])
	if !ok {
		return model.ChordSymbol{}, &ParseError{Input: text}
	}

	return model.ChordSymbol{Root: root, Type: text[rootLen:]}, nil
}
