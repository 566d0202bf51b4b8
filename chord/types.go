package chord

import (
	"fmt"
	"strings"

	"github.com/alchy/PianoChord-sub000/model"
)

// intervalTable maps canonical quality tokens to semitone offsets from
// the root. Offsets are ordered and start at 0; extensions run past the
// octave (the 13th reaches 21).
var intervalTable = map[string]model.IntervalSet{
	"":      {0, 4, 7},
	"maj":   {0, 4, 7},
	"m":     {0, 3, 7},
	"min":   {0, 3, 7},
	"dim":   {0, 3, 6},
	"aug":   {0, 4, 8},
	"sus2":  {0, 2, 7},
	"sus4":  {0, 5, 7},
	"6":     {0, 4, 7, 9},
	"m6":    {0, 3, 7, 9},
	"7":     {0, 4, 7, 10},
	"maj7":  {0, 4, 7, 11},
	"m7":    {0, 3, 7, 10},
	"m7b5":  {0, 3, 6, 10},
	"dim7":  {0, 3, 6, 9},
	"mmaj7": {0, 3, 7, 11},
	"add9":  {0, 4, 7, 14},
	"9":     {0, 4, 7, 10, 14},
	"maj9":  {0, 4, 7, 11, 14},
	"m9":    {0, 3, 7, 10, 14},
	"13":    {0, 4, 7, 10, 14, 21},
	"7b5":   {0, 4, 6, 10},
	"7#5":   {0, 4, 8, 10},
	"aug7":  {0, 4, 8, 10},
	"7b9":   {0, 4, 7, 10, 13},
	"7#9":   {0, 4, 7, 10, 15},
}

// fallbackRule degrades an unknown type token to a known quality.
// Rules are evaluated in declaration order; the last one always fires.
type fallbackRule struct {
	matches func(token string) bool
	quality string
}

var fallbackRules = []fallbackRule{
	{func(t string) bool { return t == "" }, ""},
	{func(t string) bool { return strings.HasPrefix(t, "m") }, "m7"},
	{func(t string) bool { return strings.Contains(t, "maj") }, "maj7"},
	{func(t string) bool { return strings.Contains(t, "sus") }, "sus4"},
	{func(t string) bool { return strings.Contains(t, "dim") }, "dim7"},
	{func(t string) bool { return true }, "7"},
}

// Resolve looks a type token up in the quality table. Unknown tokens
// never fail; they degrade through the fallback rules and the second
// return is false so callers can surface the loss of precision.
func Resolve(typeToken string) (model.IntervalSet, bool) {
	if intervals, ok := intervalTable[typeToken]; ok {
		return intervals, true
	}
	for _, rule := range fallbackRules {
		if rule.matches(typeToken) {
			return intervalTable[rule.quality], false
		}
	}
	// unreachable, the last rule matches everything
	return intervalTable["7"], false
}

// ResolveIntervals is the convenience form used by callers that only
// want notes; approximate resolutions are logged rather than returned.
func ResolveIntervals(typeToken string) model.IntervalSet {
	intervals, exact := Resolve(typeToken)
	if !exact {
		fmt.Printf("Approximating unknown chord type %q as %v\n", typeToken, intervals)
	}
	return intervals
}

// KnownTypes returns every canonical quality token in the table.
func KnownTypes() []string {
	tokens := make([]string, 0, len(intervalTable))
	for token := range intervalTable {
		tokens = append(tokens, token)
	}
	return tokens
}
