package catalog

import "github.com/alchy/PianoChord-sub000/model"

// fallbackEntries is the compiled-in minimum catalog, substituted when
// every configured source fails so search never comes up empty.
func fallbackEntries() map[string]model.ProgressionEntry {
	return map[string]model.ProgressionEntry{
		"Autumn Leaves": {
			Name:     "Autumn Leaves",
			Key:      "G",
			Genre:    "jazz",
			Composer: "Joseph Kosma",
			Year:     1945,
			Progressions: []model.Progression{
				{
					Chords:      []string{"Am7", "D7", "Gmaj7", "Cmaj7", "F#m7b5", "B7", "Em"},
					Description: "ii-V-I-IV in G major into the relative minor",
				},
			},
		},
		"Fly Me to the Moon": {
			Name:     "Fly Me to the Moon",
			Key:      "C",
			Genre:    "jazz",
			Composer: "Bart Howard",
			Year:     1954,
			Progressions: []model.Progression{
				{
					Chords:      []string{"Am7", "Dm7", "G7", "Cmaj7"},
					Description: "vi-ii-V-I",
				},
			},
		},
		"Blue Bossa": {
			Name:     "Blue Bossa",
			Key:      "Cm",
			Genre:    "latin jazz",
			Composer: "Kenny Dorham",
			Year:     1963,
			Progressions: []model.Progression{
				{
					Chords:      []string{"Cm7", "Fm7", "Dm7b5", "G7", "Cm7"},
					Description: "minor i-iv and ii-V back home",
				},
			},
		},
	}
}
