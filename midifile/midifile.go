package midifile

import (
	"fmt"

	"github.com/alchy/PianoChord-sub000/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerQuarter = 960

// WriteProgression renders one voicing per chord into a single-track
// SMF, each chord held for a quarter note.
func WriteProgression(path string, voicings []model.Notes) error {
	if len(voicings) == 0 {
		return fmt.Errorf("nothing to write to %v", path)
	}

	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	for _, notes := range voicings {
		delta := uint32(0)
		for _, note := range notes {
			track = append(track, smf.Event{Delta: delta, Message: smf.Message(midi.NoteOn(0, note, 100))})
			delta = 0
		}
		delta = ticksPerQuarter
		for _, note := range notes {
			track = append(track, smf.Event{Delta: delta, Message: smf.Message(midi.NoteOff(0, note))})
			delta = 0
		}
	}
	track.Close(0)
	s.Tracks = append(s.Tracks, track)

	if err := s.WriteFile(path); err != nil {
		return fmt.Errorf("could not write midi file %v: %w", path, err)
	}
	return nil
}
