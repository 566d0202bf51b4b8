package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alchy/PianoChord-sub000/chord"
	"github.com/alchy/PianoChord-sub000/constants"
	"github.com/alchy/PianoChord-sub000/model"
	"github.com/alchy/PianoChord-sub000/voicing"
)

var voiceOctave int
var voiceStrategy string

func init() {
	voiceCmd.Flags().IntVar(&voiceOctave, "octave", constants.DefaultOctave, "octave to voice in")
	voiceCmd.Flags().StringVar(&voiceStrategy, "strategy", string(voicing.StrategyRoot), "root, smooth or drop2")
	rootCmd.AddCommand(voiceCmd)
}

var voiceCmd = &cobra.Command{
	Use:   "voice <chord>...",
	Short: "Prints MIDI voicings for a progression",
	Long:  `Prints MIDI voicings for a progression, threading each voicing into the next for the smooth strategy.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		voiceProgression(args, voiceOctave, voicing.Strategy(voiceStrategy))
	},
}

// voiceProgression realizes every chord in order, carrying the previous
// voicing forward so smooth voice leading has something to lead from.
func voiceProgression(chords []string, octave int, strategy voicing.Strategy) []model.Notes {
	var voicings []model.Notes
	var previous model.Notes
	for _, name := range chords {
		symbol, err := chord.Parse(name)
		if err != nil {
			fmt.Printf("Skipping %q because: %v\n", name, err)
			continue
		}
		notes, err := voicing.Compute(symbol.Root, symbol.Type, octave, strategy, previous)
		if err != nil {
			fmt.Printf("Skipping %q because: %v\n", name, err)
			continue
		}
		fmt.Printf("%v: %v\n", symbol, notes)
		voicings = append(voicings, notes)
		previous = notes
	}
	return voicings
}
