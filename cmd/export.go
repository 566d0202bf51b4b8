package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alchy/PianoChord-sub000/constants"
	"github.com/alchy/PianoChord-sub000/midifile"
	"github.com/alchy/PianoChord-sub000/voicing"
)

var exportOctave int
var exportStrategy string
var exportOut string

func init() {
	exportCmd.Flags().IntVar(&exportOctave, "octave", constants.DefaultOctave, "octave to voice in")
	exportCmd.Flags().StringVar(&exportStrategy, "strategy", string(voicing.StrategySmooth), "root, smooth or drop2")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output .mid path (random name when empty)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <chord>...",
	Short: "Voices a progression and writes it to a MIDI file",
	Long:  `Voices a progression and writes it to a MIDI file`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		export(args)
	},
}

func export(chords []string) {
	voicings := voiceProgression(chords, exportOctave, voicing.Strategy(exportStrategy))
	if len(voicings) == 0 {
		fmt.Println("Nothing voiceable to export")
		return
	}

	out := exportOut
	if out == "" {
		out = uuid.New().String() + ".mid"
	}
	if err := midifile.WriteProgression(out, voicings); err != nil {
		fmt.Printf("Export failed: %v\n", err)
		return
	}
	fmt.Printf("Wrote %v\n", out)
}
