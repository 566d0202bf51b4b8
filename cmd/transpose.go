package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alchy/PianoChord-sub000/transpose"
)

var transposeSemitones int

func init() {
	transposeCmd.Flags().IntVarP(&transposeSemitones, "semitones", "n", 0, "semitones to shift by")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <chord>...",
	Short: "Transposes a progression",
	Long:  `Transposes a progression by a semitone count, keeping unparseable chords as-is.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		shifted, flagged := transpose.Progression(args, transposeSemitones)
		fmt.Printf("%v\n", shifted)
		if len(flagged) > 0 {
			fmt.Printf("Could not transpose positions %v\n", flagged)
		}
	},
}
