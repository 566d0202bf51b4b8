package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alchy/PianoChord-sub000/catalog"
	"github.com/alchy/PianoChord-sub000/chord"
	"github.com/alchy/PianoChord-sub000/constants"
	"github.com/alchy/PianoChord-sub000/util"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <chord>",
	Short: "Searches the catalog for progressions containing a chord",
	Long:  `Searches the catalog for progressions containing a chord, transposed variants included.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		search(args[0])
	},
}

func search(input string) {
	symbol, err := chord.Parse(input)
	if err != nil {
		fmt.Printf("Bad chord %q: %v\n", input, err)
		return
	}

	cat := catalog.New()
	sources := util.GatherCatalogPaths(constants.GetCatalogDir())
	if _, err := cat.Load(sources, false); err != nil {
		fmt.Printf("Could not build catalog: %v\n", err)
		return
	}

	matches := cat.FindByChord(symbol.Root, symbol.Type)
	fmt.Printf("%v matches for %v\n", len(matches), symbol)
	for _, m := range matches {
		if m.TransposedBy == 0 {
			fmt.Printf("  %v (%v): %v -- %v\n", m.Song, m.OriginalKey, m.Chords, m.Description)
			continue
		}
		fmt.Printf("  %v (+%v, %v -> %v): %v -- %v\n",
			m.Song, m.TransposedBy, m.OriginalKey, m.TransposedKey, m.Chords, m.Description)
	}
}
