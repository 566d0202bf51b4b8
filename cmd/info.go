package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alchy/PianoChord-sub000/catalog"
	"github.com/alchy/PianoChord-sub000/constants"
	"github.com/alchy/PianoChord-sub000/util"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info [song]",
	Short: "Reports on the loaded catalog",
	Long:  `Reports on the loaded catalog, or prints one song's progressions.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			songInfo(args[0])
			return
		}
		info()
	},
}

func loadCatalogOrExit() *catalog.Catalog {
	cat := catalog.New()
	sources := util.GatherCatalogPaths(constants.GetCatalogDir())
	if _, err := cat.Load(sources, false); err != nil {
		panic("Could not build catalog: " + err.Error())
	}
	return cat
}

func songInfo(name string) {
	cat := loadCatalogOrExit()
	entry, ok := cat.SongInfo(name)
	if !ok {
		fmt.Printf("No such song: %v\n", name)
		return
	}
	fmt.Printf("%v (%v, %v)\n", name, entry.Key, entry.Genre)
	if entry.Composer != "" {
		fmt.Printf("  composer: %v (%v)\n", entry.Composer, entry.Year)
	}
	for _, p := range entry.Progressions {
		fmt.Printf("  %v -- %v\n", p.Chords, p.Description)
	}
}

func info() {
	cat := loadCatalogOrExit()
	originals, transposed := cat.Size()
	fmt.Printf("songs: %v (transposed variants built: %v)\n", originals, transposed)
	for _, genre := range cat.Genres() {
		fmt.Printf("genre %v: %v songs\n", genre, len(cat.SongsByGenre(genre)))
	}
	for _, composer := range cat.Composers() {
		fmt.Printf("composer %v: %v\n", composer, cat.SongsByComposer(composer))
	}
	for _, key := range cat.Keys() {
		fmt.Printf("key %v: %v songs\n", key, len(cat.SongsInKey(key)))
	}
	diagnostics := cat.Diagnostics()
	if len(diagnostics) > 0 {
		fmt.Printf("%v load diagnostics:\n", len(diagnostics))
		for _, d := range diagnostics {
			fmt.Printf("  %v\n", d)
		}
	}
}
