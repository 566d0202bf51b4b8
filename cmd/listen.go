package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"

	"github.com/alchy/PianoChord-sub000/catalog"
	"github.com/alchy/PianoChord-sub000/chord"
	"github.com/alchy/PianoChord-sub000/constants"
	"github.com/alchy/PianoChord-sub000/model"
	"github.com/alchy/PianoChord-sub000/util"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Identifies chords played on a MIDI input and searches the catalog",
	Long:  `Identifies chords played on a MIDI input and searches the catalog`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func identifyAndSearch(cat *catalog.Catalog, notes model.Notes) {
	symbol, ok := chord.Identify(notes)
	if !ok {
		return
	}

	matches := cat.FindByChord(symbol.Root, symbol.Type)
	fmt.Printf("%v -> %v matches\n", symbol, len(matches))
	for i, m := range matches {
		if i >= 5 {
			fmt.Printf("  ... and %v more\n", len(matches)-i)
			break
		}
		fmt.Printf("  %v (+%v): %v\n", m.Song, m.TransposedBy, m.Chords)
	}
}

func listen() {
	defer midi.CloseDriver()

	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI input port")
		return
	}

	cat := catalog.New()
	sources := util.GatherCatalogPaths(constants.GetCatalogDir())
	if _, err := cat.Load(sources, false); err != nil {
		fmt.Printf("Could not build catalog: %v\n", err)
		return
	}

	pressed := make(map[uint8]bool)
	// note on/off bursts arrive a few ms apart; wait for the hand to settle
	debounced := debounce.New(100 * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			pressed[key] = true
		case msg.GetNoteEnd(&ch, &key):
			delete(pressed, key)
		default:
			return
		}
		// snapshot here; the debounced func runs on another goroutine
		snapshot := make(model.Notes, 0, len(pressed))
		for note := range pressed {
			snapshot = append(snapshot, note)
		}
		debounced(func() { identifyAndSearch(cat, snapshot) })
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	<-sigs
	stop()
}
