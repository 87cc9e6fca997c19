package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/HomingHamster/scale-and-chord-generator/catalog"
	"github.com/HomingHamster/scale-and-chord-generator/chord"
	"github.com/HomingHamster/scale-and-chord-generator/config"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Identifies held MIDI notes against the catalog",
	Long:  `Identifies held MIDI notes against the catalog`,
	Run: func(cmd *cobra.Command, args []string) {
		startListening()
	},
}

func startListening() {
	defer midi.CloseDriver()

	cfg := config.Load()
	manifest := catalog.ReadManifest(cfg.CatalogDir)
	space, err := pitch.New(manifest.Cardinality)
	if err != nil {
		panic("Catalog manifest has invalid cardinality: " + err.Error())
	}
	chunks := catalog.LoadOverview(cfg.CatalogDir)

	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a midi input port")
		return
	}

	var mu sync.Mutex
	onNotes := make(map[uint8]bool)
	debounced := debounce.New(75 * time.Millisecond)

	identify := func() {
		mu.Lock()
		notes := make([]uint8, 0, len(onNotes))
		for note := range onNotes {
			notes = append(notes, note)
		}
		mu.Unlock()

		pcs := reduceNotes(space, notes)
		if len(pcs) < 2 {
			return
		}
		matches := catalog.Lookup(cfg.CatalogDir, chunks, pcs, space)
		if len(matches) == 0 {
			fmt.Printf("%v: not in catalog\n", chord.Key(pcs))
			return
		}
		for _, m := range matches {
			fmt.Printf("%v: %v\n", chord.Key(pcs), formatChord(space, m))
		}
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			onNotes[key] = true
			mu.Unlock()
			debounced(identify)
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			delete(onNotes, key)
			mu.Unlock()
			debounced(identify)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()
}
