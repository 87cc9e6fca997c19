package cmd

import (
	"fmt"

	"github.com/HomingHamster/scale-and-chord-generator/catalog"
	"github.com/HomingHamster/scale-and-chord-generator/config"
	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
	"github.com/HomingHamster/scale-and-chord-generator/progression"
	"github.com/HomingHamster/scale-and-chord-generator/scale"
	"github.com/spf13/cobra"
)

var (
	sequenceLength      int
	sequenceKey         string
	sequenceStart       string
	sequenceGrammarFile string
	sequencePattern     string
	sequenceScale       string
)

func init() {
	sequenceCmd.Flags().IntVar(&sequenceLength, "length", 8, "target progression length")
	sequenceCmd.Flags().StringVar(&sequenceKey, "key", "C", "key tonic (note name or pitch class number)")
	sequenceCmd.Flags().StringVar(&sequenceStart, "start", "tonic", "starting harmonic function")
	sequenceCmd.Flags().StringVar(&sequenceGrammarFile, "grammar-file", "", "YAML harmonic grammar file")
	sequenceCmd.Flags().StringVar(&sequencePattern, "pattern", "", "realize a named degree pattern instead of walking the grammar")
	sequenceCmd.Flags().StringVar(&sequenceScale, "scale", "major", "scale for --pattern realization")
	rootCmd.AddCommand(sequenceCmd)
}

var sequenceCmd = &cobra.Command{
	Use:   "sequence",
	Short: "Sequences catalog chords into a progression",
	Long:  `Sequences catalog chords into a progression`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(sequence())
	},
}

func sequence() error {
	cfg := config.Load()
	manifest := catalog.ReadManifest(cfg.CatalogDir)
	space, err := pitch.New(manifest.Cardinality)
	if err != nil {
		return err
	}
	key, err := space.ParseNote(sequenceKey)
	if err != nil {
		return err
	}

	var prog model.Progression
	if sequencePattern != "" {
		sc, err := scale.Named(space, key, sequenceScale)
		if err != nil {
			return err
		}
		prog, err = progression.Realize(sequencePattern, progression.Diatonic(space, sc))
		if err != nil {
			return err
		}
	} else {
		grammar := progression.Default()
		if sequenceGrammarFile != "" {
			grammar, err = progression.Load(sequenceGrammarFile)
			if err != nil {
				return err
			}
		}
		chords := catalog.ReadAll(cfg.CatalogDir, space)
		prog, err = progression.Sequence(space, chords, grammar,
			key, model.HarmonicFunction(sequenceStart), sequenceLength)
		if err != nil {
			return err
		}
	}

	printProgression(space, prog)
	return nil
}

func printProgression(space pitch.Space, prog model.Progression) {
	for i, step := range prog.Steps {
		fmt.Printf("%2d. %-24v [%v]\n", i+1, formatChord(space, step.Chord), step.Function)
	}
	if !prog.Complete {
		fmt.Printf("incomplete: no legal continuation from %q after %v steps\n",
			prog.BlockedAt, len(prog.Steps))
	}
}
