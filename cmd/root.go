package cmd

import (
	"fmt"

	"github.com/HomingHamster/scale-and-chord-generator/consonance"
	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scgen",
	Short: "Scale and chord generator",
	Long:  `Enumerates the consonant chords and scales of a tonal system and sequences them into progressions.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// resolvePolicy prefers an explicit policy file over a built-in name.
func resolvePolicy(name, file string) (consonance.Policy, error) {
	if file != "" {
		return consonance.Load(file)
	}
	return consonance.Named(name)
}

func formatChord(space pitch.Space, c model.ChordCandidate) string {
	if c.Quality != "" {
		return fmt.Sprintf("%v %v", space.NoteName(c.Root), c.Quality)
	}
	var pcs string
	for i, pc := range c.PitchClasses {
		if i > 0 {
			pcs += " "
		}
		pcs += space.NoteName(pc)
	}
	return fmt.Sprintf("%v (%v)", space.NoteName(c.Root), pcs)
}
