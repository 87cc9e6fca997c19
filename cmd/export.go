package cmd

import (
	"fmt"

	"github.com/HomingHamster/scale-and-chord-generator/catalog"
	"github.com/HomingHamster/scale-and-chord-generator/config"
	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
	"github.com/HomingHamster/scale-and-chord-generator/progression"
	"github.com/HomingHamster/scale-and-chord-generator/render"
	"github.com/HomingHamster/scale-and-chord-generator/scale"
	"github.com/spf13/cobra"
)

var (
	exportKey   string
	exportScale string
)

func init() {
	exportCmd.Flags().StringVar(&exportKey, "key", "C", "key tonic for progression rendering")
	exportCmd.Flags().StringVar(&exportScale, "scale", "major", "scale for progression rendering")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Renders the catalog to MIDI files",
	Long:  `Renders the catalog to MIDI files`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(export())
	},
}

// export renders every catalog chord and scale, plus all named degree
// patterns realized over the diatonic chords of the chosen key/scale.
// Incomplete realizations are skipped with a notice rather than padded.
func export() error {
	cfg := config.Load()
	manifest := catalog.ReadManifest(cfg.CatalogDir)
	space, err := pitch.New(manifest.Cardinality)
	if err != nil {
		return err
	}
	key, err := space.ParseNote(exportKey)
	if err != nil {
		return err
	}

	chords := catalog.ReadAll(cfg.CatalogDir, space)
	scales := catalog.ReadScales(cfg.CatalogDir)

	progressions := make(map[string]model.Progression)
	if space.Cardinality() == 12 {
		sc, err := scale.Named(space, key, exportScale)
		if err != nil {
			return err
		}
		diatonic := progression.Diatonic(space, sc)
		for _, name := range progression.PatternNames() {
			prog, err := progression.Realize(name, diatonic)
			if err != nil {
				return err
			}
			if !prog.Complete {
				fmt.Printf("Skipping %v: no chord for %v\n", name, prog.BlockedAt)
				continue
			}
			progressions[name] = prog
		}
	}

	if err := render.WriteCatalog(cfg.RenderDir, manifest.Policy.Name, space, chords, scales, progressions); err != nil {
		return err
	}
	fmt.Printf("Rendered %v chords, %v scales and %v progressions into %v\n",
		len(chords), len(scales), len(progressions), cfg.RenderDir)
	return nil
}
