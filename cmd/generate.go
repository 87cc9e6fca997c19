package cmd

import (
	"fmt"

	"github.com/HomingHamster/scale-and-chord-generator/catalog"
	"github.com/HomingHamster/scale-and-chord-generator/chord"
	"github.com/HomingHamster/scale-and-chord-generator/config"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
	"github.com/HomingHamster/scale-and-chord-generator/scale"
	"github.com/HomingHamster/scale-and-chord-generator/util"
	"github.com/spf13/cobra"
)

var (
	generateCardinality      int
	generateMinSize          int
	generateMaxSize          int
	generateScaleCardinality int
	generatePolicy           string
	generatePolicyFile       string
)

func init() {
	generateCmd.Flags().IntVarP(&generateCardinality, "cardinality", "n", 12, "chromatic cardinality of the pitch space")
	generateCmd.Flags().IntVar(&generateMinSize, "min-size", 3, "minimum chord size")
	generateCmd.Flags().IntVar(&generateMaxSize, "max-size", 4, "maximum chord size")
	generateCmd.Flags().IntVar(&generateScaleCardinality, "scale-notes", 7, "scale cardinality")
	generateCmd.Flags().StringVar(&generatePolicy, "policy", "standard", "built-in consonance policy name")
	generateCmd.Flags().StringVar(&generatePolicyFile, "policy-file", "", "YAML consonance policy file (overrides --policy)")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates the chord and scale catalog",
	Long:  `Generates the chord and scale catalog`,
	Run: func(cmd *cobra.Command, args []string) {
		err := Generate(generateCardinality, generateMinSize, generateMaxSize,
			generateScaleCardinality, generatePolicy, generatePolicyFile,
			config.Load().CatalogDir)
		cobra.CheckErr(err)
	},
}

// Generate builds a catalog and persists it under dir. Exported so the
// e2e tests can drive the same path the CLI does.
func Generate(cardinality, minSize, maxSize, scaleCardinality int, policyName, policyFile, dir string) error {
	space, err := pitch.New(cardinality)
	if err != nil {
		return err
	}
	policy, err := resolvePolicy(policyName, policyFile)
	if err != nil {
		return err
	}

	chords, err := chord.Generate(space, minSize, maxSize, policy)
	if err != nil {
		return err
	}
	scales, err := scale.Generate(space, scaleCardinality, policy)
	if err != nil {
		return err
	}

	util.RecreateDir(dir)
	catalog.WriteBuckets(dir, chords)
	chunks := catalog.CreateChunks(dir)
	catalog.WriteOverview(dir, chunks)
	catalog.WriteScales(dir, scales)
	catalog.WriteManifest(dir, catalog.Manifest{
		Cardinality:      cardinality,
		MinSize:          minSize,
		MaxSize:          maxSize,
		ScaleCardinality: scaleCardinality,
		Policy:           policy,
	})

	fmt.Printf("Generated %v chords and %v scales under policy %q into %v\n",
		len(chords), len(scales), policy.Name, dir)
	return nil
}
