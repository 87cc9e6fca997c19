package consonance

import (
	"fmt"
	"os"

	"github.com/HomingHamster/scale-and-chord-generator/model"
	"gopkg.in/yaml.v3"
)

// Built-in policies. "standard" is the classic consonant interval set
// {3,4,7,8,9} (thirds, fifth, sixths); "strict-triadic" narrows it to
// {3,4,7} so only major/minor triad shapes survive; "jazz-extended"
// tolerates seconds and sevenths up to a dissonance budget.
var builtins = map[string]Policy{
	"standard": {
		Name:              "standard",
		AcceptedIntervals: []model.Interval{3, 4, 7, 8, 9},
		AllowedSteps:      []model.Interval{1, 2, 3},
		AllTonics:         true,
	},
	"strict-triadic": {
		Name:              "strict-triadic",
		AcceptedIntervals: []model.Interval{3, 4, 7},
		AllowedSteps:      []model.Interval{1, 2},
		AllTonics:         true,
	},
	"jazz-extended": {
		Name:              "jazz-extended",
		AcceptedIntervals: []model.Interval{3, 4, 7, 8, 9},
		DissonanceWeights: map[model.Interval]float64{
			1:  3,
			2:  1,
			5:  1,
			6:  2.5,
			10: 1,
			11: 1.5,
		},
		MaxDissonance:     3,
		AllowedSteps:      []model.Interval{1, 2, 3},
		AllTonics:         true,
		PreferFormulaRoot: true,
	},
}

// Named returns a built-in policy by name.
func Named(name string) (Policy, error) {
	p, ok := builtins[name]
	if !ok {
		return Policy{}, &model.ConfigurationError{
			Field:  "policy",
			Reason: fmt.Sprintf("no built-in policy named %q", name),
		}
	}
	return p, nil
}

// Names lists the built-in policy names.
func Names() []string {
	return []string{"standard", "strict-triadic", "jazz-extended"}
}

// Load reads a custom policy from a YAML file and validates it.
func Load(path string) (Policy, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, &model.ConfigurationError{
			Field:  "policy",
			Reason: "could not read policy file: " + err.Error(),
		}
	}
	var p Policy
	if err := yaml.Unmarshal(dat, &p); err != nil {
		return Policy{}, &model.ConfigurationError{
			Field:  "policy",
			Reason: "could not parse policy file: " + err.Error(),
		}
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}
