// Package progression chains catalog chords into progressions under a
// configurable harmonic-function grammar and a voice-leading cost.
package progression

import (
	"fmt"
	"os"

	"github.com/HomingHamster/scale-and-chord-generator/model"
	"gopkg.in/yaml.v3"
)

// Grammar is the harmonic-function state machine as data: the function
// set, the transition-legality table, the degree-to-function assignment
// (interval from the key tonic to a chord root), and the voice-leading
// cost weights. Nothing here is tied to one musical style.
type Grammar struct {
	Functions   []model.HarmonicFunction                          `yaml:"functions"`
	Transitions map[model.HarmonicFunction][]model.HarmonicFunction `yaml:"transitions"`
	Degrees     map[model.Interval]model.HarmonicFunction         `yaml:"degrees"`

	// StepWeight is the cost per semitone of voice movement; zero means
	// the default of 1. UnmatchedPenalty is charged per voice that has
	// no counterpart when chord sizes differ; zero means the default of 3.
	StepWeight       float64 `yaml:"step_weight"`
	UnmatchedPenalty float64 `yaml:"unmatched_penalty"`
}

// Default is the common-practice grammar: tonic may move anywhere,
// subdominant prepares dominant or relaxes home, dominant resolves to
// tonic only. Passed explicitly, never assumed.
func Default() Grammar {
	return Grammar{
		Functions: []model.HarmonicFunction{"tonic", "subdominant", "dominant"},
		Transitions: map[model.HarmonicFunction][]model.HarmonicFunction{
			"tonic":       {"subdominant", "dominant"},
			"subdominant": {"dominant", "tonic"},
			"dominant":    {"tonic"},
		},
		Degrees: map[model.Interval]model.HarmonicFunction{
			0:  "tonic",
			2:  "subdominant",
			4:  "tonic",
			5:  "subdominant",
			7:  "dominant",
			9:  "tonic",
			11: "dominant",
		},
		StepWeight:       1,
		UnmatchedPenalty: 3,
	}
}

func (g Grammar) Validate() error {
	if len(g.Functions) == 0 {
		return &model.ConfigurationError{
			Field:  "grammar.functions",
			Reason: "must name at least one harmonic function",
		}
	}
	known := make(map[model.HarmonicFunction]bool)
	for _, fn := range g.Functions {
		known[fn] = true
	}
	for from, tos := range g.Transitions {
		if !known[from] {
			return &model.ConfigurationError{
				Field:  "grammar.transitions",
				Reason: fmt.Sprintf("unknown function %q", from),
			}
		}
		for _, to := range tos {
			if !known[to] {
				return &model.ConfigurationError{
					Field:  "grammar.transitions",
					Reason: fmt.Sprintf("unknown function %q", to),
				}
			}
		}
	}
	for deg, fn := range g.Degrees {
		if !known[fn] {
			return &model.ConfigurationError{
				Field:  "grammar.degrees",
				Reason: fmt.Sprintf("degree %v assigned to unknown function %q", deg, fn),
			}
		}
	}
	return nil
}

// Legal reports whether the transition table allows moving from one
// function to another.
func (g Grammar) Legal(from, to model.HarmonicFunction) bool {
	for _, fn := range g.Transitions[from] {
		if fn == to {
			return true
		}
	}
	return false
}

func (g Grammar) stepWeight() float64 {
	if g.StepWeight > 0 {
		return g.StepWeight
	}
	return 1
}

func (g Grammar) unmatchedPenalty() float64 {
	if g.UnmatchedPenalty > 0 {
		return g.UnmatchedPenalty
	}
	return 3
}

// Load reads a custom grammar from a YAML file and validates it.
func Load(path string) (Grammar, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return Grammar{}, &model.ConfigurationError{
			Field:  "grammar",
			Reason: "could not read grammar file: " + err.Error(),
		}
	}
	var g Grammar
	if err := yaml.Unmarshal(dat, &g); err != nil {
		return Grammar{}, &model.ConfigurationError{
			Field:  "grammar",
			Reason: "could not parse grammar file: " + err.Error(),
		}
	}
	if err := g.Validate(); err != nil {
		return Grammar{}, err
	}
	return g, nil
}
