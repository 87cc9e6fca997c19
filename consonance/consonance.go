// Package consonance evaluates whether interval sets are harmonically
// acceptable under a configurable policy. Policies are data, not code:
// the same rules drive chord filtering and scale step filtering.
package consonance

import (
	"fmt"

	"github.com/HomingHamster/scale-and-chord-generator/model"
)

// Policy is an immutable, named consonance configuration. Construct it
// once (built-in via Named, or from a YAML file via Load) and pass it
// to the generators; it is never mutated after construction.
type Policy struct {
	Name string `yaml:"name"`

	// AcceptedIntervals pass the pairwise test outright.
	AcceptedIntervals []model.Interval `yaml:"accepted_intervals"`

	// DissonanceWeights score intervals outside the accepted set. When
	// configured, a chord whose summed penalty stays at or below
	// MaxDissonance still passes. An interval with neither an accepted
	// entry nor a weight always rejects the chord.
	DissonanceWeights map[model.Interval]float64 `yaml:"dissonance_weights"`
	MaxDissonance     float64                    `yaml:"max_dissonance"`

	// AllowedSteps constrains adjacent-note intervals during scale
	// generation. Must be non-empty to generate scales.
	AllowedSteps []model.Interval `yaml:"allowed_steps"`

	// UniqueUpToTransposition collapses chords that are transpositions
	// of one another to the first one emitted.
	UniqueUpToTransposition bool `yaml:"unique_up_to_transposition"`

	// UniqueUpToMode collapses scale step patterns that are rotations
	// (modes) of one another.
	UniqueUpToMode bool `yaml:"unique_up_to_mode"`

	// AllTonics materializes every accepted step pattern at all N
	// tonics; otherwise only a single representative at tonic 0.
	AllTonics bool `yaml:"all_tonics"`

	// PreferFormulaRoot designates the chord member whose relative
	// pattern matches a known formula as the root, instead of the
	// lowest member whose relative form passes the consonance test.
	PreferFormulaRoot bool `yaml:"prefer_formula_root"`
}

func (p Policy) Validate() error {
	if len(p.AcceptedIntervals) == 0 && len(p.DissonanceWeights) == 0 {
		return &model.ConfigurationError{
			Field:  "policy",
			Reason: fmt.Sprintf("%q defines neither accepted intervals nor dissonance weights", p.Name),
		}
	}
	if len(p.DissonanceWeights) > 0 && p.MaxDissonance <= 0 {
		return &model.ConfigurationError{
			Field:  "policy.max_dissonance",
			Reason: fmt.Sprintf("%q has dissonance weights but no positive threshold", p.Name),
		}
	}
	return nil
}

func (p Policy) accepts(i model.Interval) bool {
	for _, a := range p.AcceptedIntervals {
		if a == i {
			return true
		}
	}
	return false
}

// StepAllowed reports whether a scale step size is in the policy's
// allowed step set.
func (p Policy) StepAllowed(step model.Interval) bool {
	for _, s := range p.AllowedSteps {
		if s == step {
			return true
		}
	}
	return false
}

// IsConsonant implements the tonal-consonance test over the pairwise
// intervals of a chord. Every interval must be in the accepted set, or,
// when the policy carries dissonance weights, the summed penalty of the
// unaccepted intervals must stay within MaxDissonance. The empty
// interval set (a single-pitch "chord") is degenerate and rejected;
// unison/octave duplicates are deduplicated upstream, never scored here.
func IsConsonant(intervals []model.Interval, p Policy) bool {
	if len(intervals) == 0 {
		return false
	}
	var score float64
	for _, iv := range intervals {
		if p.accepts(iv) {
			continue
		}
		w, ok := p.DissonanceWeights[iv]
		if !ok {
			return false
		}
		score += w
	}
	if score == 0 {
		return true
	}
	return len(p.DissonanceWeights) > 0 && score <= p.MaxDissonance
}
