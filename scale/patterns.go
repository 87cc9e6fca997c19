package scale

import (
	"fmt"

	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
)

// Named step patterns for 12-tone space. Several are modes of one
// another but keep their own names.
var patterns = []struct {
	name  string
	steps []model.Interval
}{
	{"major", []model.Interval{2, 2, 1, 2, 2, 2, 1}},
	{"natural_minor", []model.Interval{2, 1, 2, 2, 1, 2, 2}},
	{"harmonic_minor", []model.Interval{2, 1, 2, 2, 1, 3, 1}},
	{"melodic_minor", []model.Interval{2, 1, 2, 2, 2, 2, 1}},
	{"dorian", []model.Interval{2, 1, 2, 2, 2, 1, 2}},
	{"phrygian", []model.Interval{1, 2, 2, 2, 1, 2, 2}},
	{"lydian", []model.Interval{2, 2, 2, 1, 2, 2, 1}},
	{"mixolydian", []model.Interval{2, 2, 1, 2, 2, 1, 2}},
	{"locrian", []model.Interval{1, 2, 2, 1, 2, 2, 2}},
}

// PatternName returns the name of an exactly matching step pattern, or
// "" when the pattern is unnamed or the space is not 12-tone.
func PatternName(space pitch.Space, steps []model.Interval) string {
	if space.Cardinality() != 12 {
		return ""
	}
	for _, p := range patterns {
		if equalSteps(p.steps, steps) {
			return p.name
		}
	}
	return ""
}

// PatternNames lists the named patterns in table order.
func PatternNames() []string {
	res := make([]string, len(patterns))
	for i, p := range patterns {
		res[i] = p.name
	}
	return res
}

// Named materializes a named pattern at the given tonic.
func Named(space pitch.Space, tonic model.PitchClass, name string) (model.Scale, error) {
	if space.Cardinality() != 12 {
		return model.Scale{}, &model.ConfigurationError{
			Field:  "scale",
			Reason: "named scale patterns only exist in 12-tone space",
		}
	}
	for _, p := range patterns {
		if p.name == name {
			return materialize(space, tonic, p.steps, p.name), nil
		}
	}
	return model.Scale{}, &model.ConfigurationError{
		Field:  "scale",
		Reason: fmt.Sprintf("no named scale pattern %q", name),
	}
}

func equalSteps(a, b []model.Interval) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
