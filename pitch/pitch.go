// Package pitch defines the discrete pitch-class universe and its
// modular interval arithmetic.
package pitch

import (
	"fmt"

	"github.com/HomingHamster/scale-and-chord-generator/model"
)

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Space is a chromatic pitch-class universe of some cardinality N.
// It is pure and stateless; all arithmetic is modulo N.
type Space struct {
	n int
}

// TwelveTET is the standard 12-tone equal temperament space. It is an
// explicit named value so callers always pass their pitch space in.
var TwelveTET = Space{n: 12}

func New(n int) (Space, error) {
	if n <= 0 {
		return Space{}, &model.ConfigurationError{
			Field:  "cardinality",
			Reason: fmt.Sprintf("must be positive, got %v", n),
		}
	}
	if n > 256 {
		return Space{}, &model.ConfigurationError{
			Field:  "cardinality",
			Reason: fmt.Sprintf("must be at most 256, got %v", n),
		}
	}
	return Space{n: n}, nil
}

func (s Space) Cardinality() int {
	return s.n
}

// Interval returns the upward modular distance from a to b, normalized
// to [0, N). The reverse direction is N minus the result.
func (s Space) Interval(a, b model.PitchClass) model.Interval {
	d := (int(b) - int(a)) % s.n
	if d < 0 {
		d += s.n
	}
	return model.Interval(d)
}

func (s Space) Transpose(p model.PitchClass, i model.Interval) model.PitchClass {
	return model.PitchClass((int(p) + int(i)) % s.n)
}

// PitchClasses enumerates all N pitch classes ascending.
func (s Space) PitchClasses() []model.PitchClass {
	res := make([]model.PitchClass, s.n)
	for i := range res {
		res[i] = model.PitchClass(i)
	}
	return res
}

// NoteName renders a pitch class for display and filenames. Note
// letters only exist in 12-tone space; other cardinalities fall back to
// the bare number.
func (s Space) NoteName(p model.PitchClass) string {
	if s.n == len(noteNames) && int(p) < len(noteNames) {
		return noteNames[p]
	}
	return fmt.Sprintf("%d", p)
}

// ParseNote resolves a note name ("C", "F#") or a bare pitch-class
// number to a pitch class in this space.
func (s Space) ParseNote(name string) (model.PitchClass, error) {
	if s.n == len(noteNames) {
		for i, nn := range noteNames {
			if nn == name {
				return model.PitchClass(i), nil
			}
		}
	}
	var pc int
	if _, err := fmt.Sscanf(name, "%d", &pc); err == nil && pc >= 0 && pc < s.n {
		return model.PitchClass(pc), nil
	}
	return 0, &model.ConfigurationError{
		Field:  "note",
		Reason: fmt.Sprintf("unknown note %q", name),
	}
}
