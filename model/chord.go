package model

// PitchClass is a note identity independent of octave, an integer in
// [0, N) where N is the chromatic cardinality of the pitch space.
type PitchClass = uint8

// Interval is the modular distance between two pitch classes,
// normalized to [0, N).
type Interval = uint8

type Notes = []uint8

// ChordCandidate is a generated, validated simultaneous pitch-class set.
// PitchClasses is strictly ascending with no duplicates. Root is the
// member whose relative form passed the consonance test (the lowest
// such member unless a root-priority rule picked an inversion).
type ChordCandidate struct {
	PitchClasses []PitchClass
	Root         PitchClass

	// Quality is the formula name ("major", "minor7", ...) when the
	// root-relative interval pattern matches a known one, else empty.
	Quality string
}
