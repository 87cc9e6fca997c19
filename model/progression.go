package model

// HarmonicFunction is the structural role a chord plays in a
// progression. The set of functions is grammar data, not a fixed enum.
type HarmonicFunction string

type ProgressionStep struct {
	Chord    ChordCandidate
	Function HarmonicFunction
}

// Progression is an ordered sequence of catalog chords with the
// harmonic function assigned to each. A progression that could not be
// legally continued is returned with Complete=false and the blocking
// function in BlockedAt; callers must inspect Complete rather than
// assume full length.
type Progression struct {
	Steps     []ProgressionStep
	Complete  bool
	BlockedAt HarmonicFunction
}
