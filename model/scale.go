package model

// Scale is an ordered pitch-class sequence starting at a tonic and
// covering one octave span. Steps always sums to the chromatic
// cardinality; PitchClasses has one entry per step, starting at Tonic.
type Scale struct {
	Tonic        PitchClass
	Steps        []Interval
	PitchClasses []PitchClass

	// Name is the pattern name ("major", "dorian", ...) when the step
	// pattern matches a known one, else empty.
	Name string
}
