package progression

import (
	"math"

	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
)

// VoiceLeadingCost is the minimal summed per-voice pitch-class distance
// over the best assignment of voices between two chords. Chord sizes
// are small (bounded by the enumeration cap) so the matching is brute
// force with pruning rather than a general assignment solver. Voices
// left unmatched when sizes differ cost the grammar's unmatched
// penalty each.
func VoiceLeadingCost(space pitch.Space, a, b model.ChordCandidate, g Grammar) float64 {
	small, large := a.PitchClasses, b.PitchClasses
	if len(small) > len(large) {
		small, large = large, small
	}

	weight := g.stepWeight()
	best := math.Inf(1)
	used := make([]bool, len(large))
	var match func(i int, acc float64)
	match = func(i int, acc float64) {
		if acc >= best {
			return
		}
		if i == len(small) {
			best = acc
			return
		}
		for j := range large {
			if used[j] {
				continue
			}
			used[j] = true
			match(i+1, acc+weight*distance(space, small[i], large[j]))
			used[j] = false
		}
	}
	match(0, 0)

	return best + g.unmatchedPenalty()*float64(len(large)-len(small))
}

// distance is the undirected pitch-class distance: the shorter way
// around the octave.
func distance(space pitch.Space, a, b model.PitchClass) float64 {
	d := int(space.Interval(a, b))
	if space.Cardinality()-d < d {
		d = space.Cardinality() - d
	}
	return float64(d)
}
