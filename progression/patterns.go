package progression

import (
	"fmt"
	"sort"

	"github.com/HomingHamster/scale-and-chord-generator/chord"
	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
)

// Named degree patterns. Each entry indexes chords built on scale
// degrees (0 = tonic chord). Some traditional patterns reach for
// chromatic roots beyond the seven diatonic chords; realizing those
// against a plain diatonic set yields an incomplete progression.
var namedPatterns = []struct {
	name    string
	degrees []int
}{
	{"I-V-ii-IV", []int{0, 4, 1, 3}},
	{"12-bar-blues", []int{0, 0, 0, 0, 3, 3, 0, 0, 4, 3, 0, 0}},
	{"I-IV-I-V-IV-I", []int{0, 3, 0, 4, 3, 0}},
	{"iii-vi-ii-V", []int{2, 5, 1, 4}},
	{"I-vi-ii-V", []int{0, 5, 1, 4}},
	{"I-vi-ii-V-I", []int{0, 5, 1, 4, 0}},
	{"I-V-vi-iii-IV-I-IV-V", []int{0, 4, 5, 2, 3, 0, 3, 4}},
	{"I-IV-V", []int{0, 3, 4}},
	{"I-bVII-IV", []int{0, 10, 3}},
	{"I-V-vi-iii-IV-I-ii-V", []int{0, 4, 5, 2, 3, 0, 1, 4}},
	{"ii-V-I", []int{1, 4, 0}},
	{"I-ii-IV-V", []int{0, 1, 3, 4}},
	{"ii-V-I-vi", []int{1, 4, 0, 5}},
	{"i-bVI-bVII", []int{0, 8, 10}},
	{"i-bVII-bVI-VII", []int{0, 10, 8, 11}},
	{"I-IV-vi-V", []int{0, 3, 5, 4}},
	{"I-V-IV-I", []int{0, 4, 3, 0}},
	{"vi-IV-I-V", []int{5, 3, 0, 4}},
	{"I-IV-I-V", []int{0, 3, 0, 4}},
	{"I-V-IV", []int{0, 4, 3}},
	{"I-IV-V-IV", []int{0, 3, 4, 3}},
	{"I-IV-V-I", []int{0, 3, 4, 0}},
	{"I-vi-IV-V", []int{0, 5, 3, 4}},
}

var degreeFunctions = map[int]model.HarmonicFunction{
	0: "tonic",
	1: "supertonic",
	2: "mediant",
	3: "subdominant",
	4: "dominant",
	5: "submediant",
	6: "leading-tone",
}

func functionForDegree(deg int) model.HarmonicFunction {
	if fn, ok := degreeFunctions[deg]; ok {
		return fn
	}
	return model.HarmonicFunction(fmt.Sprintf("chromatic-%v", deg))
}

// PatternNames lists the named degree patterns in table order.
func PatternNames() []string {
	res := make([]string, len(namedPatterns))
	for i, p := range namedPatterns {
		res[i] = p.name
	}
	return res
}

// Realize instantiates a named degree pattern over the given degree
// chords (index 0 = chord on the tonic). A degree with no chord to
// realize it blocks the walk and the partial progression comes back
// with Complete=false, matching the sequencer's partial-result
// contract.
func Realize(name string, degreeChords []model.ChordCandidate) (model.Progression, error) {
	var degrees []int
	found := false
	for _, p := range namedPatterns {
		if p.name == name {
			degrees = p.degrees
			found = true
			break
		}
	}
	if !found {
		return model.Progression{}, &model.ConfigurationError{
			Field:  "pattern",
			Reason: fmt.Sprintf("no named progression pattern %q", name),
		}
	}

	var prog model.Progression
	for _, deg := range degrees {
		if deg >= len(degreeChords) {
			prog.Complete = false
			prog.BlockedAt = functionForDegree(deg)
			return prog, nil
		}
		prog.Steps = append(prog.Steps, model.ProgressionStep{
			Chord:    degreeChords[deg],
			Function: functionForDegree(deg),
		})
	}
	prog.Complete = true
	return prog, nil
}

// Diatonic builds the stacked-third triad on every degree of a scale.
// The result is ordered by degree and suitable for Realize. Roots keep
// the degree note even when it is not the lowest pitch class.
func Diatonic(space pitch.Space, sc model.Scale) []model.ChordCandidate {
	card := len(sc.PitchClasses)
	res := make([]model.ChordCandidate, 0, card)
	for i := 0; i < card; i++ {
		root := sc.PitchClasses[i]
		members := []model.PitchClass{
			root,
			sc.PitchClasses[(i+2)%card],
			sc.PitchClasses[(i+4)%card],
		}
		sort.Slice(members, func(a, b int) bool {
			return members[a] < members[b]
		})
		res = append(res, model.ChordCandidate{
			PitchClasses: members,
			Root:         root,
			Quality:      chord.QualityName(space, members, root),
		})
	}
	return res
}
