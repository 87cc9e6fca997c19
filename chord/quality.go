package chord

import (
	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
)

// formulas maps quality names to semitone offsets from the root. Order
// matters: when two formulas collapse to the same pitch-class set
// (e.g. "7#5" and "augmented7") the earlier name wins.
var formulas = []struct {
	name      string
	intervals []int
}{
	{"major", []int{0, 4, 7}},
	{"major6", []int{0, 4, 7, 9}},
	{"major7", []int{0, 4, 7, 11}},
	{"major9", []int{0, 4, 7, 11, 14}},
	{"major11", []int{0, 4, 7, 11, 14, 17}},
	{"major13", []int{0, 4, 7, 11, 14, 17, 21}},
	{"minor", []int{0, 3, 7}},
	{"minor6", []int{0, 3, 7, 9}},
	{"minor7", []int{0, 3, 7, 10}},
	{"minor9", []int{0, 3, 7, 10, 14}},
	{"minor11", []int{0, 3, 7, 10, 14, 17}},
	{"minor13", []int{0, 3, 7, 10, 14, 17, 21}},
	{"dominant7", []int{0, 4, 7, 10}},
	{"dominant9", []int{0, 4, 7, 10, 14}},
	{"dominant11", []int{0, 4, 7, 10, 14, 17}},
	{"dominant13", []int{0, 4, 7, 10, 14, 17, 21}},
	{"augmented", []int{0, 4, 8}},
	{"augmented7", []int{0, 4, 8, 10}},
	{"augmented9", []int{0, 4, 8, 10, 14}},
	{"diminished", []int{0, 3, 6}},
	{"diminished7", []int{0, 3, 6, 9}},
	{"sus2", []int{0, 2, 7}},
	{"sus4", []int{0, 5, 7}},
	{"7#5", []int{0, 4, 8, 10}},
	{"7b5", []int{0, 4, 6, 10}},
	{"7#9", []int{0, 4, 7, 10, 15}},
	{"7b9", []int{0, 4, 7, 10, 13}},
	{"add9", []int{0, 4, 7, 14}},
	{"major7#11", []int{0, 4, 7, 11, 18}},
	{"minor_major7", []int{0, 3, 7, 11}},
}

var formulaByPattern = buildFormulaPatterns()

func buildFormulaPatterns() map[string]string {
	res := make(map[string]string)
	for _, f := range formulas {
		set := make(map[model.PitchClass]bool)
		for _, iv := range f.intervals {
			set[model.PitchClass(iv%12)] = true
		}
		var pcs []model.PitchClass
		for pc := range set {
			pcs = append(pcs, pc)
		}
		key := Key(pcs)
		if _, ok := res[key]; !ok {
			res[key] = f.name
		}
	}
	return res
}

// QualityName names the chord formed by pcs over the given root, e.g.
// "major7". Formula names only exist in 12-tone space; other
// cardinalities and unknown patterns return "".
func QualityName(space pitch.Space, pcs []model.PitchClass, root model.PitchClass) string {
	if space.Cardinality() != 12 {
		return ""
	}
	rel := make([]model.PitchClass, len(pcs))
	for i, pc := range pcs {
		rel[i] = space.Interval(root, pc)
	}
	return formulaByPattern[Key(rel)]
}

// QualityNames lists every known formula name in table order.
func QualityNames() []string {
	res := make([]string, len(formulas))
	for i, f := range formulas {
		res[i] = f.name
	}
	return res
}
