// Package scale enumerates ordered pitch-class sequences spanning one
// octave, filtered by the policy's allowed step sizes.
package scale

import (
	"fmt"

	"github.com/HomingHamster/scale-and-chord-generator/consonance"
	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
)

// Generate enumerates all step patterns (compositions of N into
// `cardinality` positive parts) in ascending pattern order, keeps those
// whose every step the policy allows, and materializes each accepted
// pattern at all N tonics ascending (or only tonic 0 when the policy
// wants pattern classes). With UniqueUpToMode, rotations of an already
// emitted pattern are skipped. Deterministic for identical inputs.
func Generate(space pitch.Space, cardinality int, policy consonance.Policy) ([]model.Scale, error) {
	n := space.Cardinality()
	if cardinality < 2 {
		return nil, &model.ConfigurationError{
			Field:  "scale_cardinality",
			Reason: fmt.Sprintf("scales need at least 2 steps, got %v", cardinality),
		}
	}
	if cardinality > n {
		return nil, &model.ConfigurationError{
			Field:  "scale_cardinality",
			Reason: fmt.Sprintf("cannot exceed pitch space cardinality %v, got %v", n, cardinality),
		}
	}
	if len(policy.AllowedSteps) == 0 {
		return nil, &model.ConfigurationError{
			Field:  "policy.allowed_steps",
			Reason: fmt.Sprintf("%q defines no allowed scale steps", policy.Name),
		}
	}

	var res []model.Scale
	seen := make(map[string]bool)
	compositions(n, cardinality, func(steps []int) {
		for _, s := range steps {
			if !policy.StepAllowed(model.Interval(s)) {
				return
			}
		}
		if policy.UniqueUpToMode {
			key := rotationKey(steps)
			if seen[key] {
				return
			}
			seen[key] = true
		}
		pattern := make([]model.Interval, len(steps))
		for i, s := range steps {
			pattern[i] = model.Interval(s)
		}
		name := PatternName(space, pattern)
		if policy.AllTonics {
			for _, tonic := range space.PitchClasses() {
				res = append(res, materialize(space, tonic, pattern, name))
			}
		} else {
			res = append(res, materialize(space, 0, pattern, name))
		}
	})
	return res, nil
}

func materialize(space pitch.Space, tonic model.PitchClass, pattern []model.Interval, name string) model.Scale {
	steps := make([]model.Interval, len(pattern))
	copy(steps, pattern)
	pcs := make([]model.PitchClass, len(pattern))
	pcs[0] = tonic
	for i := 1; i < len(pattern); i++ {
		pcs[i] = space.Transpose(pcs[i-1], pattern[i-1])
	}
	return model.Scale{
		Tonic:        tonic,
		Steps:        steps,
		PitchClasses: pcs,
		Name:         name,
	}
}

// compositions emits every way of writing total as `parts` positive
// integers, in lexicographically ascending order. The emitted slice is
// reused between calls.
func compositions(total, parts int, emit func(steps []int)) {
	cur := make([]int, 0, parts)
	var rec func(remaining, left int)
	rec = func(remaining, left int) {
		if left == 1 {
			cur = append(cur, remaining)
			emit(cur)
			cur = cur[:len(cur)-1]
			return
		}
		for v := 1; v <= remaining-(left-1); v++ {
			cur = append(cur, v)
			rec(remaining-v, left-1)
			cur = cur[:len(cur)-1]
		}
	}
	rec(total, parts)
}

// rotationKey is the canonical representative of a pattern's mode
// class: the lexicographically smallest rotation, dash-joined.
func rotationKey(steps []int) string {
	best := make([]int, len(steps))
	copy(best, steps)
	rot := make([]int, len(steps))
	for r := 1; r < len(steps); r++ {
		for i := range steps {
			rot[i] = steps[(i+r)%len(steps)]
		}
		if lessSlice(rot, best) {
			copy(best, rot)
		}
	}
	var res string
	for i, s := range best {
		res += fmt.Sprintf("%v", s)
		if i < len(best)-1 {
			res += "-"
		}
	}
	return res
}

func lessSlice(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
