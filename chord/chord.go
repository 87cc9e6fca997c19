// Package chord enumerates candidate pitch-class subsets and filters
// them through the consonance rules to produce the chord catalog.
package chord

import (
	"fmt"
	"sort"

	"github.com/HomingHamster/scale-and-chord-generator/consonance"
	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
)

// MaxSize caps enumeration; C(N,k) growth makes anything larger
// intractable and musically pointless.
const MaxSize = 12

// Key returns the canonical string form of a pitch-class set, e.g.
// "0-4-7". Keys sort members ascending so the same set always produces
// the same key regardless of input order.
func Key(pcs []model.PitchClass) string {
	sorted := make([]model.PitchClass, len(pcs))
	copy(sorted, pcs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, pc := range sorted {
		res += fmt.Sprintf("%v", pc)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

// PairwiseIntervals computes the upward interval between every ordered
// pair of members, in the order given. Consonance is judged on the
// chord rotated to start at its root, so member order matters here:
// {9,1,4} yields {4,7,3} while its sorted form {1,4,9} yields {3,8,5}.
func PairwiseIntervals(space pitch.Space, pcs []model.PitchClass) []model.Interval {
	var res []model.Interval
	for i := 0; i < len(pcs); i++ {
		for j := i + 1; j < len(pcs); j++ {
			res = append(res, space.Interval(pcs[i], pcs[j]))
		}
	}
	return res
}

// TranspositionKey maps a pitch-class set to the canonical key of its
// transposition class: the smallest key over the root-relative forms
// taken from every member. Two sets are transpositions of one another
// exactly when their keys match, so dedup is a set lookup, not a
// pairwise comparison.
func TranspositionKey(space pitch.Space, pcs []model.PitchClass) string {
	n := space.Cardinality()
	rel := make([]model.PitchClass, len(pcs))
	var best string
	for _, root := range pcs {
		for i, pc := range pcs {
			rel[i] = model.PitchClass(((int(pc)-int(root))%n + n) % n)
		}
		key := Key(rel)
		if best == "" || key < best {
			best = key
		}
	}
	return best
}

// Generate enumerates all pitch-class subsets with size in
// [minSize, maxSize], keeps those the policy accepts, and emits them
// ascending by size then lexicographically on sorted pitch classes.
// The output is deterministic: identical inputs yield the identical
// sequence. Size bounds are validated before any enumeration starts.
func Generate(space pitch.Space, minSize, maxSize int, policy consonance.Policy) ([]model.ChordCandidate, error) {
	n := space.Cardinality()
	if minSize < 2 {
		return nil, &model.ConfigurationError{
			Field:  "min_size",
			Reason: fmt.Sprintf("chords need at least 2 pitch classes, got %v", minSize),
		}
	}
	if maxSize < minSize {
		return nil, &model.ConfigurationError{
			Field:  "max_size",
			Reason: fmt.Sprintf("must be at least min_size %v, got %v", minSize, maxSize),
		}
	}
	if maxSize > n {
		return nil, &model.ConfigurationError{
			Field:  "max_size",
			Reason: fmt.Sprintf("cannot exceed pitch space cardinality %v, got %v", n, maxSize),
		}
	}
	if maxSize > MaxSize {
		return nil, &model.ConfigurationError{
			Field:  "max_size",
			Reason: fmt.Sprintf("cannot exceed enumeration cap %v, got %v", MaxSize, maxSize),
		}
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	var res []model.ChordCandidate
	seen := make(map[string]bool)
	for k := minSize; k <= maxSize; k++ {
		combinations(n, k, func(idx []int) {
			pcs := make([]model.PitchClass, k)
			for i, v := range idx {
				pcs[i] = model.PitchClass(v)
			}
			root, quality, ok := classify(space, pcs, policy)
			if !ok {
				return
			}
			if policy.UniqueUpToTransposition {
				key := TranspositionKey(space, pcs)
				if seen[key] {
					return
				}
				seen[key] = true
			}
			res = append(res, model.ChordCandidate{
				PitchClasses: pcs,
				Root:         root,
				Quality:      quality,
			})
		})
	}
	return res, nil
}

// classify runs the consonance test on every rotation of the set,
// ascending by starting member. A transposed triad like {1,4,9} only
// shows its {4,7,3} shape from its true root, so the set is accepted
// when any rotation passes, and the lowest passing start becomes the
// root. With PreferFormulaRoot a passing rotation with a named formula
// wins over an earlier unnamed one, which recognizes inversions.
func classify(space pitch.Space, pcs []model.PitchClass, policy consonance.Policy) (model.PitchClass, string, bool) {
	first := -1
	rot := make([]model.PitchClass, len(pcs))
	for r := range pcs {
		copy(rot, pcs[r:])
		copy(rot[len(pcs)-r:], pcs[:r])
		if !consonance.IsConsonant(PairwiseIntervals(space, rot), policy) {
			continue
		}
		quality := QualityName(space, pcs, pcs[r])
		if quality != "" || !policy.PreferFormulaRoot {
			return pcs[r], quality, true
		}
		if first < 0 {
			first = r
		}
	}
	if first >= 0 {
		return pcs[first], QualityName(space, pcs, pcs[first]), true
	}
	return 0, "", false
}

// combinations emits all k-subsets of [0, n) in lexicographic order.
// The emitted slice is reused between calls.
func combinations(n, k int, emit func(idx []int)) {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		emit(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
