package chord

import (
	"testing"

	"github.com/HomingHamster/scale-and-chord-generator/consonance"
	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
	"github.com/stretchr/testify/assert"
)

func TestStrictTriadicYieldsTwentyFourTriads(t *testing.T) {
	space, _ := pitch.New(12)
	policy, _ := consonance.Named("strict-triadic")
	assert := assert.New(t)

	chords, err := Generate(space, 3, 3, policy)
	assert.NoError(err)
	assert.Len(chords, 24)

	byQuality := make(map[string]int)
	rootsSeen := make(map[string]map[model.PitchClass]bool)
	for _, c := range chords {
		byQuality[c.Quality] += 1
		if rootsSeen[c.Quality] == nil {
			rootsSeen[c.Quality] = make(map[model.PitchClass]bool)
		}
		rootsSeen[c.Quality][c.Root] = true
	}
	assert.Equal(12, byQuality["major"])
	assert.Equal(12, byQuality["minor"])
	assert.Len(rootsSeen["major"], 12)
	assert.Len(rootsSeen["minor"], 12)
}

func TestGenerateMatchesBruteForce(t *testing.T) {
	space, _ := pitch.New(12)
	policy, _ := consonance.Named("standard")
	assert := assert.New(t)

	chords, err := Generate(space, 2, 3, policy)
	assert.NoError(err)

	// Independent reference: test every subset directly, checking each
	// rotation the way the generator does.
	expected := make(map[string]bool)
	for mask := 0; mask < 1<<12; mask++ {
		var pcs []model.PitchClass
		for pc := 0; pc < 12; pc++ {
			if mask&(1<<pc) != 0 {
				pcs = append(pcs, model.PitchClass(pc))
			}
		}
		if len(pcs) < 2 || len(pcs) > 3 {
			continue
		}
		for r := range pcs {
			rot := append(append([]model.PitchClass{}, pcs[r:]...), pcs[:r]...)
			if consonance.IsConsonant(PairwiseIntervals(space, rot), policy) {
				expected[Key(pcs)] = true
				break
			}
		}
	}

	assert.Len(chords, len(expected))
	for _, c := range chords {
		assert.True(expected[Key(c.PitchClasses)], "unexpected chord %v", Key(c.PitchClasses))
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	space, _ := pitch.New(12)
	policy, _ := consonance.Named("standard")

	first, err1 := Generate(space, 2, 4, policy)
	second, err2 := Generate(space, 2, 4, policy)
	assert := assert.New(t)
	assert.NoError(err1)
	assert.NoError(err2)
	assert.Equal(first, second)
}

func TestGenerateOutputInvariants(t *testing.T) {
	space, _ := pitch.New(12)
	policy, _ := consonance.Named("jazz-extended")
	assert := assert.New(t)

	chords, err := Generate(space, 3, 5, policy)
	assert.NoError(err)
	assert.NotEmpty(chords)

	prevSize := 0
	for _, c := range chords {
		assert.GreaterOrEqual(len(c.PitchClasses), 3)
		assert.LessOrEqual(len(c.PitchClasses), 5)
		assert.GreaterOrEqual(len(c.PitchClasses), prevSize, "sizes must be emitted ascending")
		prevSize = len(c.PitchClasses)
		rootAt := -1
		for i := 1; i < len(c.PitchClasses); i++ {
			assert.Less(c.PitchClasses[i-1], c.PitchClasses[i], "members must be strictly ascending")
		}
		for i, pc := range c.PitchClasses {
			if pc == c.Root {
				rootAt = i
			}
		}
		assert.GreaterOrEqual(rootAt, 0, "root must be a chord member")

		// soundness: the root-relative form passes the policy
		rot := append(append([]model.PitchClass{}, c.PitchClasses[rootAt:]...), c.PitchClasses[:rootAt]...)
		assert.True(consonance.IsConsonant(PairwiseIntervals(space, rot), policy))
	}
}

func TestTranspositionDedupKeepsOneTriadPerClass(t *testing.T) {
	space, _ := pitch.New(12)
	policy, _ := consonance.Named("strict-triadic")
	policy.UniqueUpToTransposition = true

	chords, err := Generate(space, 3, 3, policy)
	assert := assert.New(t)
	assert.NoError(err)
	// All major triads are transpositions of one another; likewise minor.
	assert.Len(chords, 2)
	keys := make(map[string]bool)
	for _, c := range chords {
		keys[TranspositionKey(space, c.PitchClasses)] = true
	}
	assert.Len(keys, 2)
}

func TestGenerateRejectsBadBounds(t *testing.T) {
	space, _ := pitch.New(12)
	policy, _ := consonance.Named("standard")
	var confErr *model.ConfigurationError

	cases := []struct {
		name     string
		min, max int
	}{
		{"min below two", 1, 3},
		{"max below min", 4, 3},
		{"max beyond cardinality", 3, 13},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Generate(space, c.min, c.max, policy)
			assert.ErrorAs(t, err, &confErr)
		})
	}

	small, _ := pitch.New(7)
	_, err := Generate(small, 2, 8, policy)
	assert.ErrorAs(t, err, &confErr)

	_, err = Generate(space, 3, 4, consonance.Policy{Name: "void"})
	assert.ErrorAs(t, err, &confErr)
}

func TestClassifyAcceptsRotatedTriads(t *testing.T) {
	space, _ := pitch.New(12)
	policy, _ := consonance.Named("strict-triadic")
	assert := assert.New(t)

	// A major as a set is {1,4,9}; only the rotation from 9 shows the
	// 4-7-3 shape.
	root, quality, ok := classify(space, []model.PitchClass{1, 4, 9}, policy)
	assert.True(ok)
	assert.Equal(model.PitchClass(9), root)
	assert.Equal("major", quality)

	_, _, ok = classify(space, []model.PitchClass{0, 4, 8}, policy)
	assert.False(ok)
}

func TestPreferFormulaRootRecognizesInversions(t *testing.T) {
	space, _ := pitch.New(12)
	jazz, _ := consonance.Named("jazz-extended")
	assert := assert.New(t)

	// {0,3,8} already passes jazz-extended from 0, but only the
	// rotation from 8 names a formula (Ab major, first inversion).
	root, quality, ok := classify(space, []model.PitchClass{0, 3, 8}, jazz)
	assert.True(ok)
	assert.Equal(model.PitchClass(8), root)
	assert.Equal("major", quality)

	// Without the flag the lowest passing rotation wins, named or not.
	plain := jazz
	plain.PreferFormulaRoot = false
	root, quality, ok = classify(space, []model.PitchClass{0, 3, 8}, plain)
	assert.True(ok)
	assert.Equal(model.PitchClass(0), root)
	assert.Equal("", quality)
}

func TestCombinationsAreLexicographic(t *testing.T) {
	var got [][]int
	combinations(4, 2, func(idx []int) {
		cp := make([]int, len(idx))
		copy(cp, idx)
		got = append(got, cp)
	})
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got)
}
