package consonance

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/stretchr/testify/assert"
)

func TestAcceptedIntervalsPassOutright(t *testing.T) {
	policy, err := Named("strict-triadic")
	assert := assert.New(t)
	assert.NoError(err)

	cases := []struct {
		intervals []model.Interval
		expected  bool
	}{
		{[]model.Interval{4, 7, 3}, true},  // major triad
		{[]model.Interval{3, 7, 4}, true},  // minor triad
		{[]model.Interval{3, 6, 3}, false}, // diminished
		{[]model.Interval{4, 8, 4}, false}, // augmented
		{[]model.Interval{7}, true},        // bare fifth
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("intervals %v", c.intervals), func(t *testing.T) {
			assert.Equal(c.expected, IsConsonant(c.intervals, policy))
		})
	}
}

func TestEmptyIntervalSetIsDegenerate(t *testing.T) {
	policy, _ := Named("standard")
	assert.False(t, IsConsonant(nil, policy))
	assert.False(t, IsConsonant([]model.Interval{}, policy))
}

func TestWeightedScoringRespectsThreshold(t *testing.T) {
	policy := Policy{
		Name:              "weighted",
		AcceptedIntervals: []model.Interval{3, 4, 7},
		DissonanceWeights: map[model.Interval]float64{2: 1, 10: 1.5},
		MaxDissonance:     2,
	}
	assert := assert.New(t)

	// one weighted interval within budget
	assert.True(IsConsonant([]model.Interval{4, 7, 2}, policy))
	// 1 + 1.5 blows the budget
	assert.False(IsConsonant([]model.Interval{2, 10, 4}, policy))
	// unweighted, unaccepted interval always rejects
	assert.False(IsConsonant([]model.Interval{4, 6}, policy))
}

func TestUnknownNamedPolicy(t *testing.T) {
	_, err := Named("quartal")
	var confErr *model.ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestValidateRequiresSomeRule(t *testing.T) {
	assert := assert.New(t)

	var confErr *model.ConfigurationError
	assert.ErrorAs(Policy{Name: "empty"}.Validate(), &confErr)

	missingThreshold := Policy{
		Name:              "weights-only",
		DissonanceWeights: map[model.Interval]float64{2: 1},
	}
	assert.ErrorAs(missingThreshold.Validate(), &confErr)

	ok := Policy{Name: "ok", AcceptedIntervals: []model.Interval{7}}
	assert.NoError(ok.Validate())
}

func TestLoadPolicyFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	content := `name: custom
accepted_intervals: [3, 4, 7]
dissonance_weights:
  2: 1.0
  10: 1.5
max_dissonance: 2
allowed_steps: [1, 2]
unique_up_to_transposition: true
`
	err := os.WriteFile(path, []byte(content), 0644)
	assert := assert.New(t)
	assert.NoError(err)

	policy, err := Load(path)
	assert.NoError(err)
	assert.Equal("custom", policy.Name)
	assert.Equal([]model.Interval{3, 4, 7}, policy.AcceptedIntervals)
	assert.Equal(1.5, policy.DissonanceWeights[10])
	assert.True(policy.UniqueUpToTransposition)
	assert.True(policy.StepAllowed(2))
	assert.False(policy.StepAllowed(3))
}

func TestLoadRejectsMalformedPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	err := os.WriteFile(path, []byte("name: bad\n"), 0644)
	assert := assert.New(t)
	assert.NoError(err)

	_, err = Load(path)
	var confErr *model.ConfigurationError
	assert.ErrorAs(err, &confErr)
}
