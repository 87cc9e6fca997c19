package progression

import (
	"fmt"

	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
)

type labeled struct {
	chord    model.ChordCandidate
	function model.HarmonicFunction
}

// Sequence performs a constrained walk over the catalog: starting from
// the given function, each step picks the legal candidate with the
// lowest voice-leading cost against the previous chord, ties broken by
// catalog emission order. Chords are labeled by the grammar's degree
// assignment relative to the key tonic; unlabeled chords never take
// part. When no legal continuation exists the partial progression is
// returned with Complete=false and the blocking function set; that is
// a normal result, not an error, and is never padded to full length.
// There is no backtracking.
func Sequence(space pitch.Space, catalog []model.ChordCandidate, g Grammar, key model.PitchClass, start model.HarmonicFunction, length int) (model.Progression, error) {
	if length < 1 {
		return model.Progression{}, &model.ConfigurationError{
			Field:  "length",
			Reason: fmt.Sprintf("must be positive, got %v", length),
		}
	}
	if err := g.Validate(); err != nil {
		return model.Progression{}, err
	}
	startKnown := false
	for _, fn := range g.Functions {
		if fn == start {
			startKnown = true
		}
	}
	if !startKnown {
		return model.Progression{}, &model.ConfigurationError{
			Field:  "start",
			Reason: fmt.Sprintf("function %q is not in the grammar", start),
		}
	}

	// Label once, preserving catalog order for deterministic tie-breaks.
	var pool []labeled
	for _, c := range catalog {
		if fn, ok := g.Degrees[space.Interval(key, c.Root)]; ok {
			pool = append(pool, labeled{chord: c, function: fn})
		}
	}

	var prog model.Progression
	cur := start
	for len(prog.Steps) < length {
		var chosen *labeled
		var chosenCost float64
		for i := range pool {
			cand := &pool[i]
			if len(prog.Steps) == 0 {
				if cand.function != start {
					continue
				}
				// Opening chord has no predecessor; first match wins.
				chosen = cand
				break
			}
			if !g.Legal(cur, cand.function) {
				continue
			}
			cost := VoiceLeadingCost(space, prog.Steps[len(prog.Steps)-1].Chord, cand.chord, g)
			if chosen == nil || cost < chosenCost {
				chosen = cand
				chosenCost = cost
			}
		}
		if chosen == nil {
			prog.Complete = false
			prog.BlockedAt = cur
			return prog, nil
		}
		prog.Steps = append(prog.Steps, model.ProgressionStep{
			Chord:    chosen.chord,
			Function: chosen.function,
		})
		cur = chosen.function
	}
	prog.Complete = true
	return prog, nil
}
