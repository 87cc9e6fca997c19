// Package render emits accepted chords, scales and progressions as
// standard MIDI files. This is the export hand-off: the core never
// depends on anything here succeeding.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/HomingHamster/scale-and-chord-generator/chord"
	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	// MiddleOctave places pitch class 0 on middle C.
	MiddleOctave = 60
	Velocity     = 64
	NoteTicks    = 480
)

func newSMF() smf.SMF {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(NoteTicks)
	return s
}

func noteKey(pc model.PitchClass) uint8 {
	return uint8(MiddleOctave + int(pc))
}

// ChordSMF renders all chord members sounding together for one note
// length.
func ChordSMF(c model.ChordCandidate) smf.SMF {
	var tr smf.Track
	for _, pc := range c.PitchClasses {
		tr.Add(0, midi.NoteOn(0, noteKey(pc), Velocity))
	}
	for i, pc := range c.PitchClasses {
		var delta uint32
		if i == 0 {
			delta = NoteTicks
		}
		tr.Add(delta, midi.NoteOff(0, noteKey(pc)))
	}
	tr.Close(0)

	s := newSMF()
	s.Tracks = append(s.Tracks, tr)
	return s
}

// ScaleSMF renders the scale stepwise from the tonic up to and
// including the octave.
func ScaleSMF(space pitch.Space, sc model.Scale) smf.SMF {
	keys := make([]uint8, 0, len(sc.PitchClasses)+1)
	for _, pc := range sc.PitchClasses {
		keys = append(keys, noteKey(pc))
	}
	keys = append(keys, uint8(MiddleOctave+int(sc.Tonic)+space.Cardinality()))

	var tr smf.Track
	for _, key := range keys {
		tr.Add(0, midi.NoteOn(0, key, Velocity))
		tr.Add(NoteTicks, midi.NoteOff(0, key))
	}
	tr.Close(0)

	s := newSMF()
	s.Tracks = append(s.Tracks, tr)
	return s
}

// ProgressionSMF renders each progression step as a block chord, one
// note length per step.
func ProgressionSMF(p model.Progression) smf.SMF {
	var tr smf.Track
	for _, step := range p.Steps {
		for _, pc := range step.Chord.PitchClasses {
			tr.Add(0, midi.NoteOn(0, noteKey(pc), Velocity))
		}
		for i, pc := range step.Chord.PitchClasses {
			var delta uint32
			if i == 0 {
				delta = NoteTicks
			}
			tr.Add(delta, midi.NoteOff(0, noteKey(pc)))
		}
	}
	tr.Close(0)

	s := newSMF()
	s.Tracks = append(s.Tracks, tr)
	return s
}

// ReadFile parses a MIDI file, converting library panics into errors.
func ReadFile(path string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// the smf parser panics on some malformed input
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return &blank, errors.New("Error reading midi file... " + err.Error())
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.New("Error parsing midi file... " + err.Error())
	}
	return res, nil
}

func chordFilename(space pitch.Space, c model.ChordCandidate) string {
	if c.Quality != "" {
		return fmt.Sprintf("%v_%v.mid", space.NoteName(c.Root), c.Quality)
	}
	return chord.Key(c.PitchClasses) + ".mid"
}

func scaleFilename(space pitch.Space, sc model.Scale) string {
	name := sc.Name
	if name == "" {
		// step order matters, so no chord.Key here
		name = "steps"
		for _, s := range sc.Steps {
			name += fmt.Sprintf("-%v", s)
		}
	}
	return fmt.Sprintf("%v_%v.mid", space.NoteName(sc.Tonic), name)
}

// WriteCatalog renders a full catalog under dir:
// <policy>/Chords/*.mid, <policy>/Scales/*.mid and
// <policy>/Progressions/*.mid.
func WriteCatalog(dir, policyName string, space pitch.Space, chords []model.ChordCandidate, scales []model.Scale, progressions map[string]model.Progression) error {
	base := filepath.Join(dir, policyName)
	chordsDir := filepath.Join(base, "Chords")
	scalesDir := filepath.Join(base, "Scales")
	progressionsDir := filepath.Join(base, "Progressions")
	for _, d := range []string{chordsDir, scalesDir, progressionsDir} {
		if err := os.MkdirAll(d, 0777); err != nil {
			return err
		}
	}

	for _, c := range chords {
		s := ChordSMF(c)
		if err := s.WriteFile(filepath.Join(chordsDir, chordFilename(space, c))); err != nil {
			return err
		}
	}
	for _, sc := range scales {
		s := ScaleSMF(space, sc)
		if err := s.WriteFile(filepath.Join(scalesDir, scaleFilename(space, sc))); err != nil {
			return err
		}
	}
	for name, p := range progressions {
		if len(p.Steps) == 0 {
			continue
		}
		s := ProgressionSMF(p)
		if err := s.WriteFile(filepath.Join(progressionsDir, name+".mid")); err != nil {
			return err
		}
	}
	return nil
}
