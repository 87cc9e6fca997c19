package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
	"github.com/HomingHamster/scale-and-chord-generator/scale"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

func collectNotes(s smf.SMF) (ons, offs []uint8) {
	for _, event := range s.Tracks[0] {
		var channel, key, velocity uint8
		switch {
		case event.Message.GetNoteOn(&channel, &key, &velocity):
			ons = append(ons, key)
		case event.Message.GetNoteOff(&channel, &key, &velocity):
			offs = append(offs, key)
		}
	}
	return ons, offs
}

func TestChordSMF(t *testing.T) {
	c := model.ChordCandidate{
		PitchClasses: []model.PitchClass{0, 4, 7},
		Root:         0,
		Quality:      "major",
	}
	s := ChordSMF(c)
	assert := assert.New(t)
	assert.Len(s.Tracks, 1)

	ons, offs := collectNotes(s)
	assert.Equal([]uint8{60, 64, 67}, ons)
	assert.Equal([]uint8{60, 64, 67}, offs)

	// all note-ons sound together, the first note-off carries the length
	var deltas []uint32
	for _, event := range s.Tracks[0] {
		var channel, key, velocity uint8
		if event.Message.GetNoteOff(&channel, &key, &velocity) {
			deltas = append(deltas, event.Delta)
		}
	}
	assert.Equal([]uint32{NoteTicks, 0, 0}, deltas)
}

func TestScaleSMFClosesTheOctave(t *testing.T) {
	space, _ := pitch.New(12)
	sc, err := scale.Named(space, 0, "major")
	assert := assert.New(t)
	assert.NoError(err)

	ons, offs := collectNotes(ScaleSMF(space, sc))
	assert.Equal([]uint8{60, 62, 64, 65, 67, 69, 71, 72}, ons)
	assert.Len(offs, 8)
}

func TestProgressionSMF(t *testing.T) {
	p := model.Progression{
		Steps: []model.ProgressionStep{
			{Chord: model.ChordCandidate{PitchClasses: []model.PitchClass{0, 4, 7}}},
			{Chord: model.ChordCandidate{PitchClasses: []model.PitchClass{2, 7, 11}}},
		},
		Complete: true,
	}
	ons, offs := collectNotes(ProgressionSMF(p))
	assert := assert.New(t)
	assert.Equal([]uint8{60, 64, 67, 62, 67, 71}, ons)
	assert.Len(offs, 6)
}

func TestFilenames(t *testing.T) {
	space, _ := pitch.New(12)
	assert := assert.New(t)

	named := model.ChordCandidate{PitchClasses: []model.PitchClass{0, 4, 7}, Root: 0, Quality: "major"}
	assert.Equal("C_major.mid", chordFilename(space, named))

	unnamed := model.ChordCandidate{PitchClasses: []model.PitchClass{0, 1, 2}, Root: 0}
	assert.Equal("0-1-2.mid", chordFilename(space, unnamed))

	sc, _ := scale.Named(space, 7, "dorian")
	assert.Equal("G_dorian.mid", scaleFilename(space, sc))

	// unnamed patterns must keep step order distinct
	a := model.Scale{Tonic: 0, Steps: []model.Interval{1, 2, 9}}
	b := model.Scale{Tonic: 0, Steps: []model.Interval{2, 1, 9}}
	assert.NotEqual(scaleFilename(space, a), scaleFilename(space, b))
}

func TestWriteCatalogAndReadBack(t *testing.T) {
	dir := t.TempDir()
	space, _ := pitch.New(12)
	assert := assert.New(t)

	chords := []model.ChordCandidate{
		{PitchClasses: []model.PitchClass{0, 4, 7}, Root: 0, Quality: "major"},
		{PitchClasses: []model.PitchClass{0, 4, 9}, Root: 9, Quality: "minor"},
	}
	sc, _ := scale.Named(space, 0, "major")
	progressions := map[string]model.Progression{
		"ii-V-I": {
			Steps: []model.ProgressionStep{
				{Chord: chords[0], Function: "tonic"},
			},
			Complete: true,
		},
		"empty": {}, // must be skipped
	}

	err := WriteCatalog(dir, "standard", space, chords, []model.Scale{sc}, progressions)
	assert.NoError(err)

	assert.FileExists(filepath.Join(dir, "standard", "Chords", "C_major.mid"))
	assert.FileExists(filepath.Join(dir, "standard", "Chords", "A_minor.mid"))
	assert.FileExists(filepath.Join(dir, "standard", "Scales", "C_major.mid"))
	assert.FileExists(filepath.Join(dir, "standard", "Progressions", "ii-V-I.mid"))
	assert.NoFileExists(filepath.Join(dir, "standard", "Progressions", "empty.mid"))

	s, err := ReadFile(filepath.Join(dir, "standard", "Chords", "C_major.mid"))
	assert.NoError(err)
	ons, _ := collectNotes(*s)
	assert.Equal([]uint8{60, 64, 67}, ons)
}

func TestReadFileErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(err)

	bad := filepath.Join(t.TempDir(), "bad.mid")
	assert.NoError(os.WriteFile(bad, []byte("not midi"), 0644))
	_, err = ReadFile(bad)
	assert.Error(err)
}
