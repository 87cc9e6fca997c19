// Package catalog persists generated chords and scales. Chords land in
// per-size bucket files in emission order, then get compacted into
// indexed chunk files searchable by chord key.
package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/HomingHamster/scale-and-chord-generator/chord"
	"github.com/HomingHamster/scale-and-chord-generator/consonance"
	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
	"github.com/HomingHamster/scale-and-chord-generator/util"
)

const (
	manifestFile  = "manifest.dat"
	scalesFile    = "scales.dat"
	overviewFile  = "allChunks.dat"
	bucketPattern = `^\d\d\.dat$`
)

// Manifest records the configuration a catalog was generated from, so
// later commands can reconstruct the same pitch space and policy.
type Manifest struct {
	Cardinality      int
	MinSize          int
	MaxSize          int
	ScaleCardinality int
	Policy           consonance.Policy
}

func bucketPath(dir string, size int) string {
	return filepath.Join(dir, fmt.Sprintf("%02d.dat", size))
}

// WriteBuckets appends the chords to their per-size bucket files,
// preserving generator emission order within each size.
func WriteBuckets(dir string, chords []model.ChordCandidate) {
	files := make(map[int]*os.File)
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()
	for _, c := range chords {
		size := len(c.PitchClasses)
		f, ok := files[size]
		if !ok {
			var err error
			f, err = os.OpenFile(bucketPath(dir, size), os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0777)
			if err != nil {
				panic("Could not open bucket because: " + err.Error())
			}
			files[size] = f
		}
		record := chord.Serialize(c)
		if _, err := f.Write(record[:]); err != nil {
			panic("Could not write chord to bucket because: " + err.Error())
		}
	}
}

// ReadBucket reads every fixed-width chord record in one bucket file.
func ReadBucket(path string) []model.ChordCandidate {
	var res []model.ChordCandidate
	f := util.OpenFileOrPanic(path)
	defer f.Close()
	reader := bufio.NewReader(f)
	for {
		buf := make([]byte, chord.RecordSize)
		_, err := io.ReadFull(reader, buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			panic("Could not read chord from file: " + err.Error())
		}
		res = append(res, chord.Deserialize(buf))
	}
	return res
}

// BucketPaths lists the bucket files ascending by chord size, which is
// the catalog emission order across files.
func BucketPaths(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		panic("Could not read catalog dir because: " + err.Error())
	}
	r := regexp.MustCompile(bucketPattern)
	var res []string
	for _, e := range entries {
		if r.MatchString(e.Name()) {
			res = append(res, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(res)
	return res
}

// ReadAll loads the full chord catalog in emission order, recomputing
// quality names for the given space.
func ReadAll(dir string, space pitch.Space) []model.ChordCandidate {
	var res []model.ChordCandidate
	for _, path := range BucketPaths(dir) {
		for _, c := range ReadBucket(path) {
			c.Quality = chord.QualityName(space, c.PitchClasses, c.Root)
			res = append(res, c)
		}
	}
	return res
}

func WriteManifest(dir string, m Manifest) {
	util.CreateBinary(filepath.Join(dir, manifestFile), m)
}

func ReadManifest(dir string) Manifest {
	return util.ReadBinaryOrPanic[Manifest](filepath.Join(dir, manifestFile))
}

func WriteScales(dir string, scales []model.Scale) {
	util.CreateBinary(filepath.Join(dir, scalesFile), scales)
}

func ReadScales(dir string) []model.Scale {
	return util.ReadBinaryOrPanic[[]model.Scale](filepath.Join(dir, scalesFile))
}
