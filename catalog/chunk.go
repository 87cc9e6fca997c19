package catalog

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/HomingHamster/scale-and-chord-generator/chord"
	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
	"github.com/HomingHamster/scale-and-chord-generator/util"
	"github.com/google/uuid"
)

// PreferredChunkSize bounds how much key+record data goes into one
// chunk file before a new one starts.
const PreferredChunkSize = 64 * 1024 * 1024

type keyToChords = map[string][]model.ChordCandidate

func getKeysSorted(m keyToChords) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func makeChunkOverview(sortedKeys []string) model.ChunkOverview {
	var c model.ChunkOverview
	c.Filename = uuid.New().String() + ".dat"
	c.Start = sortedKeys[0]
	c.End = sortedKeys[len(sortedKeys)-1]
	return c
}

// makeChunk writes one chunk file: a 4-byte little-endian index length,
// the gob-encoded key index, then the fixed-width chord records each
// index entry points into.
func makeChunk(dir string, m keyToChords, sortedKeys []string) model.ChunkOverview {
	c := makeChunkOverview(sortedKeys)
	chunkIndex := make(model.ChunkIndex)
	dataOffset := 0

	dataBuf := new(bytes.Buffer)
	for _, key := range sortedKeys {
		start := dataOffset
		for _, cand := range m[key] {
			record := chord.Serialize(cand)
			dataBuf.Write(record[:])
			dataOffset += chord.RecordSize
		}
		chunkIndex[key] = model.Pair{Start: uint32(start), End: uint32(dataOffset)}
	}

	indexBuf := new(bytes.Buffer)
	encoder := gob.NewEncoder(indexBuf)
	if err := encoder.Encode(chunkIndex); err != nil {
		panic("error making chunk, couldn't encode index: " + err.Error())
	}

	sizeBuf := new(bytes.Buffer)
	binary.Write(sizeBuf, binary.LittleEndian, uint32(indexBuf.Len()))

	var finalBytes []byte
	finalBytes = append(finalBytes, sizeBuf.Bytes()...)
	finalBytes = append(finalBytes, indexBuf.Bytes()...)
	finalBytes = append(finalBytes, dataBuf.Bytes()...)

	if err := os.WriteFile(filepath.Join(dir, c.Filename), finalBytes, 0777); err != nil {
		panic("Write failed for chunk file: " + err.Error())
	}
	return c
}

// CreateChunks compacts all bucket files into key-indexed chunks and
// returns their overviews in key order.
func CreateChunks(dir string) []model.ChunkOverview {
	m := make(keyToChords)
	for _, bucketPath := range BucketPaths(dir) {
		for _, c := range ReadBucket(bucketPath) {
			key := chord.Key(c.PitchClasses)
			m[key] = append(m[key], c)
		}
	}
	if len(m) == 0 {
		return nil
	}

	var res []model.ChunkOverview
	var size int
	var currKeys []string
	sortedKeys := getKeysSorted(m)
	for i, key := range sortedKeys {
		currKeys = append(currKeys, key)
		size += len(m[key])*chord.RecordSize + len(key) + 8

		isLast := len(sortedKeys)-1 == i
		if size > PreferredChunkSize || isLast {
			res = append(res, makeChunk(dir, m, currKeys))
			size = 0
			currKeys = currKeys[:0]
		}
	}
	return res
}

func WriteOverview(dir string, chunks []model.ChunkOverview) {
	util.CreateBinary(filepath.Join(dir, overviewFile), chunks)
}

func LoadOverview(dir string) []model.ChunkOverview {
	return util.ReadBinaryOrPanic[[]model.ChunkOverview](filepath.Join(dir, overviewFile))
}

// ReadIndexOrPanic reads the index header of an open chunk file,
// leaving the file positioned at the start of the data section.
func ReadIndexOrPanic(f *os.File) (model.ChunkIndex, uint32) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(f, buf); err != nil {
		panic("Could not read index length: " + err.Error())
	}
	indexLength := binary.LittleEndian.Uint32(buf)

	buf = make([]byte, indexLength)
	if _, err := io.ReadFull(f, buf); err != nil {
		panic("Could not read index: " + err.Error())
	}

	var index model.ChunkIndex
	decoder := gob.NewDecoder(bytes.NewReader(buf))
	if err := decoder.Decode(&index); err != nil {
		panic("Could not decode chunk index: " + err.Error())
	}
	return index, indexLength
}

func findInChunk(dir, filename, chordKey string, space pitch.Space) []model.ChordCandidate {
	f := util.OpenFileOrPanic(filepath.Join(dir, filename))
	defer f.Close()

	index, _ := ReadIndexOrPanic(f)
	val, ok := index[chordKey]
	if !ok {
		return nil
	}

	if _, err := f.Seek(int64(val.Start), io.SeekCurrent); err != nil {
		panic("Could not seek to data section: " + err.Error())
	}
	buf := make([]byte, val.End-val.Start)
	if _, err := io.ReadFull(f, buf); err != nil {
		panic("Could not read from seeked position: " + err.Error())
	}

	var res []model.ChordCandidate
	for i := 0; i+chord.RecordSize <= len(buf); i += chord.RecordSize {
		c := chord.Deserialize(buf[i : i+chord.RecordSize])
		c.Quality = chord.QualityName(space, c.PitchClasses, c.Root)
		res = append(res, c)
	}
	return res
}

// Lookup finds catalog entries whose pitch-class set matches the given
// pitch classes, via the chunk whose key range covers the chord key.
func Lookup(dir string, chunks []model.ChunkOverview, pcs []model.PitchClass, space pitch.Space) []model.ChordCandidate {
	if len(pcs) == 0 {
		return nil
	}
	chordKey := chord.Key(pcs)
	for _, c := range chunks {
		if chordKey >= c.Start && chordKey <= c.End {
			return findInChunk(dir, c.Filename, chordKey, space)
		}
	}
	return nil
}
