package util

import (
	"bytes"
	"encoding/gob"
	"os"
	"sort"

	"golang.org/x/exp/constraints"
)

// RecreateDir wipes and recreates a catalog directory.
func RecreateDir(dir string) {
	os.RemoveAll(dir)
	if err := os.MkdirAll(dir, 0777); err != nil {
		panic("Could not recreate dir: " + err.Error())
	}
}

// GetKeys returns a map's keys in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// CreateBinary gob-encodes data into a file.
func CreateBinary(filename string, data any) {
	buf := new(bytes.Buffer)
	encoder := gob.NewEncoder(buf)
	err := encoder.Encode(data)
	if err != nil {
		panic("Could not encode " + filename + ": " + err.Error())
	}
	if err = os.WriteFile(filename, buf.Bytes(), 0777); err != nil {
		panic("Write failed for file " + filename + ": " + err.Error())
	}
}

// ReadBinaryOrPanic gob-decodes a file written by CreateBinary.
func ReadBinaryOrPanic[A any](path string) A {
	f, err := os.Open(path)
	if err != nil {
		panic("Could not load binary file: " + err.Error())
	}
	defer f.Close()

	var data A
	decoder := gob.NewDecoder(f)
	err = decoder.Decode(&data)
	if err != nil {
		panic("Could not decode binary file: " + err.Error())
	}
	return data
}

func OpenFileOrPanic(path string) *os.File {
	f, err := os.Open(path)
	if err != nil {
		panic("Couldn't read file: " + err.Error())
	}
	return f
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
