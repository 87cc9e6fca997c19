package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKeys(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, GetKeys(m))
}

func TestBinaryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.dat")
	in := map[string][]int{"x": {1, 2, 3}, "y": {4}}
	CreateBinary(path, in)
	assert.Equal(t, in, ReadBinaryOrPanic[map[string][]int](path))
}

func TestRecreateDirWipesContents(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	assert := assert.New(t)
	assert.NoError(os.MkdirAll(dir, 0777))
	stale := filepath.Join(dir, "stale.dat")
	assert.NoError(os.WriteFile(stale, []byte("x"), 0644))

	RecreateDir(dir)
	assert.DirExists(dir)
	assert.NoFileExists(stale)
}

func TestSum(t *testing.T) {
	assert.Equal(t, uint64(6), Sum([]int64{1, 2, 3}))
	assert.Equal(t, uint64(0), Sum([]int64(nil)))
}
