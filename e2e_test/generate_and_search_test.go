//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/HomingHamster/scale-and-chord-generator/cmd"
	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "catalog-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)
	os.Setenv("CATALOG_DIR", dir)

	if err := cmd.Generate(12, 3, 3, 7, "strict-triadic", "", dir); err != nil {
		panic(err)
	}
	cmd.LoadServeFiles()

	os.Exit(m.Run())
}

func search(t *testing.T, body any) *httptest.ResponseRecorder {
	dat, err := json.Marshal(body)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader(dat))
	rec := httptest.NewRecorder()
	cmd.HandleSearch(rec, req)
	return rec
}

func TestSearchFindsGeneratedChord(t *testing.T) {
	assert := assert.New(t)

	// middle C, E, G
	rec := search(t, model.SearchRequestBody{Notes: model.Notes{60, 64, 67}})
	assert.Equal(200, rec.Code)

	var res model.SearchResponse
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(1, res.NumMatches)
	assert.Equal("0-4-7", res.Results[0].Key)
	assert.Equal("C", res.Results[0].RootName)
	assert.Equal("major", res.Results[0].Quality)
}

func TestSearchFoldsOctavesTogether(t *testing.T) {
	assert := assert.New(t)

	// A minor across three octaves, with a doubled root
	rec := search(t, model.SearchRequestBody{Notes: model.Notes{57, 60, 64, 69}})
	assert.Equal(200, rec.Code)

	var res model.SearchResponse
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(1, res.NumMatches)
	assert.Equal("A", res.Results[0].RootName)
	assert.Equal("minor", res.Results[0].Quality)
}

func TestSearchMissReturnsEmptyResult(t *testing.T) {
	assert := assert.New(t)

	rec := search(t, model.SearchRequestBody{Notes: model.Notes{60, 61, 62}})
	assert.Equal(200, rec.Code)

	var res model.SearchResponse
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(0, res.NumMatches)
	assert.Empty(res.Results)
}

func TestSearchRejectsBadRequests(t *testing.T) {
	assert := assert.New(t)

	rec := search(t, model.SearchRequestBody{})
	assert.Equal(400, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader([]byte("not json")))
	rec = httptest.NewRecorder()
	cmd.HandleSearch(rec, req)
	assert.Equal(400, rec.Code)

	var res model.ErrorResponse
	assert.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(res.Error)
}
