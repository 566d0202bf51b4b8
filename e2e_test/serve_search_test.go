//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alchy/PianoChord-sub000/cmd"
	"github.com/alchy/PianoChord-sub000/model"
)

func TestMain(m *testing.M) {
	os.Setenv("CATALOG_PATH", "../data")
	cmd.LoadServeCatalog()

	exitVal := m.Run()

	os.Exit(exitVal)
}

func createSearchReqBody(chordName string) io.Reader {
	sr := model.SearchRequestBody{Chord: chordName}
	data, err := json.Marshal(sr)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestSearchG7E2E(t *testing.T) {
	body := createSearchReqBody("G7")
	req := httptest.NewRequest(http.MethodPost, "/search", body)
	w := httptest.NewRecorder()
	cmd.HandleSearch(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var searchResponse model.SearchResponse
	err := json.Unmarshal(respBody, &searchResponse)
	assert.NoError(err)

	assert.Equal("G7", searchResponse.Chord)
	assert.Greater(searchResponse.NumMatches, 0)
	assert.Equal(0, searchResponse.Results[0].TransposedBy)
}

func TestSearchEnharmonicQueryE2E(t *testing.T) {
	// Db7 and C#7 are the same chord to the engine
	for _, spelling := range []string{"Db7", "C#7", "db7"} {
		req := httptest.NewRequest(http.MethodPost, "/search", createSearchReqBody(spelling))
		w := httptest.NewRecorder()
		cmd.HandleSearch(w, req)

		resp := w.Result()
		respBody, _ := io.ReadAll(resp.Body)

		assert := assert.New(t)
		assert.Equal(200, resp.StatusCode)

		var searchResponse model.SearchResponse
		assert.NoError(json.Unmarshal(respBody, &searchResponse))
		assert.Equal("C#7", searchResponse.Chord)
	}
}

func TestSearchBadRootE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/search", createSearchReqBody("H7"))
	w := httptest.NewRecorder()
	cmd.HandleSearch(w, req)

	resp := w.Result()

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)
}
