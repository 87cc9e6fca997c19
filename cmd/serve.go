package cmd

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sort"

	"github.com/HomingHamster/scale-and-chord-generator/catalog"
	"github.com/HomingHamster/scale-and-chord-generator/chord"
	"github.com/HomingHamster/scale-and-chord-generator/config"
	"github.com/HomingHamster/scale-and-chord-generator/model"
	"github.com/HomingHamster/scale-and-chord-generator/pitch"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var (
	serveDir    string
	serveSpace  pitch.Space
	serveChunks []model.ChunkOverview
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves catalog search over HTTP",
	Long:  `Serves catalog search over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadServeFiles loads the catalog the search handler answers from.
// Exported so the e2e tests can prime the handler without a listener.
func LoadServeFiles() {
	cfg := config.Load()
	serveDir = cfg.CatalogDir
	manifest := catalog.ReadManifest(serveDir)
	space, err := pitch.New(manifest.Cardinality)
	if err != nil {
		panic("Catalog manifest has invalid cardinality: " + err.Error())
	}
	serveSpace = space
	serveChunks = catalog.LoadOverview(serveDir)
}

// reduceNotes folds MIDI note numbers (or raw pitch classes) into a
// sorted, deduplicated pitch-class set.
func reduceNotes(space pitch.Space, notes model.Notes) []model.PitchClass {
	set := make(map[model.PitchClass]bool)
	for _, note := range notes {
		set[model.PitchClass(int(note) % space.Cardinality())] = true
	}
	res := make([]model.PitchClass, 0, len(set))
	for pc := range set {
		res = append(res, pc)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res
}

func HandleSearch(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read request body", 400)
		return
	}

	var input model.SearchRequestBody
	if err = json.Unmarshal(reqBody, &input); err != nil {
		w.WriteHeader(400)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: "Could not unmarshal request body: " + err.Error()})
		return
	}
	if len(input.Notes) == 0 {
		w.WriteHeader(400)
		json.NewEncoder(w).Encode(model.ErrorResponse{Error: "Need at least one note"})
		return
	}

	pcs := reduceNotes(serveSpace, input.Notes)
	matches := catalog.Lookup(serveDir, serveChunks, pcs, serveSpace)

	res := model.SearchResponse{
		NumMatches: len(matches),
		Results:    make([]model.SearchResult, 0, len(matches)),
	}
	for _, m := range matches {
		res.Results = append(res.Results, model.SearchResult{
			Key:          chord.Key(m.PitchClasses),
			PitchClasses: m.PitchClasses,
			Root:         m.Root,
			RootName:     serveSpace.NoteName(m.Root),
			Quality:      m.Quality,
		})
	}
	json.NewEncoder(w).Encode(res)
}

func serve() {
	LoadServeFiles()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/search", HandleSearch).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(config.Load().ServeAddr, handler))
}
