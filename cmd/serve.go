package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/alchy/PianoChord-sub000/catalog"
	"github.com/alchy/PianoChord-sub000/chord"
	"github.com/alchy/PianoChord-sub000/constants"
	"github.com/alchy/PianoChord-sub000/db"
	"github.com/alchy/PianoChord-sub000/model"
	"github.com/alchy/PianoChord-sub000/util"
)

var serveCatalog *catalog.Catalog

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the catalog search API",
	Long:  `Serves the catalog search API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadServeCatalog builds the server's catalog from the configured
// source directory. Exported so the e2e tests can run the handlers
// without a listening socket.
func LoadServeCatalog() {
	serveCatalog = catalog.New()
	serveCatalog.Subscribe(func() {
		originals, _ := serveCatalog.Size()
		fmt.Printf("Catalog (re)loaded with %v songs\n", originals)
	})
	sources := util.GatherCatalogPaths(constants.GetCatalogDir())
	if _, err := serveCatalog.Load(sources, false); err != nil {
		log.Fatal("Could not build catalog: " + err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: message})
}

// HandleSearch answers POST /search. Body: {"chord": "Dm7"}.
func HandleSearch(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "could not read request body")
		return
	}

	var input model.SearchRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "could not unmarshal request body: "+err.Error())
		return
	}

	symbol, err := chord.Parse(input.Chord)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	matches := serveCatalog.FindByChord(symbol.Root, symbol.Type)
	if matches == nil {
		matches = []model.SearchMatch{}
	}
	json.NewEncoder(w).Encode(model.SearchResponse{
		Chord:      symbol.String(),
		NumMatches: len(matches),
		Results:    matches,
	})
}

func handleGenres(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(serveCatalog.Genres())
}

func handleSongsByGenre(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	json.NewEncoder(w).Encode(serveCatalog.SongsByGenre(vars["genre"]))
}

// HandleSongInfo answers GET /songs/{name}, overlaying DynamoDB
// metadata when the overlay is configured.
func HandleSongInfo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]
	entry, ok := serveCatalog.SongInfo(name)
	if !ok {
		writeError(w, 404, "no such song: "+name)
		return
	}

	res := model.SongInfoResponse{ProgressionEntry: entry, Name: name}
	if db.Enabled() {
		metadatas, err := db.GetSongMetadatas([]string{name})
		if err != nil {
			fmt.Printf("Skipping metadata overlay because: %v\n", err)
		} else if m, ok := metadatas[name]; ok {
			res.Metadata = &m
		}
	}
	json.NewEncoder(w).Encode(res)
}

func handleReload(w http.ResponseWriter, r *http.Request) {
	sources := util.GatherCatalogPaths(constants.GetCatalogDir())
	reloaded, err := serveCatalog.Load(sources, true)
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"reloaded": reloaded})
}

func serve() {
	LoadServeCatalog()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/search", HandleSearch).Methods("POST")
	router.HandleFunc("/genres", handleGenres).Methods("GET")
	router.HandleFunc("/genres/{genre}/songs", handleSongsByGenre).Methods("GET")
	router.HandleFunc("/songs/{name}", HandleSongInfo).Methods("GET")
	router.HandleFunc("/reload", handleReload).Methods("POST")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
