package model

type SearchMatch struct {
	Song          string   `json:"song"`
	Chords        []string `json:"chords"`
	Description   string   `json:"description"`
	Genre         string   `json:"genre"`
	TransposedBy  int      `json:"transposed_by"`
	OriginalKey   string   `json:"original_key"`
	TransposedKey string   `json:"transposed_key,omitempty"`
}

type SearchRequestBody struct {
	Chord string `json:"chord"`
}

type SearchResponse struct {
	Chord      string        `json:"chord"`
	NumMatches int           `json:"num_matches"`
	Results    []SearchMatch `json:"results"`
}

type SongInfoResponse struct {
	ProgressionEntry
	Name     string        `json:"name"`
	Metadata *SongMetadata `json:"metadata,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
