package model

// SongMetadata is the optional per-song record kept in DynamoDB,
// overlaid on catalog entries when the metadata service is configured.
type SongMetadata struct {
	Composer string `json:"composer"`
	Year     uint   `json:"year,omitempty"`
	Source   string `json:"source,omitempty"`
}
