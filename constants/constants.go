package constants

import "os"

func GetCatalogDir() string {
	path := os.Getenv("CATALOG_PATH")
	if path != "" {
		return path
	}
	return "./data"
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// GetDynamoEndpoint answers "" when the metadata overlay is disabled.
func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMO_ENDPOINT")
}

const MetadataTable = "pianochord-metadata"

// DefaultOctave places voicings around middle C (octave 4, C4 = 48 in
// the 12*octave scheme used throughout).
const DefaultOctave = 4

// MaxTransposition is the highest derived copy per catalog entry;
// semitones run 1..11, 12 being the identity.
const MaxTransposition = 11
