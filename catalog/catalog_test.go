package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const flyMeSource = `{
  "Fly Me to the Moon": {
    "key": "C",
    "genre": "jazz",
    "composer": "Bart Howard",
    "year": 1954,
    "progressions": [
      {"chords": ["Am7", "Dm7", "G7", "Cmaj7"], "description": "vi-ii-V-I"}
    ]
  }
}`

func writeSource(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadParsesEntries(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "a.json", flyMeSource)

	c := New()
	loaded, err := c.Load([]string{source}, false)

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(loaded)
	assert.Equal(StateLoaded, c.State())

	entry, ok := c.SongInfo("Fly Me to the Moon")
	assert.True(ok)
	assert.Equal("C", entry.Key)
	assert.Equal("jazz", entry.Genre)
	assert.Equal("Bart Howard", entry.Composer)
	assert.Len(entry.Progressions, 1)
}

func TestLoadIsIdempotentWithoutForce(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "a.json", flyMeSource)

	c := New()
	loaded, err := c.Load([]string{source}, false)
	assert := assert.New(t)
	assert.NoError(err)
	assert.True(loaded)

	loaded, err = c.Load([]string{source}, false)
	assert.NoError(err)
	assert.False(loaded)
}

func TestLoadDropsInvalidEntriesNonFatally(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "a.json", `{
	  "No Progressions": {"key": "C", "genre": "jazz", "progressions": []},
	  "Empty Chords": {"key": "C", "genre": "jazz", "progressions": [{"chords": [], "description": "x"}]},
	  "Blank Chord": {"key": "C", "genre": "jazz", "progressions": [{"chords": ["Dm7", ""], "description": "x"}]},
	  "Keeper": {"key": "F", "genre": "jazz", "progressions": [{"chords": ["Gm7", "C7", "Fmaj7"], "description": "ii-V-I"}]}
	}`)

	c := New()
	loaded, err := c.Load([]string{source}, false)

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(loaded)
	assert.Equal([]string{"Keeper"}, c.SongNames())
	assert.Len(c.Diagnostics(), 3)
}

func TestLaterSourceOverwritesOnCollision(t *testing.T) {
	dir := t.TempDir()
	first := writeSource(t, dir, "a.json", flyMeSource)
	second := writeSource(t, dir, "b.json", `{
	  "Fly Me to the Moon": {
	    "key": "G",
	    "genre": "vocal jazz",
	    "progressions": [{"chords": ["Em7", "Am7", "D7", "Gmaj7"], "description": "vi-ii-V-I in G"}]
	  }
	}`)

	c := New()
	_, err := c.Load([]string{first, second}, false)

	assert := assert.New(t)
	assert.NoError(err)
	entry, ok := c.SongInfo("Fly Me to the Moon")
	assert.True(ok)
	assert.Equal("G", entry.Key)
	assert.Equal("vocal jazz", entry.Genre)
	assert.NotEmpty(c.Diagnostics())
}

func TestUnreadableSourcesFallBackToBuiltinCatalog(t *testing.T) {
	dir := t.TempDir()
	garbage := writeSource(t, dir, "bad.json", "not json at all")

	c := New()
	loaded, err := c.Load([]string{garbage, filepath.Join(dir, "missing.json")}, false)

	assert := assert.New(t)
	assert.NoError(err)
	assert.True(loaded)
	originals, _ := c.Size()
	assert.Equal(3, originals)
	_, ok := c.SongInfo("Fly Me to the Moon")
	assert.True(ok)
}

func TestFindByChordReturnsOriginalPlusElevenTransposed(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "a.json", flyMeSource)

	c := New()
	_, err := c.Load([]string{source}, false)
	assert := assert.New(t)
	assert.NoError(err)

	matches := c.FindByChord("G", "7")
	assert.Len(matches, 12)

	assert.Equal(0, matches[0].TransposedBy)
	assert.Equal("C", matches[0].OriginalKey)
	assert.Equal([]string{"Am7", "Dm7", "G7", "Cmaj7"}, matches[0].Chords)

	for i := 1; i <= 11; i++ {
		assert.Equal(i, matches[i].TransposedBy)
		assert.Equal("C", matches[i].OriginalKey)
	}
	// up two semitones the song sits in D
	assert.Equal("D", matches[2].TransposedKey)
	assert.Equal([]string{"Bm7", "Em7", "A7", "Dmaj7"}, matches[2].Chords)

	assert.Equal(StateTranspositionsBuilt, c.State())
}

func TestFindByChordMatchesTransposedContentLiterally(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "a.json", flyMeSource)

	c := New()
	_, err := c.Load([]string{source}, false)
	assert := assert.New(t)
	assert.NoError(err)

	// no original contains A#m7; the variant one semitone up does
	matches := c.FindByChord("A#", "m7")
	assert.NotEmpty(matches)
	assert.Equal(1, matches[0].TransposedBy)
	assert.Equal("C#", matches[0].TransposedKey)
}

func TestFindByChordMatchesFlatSpelledOriginals(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "a.json", `{
	  "So What": {
	    "key": "Dm",
	    "genre": "modal jazz",
	    "progressions": [{"chords": ["Dm7", "Dm7", "Ebm7", "Dm7"], "description": "dorian vamp"}]
	  }
	}`)

	c := New()
	_, err := c.Load([]string{source}, false)
	assert := assert.New(t)
	assert.NoError(err)

	// the source spells the chord Ebm7; both flat and sharp queries
	// must find it as an original, not just in shifted variants
	flat := c.FindByChord("Eb", "m7")
	assert.NotEmpty(flat)
	assert.Equal(0, flat[0].TransposedBy)
	assert.Equal("So What", flat[0].Song)

	sharp := c.FindByChord("D#", "m7")
	assert.Equal(flat, sharp)
}

func TestFindByChordOnUnloadedCatalogIsEmpty(t *testing.T) {
	c := New()

	assert := assert.New(t)
	assert.Empty(c.FindByChord("C", "maj7"))
	assert.Equal(StateUnloaded, c.State())
}

func TestFindByChordNormalizesQuery(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "a.json", flyMeSource)

	c := New()
	_, err := c.Load([]string{source}, false)
	assert := assert.New(t)
	assert.NoError(err)

	upper := c.FindByChord("G", "7")
	lower := c.FindByChord("g", "7")
	assert.Equal(upper, lower)

	assert.Empty(c.FindByChord("H", "7"))
}

func TestForceReloadDropsCachedSearches(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "a.json", flyMeSource)

	c := New()
	_, err := c.Load([]string{source}, false)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(c.FindByChord("G", "7"), 12)

	// same path, different content; only a forced reload may notice
	writeSource(t, dir, "a.json", `{
	  "Keeper": {"key": "F", "genre": "jazz", "progressions": [{"chords": ["Gm7", "C7", "Fmaj7"], "description": "ii-V-I"}]}
	}`)

	loaded, err := c.Load([]string{source}, true)
	assert.NoError(err)
	assert.True(loaded)

	// the cached 12-match answer is gone; G7 now only appears in the
	// variant of Keeper seven semitones up (C7 -> G7)
	matches := c.FindByChord("G", "7")
	assert.Len(matches, 1)
	assert.Equal(7, matches[0].TransposedBy)
	assert.Len(c.FindByChord("C", "7"), 12)
}

func TestIndicesGroupAndSort(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "a.json", `{
	  "Zebra Blues": {"key": "C", "genre": "blues", "composer": "A. Writer", "progressions": [{"chords": ["C7"], "description": "x"}]},
	  "Aardvark Blues": {"key": "C", "genre": "blues", "composer": "A. Writer", "progressions": [{"chords": ["F7"], "description": "x"}]},
	  "Something Else": {"key": "G", "genre": "bossa", "progressions": [{"chords": ["Gmaj7"], "description": "x"}]}
	}`)

	c := New()
	_, err := c.Load([]string{source}, false)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"blues", "bossa"}, c.Genres())
	assert.Equal([]string{"Aardvark Blues", "Zebra Blues"}, c.SongsByGenre("blues"))
	assert.Equal([]string{"Aardvark Blues", "Zebra Blues"}, c.SongsByComposer("A. Writer"))
	assert.Equal([]string{"Something Else"}, c.SongsInKey("G"))
	assert.Empty(c.SongsByGenre("polka"))
}

func TestKeyIndexCollapsesEnharmonicSpellings(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "a.json", `{
	  "All the Things You Are": {"key": "Ab", "genre": "jazz", "progressions": [{"chords": ["Fm7"], "description": "x"}]},
	  "Sharp Twin": {"key": "G#", "genre": "jazz", "progressions": [{"chords": ["G#maj7"], "description": "x"}]}
	}`)

	c := New()
	_, err := c.Load([]string{source}, false)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"G#"}, c.Keys())
	want := []string{"All the Things You Are", "Sharp Twin"}
	assert.Equal(want, c.SongsInKey("Ab"))
	assert.Equal(want, c.SongsInKey("G#"))
}

func TestSubscribersFireOnEveryLoad(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "a.json", flyMeSource)

	c := New()
	var fired int
	c.Subscribe(func() { fired++ })

	_, err := c.Load([]string{source}, false)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(1, fired)

	_, err = c.Load([]string{source}, false)
	assert.NoError(err)
	assert.Equal(1, fired) // no-op load does not notify

	_, err = c.Load([]string{source}, true)
	assert.NoError(err)
	assert.Equal(2, fired)
}
