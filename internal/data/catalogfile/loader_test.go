package catalogfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const sampleDoc = `
providers:
  - id: mira
    name: Mira Chen
    avatar: avatars/mira.png
reviews:
  - id: rv1
    provider_id: mira
    rating: 5
    has_photo: true
    text: Best balayage in town.
    service: Balayage
    date: "2026-07-14"
    author: Dana
  - id: rv2
    provider_id: mira
    rating: 4
    text: Solid trim.
    service: Haircut
    date: "2026-07-02"
    author: Lee
`

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")
	writeFile(t, path, sampleDoc)

	c, err := LoadFile(path)
	require.NoError(t, err)

	require.Len(t, c.Providers, 1)
	assert.Equal(t, "mira", c.Providers[0].ID)
	assert.Equal(t, "Mira Chen", c.Providers[0].Name)

	require.Len(t, c.Reviews, 2)
	assert.Equal(t, "rv1", c.Reviews[0].ID)
	assert.Equal(t, 5, c.Reviews[0].Rating)
	assert.True(t, c.Reviews[0].HasPhoto)
	assert.False(t, c.Reviews[1].HasPhoto)
}

func TestLoadFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	writeFile(t, path, "reviews: {not: [a, list}")

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoad_MergesInPathOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "catalog", "a.yml"), `
reviews:
  - {id: rv1, provider_id: p1, rating: 5}
`)
	writeFile(t, filepath.Join(dir, "catalog", "b.yml"), `
providers:
  - {id: p1, name: Someone}
reviews:
  - {id: rv2, provider_id: p1, rating: 3}
`)

	merged, paths, err := Load(dir, []string{"catalog/**/*.yml"})
	require.NoError(t, err)

	assert.Len(t, paths, 2)
	require.Len(t, merged.Reviews, 2)
	assert.Equal(t, "rv1", merged.Reviews[0].ID)
	assert.Equal(t, "rv2", merged.Reviews[1].ID)
	require.Len(t, merged.Providers, 1)
}

func TestLoad_NoMatches(t *testing.T) {
	_, _, err := Load(t.TempDir(), []string{"catalog/**/*.yml"})
	assert.True(t, errors.Is(err, ErrNoCatalog))
}

func TestResolve_DeduplicatesAcrossGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "catalog", "a.yml"), "reviews: []\n")

	paths, err := Resolve(dir, []string{"catalog/*.yml", "catalog/**/*.yml"})
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}

func TestLoad_PermissiveRatings(t *testing.T) {
	// Out-of-range ratings load untouched; the display layer does not
	// validate them.
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "catalog", "odd.yml"), `
reviews:
  - {id: rv1, provider_id: p1, rating: 11}
  - {id: rv2, provider_id: p1, rating: -3}
`)

	merged, _, err := Load(dir, []string{"catalog/*.yml"})
	require.NoError(t, err)
	assert.Equal(t, 11, merged.Reviews[0].Rating)
	assert.Equal(t, -3, merged.Reviews[1].Rating)
}
