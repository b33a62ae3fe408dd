package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oilwatch/backend/internal/domain"
)

func TestCatalogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	catalog := domain.Catalog{
		{
			ItemNo: "30110001", Name: "Lavender", NameCN: "薰衣草",
			Size: "15", Unit: "mL", UnitCN: "支",
			RetailHKD: 520, MemberHKD: 390,
			Type: "Single Oils", TypeCN: "單方精油", IsOil: true,
		},
	}

	require.NoError(t, SaveCatalog(path, catalog))

	loaded := LoadCatalog(path)
	assert.Equal(t, catalog, loaded)
}

func TestCatalogFileStaysReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	catalog := domain.Catalog{
		{ItemNo: "30110001", Name: "Lavender", NameCN: "薰衣草"},
	}
	require.NoError(t, SaveCatalog(path, catalog))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// CJK must be stored literally, not as escape sequences.
	assert.Contains(t, string(data), "薰衣草")
	assert.True(t, strings.Contains(string(data), "  \"itemNo\""), "output is not indented:\n%s", data)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	assert.Nil(t, LoadCatalog(filepath.Join(t.TempDir(), "nope.json")))
}

func TestLoadCatalogCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	assert.Nil(t, LoadCatalog(path))
}

func TestEncyclopediaRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "encyclopedia.json")

	entries := []domain.EncyclopediaEntry{
		{
			ItemNo:   "30110001",
			Name:     "Lavender",
			Size:     15,
			Unit:     "mL",
			Prices:   &domain.EntryPrices{RetailHKD: 520, MemberHKD: 390},
			Category: "Single Oils",
			References: &domain.References{
				ProductPage: "https://example.com/lavender",
				PIP:         "https://example.com/pip/lavender.pdf",
			},
			LastUpdated: "2026-08-31",
		},
	}

	require.NoError(t, SaveEncyclopedia(path, entries))
	assert.Equal(t, entries, LoadEncyclopedia(path))
}

func TestLoadEncyclopediaMissingOrCorrupt(t *testing.T) {
	dir := t.TempDir()

	assert.Nil(t, LoadEncyclopedia(filepath.Join(dir, "nope.json")))

	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("[{]"), 0644))
	assert.Nil(t, LoadEncyclopedia(path))
}

func TestPIPIndexRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "PIP.json")

	index := []domain.PIPEntry{
		{ID: "30110001", Name: "Lavender", PIP: "https://example.com/pip/lavender.pdf"},
		{ID: "30030001", Name: "Peppermint", PIP: ""},
	}

	require.NoError(t, SavePIPIndex(path, index))

	loaded, err := LoadPIPIndex(path)
	require.NoError(t, err)
	assert.Equal(t, index, loaded)
}

func TestLoadPIPIndexErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadPIPIndex(filepath.Join(dir, "nope.json"))
	assert.Error(t, err)

	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
	_, err = LoadPIPIndex(path)
	assert.Error(t, err)
}
