package catalog

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randytsao24/decomap/data"
	"github.com/randytsao24/decomap/internal/models"
)

func TestLoadBundledCatalog(t *testing.T) {
	repo := NewFileRepository(data.FS, data.BuildingsFile)

	buildings, err := repo.LoadBuildings(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, buildings)

	assert.Equal(t, "palacio-salvo", buildings[0].ID)
	assert.Equal(t, "Mario Palanti", buildings[0].Architect)

	seen := make(map[string]bool)
	for _, b := range buildings {
		assert.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true
	}
}

func TestLoadJSONKeepsOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.json": {Data: []byte(`{"buildings":[
			{"id":"2","name":"B","address":"Calle 2","lat":-34.9,"lng":-56.1},
			{"id":"1","name":"A","address":"Calle 1","lat":-34.8,"lng":-56.2,"year":1930}
		]}`)},
	}

	buildings, err := NewFileRepository(fsys, "catalog.json").LoadBuildings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.Building{
		{ID: "2", Name: "B", Address: "Calle 2", Location: models.Coordinate{Lat: -34.9, Lng: -56.1}},
		{ID: "1", Name: "A", Address: "Calle 1", Location: models.Coordinate{Lat: -34.8, Lng: -56.2}, Year: 1930},
	}, buildings)
}

func TestLoadYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.yml": {Data: []byte(`
buildings:
  - id: salvo
    name: Palacio Salvo
    address: Plaza Independencia 846
    lat: -34.90631
    lng: -56.19919
    image_url: https://example.org/salvo.jpg
`)},
	}

	buildings, err := NewFileRepository(fsys, "catalog.yml").LoadBuildings(context.Background())
	require.NoError(t, err)
	require.Len(t, buildings, 1)
	assert.Equal(t, "Palacio Salvo", buildings[0].Name)
	assert.Equal(t, -56.19919, buildings[0].Location.Lng)
	assert.Equal(t, "https://example.org/salvo.jpg", buildings[0].ImageURL)
}

func TestLoadErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.json":   {Data: []byte(`{"buildings":[`)},
		"noname.json":   {Data: []byte(`{"buildings":[{"id":"1","address":"x","lat":0,"lng":0}]}`)},
		"badlat.json":   {Data: []byte(`{"buildings":[{"id":"1","name":"A","address":"x","lat":-95,"lng":0}]}`)},
		"badyear.json":  {Data: []byte(`{"buildings":[{"id":"1","name":"A","address":"x","lat":-34.9,"lng":-56.1,"year":12}]}`)},
		"badimage.json": {Data: []byte(`{"buildings":[{"id":"1","name":"A","address":"x","lat":-34.9,"lng":-56.1,"image_url":"not a url"}]}`)},
		"nocoords.json": {Data: []byte(`{"buildings":[{"id":"1","name":"A","address":"x"}]}`)},
		"nolng.json":    {Data: []byte(`{"buildings":[{"id":"1","name":"A","address":"x","lat":-34.9}]}`)},
		"nolat.yaml":    {Data: []byte("buildings:\n  - id: \"1\"\n    name: A\n    address: x\n    lng: -56.1\n")},
		"catalog.csv":   {Data: []byte(`id,name`)},
	}

	for _, name := range []string{"missing.json", "broken.json", "noname.json", "badlat.json", "badyear.json", "badimage.json",
		"nocoords.json", "nolng.json", "nolat.yaml", "catalog.csv"} {
		t.Run(name, func(t *testing.T) {
			_, err := NewFileRepository(fsys, name).LoadBuildings(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestParseAcceptsZeroCoordinates(t *testing.T) {
	buildings, err := Parse([]byte(`{"buildings":[{"id":"1","name":"A","address":"x","lat":0,"lng":0}]}`), ".json")
	require.NoError(t, err)
	require.Len(t, buildings, 1)
	assert.Equal(t, models.Coordinate{}, buildings[0].Location)
}

func TestParseRejectsMissingCoordinates(t *testing.T) {
	_, err := Parse([]byte(`{"buildings":[{"id":"x","name":"X","address":"Y"}]}`), ".json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)
}
