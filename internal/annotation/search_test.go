package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randytsao24/decomap/internal/models"
)

func TestSearch(t *testing.T) {
	buildings := []models.Building{
		{ID: "salvo", Name: "Palacio Salvo", Address: "Plaza Independencia 846"},
		{ID: "diaz", Name: "Palacio Díaz", Address: "Av. 18 de Julio 1333"},
		{ID: "lapido", Name: "Edificio Lapido", Address: "Av. 18 de Julio 948"},
		{ID: "rex", Name: "Edificio Rex", Address: "Julio Herrera y Obes 1325"},
	}
	vm := newVM(t, &fakeRepo{buildings: buildings}, newFakeStore("rex"))

	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{"by name", "salvo", 0, []string{"salvo"}},
		{"accent insensitive", "diaz", 0, []string{"diaz"}},
		{"accent in query", "DÍAZ", 0, []string{"diaz"}},
		{"by address keeps load order", "18 de julio", 0, []string{"diaz", "lapido"}},
		{"prefix across names", "palacio", 0, []string{"salvo", "diaz"}},
		{"limit", "edificio", 1, []string{"lapido"}},
		{"no match", "cabildo", 0, []string{}},
		{"blank", "   ", 0, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(vm.Search(tc.query, tc.limit)))
		})
	}
}

func TestSearchIgnoresFilter(t *testing.T) {
	buildings := []models.Building{{ID: "1", Name: "Palacio Salvo"}, {ID: "2", Name: "Palacio Díaz"}}
	vm := newVM(t, &fakeRepo{buildings: buildings}, newFakeStore("1"))
	vm.SetFilter(models.ShowFavoritesOnly)

	got := vm.Search("palacio", 0)
	assert.Equal(t, []string{"1", "2"}, ids(got))
	assert.True(t, got[0].IsFavorite)
	assert.False(t, got[1].IsFavorite)
}
