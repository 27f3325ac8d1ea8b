package annotation

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/randytsao24/decomap/internal/models"
)

// Search matches query against building names and addresses, ignoring case
// and accents. Results follow load order and ignore the filter state.
func (vm *ViewModel) Search(query string, limit int) []models.Pin {
	needle := fold(strings.TrimSpace(query))
	if needle == "" {
		return []models.Pin{}
	}

	vm.mu.Lock()
	defer vm.mu.Unlock()

	results := make([]models.Pin, 0)
	for i, b := range vm.buildings {
		if strings.Contains(fold(b.Name), needle) || strings.Contains(fold(b.Address), needle) {
			results = append(results, vm.pins[i])
			if limit > 0 && len(results) == limit {
				break
			}
		}
	}
	return results
}

// fold lowercases s and strips combining marks, so "Palacio Díaz" matches "diaz"
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}
