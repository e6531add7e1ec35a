package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldSearch normaliza un término de búsqueda: minúsculas y sin diacríticos,
// para que "camion" encuentre "Camión volcador".
func foldSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// matchesSearch indica si el item coincide con el término ya normalizado,
// contra código, descripción o tipo de equipo.
func matchesSearch(q, code, description, equipmentType string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(foldSearch(code), q) ||
		strings.Contains(foldSearch(description), q) ||
		strings.Contains(foldSearch(equipmentType), q)
}
