package render

import (
	"strconv"
	"strings"

	"github.com/pokeview/pokedex/internal/model"
)

// EmptyPlaceholder stands in for an empty type or ability list
const EmptyPlaceholder = "—"

// Capitalize uppercases the first character only
func Capitalize(s string) string {
	return model.Capitalize(s)
}

// FormatTenths renders a value stored in tenths using the shortest decimal
// form: 4 -> "0.4", 60 -> "6", 69 -> "6.9".
func FormatTenths(v int) string {
	return strconv.FormatFloat(float64(v)/10, 'f', -1, 64)
}

// FormatTypes joins slot-sorted, capitalized type names with " / "
func FormatTypes(rec *model.Record) string {
	types := rec.SortedTypes()
	if len(types) == 0 {
		return EmptyPlaceholder
	}
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, Capitalize(t.Name))
	}
	return strings.Join(names, " / ")
}

// FormatAbilities joins slot-sorted ability names with ", ", replacing
// hyphens with spaces before capitalizing
func FormatAbilities(rec *model.Record) string {
	abilities := rec.SortedAbilities()
	if len(abilities) == 0 {
		return EmptyPlaceholder
	}
	names := make([]string, 0, len(abilities))
	for _, a := range abilities {
		names = append(names, Capitalize(strings.ReplaceAll(a.Name, "-", " ")))
	}
	return strings.Join(names, ", ")
}

// Title is the heading line of a card
func Title(rec *model.Record) string {
	return "#" + strconv.Itoa(rec.ID) + "  " + rec.DisplayName()
}

// WrapText breaks text into lines no wider than maxWidth using a greedy word
// fit. A single word wider than maxWidth gets a line of its own.
func WrapText(text string, maxWidth float32, measure func(string) float32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if measure(candidate) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}
