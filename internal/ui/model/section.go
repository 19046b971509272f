package model

import (
	"strings"
	"unicode/utf8"

	"github.com/zona-batam/zona/internal/ui/input"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SectionID identifies a navigation destination. The known values form a closed set, but a SectionID
// is stored verbatim by the view state so any string is representable.
type SectionID string

const (
	SectionHome          SectionID = "home"
	SectionAccommodation SectionID = "accommodation"
	SectionPlaces        SectionID = "places"
	SectionEvents        SectionID = "events"
	SectionGoZoNa        SectionID = "go-zona"
)

// Sections is the navigation order used by the navbar and for tab cycling.
var Sections = SectionGroup{SectionHome, SectionAccommodation, SectionPlaces, SectionEvents, SectionGoZoNa}

type SectionGroup []SectionID

// Next returns the neighbour of current in the given direction, wrapping at both ends. Unknown
// sections resolve to the first entry.
func (g SectionGroup) Next(current SectionID, dir input.Direction) SectionID {
	index := slices.Index(g, current)
	if index == -1 {
		return g[0]
	}

	switch dir {
	case input.Left, input.Up:
		if index-1 < 0 {
			return g[len(g)-1]
		}

		return g[index-1]
	case input.Right, input.Down:
		if index+1 >= len(g) {
			return g[0]
		}

		return g[index+1]
	default:
		return current
	}
}

// Contains reports whether id is one of the known sections.
func (g SectionGroup) Contains(id SectionID) bool {
	return slices.Contains(g, id)
}

// Title renders the heading used by the placeholder page, eg. "go-zona" -> "Go Zona Section".
// Only the first dash is replaced and only the first letter of each word is changed, so unknown ids
// keep the rest of their casing.
func (s SectionID) Title() string {
	upper := cases.Upper(language.English)
	words := strings.Split(strings.Replace(string(s), "-", " ", 1), " ")
	for idx, word := range words {
		if word == "" {
			continue
		}

		first, size := utf8.DecodeRuneInString(word)
		words[idx] = upper.String(string(first)) + word[size:]
	}

	return strings.Join(words, " ") + " Section"
}
