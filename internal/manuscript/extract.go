// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manuscript

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/pdiddy/citeref/pkg/types"
)

// ErrUnknownID indicates a marker whose id is not in the catalog.
var ErrUnknownID = errors.New("citation id not found")

// markerPattern matches a citation marker: [id] where id is non-empty and
// contains no brackets.
var markerPattern = regexp.MustCompile(`\[([^\[\]]+)\]`)

// Marker is one citation marker occurrence in the manuscript.
type Marker struct {
	// ID is the text between the brackets, taken verbatim.
	ID string

	// Offset is the byte offset of the opening bracket.
	Offset int
}

// UnknownIDError reports a marker that does not resolve against the catalog.
type UnknownIDError struct {
	ID     string
	Offset int
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("citation ID '%s' not found", e.ID)
}

func (e *UnknownIDError) Is(target error) bool { return target == ErrUnknownID }

// ExtractIDs returns every citation marker in text, left to right, with
// duplicates retained. "[]" is not a marker.
func ExtractIDs(text string) []Marker {
	matches := markerPattern.FindAllStringSubmatchIndex(text, -1)
	markers := make([]Marker, 0, len(matches))
	for _, m := range matches {
		markers = append(markers, Marker{
			ID:     text[m[2]:m[3]],
			Offset: m[0],
		})
	}
	return markers
}

// Resolve checks every marker against the catalog and returns the marker
// ids in manuscript order. The first id missing from the catalog aborts
// with an *UnknownIDError. A nil catalog holds no ids.
func Resolve(markers []Marker, cat *types.Catalog) ([]string, error) {
	ids := make([]string, 0, len(markers))
	for _, m := range markers {
		if !cat.Has(m.ID) {
			return nil, &UnknownIDError{ID: m.ID, Offset: m.Offset}
		}
		ids = append(ids, m.ID)
	}
	return ids, nil
}
