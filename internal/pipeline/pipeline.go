// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the citation stages over a manuscript: bracket
// validation, marker extraction and resolution, ordering, and rendering.
// Each stage finishes before the next starts and the first error stops
// the run with no output.
package pipeline

import (
	"errors"

	"github.com/pdiddy/citeref/internal/manuscript"
	"github.com/pdiddy/citeref/internal/references"
	"github.com/pdiddy/citeref/pkg/types"
)

// ErrNoCatalog is returned when a run is given a nil catalog.
var ErrNoCatalog = errors.New("no catalog loaded")

// Result holds the outcome of a successful run.
type Result struct {
	// Output is the manuscript with the References section appended.
	Output string

	// Markers lists the cited ids in manuscript order, duplicates included.
	Markers []string

	// Order lists the distinct cited ids in the order they are rendered.
	Order []string
}

// Resolve validates the manuscript and resolves its markers against the
// catalog without rendering. The returned Result has no Output.
func Resolve(text string, cat *types.Catalog) (*Result, error) {
	if cat == nil {
		return nil, ErrNoCatalog
	}
	if err := manuscript.CheckBrackets(text); err != nil {
		return nil, err
	}
	ids, err := manuscript.Resolve(manuscript.ExtractIDs(text), cat)
	if err != nil {
		return nil, err
	}
	return &Result{Markers: ids, Order: references.Order(ids)}, nil
}

// Run resolves the manuscript and renders the References section.
func Run(text string, cat *types.Catalog) (*Result, error) {
	res, err := Resolve(text, cat)
	if err != nil {
		return nil, err
	}
	out, err := references.Render(text, cat, res.Order)
	if err != nil {
		return nil, err
	}
	res.Output = out
	return res, nil
}
