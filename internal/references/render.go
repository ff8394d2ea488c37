// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package references

import (
	"fmt"
	"strings"

	"github.com/pdiddy/citeref/internal/citation"
	"github.com/pdiddy/citeref/pkg/types"
)

// Heading separates the manuscript from its reference list.
const Heading = "\nReferences:\n"

// Render returns text followed by Heading and one formatted line per id in
// order, each line terminated by a newline. Every id must be in the
// catalog.
func Render(text string, cat *types.Catalog, order []string) (string, error) {
	cited, err := Collect(cat, order)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(text)
	b.WriteString(Heading)
	for _, c := range cited {
		b.WriteString(citation.Format(c))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Collect returns the catalog citations for order, in order.
func Collect(cat *types.Catalog, order []string) ([]types.Citation, error) {
	cited := make([]types.Citation, 0, len(order))
	for _, id := range order {
		c, ok := cat.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("rendering references: citation %q not in catalog", id)
		}
		cited = append(cited, c)
	}
	return cited, nil
}
