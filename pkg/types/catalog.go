// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CatalogVersion is the only catalog document version this tool reads.
const CatalogVersion = 1

// Catalog is the validated, in-memory collection of citations loaded from a
// catalog document. It is built once and read-only afterwards. A nil
// *Catalog reads as empty.
type Catalog struct {
	Version int

	entries []Citation
	byID    map[string]int
}

// NewCatalog builds a catalog from citations in load order. The caller
// guarantees that IDs are unique; a repeated ID keeps its first entry in the
// index.
func NewCatalog(version int, citations []Citation) *Catalog {
	c := &Catalog{
		Version: version,
		entries: make([]Citation, len(citations)),
		byID:    make(map[string]int, len(citations)),
	}
	copy(c.entries, citations)
	for i, cit := range c.entries {
		if _, ok := c.byID[cit.ID()]; !ok {
			c.byID[cit.ID()] = i
		}
	}
	return c
}

// Lookup returns the citation with the given id.
func (c *Catalog) Lookup(id string) (Citation, bool) {
	if c == nil {
		return Citation{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return Citation{}, false
	}
	return c.entries[i], true
}

// Has reports whether id is present in the catalog.
func (c *Catalog) Has(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.byID[id]
	return ok
}

// Citations returns a copy of the entries in load order.
func (c *Catalog) Citations() []Citation {
	if c == nil {
		return nil
	}
	out := make([]Citation, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of citations in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
