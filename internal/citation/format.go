// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation renders citations as reference lines and as CSL records.
package citation

import (
	"fmt"

	"github.com/pdiddy/citeref/pkg/types"
)

// Format returns the reference line for c. Each kind has its own layout:
//
//	[id] book: Author, Title, Publisher, Year
//	[id] webpage: Title. Available at URL
//	[id] article: Author, Title, Journal, Year, Volume, Issue
//
// A Citation whose payload does not match its Kind formats as "[id] <kind>".
func Format(c types.Citation) string {
	switch c.Kind {
	case types.KindBook:
		if b, ok := c.Book(); ok {
			return fmt.Sprintf("[%s] book: %s, %s, %s, %s", c.ID(), b.Author, b.Title, b.Publisher, b.Year)
		}
	case types.KindWebpage:
		if w, ok := c.Webpage(); ok {
			return fmt.Sprintf("[%s] webpage: %s. Available at %s", c.ID(), w.Title, w.URL)
		}
	case types.KindArticle:
		if a, ok := c.Article(); ok {
			return fmt.Sprintf("[%s] article: %s, %s, %s, %d, %d, %d", c.ID(), a.Author, a.Title, a.Journal, a.Year, a.Volume, a.Issue)
		}
	}
	return fmt.Sprintf("[%s] %s", c.ID(), c.Kind)
}
