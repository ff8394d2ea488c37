// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"testing"

	"github.com/pdiddy/citeref/pkg/types"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		c    types.Citation
		want string
	}{
		{
			name: "book",
			c:    types.NewBook("x", types.Book{Author: "A", Title: "T", Publisher: "P", Year: "2020"}),
			want: "[x] book: A, T, P, 2020",
		},
		{
			name: "webpage",
			c:    types.NewWebpage("go", types.Webpage{Title: "The Go Programming Language", URL: "https://go.dev"}),
			want: "[go] webpage: The Go Programming Language. Available at https://go.dev",
		},
		{
			name: "article",
			c: types.NewArticle("knuth74", types.Article{
				Author: "Donald Knuth", Title: "Structured Programming with go to Statements",
				Journal: "Computing Surveys", Year: 1974, Volume: 6, Issue: 4,
			}),
			want: "[knuth74] article: Donald Knuth, Structured Programming with go to Statements, Computing Surveys, 1974, 6, 4",
		},
		{
			name: "empty fields keep separators",
			c:    types.NewBook("e", types.Book{}),
			want: "[e] book: , , , ",
		},
		{
			name: "payload missing",
			c:    types.Citation{Kind: types.KindArticle},
			want: "[] article",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.c); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatIsDeterministic(t *testing.T) {
	c := types.NewWebpage("w", types.Webpage{Title: "T", URL: "https://example.com"})
	if Format(c) != Format(c) {
		t.Error("Format returned different output for the same citation")
	}
}
