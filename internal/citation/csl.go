// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citeref/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Publisher      string    `yaml:"publisher,omitempty"`
	Volume         string    `yaml:"volume,omitempty"`
	Issue          string    `yaml:"issue,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts, or a literal
// when the year is not numeric.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts,omitempty"`
	Literal   string  `yaml:"literal,omitempty"`
}

// WriteCSL writes citations as a CSL-YAML list to w, in the order given.
func WriteCSL(citations []types.Citation, w io.Writer) error {
	items := make([]CSLItem, len(citations))
	for i, c := range citations {
		items[i] = ToCSLItem(c)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// ToCSLItem converts a Citation to a CSLItem.
func ToCSLItem(c types.Citation) CSLItem {
	item := CSLItem{ID: c.ID()}

	switch c.Kind {
	case types.KindBook:
		item.Type = "book"
		if b, ok := c.Book(); ok {
			item.Title = b.Title
			item.Author = authorList(b.Author)
			item.Publisher = b.Publisher
			item.Issued = yearDate(b.Year)
		}
	case types.KindWebpage:
		item.Type = "webpage"
		if wp, ok := c.Webpage(); ok {
			item.Title = wp.Title
			item.URL = wp.URL
		}
	case types.KindArticle:
		item.Type = "article-journal"
		if a, ok := c.Article(); ok {
			item.Title = a.Title
			item.Author = authorList(a.Author)
			item.ContainerTitle = a.Journal
			item.Volume = strconv.Itoa(a.Volume)
			item.Issue = strconv.Itoa(a.Issue)
			item.Issued = &CSLDate{DateParts: [][]int{{a.Year}}}
		}
	default:
		item.Type = string(c.Kind)
	}

	return item
}

// authorList splits an author field on " and " and ";" into CSL names.
func authorList(s string) []CSLName {
	s = strings.ReplaceAll(s, " and ", ";")
	var names []CSLName
	for _, part := range strings.Split(s, ";") {
		if n := parseAuthorName(part); n != (CSLName{}) {
			names = append(names, n)
		}
	}
	return names
}

// parseAuthorName splits a full name string into CSL family/given parts.
// It splits on the last space: everything before is given, the last token
// is family. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  strings.TrimSpace(name[:idx]),
		Family: name[idx+1:],
	}
}

func yearDate(year string) *CSLDate {
	year = strings.TrimSpace(year)
	if year == "" {
		return nil
	}
	if y, err := strconv.Atoi(year); err == nil {
		return &CSLDate{DateParts: [][]int{{y}}}
	}
	return &CSLDate{Literal: year}
}
