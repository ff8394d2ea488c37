// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Kind tags the closed set of citation variants.
type Kind string

const (
	KindBook    Kind = "book"
	KindWebpage Kind = "webpage"
	KindArticle Kind = "article"
)

// Book holds the descriptive fields of a book citation. The same shape is
// returned by the metadata service for ISBN lookups.
type Book struct {
	Author    string `json:"author" yaml:"author"`
	Title     string `json:"title" yaml:"title"`
	Publisher string `json:"publisher" yaml:"publisher"`

	// Year is kept as text; catalogs and the metadata service both carry it
	// as a string (e.g. "2020").
	Year string `json:"year" yaml:"year"`
}

// Webpage holds the fields of a webpage citation.
type Webpage struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// Article holds the fields of a journal article citation.
type Article struct {
	Author  string `json:"author" yaml:"author"`
	Title   string `json:"title" yaml:"title"`
	Journal string `json:"journal" yaml:"journal"`
	Year    int    `json:"year" yaml:"year"`
	Volume  int    `json:"volume" yaml:"volume"`
	Issue   int    `json:"issue" yaml:"issue"`
}

// Citation is a tagged union over the citation kinds. Exactly one payload is
// set, matching Kind, and it is read through Book, Webpage, or Article, which
// return copies. Build values with NewBook, NewWebpage, or NewArticle; a
// Citation is not modified after construction.
type Citation struct {
	id   string
	Kind Kind

	book    *Book
	webpage *Webpage
	article *Article
}

// NewBook returns a book citation.
func NewBook(id string, b Book) Citation {
	return Citation{id: id, Kind: KindBook, book: &b}
}

// NewWebpage returns a webpage citation.
func NewWebpage(id string, w Webpage) Citation {
	return Citation{id: id, Kind: KindWebpage, webpage: &w}
}

// NewArticle returns an article citation.
func NewArticle(id string, a Article) Citation {
	return Citation{id: id, Kind: KindArticle, article: &a}
}

// ID returns the catalog identifier of the citation. IDs are opaque and
// case-sensitive.
func (c Citation) ID() string {
	return c.id
}

// Book returns the book payload and whether c carries one.
func (c Citation) Book() (Book, bool) {
	if c.book == nil {
		return Book{}, false
	}
	return *c.book, true
}

// Webpage returns the webpage payload and whether c carries one.
func (c Citation) Webpage() (Webpage, bool) {
	if c.webpage == nil {
		return Webpage{}, false
	}
	return *c.webpage, true
}

// Article returns the article payload and whether c carries one.
func (c Citation) Article() (Article, bool) {
	if c.article == nil {
		return Article{}, false
	}
	return *c.article, true
}
