// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog loads a versioned JSON catalog document into a
// types.Catalog, validating every entry and completing partial book and
// webpage entries through a metadata Fetcher.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pdiddy/citeref/pkg/types"
)

// Fetcher completes partial catalog entries. *metadata.Client implements it;
// tests substitute a stub.
type Fetcher interface {
	FetchBookInfo(ctx context.Context, isbn string) (types.Book, error)
	FetchWebpageTitle(ctx context.Context, url string) (string, error)
}

// errNoFetcher is returned when an entry needs enrichment but Load was
// given no Fetcher.
var errNoFetcher = errors.New("no metadata service configured")

// Option configures Load.
type Option func(*loader)

// WithLogger sets the logger used to report enrichment lookups.
func WithLogger(l *zap.Logger) Option {
	return func(ld *loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

type loader struct {
	fetcher Fetcher
	logger  *zap.Logger
}

// document is the top level of a catalog file. Fields stay raw so that a
// missing field can be told apart from a mistyped one.
type document struct {
	Version   json.RawMessage `json:"version"`
	Citations json.RawMessage `json:"citations"`
}

// LoadFile reads the catalog document at path and loads it.
func LoadFile(ctx context.Context, path string, fetcher Fetcher, opts ...Option) (*types.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Load(ctx, data, fetcher, opts...)
}

// Load parses a catalog document and builds the catalog. Entries are
// processed in order and the first problem aborts the load; no partial
// catalog is returned. Book entries without author, title, publisher and
// year are completed by ISBN, and webpage entries without a title by URL,
// one blocking lookup per entry.
func Load(ctx context.Context, data []byte, fetcher Fetcher, opts ...Option) (*types.Catalog, error) {
	ld := &loader{fetcher: fetcher, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(ld)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}

	if isNull(doc.Citations) {
		return nil, ErrInvalidCitations
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(doc.Citations, &raw); err != nil {
		return nil, ErrInvalidCitations
	}

	citations := make([]types.Citation, 0, len(raw))
	seen := make(map[string]int, len(raw))
	for i, r := range raw {
		e, err := parseEntry(i, r)
		if err != nil {
			return nil, err
		}
		if first, dup := seen[e.id]; dup {
			return nil, &EntryError{Index: i, ID: e.id, Err: fmt.Errorf("%w (first defined by citation %d)", ErrDuplicateID, first)}
		}
		seen[e.id] = i

		c, err := ld.build(ctx, e)
		if err != nil {
			return nil, err
		}
		citations = append(citations, c)
	}

	ld.logger.Debug("catalog loaded", zap.Int("citations", len(citations)))
	return types.NewCatalog(types.CatalogVersion, citations), nil
}

func checkVersion(raw json.RawMessage) error {
	if isNull(raw) {
		return fmt.Errorf("%w: version is missing", ErrUnsupportedVersion)
	}
	var n json.Number
	if err := unmarshalNumber(raw, &n); err != nil {
		return fmt.Errorf("%w: version must be a number, got %s", ErrUnsupportedVersion, raw)
	}
	if f, err := n.Float64(); err != nil || f != types.CatalogVersion {
		return fmt.Errorf("%w: %s (supported: %d)", ErrUnsupportedVersion, n, types.CatalogVersion)
	}
	return nil
}

func (ld *loader) build(ctx context.Context, e *entry) (types.Citation, error) {
	switch types.Kind(e.typ) {
	case types.KindBook:
		return ld.buildBook(ctx, e)
	case types.KindWebpage:
		return ld.buildWebpage(ctx, e)
	case types.KindArticle:
		return buildArticle(e)
	default:
		return types.Citation{}, &UnknownTypeError{Index: e.index, ID: e.id, Type: e.typ}
	}
}

var bookFields = []string{"author", "title", "publisher", "year"}

func (ld *loader) buildBook(ctx context.Context, e *entry) (types.Citation, error) {
	complete := true
	for _, f := range bookFields {
		if !e.has(f) {
			complete = false
			break
		}
	}

	if complete {
		var b types.Book
		var err error
		if b.Author, err = e.str("author"); err != nil {
			return types.Citation{}, err
		}
		if b.Title, err = e.str("title"); err != nil {
			return types.Citation{}, err
		}
		if b.Publisher, err = e.str("publisher"); err != nil {
			return types.Citation{}, err
		}
		if b.Year, err = e.year("year"); err != nil {
			return types.Citation{}, err
		}
		return types.NewBook(e.id, b), nil
	}

	if !e.has("isbn") {
		return types.Citation{}, e.fieldError("isbn", "is required unless author, title, publisher and year are all given")
	}
	isbn, err := e.str("isbn")
	if err != nil {
		return types.Citation{}, err
	}

	if ld.fetcher == nil {
		return types.Citation{}, &LookupError{ID: e.id, Kind: types.KindBook, Key: isbn, Err: errNoFetcher}
	}
	ld.logger.Debug("enriching book", zap.String("id", e.id), zap.String("isbn", isbn))
	b, err := ld.fetcher.FetchBookInfo(ctx, isbn)
	if err != nil {
		return types.Citation{}, &LookupError{ID: e.id, Kind: types.KindBook, Key: isbn, Err: err}
	}
	return types.NewBook(e.id, b), nil
}

func (ld *loader) buildWebpage(ctx context.Context, e *entry) (types.Citation, error) {
	url, err := e.str("url")
	if err != nil {
		return types.Citation{}, err
	}

	if e.has("title") {
		title, err := e.str("title")
		if err != nil {
			return types.Citation{}, err
		}
		return types.NewWebpage(e.id, types.Webpage{Title: title, URL: url}), nil
	}

	if ld.fetcher == nil {
		return types.Citation{}, &LookupError{ID: e.id, Kind: types.KindWebpage, Key: url, Err: errNoFetcher}
	}
	ld.logger.Debug("enriching webpage", zap.String("id", e.id), zap.String("url", url))
	title, err := ld.fetcher.FetchWebpageTitle(ctx, url)
	if err != nil {
		return types.Citation{}, &LookupError{ID: e.id, Kind: types.KindWebpage, Key: url, Err: err}
	}
	return types.NewWebpage(e.id, types.Webpage{Title: title, URL: url}), nil
}

func buildArticle(e *entry) (types.Citation, error) {
	var a types.Article
	var err error
	if a.Author, err = e.str("author"); err != nil {
		return types.Citation{}, err
	}
	if a.Title, err = e.str("title"); err != nil {
		return types.Citation{}, err
	}
	if a.Journal, err = e.str("journal"); err != nil {
		return types.Citation{}, err
	}
	if a.Year, err = e.integer("year"); err != nil {
		return types.Citation{}, err
	}
	if a.Volume, err = e.integer("volume"); err != nil {
		return types.Citation{}, err
	}
	if a.Issue, err = e.integer("issue"); err != nil {
		return types.Citation{}, err
	}
	return types.NewArticle(e.id, a), nil
}

func isNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

// unmarshalNumber decodes a JSON number literal. Unlike json.Unmarshal into
// json.Number it rejects quoted numbers such as "1".
func unmarshalNumber(raw json.RawMessage, n *json.Number) error {
	t := bytes.TrimSpace(raw)
	if len(t) > 0 && t[0] == '"' {
		return fmt.Errorf("expected a number, got a string")
	}
	return json.Unmarshal(t, n)
}
