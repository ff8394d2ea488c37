// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"errors"
	"fmt"

	"github.com/pdiddy/citeref/pkg/types"
)

// Errors returned by Load. Each one aborts the whole load.
var (
	// ErrMalformedDocument indicates the catalog is not a JSON object.
	ErrMalformedDocument = errors.New("malformed catalog document")

	// ErrUnsupportedVersion indicates a missing or unsupported version field.
	ErrUnsupportedVersion = errors.New("unsupported catalog version")

	// ErrInvalidCitations indicates the citations field is missing or not an array.
	ErrInvalidCitations = errors.New("missing or invalid citations array")

	// ErrInvalidEntry indicates an entry without a string id and type.
	ErrInvalidEntry = errors.New("invalid citation entry")

	// ErrInvalidField indicates a required field that is missing or mistyped.
	ErrInvalidField = errors.New("invalid citation field")

	// ErrDuplicateID indicates two entries share an id.
	ErrDuplicateID = errors.New("duplicate citation id")

	// ErrUnknownType indicates an entry type outside book, webpage, article.
	ErrUnknownType = errors.New("unknown citation type")

	// ErrLookupFailed indicates an enrichment lookup did not succeed.
	ErrLookupFailed = errors.New("metadata lookup failed")
)

// EntryError locates a structural problem with one catalog entry.
type EntryError struct {
	Index int
	ID    string
	Err   error
}

func (e *EntryError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("citation %d (%q): %v", e.Index, e.ID, e.Err)
	}
	return fmt.Sprintf("citation %d: %v", e.Index, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// FieldError reports a required field that is missing or has the wrong type.
type FieldError struct {
	Index  int
	ID     string
	Kind   types.Kind
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("citation %d (%q): %s field %q %s", e.Index, e.ID, e.Kind, e.Field, e.Reason)
}

func (e *FieldError) Is(target error) bool { return target == ErrInvalidField }

// UnknownTypeError reports an entry whose type is not a known kind.
type UnknownTypeError struct {
	Index int
	ID    string
	Type  string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("citation %d (%q): unknown citation type: %s", e.Index, e.ID, e.Type)
}

func (e *UnknownTypeError) Is(target error) bool { return target == ErrUnknownType }

// LookupError wraps a failed enrichment lookup for one entry. Key is the
// ISBN or URL that was looked up.
type LookupError struct {
	ID   string
	Kind types.Kind
	Key  string
	Err  error
}

func (e *LookupError) Error() string {
	switch e.Kind {
	case types.KindBook:
		return fmt.Sprintf("citation %q: failed to fetch book info for ISBN %s: %v", e.ID, e.Key, e.Err)
	case types.KindWebpage:
		return fmt.Sprintf("citation %q: failed to fetch webpage title for URL %s: %v", e.ID, e.Key, e.Err)
	default:
		return fmt.Sprintf("citation %q: lookup of %s failed: %v", e.ID, e.Key, e.Err)
	}
}

func (e *LookupError) Unwrap() error { return e.Err }

func (e *LookupError) Is(target error) bool { return target == ErrLookupFailed }
