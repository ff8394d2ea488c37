// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"

	"github.com/pdiddy/citeref/internal/catalog"
	"github.com/pdiddy/citeref/internal/manuscript"
)

// Exit codes.
const (
	ExitSuccess         = 0 // Success
	ExitError           = 1 // General error (invalid arguments, I/O failure)
	ExitCatalogError    = 2 // Configuration or catalog error (version, fields, lookups)
	ExitManuscriptError = 3 // Bracket structure error or unknown citation id
)

// configError marks configuration decoding failures.
type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

var catalogErrors = []error{
	catalog.ErrMalformedDocument,
	catalog.ErrUnsupportedVersion,
	catalog.ErrInvalidCitations,
	catalog.ErrInvalidEntry,
	catalog.ErrInvalidField,
	catalog.ErrDuplicateID,
	catalog.ErrUnknownType,
	catalog.ErrLookupFailed,
}

var manuscriptErrors = []error{
	manuscript.ErrUnmatchedOpening,
	manuscript.ErrUnmatchedClosing,
	manuscript.ErrNestedBracket,
	manuscript.ErrUnknownID,
}

// exitCode maps an error returned by a command to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ce *configError
	if errors.As(err, &ce) {
		return ExitCatalogError
	}
	for _, target := range catalogErrors {
		if errors.Is(err, target) {
			return ExitCatalogError
		}
	}
	for _, target := range manuscriptErrors {
		if errors.Is(err, target) {
			return ExitManuscriptError
		}
	}
	return ExitError
}
