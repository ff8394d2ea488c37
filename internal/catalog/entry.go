// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/pdiddy/citeref/pkg/types"
)

// entry is one raw citation object with its id and type already checked.
type entry struct {
	index  int
	id     string
	typ    string
	fields map[string]json.RawMessage
}

func parseEntry(index int, raw json.RawMessage) (*entry, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, &EntryError{Index: index, Err: fmt.Errorf("%w: entry must be an object", ErrInvalidEntry)}
	}

	var id, typ string
	if r, ok := fields["id"]; !ok || json.Unmarshal(r, &id) != nil || isNull(r) {
		return nil, &EntryError{Index: index, Err: fmt.Errorf("%w: id must be a string", ErrInvalidEntry)}
	}
	if r, ok := fields["type"]; !ok || json.Unmarshal(r, &typ) != nil || isNull(r) {
		return nil, &EntryError{Index: index, ID: id, Err: fmt.Errorf("%w: type must be a string", ErrInvalidEntry)}
	}

	return &entry{index: index, id: id, typ: typ, fields: fields}, nil
}

// has reports whether the field is present and not null.
func (e *entry) has(name string) bool {
	r, ok := e.fields[name]
	return ok && !isNull(r)
}

func (e *entry) fieldError(name, reason string) *FieldError {
	return &FieldError{Index: e.index, ID: e.id, Kind: types.Kind(e.typ), Field: name, Reason: reason}
}

func (e *entry) str(name string) (string, error) {
	if !e.has(name) {
		return "", e.fieldError(name, "is missing")
	}
	var s string
	if err := json.Unmarshal(e.fields[name], &s); err != nil {
		return "", e.fieldError(name, "must be a string")
	}
	return s, nil
}

func (e *entry) integer(name string) (int, error) {
	if !e.has(name) {
		return 0, e.fieldError(name, "is missing")
	}
	var n json.Number
	if err := unmarshalNumber(e.fields[name], &n); err != nil {
		return 0, e.fieldError(name, "must be an integer")
	}
	if i, err := n.Int64(); err == nil && i >= math.MinInt32 && i <= math.MaxInt32 {
		return int(i), nil
	}
	// Accept integral floats such as 2020.0.
	if f, err := n.Float64(); err == nil && f == math.Trunc(f) && f >= math.MinInt32 && f <= math.MaxInt32 {
		return int(f), nil
	}
	return 0, e.fieldError(name, "must be an integer")
}

// year reads a book year given either as a string or as an integer.
func (e *entry) year(name string) (string, error) {
	if !e.has(name) {
		return "", e.fieldError(name, "is missing")
	}
	var s string
	if err := json.Unmarshal(e.fields[name], &s); err == nil {
		return s, nil
	}
	i, err := e.integer(name)
	if err != nil {
		return "", e.fieldError(name, "must be a string or integer")
	}
	return fmt.Sprint(i), nil
}
