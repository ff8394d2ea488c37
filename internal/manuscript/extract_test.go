// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manuscript

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/citeref/pkg/types"
)

func testCatalog() *types.Catalog {
	return types.NewCatalog(types.CatalogVersion, []types.Citation{
		types.NewWebpage("a", types.Webpage{Title: "A", URL: "https://a"}),
		types.NewWebpage("b", types.Webpage{Title: "B", URL: "https://b"}),
		types.NewWebpage("c", types.Webpage{Title: "C", URL: "https://c"}),
		types.NewWebpage("two words", types.Webpage{Title: "T", URL: "https://t"}),
	})
}

func TestExtractIDs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Marker
	}{
		{
			name: "order and duplicates kept",
			text: "[b] [a] [a] [c]",
			want: []Marker{{"b", 0}, {"a", 4}, {"a", 8}, {"c", 12}},
		},
		{
			name: "content taken verbatim",
			text: "as shown in [two words].",
			want: []Marker{{"two words", 12}},
		},
		{
			name: "empty brackets skipped",
			text: "[] then [a]",
			want: []Marker{{"a", 8}},
		},
		{
			name: "no markers",
			text: "nothing cited",
			want: []Marker{},
		},
		{
			name: "adjacent",
			text: "[a][b]",
			want: []Marker{{"a", 0}, {"b", 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractIDs(tt.text))
		})
	}
}

func TestResolve(t *testing.T) {
	ids, err := Resolve(ExtractIDs("[b] [a] [a] [c]"), testCatalog())
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "a", "c"}, ids)
}

func TestResolveUnknownID(t *testing.T) {
	_, err := Resolve(ExtractIDs("ok [a], bad [zzz], also bad [yyy]"), testCatalog())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownID)

	var ue *UnknownIDError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "zzz", ue.ID)
	assert.Equal(t, 12, ue.Offset)
	assert.Equal(t, "citation ID 'zzz' not found", err.Error())
}

func TestResolveIsCaseSensitive(t *testing.T) {
	_, err := Resolve(ExtractIDs("[A]"), testCatalog())
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestResolveEmpty(t *testing.T) {
	ids, err := Resolve(nil, testCatalog())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestResolveNilCatalog(t *testing.T) {
	_, err := Resolve(ExtractIDs("see [a]"), nil)
	var uerr *UnknownIDError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "a", uerr.ID)

	ids, err := Resolve(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
