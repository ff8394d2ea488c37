// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manuscript

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBrackets(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantErr    error
		wantOffset int
	}{
		{name: "no brackets", text: "plain text"},
		{name: "empty", text: ""},
		{name: "flat markers", text: "[a] text [b]"},
		{name: "adjacent markers", text: "[a][b]"},
		{name: "empty brackets", text: "see []"},
		{name: "nested", text: "[a [b] c]", wantErr: ErrNestedBracket, wantOffset: 3},
		{name: "unmatched opening", text: "[a", wantErr: ErrUnmatchedOpening, wantOffset: 0},
		{name: "unmatched opening after marker", text: "[a] and [b", wantErr: ErrUnmatchedOpening, wantOffset: 8},
		{name: "unmatched closing", text: "a]", wantErr: ErrUnmatchedClosing, wantOffset: 1},
		{name: "closing before opening", text: "][", wantErr: ErrUnmatchedClosing, wantOffset: 0},
		{name: "double opening", text: "[[a]]", wantErr: ErrNestedBracket, wantOffset: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBrackets(tt.text)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var be *BracketError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, tt.wantOffset, be.Offset)
		})
	}
}

func TestCheckBracketsPosition(t *testing.T) {
	text := "Intro [a].\nSecond line, café ]"
	err := CheckBrackets(text)

	var be *BracketError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 2, be.Line)
	assert.Equal(t, 19, be.Column)
	assert.Equal(t, "unmatched closing bracket at line 2, column 19", err.Error())
}

func TestCheckBracketsMultibyteContent(t *testing.T) {
	assert.NoError(t, CheckBrackets("[引用] and [日本]"))
}
