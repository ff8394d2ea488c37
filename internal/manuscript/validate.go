// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manuscript checks citation marker structure in manuscript text
// and extracts the cited ids.
package manuscript

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Bracket structure problems. A *BracketError unwraps to one of these.
var (
	ErrUnmatchedOpening = errors.New("unmatched opening bracket")
	ErrUnmatchedClosing = errors.New("unmatched closing bracket")
	ErrNestedBracket    = errors.New("nested brackets detected")
)

// BracketError locates a bracket structure problem. Offset is the byte
// offset of the offending bracket; Line and Column are 1-based, with the
// column counted in characters.
type BracketError struct {
	Problem error
	Offset  int
	Line    int
	Column  int
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("%v at line %d, column %d", e.Problem, e.Line, e.Column)
}

func (e *BracketError) Unwrap() error { return e.Problem }

// CheckBrackets verifies that citation brackets in text are flat and
// balanced: no "[" inside an open "[", no "]" without an open "[", and no
// "[" left open at the end. Bracket contents are not inspected.
func CheckBrackets(text string) error {
	open := -1
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '[':
			if open >= 0 {
				return bracketError(text, ErrNestedBracket, i)
			}
			open = i
		case ']':
			if open < 0 {
				return bracketError(text, ErrUnmatchedClosing, i)
			}
			open = -1
		}
	}
	if open >= 0 {
		return bracketError(text, ErrUnmatchedOpening, open)
	}
	return nil
}

func bracketError(text string, problem error, offset int) *BracketError {
	line, col := position(text, offset)
	return &BracketError{Problem: problem, Offset: offset, Line: line, Column: col}
}

// position converts a byte offset into a 1-based line and column.
func position(text string, offset int) (line, col int) {
	before := text[:offset]
	line = strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	col = utf8.RuneCountInString(before[lineStart:]) + 1
	return line, col
}
