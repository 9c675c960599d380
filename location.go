// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package gojson

import "fmt"

// A LineCol describes a line and column position in source text. Both
// line and column numbers are 1-based: the first character of each
// line is column 1.
type LineCol struct {
	Line   int
	Column int
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Locator reports the current 1-based line and column of the input: the
// position just past the most recently consumed character. The Locator a
// Parser hands to Handler.SetLocator is the Parser itself, so it stays
// valid for the Parser's lifetime and always reports the current position.
type Locator interface {
	Line() int
	Column() int
}
