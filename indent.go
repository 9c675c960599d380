// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package gojson

// Indent configures Writer's optional pretty-printing: a repeated
// character and a per-depth-level count. The zero Indent (Count == 0)
// means no indentation: Writer emits the most compact JSON text with no
// whitespace at all.
type Indent struct {
	Char  byte
	Count int
}

// Spaces returns an Indent of n space characters per depth level.
func Spaces(n int) Indent { return Indent{Char: ' ', Count: n} }

// Tabs returns an Indent of one tab character per depth level.
func Tabs() Indent { return Indent{Char: '\t', Count: 1} }

// Spaces2 is Spaces(2), the most common default.
func Spaces2() Indent { return Spaces(2) }

// Spaces4 is Spaces(4).
func Spaces4() Indent { return Spaces(4) }
