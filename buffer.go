// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package gojson

// Buffer is a byte range in read mode, per the buffer contract of
// Parser.Receive: Data[:Pos] has been consumed, Data[Pos:] has not.
//
// The caller owns Data. After Receive returns, Data[Pos:] is either empty
// (everything consumed) or a few bytes the parser could not decode yet: a
// trailing partial UTF-8 sequence, or a leading byte-order-mark prefix
// too short to classify. Every complete character is decoded into the
// parser's own backlog, which keeps the text of an in-progress token
// across calls; the parser never retains a reference to Data beyond the
// call. Call Compact before appending more bytes and submitting them in a
// further Receive call.
type Buffer struct {
	Data []byte
	Pos  int
}

// Remaining returns the unconsumed suffix of Data.
func (b *Buffer) Remaining() []byte { return b.Data[b.Pos:] }

// Compact moves the unconsumed suffix of Data to the front and resets Pos
// to 0, so the caller can append freshly read bytes after it.
func (b *Buffer) Compact() {
	if b.Pos == 0 {
		return
	}
	n := copy(b.Data, b.Data[b.Pos:])
	b.Data = b.Data[:n]
	b.Pos = 0
}
