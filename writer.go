// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package gojson

import (
	"bufio"
	"io"

	"github.com/bluezoo/gojson/internal/escape"

	"go4.org/mem"
)

type writerState byte

const (
	wsInitial writerState = iota
	wsOpening             // just wrote '{' or '[', no children yet
	wsAfterKey
	wsAfterValue
)

// Writer is the encoding dual of Parser: the same escape rules run in
// reverse, and indentation, if configured, is the mirror of the
// whitespace Parser discards. Writer does not validate event ordering;
// the caller must balance Start/End pairs and precede every object
// value with a Key.
type Writer struct {
	sink io.Writer
	bw   *bufio.Writer

	indent    Indent
	hasIndent bool

	state writerState
	depth int
	err   error
}

// NewWriter returns a Writer that emits to sink.
func NewWriter(sink io.Writer) *Writer {
	return &Writer{sink: sink, bw: bufio.NewWriter(sink)}
}

// SetIndent configures pretty-printing. The zero Indent disables it.
func (w *Writer) SetIndent(ind Indent) {
	w.indent = ind
	w.hasIndent = ind.Count > 0
}

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.bw.Write(p)
}

func (w *Writer) writeByte(b byte) {
	if w.err != nil {
		return
	}
	w.err = w.bw.WriteByte(b)
}

func (w *Writer) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.bw.WriteString(s)
}

func (w *Writer) writeNewlineIndent(depth int) {
	w.writeByte('\n')
	c := w.indent.Char
	if c == 0 {
		c = ' '
	}
	for i := 0; i < w.indent.Count*depth; i++ {
		w.writeByte(c)
	}
}

// beforeToken inserts the separator required by the current state
// before any token other than a close bracket (which has its own indent
// logic in EndObject/EndArray, since it depends on whether the
// container being closed was empty).
func (w *Writer) beforeToken() {
	switch w.state {
	case wsInitial:
	case wsOpening:
		if w.hasIndent {
			w.writeNewlineIndent(w.depth)
		}
	case wsAfterValue:
		w.writeByte(',')
		if w.hasIndent {
			w.writeNewlineIndent(w.depth)
		}
	case wsAfterKey:
		w.writeByte(':')
		if w.hasIndent {
			w.writeByte(' ')
		}
	}
}

func (w *Writer) StartObject() error {
	w.beforeToken()
	w.writeByte('{')
	w.depth++
	w.state = wsOpening
	return w.err
}

func (w *Writer) EndObject() error {
	empty := w.state == wsOpening
	w.depth--
	if !empty && w.hasIndent {
		w.writeNewlineIndent(w.depth)
	}
	w.writeByte('}')
	w.state = wsAfterValue
	return w.err
}

func (w *Writer) StartArray() error {
	w.beforeToken()
	w.writeByte('[')
	w.depth++
	w.state = wsOpening
	return w.err
}

func (w *Writer) EndArray() error {
	empty := w.state == wsOpening
	w.depth--
	if !empty && w.hasIndent {
		w.writeNewlineIndent(w.depth)
	}
	w.writeByte(']')
	w.state = wsAfterValue
	return w.err
}

func (w *Writer) Key(key string) error {
	w.beforeToken()
	w.writeByte('"')
	w.writeString(string(escape.Quote(mem.S(key))))
	w.writeByte('"')
	w.state = wsAfterKey
	return w.err
}

func (w *Writer) String(value string) error {
	w.beforeToken()
	w.writeByte('"')
	w.writeString(string(escape.Quote(mem.S(value))))
	w.writeByte('"')
	w.state = wsAfterValue
	return w.err
}

func (w *Writer) Number(value Number) error {
	w.beforeToken()
	w.writeString(value.String())
	w.state = wsAfterValue
	return w.err
}

func (w *Writer) Boolean(value bool) error {
	w.beforeToken()
	if value {
		w.writeString("true")
	} else {
		w.writeString("false")
	}
	w.state = wsAfterValue
	return w.err
}

func (w *Writer) Null() error {
	w.beforeToken()
	w.writeString("null")
	w.state = wsAfterValue
	return w.err
}

// Flush emits any buffered bytes to the underlying sink.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.bw.Flush()
}

// Close flushes and, if the sink is an io.Closer, closes it.
func (w *Writer) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}
	if c, ok := w.sink.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
