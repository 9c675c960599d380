// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package gojson

import "unicode/utf8"

// Parser is an incremental, push-driven JSON parser. The zero value is not
// usable; construct one with NewParser. A Parser is not safe for
// concurrent use.
//
// Input arrives via Receive rather than through a blocking io.Reader:
// callers push bytes as they become available (over a socket, from a
// file in pieces, whatever), and events fire on the Handler as soon as
// enough bytes have arrived to recognize them.
type Parser struct {
	handler Handler

	checkedBOM bool
	closed     bool

	// chars holds the decoded, not-yet-tokenized remainder of the input:
	// everything received so far minus whatever the tokenizer has already
	// committed past. It is compacted in Receive once the tokenizer can
	// make no further progress, so it only ever holds one in-progress
	// token's worth of backlog.
	chars    []rune
	charPos  int
	line     int
	col      int

	seenAnyToken bool

	state      structState
	stack      []container
	afterComma bool
}

// NewParser returns a Parser ready to receive input.
func NewParser() *Parser {
	p := &Parser{line: 1, col: 1}
	return p
}

// SetHandler installs the Handler that will receive parse events, and
// immediately calls its SetLocator with this Parser (which implements
// Locator). Must be called before the first Receive.
func (p *Parser) SetHandler(h Handler) {
	p.handler = h
	if h != nil {
		h.SetLocator(p)
	}
}

// Line implements Locator: the 1-based line on which the next input
// character would be read, so a consumed line break already counts.
func (p *Parser) Line() int { return p.line }

// Column implements Locator: the 1-based column at which the next input
// character would be read, one past the most recently consumed character
// on its line. It is reset to 1 at the start of input and immediately
// after each line boundary.
func (p *Parser) Column() int { return p.col }

// Receive feeds buf to the parser. It decodes as much of buf.Remaining()
// as forms complete UTF-8 runes, tokenizes and parses as much of the
// decoded text as forms complete tokens, and reports events to the
// Handler as they are recognized. It returns with buf.Pos advanced past
// everything consumed; the caller must Compact buf before appending more
// data (see doc.go).
//
// Receive may be called any number of times with arbitrarily small
// slices, including one byte at a time: the sequence of Handler events
// produced is identical regardless of how the input is chunked.
func (p *Parser) Receive(buf *Buffer) (err error) {
	defer recoverError(&err)

	if p.closed {
		throwf("Receive called after Close")
	}
	if p.handler == nil {
		throwf("SetHandler must be called before Receive")
	}

	if !p.checkedBOM {
		ok, berr := checkBOM(buf)
		if berr != nil {
			return berr
		}
		if !ok {
			return nil
		}
		p.checkedBOM = true
	}

	p.decode(buf)
	p.run()
	p.compact()
	return nil
}

// decode appends as many complete runes from buf.Remaining() to p.chars as
// are available, advancing buf.Pos past them. A trailing partial UTF-8
// sequence is left in buf for the next call, using unicode/utf8's
// incremental decoding (no third-party library offers resumable UTF-8
// decoding with underflow signaling; see DESIGN.md).
func (p *Parser) decode(buf *Buffer) {
	data := buf.Remaining()
	i := 0
	for i < len(data) {
		if data[i] < utf8.RuneSelf {
			p.chars = append(p.chars, rune(data[i]))
			i++
			continue
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			if !utf8.FullRune(data[i:]) {
				break // truncated at the end of this chunk; wait for more
			}
			buf.Pos += i
			throwf("Invalid UTF-8 sequence")
		}
		p.chars = append(p.chars, r)
		i += size
	}
	buf.Pos += i
}

// run drives the tokenizer/structural state machine until it can make no
// further progress: either p.chars is exhausted, or the next token is
// incomplete and the parser is not closed.
func (p *Parser) run() {
	for p.nextToken() {
	}
}

// compact drops the prefix of p.chars already consumed by the tokenizer,
// so memory use tracks only the decoded text of the in-progress token,
// never the whole document.
func (p *Parser) compact() {
	if p.charPos == 0 {
		return
	}
	n := copy(p.chars, p.chars[p.charPos:])
	p.chars = p.chars[:n]
	p.charPos = 0
}

// Close signals end of input. Any number that was awaiting a possible
// continuation (e.g. "3" that might have been "3.14") is finalized; an
// incomplete token of any other kind, or an open object/array, is
// reported as an error. Close is idempotent: calling it again after it
// has returned nil is a no-op.
func (p *Parser) Close() (err error) {
	if p.closed {
		return nil
	}
	defer recoverError(&err)

	p.closed = true
	p.run()

	if !p.seenAnyToken {
		return newError("No data")
	}
	if p.charPos < len(p.chars) {
		return newError("Unexpected end of input: incomplete token")
	}
	if len(p.stack) > 0 {
		switch p.stack[len(p.stack)-1] {
		case containerObject:
			return newError("Unclosed object")
		default:
			return newError("Unclosed array")
		}
	}
	if p.state != stateAfterValue {
		return newError("Unexpected end of input")
	}
	return nil
}

// Reset returns the parser to its initial state so it can be reused to
// parse a new, independent document with the same Handler, without
// reallocating its internal buffers.
func (p *Parser) Reset() {
	p.checkedBOM = false
	p.closed = false
	p.chars = p.chars[:0]
	p.charPos = 0
	p.line = 1
	p.col = 1
	p.seenAnyToken = false
	p.state = stateExpectValue
	p.stack = p.stack[:0]
	p.afterComma = false
}
