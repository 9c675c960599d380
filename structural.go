// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package gojson

// container is the kind of an open bracket on the container stack.
type container byte

const (
	containerObject container = iota
	containerArray
)

// structState is the "what can come next" state of the structural
// parser, kept as an exhaustive enum rather than a set of booleans so
// invalid combinations (expecting both a key and a colon, say) are
// unrepresentable.
type structState byte

const (
	stateExpectValue structState = iota
	stateExpectKey
	stateExpectColon
	stateAfterValue
)

// The remainder of this file is the structural state machine: it is
// driven one completed token at a time by the tokenizer (tokenizer.go)
// and translates tokens into Handler calls, enforcing value/key/colon/
// comma ordering and container nesting. State cannot live on the call
// stack the way a recursive-descent parser would keep it, since parsing
// resumes across separate Receive calls, so it is expressed as an
// explicit state machine with an explicit container stack instead.

// checkNotTrailing rejects any further non-whitespace token once a
// complete top-level value has already been read (AFTER_VALUE with an
// empty container stack).
func (p *Parser) checkNotTrailing() {
	if p.state == stateAfterValue && len(p.stack) == 0 {
		throwf("trailing content after document")
	}
}

func (p *Parser) checkValueState(desc string) {
	p.checkNotTrailing()
	if p.state != stateExpectValue {
		throwf("Unexpected %s", desc)
	}
}

func (p *Parser) popContainer(want container, errDesc string) {
	if len(p.stack) == 0 || p.stack[len(p.stack)-1] != want {
		throwf(errDesc)
	}
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *Parser) onLBrace() {
	p.checkValueState("'{'")
	p.stack = append(p.stack, containerObject)
	checkHandlerErr(p.handler.StartObject())
	p.state = stateExpectKey
	p.afterComma = false
}

func (p *Parser) onLBracket() {
	p.checkValueState("'['")
	p.stack = append(p.stack, containerArray)
	checkHandlerErr(p.handler.StartArray())
	p.state = stateExpectValue
	p.afterComma = false
}

// onRBrace implements the EXPECT_KEY and AFTER_VALUE rows for "}":
// closing an empty object directly after "{", or closing an object
// after its last member.
func (p *Parser) onRBrace() {
	p.checkNotTrailing()
	switch p.state {
	case stateExpectKey:
		if p.afterComma {
			throwf("Trailing comma before '}'")
		}
		p.popContainer(containerObject, "Unexpected '}'")
		checkHandlerErr(p.handler.EndObject())
		p.state = stateAfterValue
		p.afterComma = false
	case stateAfterValue:
		p.popContainer(containerObject, "Unexpected '}'")
		checkHandlerErr(p.handler.EndObject())
		p.state = stateAfterValue
		p.afterComma = false
	default:
		throwf("Unexpected '}'")
	}
}

// onRBracket implements the EXPECT_VALUE and AFTER_VALUE rows for "]".
// EXPECT_VALUE's "]" is legal only when it immediately closes the array
// that put us in EXPECT_VALUE in the first place; popContainer enforces
// this by requiring the stack top to be an ARRAY, which fails naturally if
// we reached EXPECT_VALUE via ":" (top is OBJECT) or as the initial state
// (stack empty).
func (p *Parser) onRBracket() {
	p.checkNotTrailing()
	switch p.state {
	case stateExpectValue:
		if p.afterComma {
			throwf("Trailing comma before ']'")
		}
		p.popContainer(containerArray, "Unexpected ']'")
		checkHandlerErr(p.handler.EndArray())
		p.state = stateAfterValue
		p.afterComma = false
	case stateAfterValue:
		p.popContainer(containerArray, "Unexpected ']'")
		checkHandlerErr(p.handler.EndArray())
		p.state = stateAfterValue
		p.afterComma = false
	default:
		throwf("Unexpected ']'")
	}
}

func (p *Parser) onComma() {
	p.checkNotTrailing()
	if p.state != stateAfterValue {
		throwf("Unexpected ','")
	}
	p.afterComma = true
	if len(p.stack) > 0 && p.stack[len(p.stack)-1] == containerObject {
		p.state = stateExpectKey
	} else {
		p.state = stateExpectValue
	}
}

func (p *Parser) onColon() {
	p.checkNotTrailing()
	if p.state != stateExpectColon {
		throwf("Unexpected ':'")
	}
	p.state = stateExpectValue
}

// onString implements the only two rows of the table where a string is
// legal: EXPECT_VALUE (a string value) and EXPECT_KEY (an object key).
func (p *Parser) onString(value string) {
	p.checkNotTrailing()
	switch p.state {
	case stateExpectValue:
		checkHandlerErr(p.handler.String(value))
		p.state = stateAfterValue
		p.afterComma = false
	case stateExpectKey:
		checkHandlerErr(p.handler.Key(value))
		p.state = stateExpectColon
		p.afterComma = false
	default:
		throwf("Unexpected string")
	}
}

func (p *Parser) onNumber(value Number) {
	p.checkValueState("number")
	checkHandlerErr(p.handler.Number(value))
	p.state = stateAfterValue
	p.afterComma = false
}

func (p *Parser) onBoolean(value bool) {
	p.checkValueState("boolean")
	checkHandlerErr(p.handler.Boolean(value))
	p.state = stateAfterValue
	p.afterComma = false
}

func (p *Parser) onNull() {
	p.checkValueState("null")
	checkHandlerErr(p.handler.Null())
	p.state = stateAfterValue
	p.afterComma = false
}

// onWhitespace never touches structural state: whitespace self-loops in
// every state, and is reported to the handler only if it opted in.
func (p *Parser) onWhitespace(value string) {
	if p.handler != nil && p.handler.NeedsWhitespace() {
		checkHandlerErr(p.handler.Whitespace(value))
	}
}
