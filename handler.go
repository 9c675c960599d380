// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package gojson

// Handler receives semantic parse events from a Parser, in document
// order, synchronously within the Receive call that produced them. If a
// method returns an error, parsing stops and that error is returned
// from Receive/Close unchanged; the parser enters a failed state and
// further calls fail.
type Handler interface {
	StartObject() error
	EndObject() error
	StartArray() error
	EndArray() error

	// Key reports an object member key. It is always followed eventually by
	// exactly one value event (String, Number, Boolean, Null, StartObject,
	// or StartArray) for that member.
	Key(key string) error

	String(value string) error
	Number(value Number) error
	Boolean(value bool) error
	Null() error

	// Whitespace reports a run of whitespace between tokens. It is only
	// called if NeedsWhitespace returns true; otherwise the parser discards
	// whitespace without materializing it as a string.
	Whitespace(value string) error

	// SetLocator is called once, before the first event, with a Locator
	// the handler may retain and query at any later time: unlike the
	// Locator passed to some other event APIs, this one remains valid
	// for the life of the Parser.
	SetLocator(loc Locator)

	// NeedsWhitespace reports whether this handler wants Whitespace events.
	// Most handlers do not, which lets the parser skip the cost of
	// extracting whitespace runs as strings.
	NeedsWhitespace() bool
}

// DefaultHandler implements every Handler method as a no-op. Embed it to
// implement only the events you care about.
type DefaultHandler struct {
	Locator Locator
}

func (h *DefaultHandler) StartObject() error      { return nil }
func (h *DefaultHandler) EndObject() error        { return nil }
func (h *DefaultHandler) StartArray() error       { return nil }
func (h *DefaultHandler) EndArray() error         { return nil }
func (h *DefaultHandler) Key(string) error        { return nil }
func (h *DefaultHandler) String(string) error     { return nil }
func (h *DefaultHandler) Number(Number) error     { return nil }
func (h *DefaultHandler) Boolean(bool) error      { return nil }
func (h *DefaultHandler) Null() error             { return nil }
func (h *DefaultHandler) Whitespace(string) error { return nil }
func (h *DefaultHandler) SetLocator(loc Locator)  { h.Locator = loc }
func (h *DefaultHandler) NeedsWhitespace() bool   { return false }
