// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package bench compares gojson against several third-party JSON
// libraries on a shared fixture document. It is not part of the gojson
// public API and is excluded from the module's runtime dependency
// surface: nothing outside this package imports it.
package bench

import "github.com/bluezoo/gojson"

// Fixture is a small, structurally varied JSON document: nested objects,
// arrays, strings with escapes, integers and floating-point numbers
// (with fraction and exponent), the boolean literals and null,
// used as the shared input for every comparison in this package.
const Fixture = `{
  "id": 7,
  "name": "Gopher \"Gary\"",
  "active": true,
  "deleted": false,
  "parent": null,
  "score": -12.5e3,
  "tags": ["alpha", "beta", "gamma"],
  "address": {
    "city": "Springfield",
    "zip": "00000",
    "geo": {"lat": 39.781721, "lng": -89.650148}
  },
  "history": [1, 2, 3, 5, 8, 13, 21, 34],
  "notes": "line one\nline two\ttabbed"
}`

// EventCounts tallies the SAX-style events a Handler observed.
type EventCounts struct {
	Objects, Arrays, Keys, Strings, Numbers, Booleans, Nulls int
}

// countingHandler implements gojson.Handler by tallying events, giving
// the comparison tests an event-shape fingerprint independent of any
// particular decode target type.
type countingHandler struct {
	gojson.DefaultHandler
	Counts EventCounts
}

func (h *countingHandler) StartObject() error { h.Counts.Objects++; return nil }
func (h *countingHandler) StartArray() error  { h.Counts.Arrays++; return nil }
func (h *countingHandler) Key(string) error   { h.Counts.Keys++; return nil }
func (h *countingHandler) String(string) error {
	h.Counts.Strings++
	return nil
}
func (h *countingHandler) Number(gojson.Number) error {
	h.Counts.Numbers++
	return nil
}
func (h *countingHandler) Boolean(bool) error { h.Counts.Booleans++; return nil }
func (h *countingHandler) Null() error        { h.Counts.Nulls++; return nil }

// CountEvents parses doc with gojson.Parser and returns the tallied event
// counts. Used both as a benchmark subject and as a cross-check that
// gojson agrees with encoding/json-family libraries about the fixture's
// shape.
func CountEvents(doc []byte) (EventCounts, error) {
	h := &countingHandler{}
	p := gojson.NewParser()
	p.SetHandler(h)
	if err := p.Receive(&gojson.Buffer{Data: doc}); err != nil {
		return EventCounts{}, err
	}
	if err := p.Close(); err != nil {
		return EventCounts{}, err
	}
	return h.Counts, nil
}
