// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package gojson

// WriterHandler adapts a Writer into a Handler, so a Parser can drive a
// Writer directly: parsed events are re-emitted as they arrive, with
// whatever indentation the Writer is configured for. Useful for
// reformatting a document (compact to indented or vice versa) without
// ever materializing it as a tree.
type WriterHandler struct {
	DefaultHandler
	W *Writer
}

// NewWriterHandler returns a Handler that re-emits every event to w.
func NewWriterHandler(w *Writer) *WriterHandler {
	return &WriterHandler{W: w}
}

func (h *WriterHandler) StartObject() error    { return h.W.StartObject() }
func (h *WriterHandler) EndObject() error      { return h.W.EndObject() }
func (h *WriterHandler) StartArray() error     { return h.W.StartArray() }
func (h *WriterHandler) EndArray() error       { return h.W.EndArray() }
func (h *WriterHandler) Key(k string) error    { return h.W.Key(k) }
func (h *WriterHandler) String(v string) error { return h.W.String(v) }
func (h *WriterHandler) Number(v Number) error  { return h.W.Number(v) }
func (h *WriterHandler) Boolean(v bool) error  { return h.W.Boolean(v) }
func (h *WriterHandler) Null() error           { return h.W.Null() }
