// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package gojson implements an incremental, push-driven JSON parser and a
// companion writer, conforming to ECMA-404 / RFC 8259.
//
// # Parsing
//
// The Parser type consumes UTF-8 bytes pushed by the caller and reports
// semantic events to a Handler as soon as each token is recognized. Unlike a
// parser built on an io.Reader, Parser never blocks and never buffers the
// whole document: it retains only the decoded text of the token currently
// in progress, so memory use does not grow with document size.
//
//	p := gojson.NewParser()
//	p.SetHandler(myHandler)
//
//	buf := &gojson.Buffer{Data: make([]byte, 0, 8192)}
//	for {
//	    buf.Compact()
//	    n, err := conn.Read(buf.Data[len(buf.Data):cap(buf.Data)])
//	    buf.Data = buf.Data[:len(buf.Data)+n]
//	    if perr := p.Receive(buf); perr != nil {
//	        log.Fatal(perr)
//	    }
//	    if err == io.EOF {
//	        break
//	    } else if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	if err := p.Close(); err != nil {
//	    log.Fatal(err)
//	}
//
// Receive mutates buf.Pos: after it returns, buf.Data[:buf.Pos] has been
// consumed and buf.Data[buf.Pos:] holds bytes not yet decodable (a
// partial UTF-8 sequence, or a byte-order-mark prefix too short to
// classify) that the caller must preserve, by calling buf.Compact()
// before reading more data, and resubmit on the next call. An incomplete
// token (a string, escape, or number cut off by the chunk boundary) is
// kept inside the Parser as decoded text, not left in buf.
// A blocking convenience wrapper that loops read/Receive/Compact for an
// io.Reader is straightforward to build on top of this API but is not
// itself part of it.
//
// # Handlers
//
// The Handler interface receives parse events. Its methods correspond to
// JSON syntax:
//
//	JSON construct | Methods                  | Notes
//	-------------- | ------------------------ | ------------------------------
//	object         | StartObject, EndObject   | { ... }
//	array          | StartArray, EndArray     | [ ... ]
//	member key     | Key                      | "name": ...
//	value          | String, Number,          | true, false, null, number,
//	               | Boolean, Null            | string
//	whitespace     | Whitespace               | only if NeedsWhitespace is true
//
// DefaultHandler implements every method as a no-op and carries the
// SetLocator/NeedsWhitespace bookkeeping, so a caller that only cares about
// a handful of events can embed it and override the rest.
//
// # Writing
//
// Writer is the encoding dual of Parser: the same escape rules run in
// reverse, and Writer optionally indents its output. Writer does not
// validate event ordering; the caller must balance Start/End pairs and
// precede every object value with a Key.
package gojson
