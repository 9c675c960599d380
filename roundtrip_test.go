// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package gojson_test

import (
	"bytes"
	"testing"

	"github.com/bluezoo/gojson"
)

// reencode parses input and re-serializes it through a WriterHandler,
// without ever materializing the document as a tree.
func reencode(t *testing.T, input string, indent gojson.Indent) string {
	t.Helper()
	var buf bytes.Buffer
	w := gojson.NewWriter(&buf)
	w.SetIndent(indent)
	h := gojson.NewWriterHandler(w)

	p := gojson.NewParser()
	p.SetHandler(h)
	if err := p.Receive(&gojson.Buffer{Data: []byte(input)}); err != nil {
		t.Fatalf("input %q: Receive: %v", input, err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("input %q: Close: %v", input, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("input %q: Writer.Close: %v", input, err)
	}
	return buf.String()
}

func TestRoundtripCompact(t *testing.T) {
	tests := []struct{ input, want string }{
		{`{"a":1,"b":[true,false,null],"c":"hi"}`, `{"a":1,"b":[true,false,null],"c":"hi"}`},
		{`  [ 1 , 2 , 3 ]  `, `[1,2,3]`},
		{`{}`, `{}`},
		{`[]`, `[]`},
		{`"escaped \"quote\""`, `"escaped \"quote\""`},
	}
	for _, test := range tests {
		got := reencode(t, test.input, gojson.Indent{})
		if got != test.want {
			t.Errorf("input %q: got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestRoundtripIdempotent(t *testing.T) {
	docs := []string{
		`{"a":15,"b":[1,2,3],"c":"hello\nworld","d":true,"e":null,"f":-6.32e10}`,
		`[{"x":1},{"y":[true,false,null]},"tail end"]`,
	}
	for _, doc := range docs {
		once := reencode(t, doc, gojson.Indent{})
		twice := reencode(t, once, gojson.Indent{})
		if once != twice {
			t.Errorf("input %q: not idempotent: %q vs %q", doc, once, twice)
		}
	}
}

func TestRoundtripIndentedThenCompactMatches(t *testing.T) {
	doc := `{"a":1,"b":[2,3]}`
	indented := reencode(t, doc, gojson.Spaces2())
	compact := reencode(t, indented, gojson.Indent{})
	if compact != doc {
		t.Errorf("got %q, want %q", compact, doc)
	}
}
