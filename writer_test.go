// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package gojson_test

import (
	"bytes"
	"testing"

	"github.com/bluezoo/gojson"
)

func TestWriterCompact(t *testing.T) {
	var buf bytes.Buffer
	w := gojson.NewWriter(&buf)

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(w.StartObject())
	must(w.Key("a"))
	must(w.Number(gojson.NewInt64(15)))
	must(w.Key("b"))
	must(w.StartArray())
	must(w.Boolean(true))
	must(w.Null())
	must(w.EndArray())
	must(w.Key("c"))
	must(w.String("hi\tthere"))
	must(w.EndObject())
	must(w.Close())

	want := `{"a":15,"b":[true,null],"c":"hi\tthere"}`
	if got := buf.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestWriterEmptyContainers(t *testing.T) {
	var buf bytes.Buffer
	w := gojson.NewWriter(&buf)
	if err := w.StartObject(); err != nil {
		t.Fatal(err)
	}
	if err := w.EndObject(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{}" {
		t.Errorf("got %s, want {}", got)
	}
}

func TestWriterIndent(t *testing.T) {
	var buf bytes.Buffer
	w := gojson.NewWriter(&buf)
	w.SetIndent(gojson.Spaces2())

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(w.StartObject())
	must(w.Key("a"))
	must(w.StartArray())
	must(w.Number(gojson.NewInt64(1)))
	must(w.Number(gojson.NewInt64(2)))
	must(w.EndArray())
	must(w.EndObject())
	must(w.Close())

	want := "{\n  \"a\": [\n    1,\n    2\n  ]\n}"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriterEscaping(t *testing.T) {
	var buf bytes.Buffer
	w := gojson.NewWriter(&buf)
	if err := w.String("a\"b\\c\x01d e"); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	// Control characters always escape; everything else above ASCII
	// passes through as raw UTF-8, including U+2028/U+2029/U+FFFD.
	want := "\"a\\\"b\\\\c\\u0001d e\""
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
