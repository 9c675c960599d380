// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package gojson_test

import (
	"testing"

	"github.com/bluezoo/gojson"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{" ", " "},
		{"a\t\nb", "a\\t\\nb"},
		{"\x00\x01\x02", "\\u0000\\u0001\\u0002"},
		{"a\"b\\c", "a\\\"b\\\\c"},
		{"This is the end\v", "This is the end\\u000b"},
		{"<\x1e>", "<\\u001e>"},
		// Unlike the JavaScript-embedding convention this escaping is
		// adapted from, U+2028, U+2029, and U+FFFD pass through raw: this
		// module targets RFC 8259 JSON text, not JavaScript source.
		{"    �", "    �"},
	}
	for _, test := range tests {
		got := gojson.Quote(test.input)
		if got != test.want {
			t.Errorf("Quote(%q): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, true},
		{`"missing quote`, ``, true},
		{`missing quote"`, ``, true},
		{`""`, ``, false},
		{`"ok go"`, "ok go", false},
		{`"abc\ndef"`, "abc\ndef", false},
		{`"\tabc\n"`, "\tabc\n", false},
		{`"\b\f\n\r\t"`, "\b\f\n\r\t", false},
		{`"a & b"`, "a & b", false},
		{`"\u"`, ``, true},
		{`"\u00"`, ``, true},
		{`"\u00x9"`, "�", false},
		{`"\u019 "`, "�", false},
		{`"a\"b"`, `a"b`, false},
		{`"a\\b\\cd"`, `a\b\cd`, false},
	}
	for _, test := range tests {
		got, err := gojson.Unquote(test.input)
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			}
		} else if test.fail {
			t.Errorf("Unquote(%#q): got nil error, want error", test.input)
		}
		if cmp := string(got); cmp != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, cmp, test.want)
		}
	}
}
