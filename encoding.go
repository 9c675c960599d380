// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package gojson

import (
	"errors"
	"strings"

	"github.com/bluezoo/gojson/internal/escape"

	"go4.org/mem"
)

// Quote escapes src for inclusion in a JSON string. The result does not
// include the surrounding double quotation marks; Writer adds those
// itself when composing output. It is also exported standalone for
// callers assembling JSON text outside of Writer.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// Unquote decodes a complete, already-delimited JSON string literal
// (quotes included) in one pass. It is a standalone convenience for
// callers holding a whole string literal already, such as one sliced out
// of a larger buffer; Parser itself never calls this; its incremental
// string scanner (tokenizer.go) can resume across Receive calls, which a
// whole-buffer function like this cannot.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}
