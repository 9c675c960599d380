// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package gojson

import (
	"math"
	"math/big"
	"strconv"
)

// NumberKind tags the concrete representation held by a Number: the
// narrowest integer type that can hold an integral token, widening to
// Int64 and then BigIntKind as needed, or Float64Kind for any token
// with a fraction or exponent.
type NumberKind int

const (
	Int32 NumberKind = iota
	Int64
	BigIntKind
	Float64Kind
)

func (k NumberKind) String() string {
	switch k {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case BigIntKind:
		return "bigint"
	case Float64Kind:
		return "float64"
	default:
		return "invalid"
	}
}

// Number is a tagged union of the four numeric representations the parser
// can produce for a JSON number token. The zero Number is the Int32 value
// zero.
type Number struct {
	kind NumberKind
	i32  int32
	i64  int64
	big  *big.Int
	f64  float64
	text string // original token text, for String and for re-serialization
}

// Kind reports which representation this Number holds.
func (n Number) Kind() NumberKind { return n.kind }

// Int32 returns the value as a signed 32-bit integer. It panics if
// Kind() != Int32.
func (n Number) Int32() int32 {
	if n.kind != Int32 {
		panic("gojson: Number is not Int32")
	}
	return n.i32
}

// Int64 returns the value as a signed 64-bit integer. It panics if
// Kind() != Int64.
func (n Number) Int64() int64 {
	if n.kind != Int64 {
		panic("gojson: Number is not Int64")
	}
	return n.i64
}

// BigInt returns the value as an arbitrary-precision integer. It panics if
// Kind() != BigIntKind.
func (n Number) BigInt() *big.Int {
	if n.kind != BigIntKind {
		panic("gojson: Number is not BigIntKind")
	}
	return n.big
}

// Float64 returns the value as a double-precision float. It panics if
// Kind() != Float64Kind.
func (n Number) Float64() float64 {
	if n.kind != Float64Kind {
		panic("gojson: Number is not Float64Kind")
	}
	return n.f64
}

// String returns the original token text, which is also valid JSON
// number syntax and round-trips byte-for-byte.
func (n Number) String() string { return n.text }

// NewInt64 returns a Number holding v, suitable for Writer.Number. It
// chooses Int32 or Int64 the same way the parser would for the
// equivalent decimal text.
func NewInt64(v int64) Number {
	text := strconv.FormatInt(v, 10)
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return int32Number(int32(v), text)
	}
	return int64Number(v, text)
}

// NewBigInt returns a Number holding v.
func NewBigInt(v *big.Int) Number {
	return bigIntNumber(v, v.String())
}

// NewFloat64 returns a Number holding v, formatted with the minimal
// decimal representation that round-trips to v (strconv's 'g', -1
// precision).
func NewFloat64(v float64) Number {
	return float64Number(v, strconv.FormatFloat(v, 'g', -1, 64))
}

func int32Number(v int32, text string) Number {
	return Number{kind: Int32, i32: v, i64: int64(v), f64: float64(v), text: text}
}

func int64Number(v int64, text string) Number {
	return Number{kind: Int64, i64: v, f64: float64(v), text: text}
}

func bigIntNumber(v *big.Int, text string) Number {
	f, _ := new(big.Float).SetInt(v).Float64()
	return Number{kind: BigIntKind, big: v, f64: f, text: text}
}

func float64Number(v float64, text string) Number {
	return Number{kind: Float64Kind, f64: v, text: text}
}

// parseIntegerText converts the digit text of an integer-only number token
// (no '.', 'e', or 'E') into the narrowest of {Int32, Int64, BigIntKind}
// that can hold it.
func parseIntegerText(text string) (Number, error) {
	if v, err := strconv.ParseInt(text, 10, 32); err == nil {
		return int32Number(int32(v), text), nil
	}
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return int64Number(v, text), nil
	}
	bi, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return Number{}, newErrorf("invalid number: %q", text)
	}
	return bigIntNumber(bi, text), nil
}

// parseFloatText converts the text of a number token that contains '.',
// 'e', or 'E' into a Float64 Number. Precision loss for magnitudes beyond
// IEEE-754 double range is accepted per RFC 8259.
func parseFloatText(text string) (Number, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Number{}, newErrorf("invalid number: %q", text)
	}
	return float64Number(v, text), nil
}
