package store

import (
	"math"
	"strconv"
	"strings"
)

// Encode writes r in the canonical single-line form:
//
//	name = "value", count = 3, meta = { function = "logInfo" }
//
// Fields keep their insertion order. A nil record encodes as "".
func Encode(r *Record) string {
	var b strings.Builder
	writeFields(&b, r)
	return b.String()
}

// Quote returns s as a delimited store string. Quotes and backslashes are
// escaped and NUL bytes are dropped; every other byte, control characters
// included, is kept as is.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	writeQuoted(&b, s)
	return b.String()
}

// IsWord reports whether s can be written without quotes and read back as
// the same string.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	if c := s[0]; isDigit(c) || c == '-' || c == '/' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isDelimiter(c) || c < 0x20 || c == 0x7f {
			return false
		}
	}
	return true
}

func writeFields(b *strings.Builder, r *Record) {
	for i, k := range r.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		writeKey(b, k)
		b.WriteString(" = ")
		v, _ := r.Get(k)
		writeValue(b, v)
	}
}

func writeKey(b *strings.Builder, k string) {
	if IsWord(k) {
		b.WriteString(k)
		return
	}
	writeQuoted(b, k)
}

func writeValue(b *strings.Builder, v Value) {
	switch v.kind {
	case KindString:
		writeQuoted(b, v.str)
	case KindInteger:
		b.WriteString(strconv.FormatInt(v.integer, 10))
	case KindFloat:
		writeFloat(b, v.float)
	case KindList:
		b.WriteByte('(')
		for i, e := range v.list {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, e)
		}
		b.WriteByte(')')
	case KindArray:
		if v.array.Len() == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{ ")
		writeFields(b, v.array)
		b.WriteString(" }")
	default:
		b.WriteString(`""`)
	}
}

// writeFloat always emits a decimal point so the value reads back as a
// float. Non-finite values have no numeric form and are written as strings.
func writeFloat(b *strings.Builder, f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		writeQuoted(b, strconv.FormatFloat(f, 'f', -1, 64))
		return
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	b.WriteString(s)
	if !strings.ContainsRune(s, '.') {
		b.WriteString(".0")
	}
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case 0:
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}
