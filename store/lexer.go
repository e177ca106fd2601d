package store

import (
	"strconv"
	"strings"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokWord
	tokString
	tokInteger
	tokFloat
	tokPunct
	tokInvalid
)

type token struct {
	kind    tokenKind
	text    string
	integer int64
	float   float64
	punct   byte
	pos     int
	err     string
}

// isDelimiter reports whether c ends an undelimited word or number.
func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', ';', ',', '{', '}', '(', ')', '=', '"', '\\':
		return true
	}
	return false
}

// isSeparator reports whether c is skipped between tokens.
func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', ';', ',':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// lexer splits store text into tokens. A NUL byte ends the input, as it does
// for the host which reads C strings.
type lexer struct {
	src    string
	pos    int
	peeked *token
}

func newLexer(src string) *lexer {
	if i := strings.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	return &lexer{src: src}
}

func (l *lexer) peek() token {
	if l.peeked == nil {
		t := l.scan()
		l.peeked = &t
	}
	return *l.peeked
}

func (l *lexer) next() token {
	if l.peeked != nil {
		t := *l.peeked
		l.peeked = nil
		return t
	}
	return l.scan()
}

func (l *lexer) scan() token {
	l.skip()
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: l.pos}
	}

	start := l.pos
	c := l.src[l.pos]
	switch c {
	case '{', '}', '(', ')', '=':
		l.pos++
		return token{kind: tokPunct, punct: c, pos: start}
	case '"':
		return l.scanString()
	case '\\':
		l.pos++
		return token{kind: tokInvalid, pos: start, err: "escape character outside of a delimited string"}
	}

	for l.pos < len(l.src) && !isDelimiter(l.src[l.pos]) {
		l.pos++
	}
	return classify(l.src[start:l.pos], start)
}

// skip consumes separators and // line comments.
func (l *lexer) skip() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case isSeparator(c):
			l.pos++
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/':
			nl := strings.IndexByte(l.src[l.pos:], '\n')
			if nl < 0 {
				l.pos = len(l.src)
				return
			}
			l.pos += nl + 1
		default:
			return
		}
	}
}

func (l *lexer) scanString() token {
	start := l.pos
	l.pos++ // opening quote

	var b strings.Builder
	var problem string
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		l.pos++
		switch c {
		case '"':
			return token{kind: tokString, text: b.String(), pos: start, err: problem}
		case '\\':
			if l.pos >= len(l.src) {
				continue
			}
			e := l.src[l.pos]
			if e == '"' || e == '\\' {
				b.WriteByte(e)
				l.pos++
				continue
			}
			// unknown escapes are kept verbatim
			if problem == "" {
				problem = "unused escape character"
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return token{kind: tokInvalid, pos: start, err: "unterminated string"}
}

// classify turns an undelimited run into a number or a word. A run that
// starts like a number but contains anything other than digits and a single
// decimal point is a word.
func classify(run string, pos int) token {
	if run == "" {
		return token{kind: tokInvalid, pos: pos, err: "empty token"}
	}
	if !isDigit(run[0]) && run[0] != '-' {
		return token{kind: tokWord, text: run, pos: pos}
	}

	dots := 0
	for i := 1; i < len(run); i++ {
		switch {
		case isDigit(run[i]):
		case run[i] == '.':
			dots++
		default:
			return token{kind: tokWord, text: run, pos: pos}
		}
	}

	switch dots {
	case 0:
		if run == "-" {
			return token{kind: tokInteger, integer: 0, text: run, pos: pos}
		}
		i, err := strconv.ParseInt(run, 10, 64)
		if err != nil {
			return token{kind: tokInvalid, text: run, pos: pos, err: "integer out of range"}
		}
		return token{kind: tokInteger, integer: i, text: run, pos: pos}
	case 1:
		f, err := strconv.ParseFloat(run, 64)
		if err != nil {
			// "-." and friends read as zero on the host
			f = 0
		}
		return token{kind: tokFloat, float: f, text: run, pos: pos}
	default:
		return token{kind: tokInvalid, text: run, pos: pos, err: "multiple decimal points in number"}
	}
}
