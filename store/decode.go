package store

import (
	"errors"
	"fmt"
)

// MaxDepth is the number of nesting levels kept by the decoder. Blocks and
// lists nested deeper are skipped.
const MaxDepth = 1

// ErrSyntax is wrapped by every problem reported by Parse.
var ErrSyntax = errors.New("store syntax error")

type parser struct {
	lex  *lexer
	errs []error
}

// Parse decodes text into a Record. The returned record is never nil and
// holds every field that could be recovered; the error, when non-nil, joins
// one ErrSyntax-wrapping error per skipped problem.
func Parse(text string) (*Record, error) {
	p := &parser{lex: newLexer(text)}
	r := p.record(0, false)
	return r, errors.Join(p.errs...)
}

// Decode is Parse without the error. It accepts any input, including empty
// and binary text.
func Decode(text string) *Record {
	r, _ := Parse(text)
	return r
}

func (p *parser) fail(t token, format string, args ...any) {
	p.errs = append(p.errs, fmt.Errorf("%w: %s at offset %d", ErrSyntax, fmt.Sprintf(format, args...), t.pos))
}

// record reads name = value pairs until EOF or, when closed is set, a
// closing brace.
func (p *parser) record(depth int, closed bool) *Record {
	r := NewRecord()
	for {
		t := p.lex.next()
		switch t.kind {
		case tokEOF:
			if closed {
				p.fail(t, "missing closing brace")
			}
			return r
		case tokInvalid:
			p.fail(t, "%s", t.err)
			continue
		case tokPunct:
			switch t.punct {
			case '}':
				if closed {
					return r
				}
				p.fail(t, "unexpected '}'")
			case '{', '(':
				p.fail(t, "unexpected '%c'", t.punct)
				p.skipNested()
			default:
				p.fail(t, "unexpected '%c'", t.punct)
			}
			continue
		case tokInteger, tokFloat:
			p.fail(t, "numeric field name %q", t.text)
			continue
		}

		if t.err != "" {
			p.fail(t, "%s", t.err)
		}
		name := t.text

		if eq := p.lex.peek(); eq.kind != tokPunct || eq.punct != '=' {
			p.fail(eq, "expected '=' after field %q", name)
			continue
		}
		p.lex.next()

		if v, ok := p.value(depth); ok {
			r.Set(name, v)
		}
	}
}

// value reads the value after '='. It does not consume a closing brace so
// the enclosing record can see it.
func (p *parser) value(depth int) (Value, bool) {
	t := p.lex.peek()
	switch t.kind {
	case tokEOF:
		p.fail(t, "missing value")
		return Value{}, false
	case tokPunct:
		switch t.punct {
		case '{':
			p.lex.next()
			if depth >= MaxDepth {
				p.skipNested()
				return Value{}, false
			}
			return Array(p.record(depth+1, true)), true
		case '(':
			p.lex.next()
			if depth >= MaxDepth {
				p.skipNested()
				return Value{}, false
			}
			return p.list(depth + 1)
		default:
			p.fail(t, "missing value before '%c'", t.punct)
			return Value{}, false
		}
	}

	p.lex.next()
	if t.err != "" {
		p.fail(t, "%s", t.err)
	}
	return scalar(t)
}

// list reads values up to the closing parenthesis.
func (p *parser) list(depth int) (Value, bool) {
	var values []Value
	for {
		t := p.lex.peek()
		switch {
		case t.kind == tokEOF:
			p.fail(t, "missing closing parenthesis")
			return List(values...), true
		case t.kind == tokPunct && t.punct == ')':
			p.lex.next()
			return List(values...), true
		case t.kind == tokPunct && (t.punct == '{' || t.punct == '('):
			p.lex.next()
			if depth >= MaxDepth {
				p.skipNested()
				continue
			}
			if t.punct == '{' {
				values = append(values, Array(p.record(depth+1, true)))
			} else if v, ok := p.list(depth + 1); ok {
				values = append(values, v)
			}
		case t.kind == tokPunct:
			p.lex.next()
			p.fail(t, "unexpected '%c' in list", t.punct)
		default:
			p.lex.next()
			if t.err != "" {
				p.fail(t, "%s", t.err)
			}
			if v, ok := scalar(t); ok {
				values = append(values, v)
			}
		}
	}
}

// skipNested consumes tokens up to the bracket that closes an already opened
// block or list.
func (p *parser) skipNested() {
	open := 1
	for open > 0 {
		t := p.lex.next()
		switch {
		case t.kind == tokEOF:
			return
		case t.kind == tokPunct && (t.punct == '{' || t.punct == '('):
			open++
		case t.kind == tokPunct && (t.punct == '}' || t.punct == ')'):
			open--
		}
	}
}

func scalar(t token) (Value, bool) {
	switch t.kind {
	case tokWord, tokString:
		return String(t.text), true
	case tokInteger:
		return Integer(t.integer), true
	case tokFloat:
		return Float(t.float), true
	default:
		return Value{}, false
	}
}
