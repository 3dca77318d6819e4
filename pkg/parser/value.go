package parser

import (
	"strconv"
	"strings"
)

// Interface returns the loosely-typed Go value for the literal: unquoted
// string for string literals and bare identifiers, bool for true/false, and
// int64 or float64 for numbers.
func (v *Value) Interface() any {
	switch {
	case v.Str != nil:
		return unquote(*v.Str)
	case v.Number != nil:
		if strings.Contains(*v.Number, ".") {
			f, _ := strconv.ParseFloat(*v.Number, 64)
			return f
		}

		n, _ := strconv.ParseInt(*v.Number, 10, 64)
		return n
	case v.True:
		return true
	case v.False:
		return false
	case v.Ident != nil:
		return *v.Ident
	default:
		return nil
	}
}

// Named returns the directive's named arguments in source order.
func (d *Directive) Named() []*Argument {
	args := make([]*Argument, 0, len(d.Arguments))
	for _, a := range d.Arguments {
		if a.Name != "" {
			args = append(args, a)
		}
	}

	return args
}

// Positional returns the values of the directive's positional arguments in
// source order.
func (d *Directive) Positional() []any {
	var vals []any
	for _, a := range d.Arguments {
		if a.Name == "" {
			vals = append(vals, a.Value.Interface())
		}
	}

	return vals
}

// unquote strips the surrounding quotes from a string literal and resolves
// backslash escapes. The lexer guarantees the literal is well-formed.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	s = s[1 : len(s)-1]

	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}

		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte(s[i])
		}
	}

	return b.String()
}
