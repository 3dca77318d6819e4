package changelog

import "strings"

// matchExpr evaluates a boolean applicability expression against a membership
// predicate. The grammar is the one used by both context and label
// expressions: a comma or "or" separates alternatives, "and" joins
// conjunctions, "!" negates, and parentheses group. An empty expression
// matches everything.
func matchExpr(expr string, has func(string) bool) bool {
	toks := tokenizeExpr(expr)
	if len(toks) == 0 {
		return true
	}

	p := &exprParser{toks: toks, has: has}
	result := p.parseOr()

	// Trailing garbage means a malformed expression; treat it as
	// non-matching rather than guessing.
	if p.pos != len(p.toks) {
		return false
	}

	return result
}

type exprParser struct {
	toks []string
	pos  int
	has  func(string) bool
}

func (p *exprParser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}

	return p.toks[p.pos]
}

func (p *exprParser) next() string {
	t := p.peek()
	p.pos++

	return t
}

func (p *exprParser) parseOr() bool {
	result := p.parseAnd()
	for {
		switch p.peek() {
		case ",", "or":
			p.next()
			result = p.parseAnd() || result
		default:
			return result
		}
	}
}

func (p *exprParser) parseAnd() bool {
	result := p.parseFactor()
	for p.peek() == "and" {
		p.next()
		result = p.parseFactor() && result
	}

	return result
}

func (p *exprParser) parseFactor() bool {
	switch tok := p.next(); tok {
	case "!":
		return !p.parseFactor()
	case "(":
		result := p.parseOr()
		if p.peek() == ")" {
			p.next()
		}

		return result
	case "", ")", ",":
		return false
	default:
		return p.has(tok)
	}
}

// tokenizeExpr lowercases the expression and splits it into identifiers and
// the punctuation tokens the grammar understands.
func tokenizeExpr(expr string) []string {
	var (
		toks []string
		cur  strings.Builder
	)

	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}

	for _, r := range strings.ToLower(strings.TrimSpace(expr)) {
		switch r {
		case ',', '(', ')', '!':
			flush()
			toks = append(toks, string(r))
		case ' ', '\t', '\n', '\r':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return toks
}
