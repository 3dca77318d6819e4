package parser

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// scriptLexer defines the lexer for closure-style changelog scripts.
	scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//[^\r\n]*`},
		{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: "String", Pattern: `'([^'\\]|\\.)*'|"([^"\\]|\\.)*"`},
		{Name: "Number", Pattern: `-?\d+(\.\d*)?`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Punct", Pattern: `[(){},:]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	// scriptParser is the participle parser instance for changelog scripts
	scriptParser = participle.MustBuild[Script](
		participle.Lexer(scriptLexer),
		participle.Elide("Comment", "MultilineComment", "Whitespace"),
		participle.UseLookahead(2),
	)
)

type (
	// Script is the root of a parsed changelog script: an ordered sequence
	// of top-level directives. A well-formed changelog script contains a
	// single databaseChangeLog directive, but that is enforced by the
	// compiler, not the grammar.
	Script struct {
		Directives []*Directive `parser:"@@*"`
	}

	// Directive is one closure invocation: a name, an optional argument
	// list, and an optional nested block.
	Directive struct {
		Name      string      `parser:"@Ident"`
		Arguments []*Argument `parser:"('(' (@@ (',' @@)*)? ')')?"`
		Block     *Block      `parser:"@@?"`
	}

	// Argument is a single argument to a directive. Named arguments carry a
	// `key:` prefix; positional arguments (used by where, sql, comment, and
	// raw-SQL rollback) have an empty Name.
	Argument struct {
		Name  string `parser:"(@Ident ':')?"`
		Value *Value `parser:"@@"`
	}

	// Block is a braced sequence of nested directives.
	Block struct {
		Directives []*Directive `parser:"'{' @@* '}'"`
	}

	// Value is one loosely-typed scalar literal.
	Value struct {
		Str    *string `parser:"@String"`
		Number *string `parser:"| @Number"`
		True   bool    `parser:"| @'true'"`
		False  bool    `parser:"| @'false'"`
		Ident  *string `parser:"| @Ident"`
	}
)

// Parse parses a changelog script from the provided io.Reader and returns
// the untyped syntax tree.
//
// Example usage:
//
//	f, err := os.Open("db/changelog.changelog")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	script, err := parser.Parse(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Returns an error with line/column information if the script is not
// syntactically valid.
func Parse(r io.Reader) (*Script, error) {
	script, err := scriptParser.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse changelog script")
	}

	return script, nil
}

// ParseString parses a changelog script from a string. See Parse.
func ParseString(src string) (*Script, error) {
	script, err := scriptParser.ParseString("", src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse changelog script")
	}

	return script, nil
}
