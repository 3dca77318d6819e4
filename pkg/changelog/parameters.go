package changelog

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches ${name} style placeholders. Names may contain
// anything but a closing brace.
var placeholderPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// maxExpandPasses bounds repeated expansion so parameters whose values
// reference each other cannot loop forever.
const maxExpandPasses = 10

type (
	// Parameter is one named entry in the parameter table. A parameter only
	// resolves when its context, label, and database filters all match the
	// compile the table is bound to; a filtered-out parameter behaves as if
	// it were never defined.
	Parameter struct {
		Value    any
		Contexts *ContextExpression
		Labels   *Labels
		DBMS     []string
		Global   bool
	}

	// Parameters is the document's parameter table: named values populated
	// by property directives and by the host, consumed by ${name}
	// placeholder expansion. Lookup is by name; the last write for a name
	// during a compile wins.
	Parameters struct {
		entries  map[string]*Parameter
		database string
		contexts *Contexts
		labels   []string
	}
)

// NewParameters creates an empty parameter table bound to the compile's
// target database and runtime context/label sets. Any of the bindings may be
// empty.
func NewParameters(database string, contexts *Contexts, labels []string) *Parameters {
	return &Parameters{
		entries:  make(map[string]*Parameter),
		database: strings.ToLower(database),
		contexts: contexts,
		labels:   labels,
	}
}

// Database returns the target database the table is bound to, or "" when the
// compile is database-agnostic.
func (p *Parameters) Database() string {
	return p.database
}

// Set writes a named parameter. A nil parameter is ignored.
func (p *Parameters) Set(name string, param *Parameter) {
	if param == nil {
		return
	}

	p.entries[name] = param
}

// SetValue writes a named parameter with no applicability filters. This is
// the form used for host-supplied values.
func (p *Parameters) SetValue(name string, value any) {
	p.Set(name, &Parameter{Value: value, Global: true})
}

// Get resolves a named parameter, applying the parameter's applicability
// filters against the table's bindings. Returns false when the parameter is
// undefined or filtered out of the current compile.
func (p *Parameters) Get(name string) (any, bool) {
	param, ok := p.entries[name]
	if !ok || !p.applies(param) {
		return nil, false
	}

	return param.Value, true
}

// Expand substitutes ${name} placeholders in text using the table. Unknown
// or filtered-out parameters leave their placeholder literal. Expansion
// repeats while substitutions change the text, so parameter values may
// themselves contain placeholders.
func (p *Parameters) Expand(text string) string {
	for range maxExpandPasses {
		expanded := placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
			name := strings.TrimSpace(match[2 : len(match)-1])
			if value, ok := p.Get(name); ok {
				return fmt.Sprintf("%v", value)
			}

			return match
		})

		if expanded == text {
			break
		}
		text = expanded
	}

	return text
}

func (p *Parameters) applies(param *Parameter) bool {
	if !param.Contexts.Matches(p.contexts) || !param.Labels.Matches(p.labels) {
		return false
	}

	if len(param.DBMS) == 0 || p.database == "" {
		return true
	}

	for _, dbms := range param.DBMS {
		if strings.ToLower(strings.TrimSpace(dbms)) == p.database {
			return true
		}
	}

	return false
}
