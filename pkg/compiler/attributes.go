package compiler

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/pseudomuto/changeling/pkg/changelog"
	"github.com/pseudomuto/changeling/pkg/parser"
)

// attributes is the ordered named-argument set of one directive. Order is
// preserved from the script so diagnostics point at the first offending key
// the author wrote.
type attributes struct {
	names  []string
	values map[string]any
}

// directiveAttributes collects a directive's named arguments. A repeated
// name keeps its first position; the last value wins.
func directiveAttributes(d *parser.Directive) *attributes {
	a := &attributes{values: make(map[string]any)}
	for _, arg := range d.Named() {
		if _, ok := a.values[arg.Name]; !ok {
			a.names = append(a.names, arg.Name)
		}
		a.values[arg.Name] = arg.Value.Interface()
	}

	return a
}

// newAttributes builds an attribute set from ordered name/value pairs; used
// by the SQL-batch inclusion when partitioning its caller's attributes.
func newAttributes() *attributes {
	return &attributes{values: make(map[string]any)}
}

func (a *attributes) set(name string, value any) {
	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}
	a.values[name] = value
}

func (a *attributes) has(name string) bool {
	_, ok := a.values[name]

	return ok
}

// raw returns the unexpanded value, nil when absent.
func (a *attributes) raw(name string) any {
	return a.values[name]
}

// text returns the attribute as an expanded string; "" when absent.
func (a *attributes) text(doc *changelog.ChangeLog, name string) string {
	v, ok := a.values[name]
	if !ok {
		return ""
	}

	return stringOf(expandValue(doc, v))
}

// boolean returns the attribute coerced through truth coercion, def when
// absent.
func (a *attributes) boolean(doc *changelog.ChangeLog, name string, def bool) bool {
	v, ok := a.values[name]
	if !ok {
		return def
	}

	return booleanValue(expandValue(doc, v), def)
}

// integer returns the attribute as an int, def when absent.
func (a *attributes) integer(doc *changelog.ChangeLog, name string, def int) (int, error) {
	v, ok := a.values[name]
	if !ok {
		return def, nil
	}

	switch t := expandValue(doc, v).(type) {
	case int64:
		return int(t), nil
	case int:
		return t, nil
	case float64:
		return int(t), nil
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, errors.Errorf("invalid integer value for %s: %q", name, t)
		}

		return n, nil
	default:
		return 0, errors.Errorf("invalid integer value for %s: %v", name, v)
	}
}

// expandValue runs variable expansion over string values and passes every
// other type through untouched. Nil stays nil.
func expandValue(doc *changelog.ChangeLog, v any) any {
	if s, ok := v.(string); ok {
		return doc.ExpandExpressions(s)
	}

	return v
}

// stringOf renders a loosely-typed scalar in its textual form.
func stringOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
